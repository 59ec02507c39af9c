package models

// Position marks the half-open byte range [Start, End) a reference occupies
// in the scanned text. End is either the start of the next marker occurrence
// or the end of the string.
type Position struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Reference is a single detected command marker occurrence. Immutable;
// lives for a single processing pass and is never persisted.
type Reference struct {
	Raw      string   `json:"raw"`
	Position Position `json:"position"`
	Context  string   `json:"context"`
}
