package models

// Command is an extracted, executable command derived from a detected reference
type Command struct {
	Raw    string `json:"raw"`    // Full reference text including the marker
	Action string `json:"action"` // First token after the marker, lower-cased
}

// CommandResult represents the outcome of executing a single command
type CommandResult struct {
	Command  string `json:"command"`
	Action   string `json:"action"`
	Success  bool   `json:"success"`
	Response string `json:"response"`
}
