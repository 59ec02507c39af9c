package utils

import (
	"strings"

	"linearcode/models"
)

// ReferenceMarker is the trigger token that signals an embedded command in
// free text (comment bodies, issue descriptions). Matching is case-insensitive.
const ReferenceMarker = "@opencode"

// DefaultAction is used when a reference carries no action token after the marker.
const DefaultAction = "help"

// contextWindow is how many characters of surrounding text are captured
// before a detected marker.
const contextWindow = 40

// DetectReferences scans text for command references. Each reference starts
// at a marker occurrence and extends to the start of the next marker
// occurrence, or to the end of the string. A fresh scan is performed on each
// call; no state is retained between calls.
func DetectReferences(text string) []models.Reference {
	if text == "" {
		return nil
	}

	starts := markerPositions(text)
	if len(starts) == 0 {
		return nil
	}

	references := make([]models.Reference, 0, len(starts))
	for i, start := range starts {
		end := len(text)
		if i+1 < len(starts) {
			end = starts[i+1]
		}

		contextStart := start - contextWindow
		if contextStart < 0 {
			contextStart = 0
		}

		references = append(references, models.Reference{
			Raw:      strings.TrimRight(text[start:end], " \t\r\n"),
			Position: models.Position{Start: start, End: end},
			Context:  text[contextStart:end],
		})
	}
	return references
}

// HasReference reports whether text contains at least one command reference.
// Short-circuits without building the full reference list.
func HasReference(text string) bool {
	return strings.Contains(strings.ToLower(text), ReferenceMarker)
}

// ExtractAction returns the first whitespace-delimited token after the
// marker, lower-cased. A reference with no token after the marker yields
// the default "help" action.
func ExtractAction(ref models.Reference) string {
	body := ref.Raw
	if len(body) >= len(ReferenceMarker) && strings.EqualFold(body[:len(ReferenceMarker)], ReferenceMarker) {
		body = body[len(ReferenceMarker):]
	}

	fields := strings.Fields(body)
	if len(fields) == 0 {
		return DefaultAction
	}
	return strings.ToLower(fields[0])
}

// HasOption reports whether the reference text mentions any of the given
// option names in "--name" or " -name" form, case-insensitively. This is a
// substring check, not a flag parser: quoting and "=value" forms are not
// handled, and a name appearing inside free text can false-positive.
func HasOption(ref models.Reference, names []string) bool {
	body := strings.ToLower(ref.Raw)
	for _, name := range names {
		lowered := strings.ToLower(name)
		if strings.Contains(body, "--"+lowered) || strings.Contains(body, " -"+lowered) {
			return true
		}
	}
	return false
}

// markerPositions returns the start index of every marker occurrence in
// left-to-right order. Occurrences cannot overlap because the search resumes
// past the end of each match.
func markerPositions(text string) []int {
	lowered := strings.ToLower(text)

	var positions []int
	offset := 0
	for {
		idx := strings.Index(lowered[offset:], ReferenceMarker)
		if idx < 0 {
			return positions
		}
		positions = append(positions, offset+idx)
		offset += idx + len(ReferenceMarker)
	}
}
