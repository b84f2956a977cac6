package domain

import "strings"

// ExampleDelimiter is the explicit marker inserted between the
// instructional text and the example section when a prompt is composed
// through the submission form.
const ExampleDelimiter = "---EXAMPLE---"

// legacyExampleMarkers are the phrase markers found in bodies imported
// from other sources. The list and its precedence are frozen: changing
// it would change what existing users see as "the prompt".
var legacyExampleMarkers = []string{
	"Example:",
	"Example Output:",
	"Sample Output:",
	"Sample Expected Output:",
	"Example Input:",
	"Sample Answer:",
	"Example Analysis:",
	"Example Classification:",
	"Sample Example:",
}

// SplitBody separates a raw body into its instructional text and an
// optional example section. An empty example means the body has none.
//
// Precedence: the first occurrence of ExampleDelimiter wins; otherwise
// the earliest line-start legacy marker (case-insensitive, must be
// preceded by a newline) wins and the marker is kept inside the
// example; otherwise the whole body is the prompt. Total for any input.
func SplitBody(raw string) (prompt, example string) {
	if i := strings.Index(raw, ExampleDelimiter); i >= 0 {
		return strings.TrimSpace(raw[:i]), strings.TrimSpace(raw[i+len(ExampleDelimiter):])
	}

	lower := strings.ToLower(raw)
	split := -1
	for _, marker := range legacyExampleMarkers {
		i := strings.Index(lower, "\n"+strings.ToLower(marker))
		if i < 0 {
			continue
		}
		if split < 0 || i+1 < split {
			split = i + 1
		}
	}
	if split >= 0 {
		return strings.TrimSpace(raw[:split]), strings.TrimSpace(raw[split:])
	}

	return strings.TrimSpace(raw), ""
}
