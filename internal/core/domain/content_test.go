package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitBody_ExplicitDelimiter(t *testing.T) {
	prompt, example := SplitBody("Do X.\n\n---EXAMPLE---\n\nSample: Y")
	assert.Equal(t, "Do X.", prompt)
	assert.Equal(t, "Sample: Y", example)
}

func TestSplitBody_ExplicitDelimiter_FirstOccurrenceWins(t *testing.T) {
	prompt, example := SplitBody("A\n---EXAMPLE---\nB\n---EXAMPLE---\nC")
	assert.Equal(t, "A", prompt)
	assert.Equal(t, "B\n---EXAMPLE---\nC", example)
}

func TestSplitBody_ExplicitDelimiter_NothingAfter(t *testing.T) {
	prompt, example := SplitBody("Do X.\n---EXAMPLE---\n   ")
	assert.Equal(t, "Do X.", prompt)
	assert.Equal(t, "", example)
}

func TestSplitBody_LegacyMarker(t *testing.T) {
	prompt, example := SplitBody("Analyze {text}.\nExample Output: positive")
	assert.Equal(t, "Analyze {text}.", prompt)
	assert.Equal(t, "Example Output: positive", example)
}

func TestSplitBody_LegacyMarker_CaseInsensitive(t *testing.T) {
	prompt, example := SplitBody("Classify the post.\nSAMPLE OUTPUT: spam")
	assert.Equal(t, "Classify the post.", prompt)
	assert.Equal(t, "SAMPLE OUTPUT: spam", example)
}

func TestSplitBody_LegacyMarker_LowestOffsetWins(t *testing.T) {
	prompt, example := SplitBody("Task.\nSample Answer: yes\nExample: no")
	assert.Equal(t, "Task.", prompt)
	assert.Equal(t, "Sample Answer: yes\nExample: no", example)
}

func TestSplitBody_LegacyMarker_MustFollowNewline(t *testing.T) {
	// At the very start of the body the phrase is the prompt itself,
	// not a section marker.
	prompt, example := SplitBody("Example: classify the following text as spam or ham.")
	assert.Equal(t, "Example: classify the following text as spam or ham.", prompt)
	assert.Equal(t, "", example)

	// Mid-line occurrences do not count either.
	prompt, example = SplitBody("Give an Example: something")
	assert.Equal(t, "Give an Example: something", prompt)
	assert.Equal(t, "", example)
}

func TestSplitBody_ExplicitDelimiterBeatsLegacyMarker(t *testing.T) {
	prompt, example := SplitBody("Task.\n---EXAMPLE---\nExample Output: positive")
	assert.Equal(t, "Task.", prompt)
	assert.Equal(t, "Example Output: positive", example)
}

func TestSplitBody_NoMarker(t *testing.T) {
	prompt, example := SplitBody("Just a plain instruction.")
	assert.Equal(t, "Just a plain instruction.", prompt)
	assert.Equal(t, "", example)
}

func TestSplitBody_EmptyInput(t *testing.T) {
	prompt, example := SplitBody("")
	assert.Equal(t, "", prompt)
	assert.Equal(t, "", example)
}

func TestSplitBody_PreservesInternalWhitespace(t *testing.T) {
	prompt, _ := SplitBody("  Line one.\n\n  Line two.  \n---EXAMPLE---\nX")
	assert.Equal(t, "Line one.\n\n  Line two.", prompt)
}

func TestSplitBody_IdempotentOnPrompt(t *testing.T) {
	inputs := []string{
		"Do X.\n\n---EXAMPLE---\n\nSample: Y",
		"Analyze {text}.\nExample Output: positive",
		"Just a plain instruction.",
		"Task.\nSample Answer: yes\nExample: no",
		"",
	}
	for _, raw := range inputs {
		prompt, _ := SplitBody(raw)
		again, _ := SplitBody(prompt)
		assert.Equal(t, prompt, again, "re-splitting the prompt of %q changed it", raw)
	}
}
