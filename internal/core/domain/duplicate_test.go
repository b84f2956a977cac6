package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDuplicate_CaseAndWhitespaceInsensitive(t *testing.T) {
	existing := []*Prompt{
		{Title: "  foo  ", Category: "a > b"},
	}

	assert.True(t, IsDuplicate("Foo", "A > B", existing))
}

func TestIsDuplicate_BothFieldsMustMatch(t *testing.T) {
	existing := []*Prompt{
		{Title: "Foo", Category: "A > B"},
	}

	assert.False(t, IsDuplicate("Foo", "A > C", existing))
	assert.False(t, IsDuplicate("Bar", "A > B", existing))
}

func TestIsDuplicate_NoFuzzyMatching(t *testing.T) {
	existing := []*Prompt{
		{Title: "Survey Data Quality Check", Category: "Data Preparation > Data Cleaning"},
	}

	assert.False(t, IsDuplicate("Survey Data Quality Checks", "Data Preparation > Data Cleaning", existing))
}

func TestIsDuplicate_EmptyCatalog(t *testing.T) {
	assert.False(t, IsDuplicate("Foo", "Bar", nil))
}
