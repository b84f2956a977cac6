package domain

import "strings"

// IsDuplicate reports whether a proposed (title, category) pair collides
// with an existing prompt. Both fields are compared case-insensitively
// after trimming. The caller must pass the full unfiltered catalog; a
// paginated or filtered slice would let duplicates through.
func IsDuplicate(title, category string, existing []*Prompt) bool {
	title = strings.TrimSpace(title)
	category = strings.TrimSpace(category)
	for _, p := range existing {
		if strings.EqualFold(title, strings.TrimSpace(p.Title)) &&
			strings.EqualFold(category, strings.TrimSpace(p.Category)) {
			return true
		}
	}
	return false
}
