package domain

import (
	"sort"
	"strings"
)

// CategorySeparator joins the main and sub parts of a hierarchical
// category label, e.g. "Text Analysis > Sentiment Analysis".
const CategorySeparator = " > "

// ParseCategory splits a raw category label at the first separator.
// Both parts are trimmed. A label without a separator, or one whose
// main or sub part trims to nothing, is flat: main is "" and sub is
// the raw label unchanged.
func ParseCategory(raw string) (main, sub string) {
	i := strings.Index(raw, CategorySeparator)
	if i < 0 {
		return "", raw
	}
	main = strings.TrimSpace(raw[:i])
	sub = strings.TrimSpace(raw[i+len(CategorySeparator):])
	if main == "" || sub == "" {
		return "", raw
	}
	return main, sub
}

// BuildHierarchy derives the main-category to sub-category mapping from
// a snapshot of the catalog. Flat categories are grouped under the ""
// key. Sub-category lists are sorted and de-duplicated.
func BuildHierarchy(prompts []*Prompt) map[string][]string {
	seen := make(map[string]map[string]struct{})
	for _, p := range prompts {
		main, sub := ParseCategory(p.Category)
		if seen[main] == nil {
			seen[main] = make(map[string]struct{})
		}
		seen[main][sub] = struct{}{}
	}

	hierarchy := make(map[string][]string, len(seen))
	for main, subs := range seen {
		list := make([]string, 0, len(subs))
		for sub := range subs {
			list = append(list, sub)
		}
		sort.Strings(list)
		hierarchy[main] = list
	}
	return hierarchy
}

// CountsByCategory tallies prompts per exact raw category string. It is
// recomputed from the snapshot on every call; nothing is cached.
func CountsByCategory(prompts []*Prompt) map[string]int {
	counts := make(map[string]int)
	for _, p := range prompts {
		counts[p.Category]++
	}
	return counts
}

// CategoryNames returns the sorted distinct raw category labels.
func CategoryNames(prompts []*Prompt) []string {
	seen := make(map[string]struct{})
	for _, p := range prompts {
		seen[p.Category] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CategoryIndex bundles everything the category picker needs: the raw
// labels, the derived hierarchy, and live per-label counts.
type CategoryIndex struct {
	Categories []string            `json:"categories"`
	Hierarchy  map[string][]string `json:"hierarchy"`
	Counts     map[string]int      `json:"counts"`
}
