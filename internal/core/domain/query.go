package domain

import (
	"sort"
	"strings"
)

type SortKey string

const (
	SortByDate       SortKey = "date"
	SortByPopularity SortKey = "popularity"
)

// DefaultLimit is the page size applied when a listing request does not
// specify one.
const DefaultLimit = 100

// Query describes one listing request. It is built per request,
// evaluated once against a snapshot of the catalog, and discarded.
type Query struct {
	Category string
	Search   string
	Sort     SortKey
	Limit    int
	Offset   int
}

// Apply runs the full filter, order, paginate pipeline. It is pure: the
// snapshot is never mutated and the result is deterministic for a given
// snapshot.
func (q Query) Apply(prompts []*Prompt) []*Prompt {
	return q.Paginate(q.Order(q.Filter(prompts)))
}

// Filter retains prompts matching the exact raw category (when set) and
// the case-insensitive search term (when non-blank) against title, body
// and tags. A whitespace-only search term retains everything.
func (q Query) Filter(prompts []*Prompt) []*Prompt {
	term := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]*Prompt, 0, len(prompts))
	for _, p := range prompts {
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if term != "" && !p.MatchesTerm(term) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Order returns a sorted copy. "date" orders by creation time descending
// with ID descending breaking ties; "popularity" orders by views
// descending with creation time, then ID, breaking ties. Tie-breaks keep
// the output deterministic regardless of snapshot order.
func (q Query) Order(prompts []*Prompt) []*Prompt {
	out := make([]*Prompt, len(prompts))
	copy(out, prompts)

	switch q.Sort {
	case SortByPopularity:
		sort.Slice(out, func(i, j int) bool {
			if out[i].Views != out[j].Views {
				return out[i].Views > out[j].Views
			}
			if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
				return out[i].CreatedAt.After(out[j].CreatedAt)
			}
			return out[i].ID.String() > out[j].ID.String()
		})
	default:
		sort.Slice(out, func(i, j int) bool {
			if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
				return out[i].CreatedAt.After(out[j].CreatedAt)
			}
			return out[i].ID.String() > out[j].ID.String()
		})
	}
	return out
}

// Paginate skips Offset prompts and truncates to Limit. An offset past
// the end or a non-positive limit yields an empty page, never an error.
func (q Query) Paginate(prompts []*Prompt) []*Prompt {
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}
	if q.Limit <= 0 || offset >= len(prompts) {
		return []*Prompt{}
	}
	end := offset + q.Limit
	if end > len(prompts) {
		end = len(prompts)
	}
	return prompts[offset:end]
}
