package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Prompt is a catalog entry: instructional text for a language model,
// optionally carrying an embedded example section (see SplitBody).
type Prompt struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"prompt_text"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags"`
	Source    string    `json:"source,omitempty"`
	Views     int64     `json:"views"`
	CreatedAt time.Time `json:"created_at"`
}

// MatchesTerm reports whether the already-lowercased term occurs in the
// title, the body, or any tag.
func (p *Prompt) MatchesTerm(term string) bool {
	if strings.Contains(strings.ToLower(p.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Body), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// Stats summarizes the whole catalog.
type Stats struct {
	TotalPrompts int            `json:"total_prompts"`
	Categories   map[string]int `json:"categories"`
}
