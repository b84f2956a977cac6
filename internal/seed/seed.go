// Package seed carries the bundled dataset the catalog is populated
// with on first run: social-science research prompts adapted from the
// original public repository.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed prompts.json
var promptsJSON []byte

// Record is one bundled prompt. The store assigns the identifier and
// creation time when the record is inserted.
type Record struct {
	Title      string   `json:"title"`
	PromptText string   `json:"prompt_text"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags"`
	Source     string   `json:"source"`
}

// Records decodes the bundled dataset in its listed order.
func Records() ([]Record, error) {
	var records []Record
	if err := json.Unmarshal(promptsJSON, &records); err != nil {
		return nil, fmt.Errorf("decode bundled prompts: %w", err)
	}
	return records, nil
}
