package dto

import (
	"time"

	"github.com/google/uuid"

	"prompt-catalog-service/internal/core/domain"
)

type CreatePromptRequest struct {
	Title      string   `json:"title" binding:"required,max=255"`
	PromptText string   `json:"prompt_text" binding:"required"`
	Category   string   `json:"category" binding:"required,max=100"`
	Tags       []string `json:"tags"`
	Source     string   `json:"source"`
}

type PromptResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	PromptText   string    `json:"prompt_text"`
	Category     string    `json:"category"`
	MainCategory string    `json:"main_category,omitempty"`
	SubCategory  string    `json:"sub_category"`
	Tags         []string  `json:"tags"`
	Source       string    `json:"source,omitempty"`
	Views        int64     `json:"views"`
	CreatedAt    string    `json:"created_at"`
}

// PromptDetailResponse adds the split body parts for the single-item
// view: Prompt is the instructional text only, Example the labeled
// example section when one is embedded.
type PromptDetailResponse struct {
	PromptResponse
	Prompt  string `json:"prompt"`
	Example string `json:"example,omitempty"`
}

type ListPromptsResponse struct {
	Items      []PromptResponse `json:"items"`
	Total      int              `json:"total"`
	PageSize   int              `json:"page_size"`
	NextOffset int              `json:"next_offset"`
}

type CategoriesResponse struct {
	Categories []string            `json:"categories"`
	Hierarchy  map[string][]string `json:"hierarchy"`
	Counts     map[string]int      `json:"counts"`
}

type StatsResponse struct {
	TotalPrompts int            `json:"total_prompts"`
	Categories   map[string]int `json:"categories"`
}

func ToPromptResponse(p *domain.Prompt) PromptResponse {
	main, sub := domain.ParseCategory(p.Category)
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return PromptResponse{
		ID:           p.ID,
		Title:        p.Title,
		PromptText:   p.Body,
		Category:     p.Category,
		MainCategory: main,
		SubCategory:  sub,
		Tags:         tags,
		Source:       p.Source,
		Views:        p.Views,
		CreatedAt:    p.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPromptDetailResponse(p *domain.Prompt) PromptDetailResponse {
	prompt, example := domain.SplitBody(p.Body)
	return PromptDetailResponse{
		PromptResponse: ToPromptResponse(p),
		Prompt:         prompt,
		Example:        example,
	}
}
