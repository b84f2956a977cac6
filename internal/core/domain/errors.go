package domain

import "errors"

// Validation errors
var (
	ErrInvalidTitle    = errors.New("prompt title is required")
	ErrInvalidBody     = errors.New("prompt text is required")
	ErrInvalidCategory = errors.New("prompt category is required")
	ErrInvalidSortKey  = errors.New("sort must be either 'date' or 'popularity'")
)

// Not found / conflict errors
var (
	ErrPromptNotFound  = errors.New("prompt not found")
	ErrDuplicatePrompt = errors.New("a prompt with this title already exists in this category")
)
