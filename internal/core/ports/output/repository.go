package ports

import (
	"context"

	"github.com/google/uuid"

	"prompt-catalog-service/internal/core/domain"
)

// PromptRepository is the store boundary. Implementations own identity
// assignment: Create fills in the ID and CreatedAt of the prompt it is
// given.
type PromptRepository interface {
	Create(ctx context.Context, prompt *domain.Prompt) error

	// GetByID returns the prompt and, as a side effect of this specific
	// operation, atomically increments its view counter. Concurrent
	// calls for the same id must not lose increments.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Prompt, error)

	// ListAll returns the full unfiltered catalog. Query evaluation,
	// duplicate checks and stats all operate on this snapshot.
	ListAll(ctx context.Context) ([]*domain.Prompt, error)

	IsEmpty(ctx context.Context) (bool, error)
}
