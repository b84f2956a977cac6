package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"prompt-catalog-service/internal/core/domain"
)

// MockPromptRepo is a mock of PromptRepository.
type MockPromptRepo struct {
	mock.Mock
}

func (m *MockPromptRepo) Create(ctx context.Context, prompt *domain.Prompt) error {
	args := m.Called(ctx, prompt)
	return args.Error(0)
}

func (m *MockPromptRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Prompt, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Prompt), args.Error(1)
}

func (m *MockPromptRepo) ListAll(ctx context.Context) ([]*domain.Prompt, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Prompt), args.Error(1)
}

func (m *MockPromptRepo) IsEmpty(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

// MemoryPromptRepo is a real in-memory PromptRepository for tests that
// exercise whole flows (seeding, view counting) without mock plumbing.
type MemoryPromptRepo struct {
	mu      sync.Mutex
	prompts []*domain.Prompt
}

func NewMemoryPromptRepo() *MemoryPromptRepo {
	return &MemoryPromptRepo{}
}

func (r *MemoryPromptRepo) Create(_ context.Context, prompt *domain.Prompt) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prompt.ID = uuid.New()
	prompt.CreatedAt = time.Now().UTC()
	prompt.Views = 0

	stored := *prompt
	r.prompts = append(r.prompts, &stored)
	return nil
}

func (r *MemoryPromptRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Prompt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.prompts {
		if p.ID == id {
			p.Views++
			out := *p
			return &out, nil
		}
	}
	return nil, domain.ErrPromptNotFound
}

func (r *MemoryPromptRepo) ListAll(_ context.Context) ([]*domain.Prompt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.Prompt, len(r.prompts))
	for i, p := range r.prompts {
		cp := *p
		out[i] = &cp
	}
	return out, nil
}

func (r *MemoryPromptRepo) IsEmpty(_ context.Context) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.prompts) == 0, nil
}
