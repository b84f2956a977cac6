package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"prompt-catalog-service/internal/core/domain"
	ports "prompt-catalog-service/internal/core/ports/output"
)

type CatalogService struct {
	repo ports.PromptRepository
}

func NewCatalogService(repo ports.PromptRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// Create validates the submission, runs the duplicate guard against the
// full catalog, and only then asks the store to persist. The guard and
// the insert are not transactional; the store's uniqueness constraint is
// the backstop for the race window between them.
func (s *CatalogService) Create(ctx context.Context, title, body, category, source string, tags []string) (*domain.Prompt, error) {
	if strings.TrimSpace(title) == "" {
		return nil, domain.ErrInvalidTitle
	}
	if strings.TrimSpace(body) == "" {
		return nil, domain.ErrInvalidBody
	}
	if strings.TrimSpace(category) == "" {
		return nil, domain.ErrInvalidCategory
	}

	existing, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if domain.IsDuplicate(title, category, existing) {
		return nil, domain.ErrDuplicatePrompt
	}

	clean := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		clean = append(clean, tag)
	}

	prompt := &domain.Prompt{
		Title:    title,
		Body:     body,
		Category: category,
		Tags:     clean,
		Source:   source,
	}
	if err := s.repo.Create(ctx, prompt); err != nil {
		return nil, err
	}
	return prompt, nil
}

// List evaluates the query against a fresh snapshot. The returned total
// is the filtered count before pagination.
func (s *CatalogService) List(ctx context.Context, q domain.Query) ([]*domain.Prompt, int, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, 0, err
	}
	filtered := q.Filter(all)
	return q.Paginate(q.Order(filtered)), len(filtered), nil
}

// Get fetches a single prompt. Unlike List this increments the view
// counter; the increment happens atomically inside the store.
func (s *CatalogService) Get(ctx context.Context, id uuid.UUID) (*domain.Prompt, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CatalogService) Stats(ctx context.Context) (*domain.Stats, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.Stats{
		TotalPrompts: len(all),
		Categories:   domain.CountsByCategory(all),
	}, nil
}

func (s *CatalogService) Categories(ctx context.Context) (*domain.CategoryIndex, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.CategoryIndex{
		Categories: domain.CategoryNames(all),
		Hierarchy:  domain.BuildHierarchy(all),
		Counts:     domain.CountsByCategory(all),
	}, nil
}
