package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"prompt-catalog-service/internal/core/domain"
	"prompt-catalog-service/internal/testutil"
)

func TestCatalogService_Create(t *testing.T) {
	repo := new(testutil.MockPromptRepo)
	svc := NewCatalogService(repo)

	repo.On("ListAll", mock.Anything).Return([]*domain.Prompt{}, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Prompt")).Return(nil)

	prompt, err := svc.Create(context.Background(),
		"Survey Export", "Export responses.", "Data Collection > Data Extraction & APIs",
		"Custom", []string{"survey", " api ", ""})

	assert.NoError(t, err)
	assert.Equal(t, "Survey Export", prompt.Title)
	assert.Equal(t, []string{"survey", "api"}, prompt.Tags)
	repo.AssertExpectations(t)
}

func TestCatalogService_Create_MissingFields(t *testing.T) {
	repo := new(testutil.MockPromptRepo)
	svc := NewCatalogService(repo)

	_, err := svc.Create(context.Background(), "  ", "body", "cat", "", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidTitle)

	_, err = svc.Create(context.Background(), "title", "\n\t", "cat", "", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidBody)

	_, err = svc.Create(context.Background(), "title", "body", "", "", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCatalogService_Create_DuplicateRejectedBeforePersist(t *testing.T) {
	repo := new(testutil.MockPromptRepo)
	svc := NewCatalogService(repo)

	existing := []*domain.Prompt{
		{Title: "  foo  ", Category: "a > b"},
	}
	repo.On("ListAll", mock.Anything).Return(existing, nil)

	_, err := svc.Create(context.Background(), "Foo", "body", "A > B", "", nil)

	assert.ErrorIs(t, err, domain.ErrDuplicatePrompt)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCatalogService_Create_StoreError(t *testing.T) {
	repo := new(testutil.MockPromptRepo)
	svc := NewCatalogService(repo)

	storeErr := errors.New("connection refused")
	repo.On("ListAll", mock.Anything).Return([]*domain.Prompt{}, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Prompt")).Return(storeErr)

	_, err := svc.Create(context.Background(), "t", "b", "c", "", nil)
	assert.ErrorIs(t, err, storeErr)
}

func TestCatalogService_List_AppliesQueryPipeline(t *testing.T) {
	repo := new(testutil.MockPromptRepo)
	svc := NewCatalogService(repo)

	base := time.Now()
	all := []*domain.Prompt{
		{ID: uuid.New(), Title: "a", Category: "C", CreatedAt: base.Add(-time.Hour)},
		{ID: uuid.New(), Title: "b", Category: "C", CreatedAt: base},
		{ID: uuid.New(), Title: "c", Category: "D", CreatedAt: base.Add(-time.Minute)},
	}
	repo.On("ListAll", mock.Anything).Return(all, nil)

	got, total, err := svc.List(context.Background(), domain.Query{
		Category: "C",
		Sort:     domain.SortByDate,
		Limit:    1,
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, total) // filtered count before pagination
	assert.Len(t, got, 1)
	assert.Equal(t, "b", got[0].Title)
}

func TestCatalogService_List_StoreError(t *testing.T) {
	repo := new(testutil.MockPromptRepo)
	svc := NewCatalogService(repo)

	repo.On("ListAll", mock.Anything).Return(nil, errors.New("boom"))

	_, _, err := svc.List(context.Background(), domain.Query{Sort: domain.SortByDate, Limit: 10})
	assert.Error(t, err)
}

func TestCatalogService_Get_NotFound(t *testing.T) {
	repo := new(testutil.MockPromptRepo)
	svc := NewCatalogService(repo)

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrPromptNotFound)

	_, err := svc.Get(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrPromptNotFound)
}

func TestCatalogService_Stats(t *testing.T) {
	repo := new(testutil.MockPromptRepo)
	svc := NewCatalogService(repo)

	all := []*domain.Prompt{
		{Category: "A > X"},
		{Category: "A > X"},
		{Category: "B"},
	}
	repo.On("ListAll", mock.Anything).Return(all, nil)

	stats, err := svc.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 3, stats.TotalPrompts)
	assert.Equal(t, map[string]int{"A > X": 2, "B": 1}, stats.Categories)
}

func TestCatalogService_Categories(t *testing.T) {
	repo := new(testutil.MockPromptRepo)
	svc := NewCatalogService(repo)

	all := []*domain.Prompt{
		{Category: "A > X"},
		{Category: "A > Y"},
		{Category: "B"},
	}
	repo.On("ListAll", mock.Anything).Return(all, nil)

	index, err := svc.Categories(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"A > X", "A > Y", "B"}, index.Categories)
	assert.Equal(t, []string{"X", "Y"}, index.Hierarchy["A"])
	assert.Equal(t, []string{"B"}, index.Hierarchy[""])
	assert.Equal(t, 1, index.Counts["B"])
}
