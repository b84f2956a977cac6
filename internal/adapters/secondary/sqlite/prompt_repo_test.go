package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prompt-catalog-service/internal/core/domain"
)

func setupRepo(t *testing.T) *PromptRepository {
	t.Helper()
	repo, err := New(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestCreateAndGet(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	p := &domain.Prompt{
		Title:    "Survey Export",
		Body:     "Export the responses.",
		Category: "Data Collection > Data Extraction & APIs",
		Tags:     []string{"survey", "api"},
		Source:   "Custom",
	}
	require.NoError(t, repo.Create(ctx, p))
	assert.NotEqual(t, uuid.Nil, p.ID)

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Title, got.Title)
	assert.Equal(t, p.Tags, got.Tags)
	assert.Equal(t, int64(1), got.Views)
}

func TestGetByID_IncrementsEveryRead(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	p := &domain.Prompt{Title: "t", Body: "b", Category: "c"}
	require.NoError(t, repo.Create(ctx, p))

	for i := 1; i <= 5; i++ {
		got, err := repo.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(i), got.Views)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo := setupRepo(t)

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrPromptNotFound)
}

func TestCreate_UniqueIndexBackstop(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Prompt{
		Title: "Survey Export", Body: "b", Category: "Data Collection",
	}))

	err := repo.Create(ctx, &domain.Prompt{
		Title: "  survey export ", Body: "other", Category: "DATA COLLECTION",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicatePrompt)
}

func TestListAllAndIsEmpty(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	empty, err := repo.IsEmpty(ctx)
	require.NoError(t, err)
	assert.True(t, empty)

	require.NoError(t, repo.Create(ctx, &domain.Prompt{Title: "a", Body: "b", Category: "c"}))
	require.NoError(t, repo.Create(ctx, &domain.Prompt{Title: "d", Body: "e", Category: "f"}))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	for _, p := range all {
		assert.NotNil(t, p.Tags)
	}

	empty, err = repo.IsEmpty(ctx)
	require.NoError(t, err)
	assert.False(t, empty)
}
