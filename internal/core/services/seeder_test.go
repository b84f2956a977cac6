package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"prompt-catalog-service/internal/seed"
	"prompt-catalog-service/internal/testutil"
)

func seedRecords() []seed.Record {
	return []seed.Record{
		{Title: "Survey Export", PromptText: "Export responses.", Category: "Data Collection > Data Extraction & APIs", Tags: []string{"survey"}},
		{Title: "Cluster Naming", PromptText: "Name the clusters.", Category: "Text Analysis > Clustering", Tags: []string{"nlp"}},
	}
}

func TestSeeder_PopulatesEmptyStore(t *testing.T) {
	repo := testutil.NewMemoryPromptRepo()
	svc := NewCatalogService(repo)

	err := NewSeeder(svc, repo, seedRecords()).Run(context.Background())

	assert.NoError(t, err)
	all, _ := repo.ListAll(context.Background())
	assert.Len(t, all, 2)
}

func TestSeeder_SecondRunIsNoOp(t *testing.T) {
	repo := testutil.NewMemoryPromptRepo()
	svc := NewCatalogService(repo)
	seeder := NewSeeder(svc, repo, seedRecords())

	assert.NoError(t, seeder.Run(context.Background()))
	assert.NoError(t, seeder.Run(context.Background()))

	all, _ := repo.ListAll(context.Background())
	assert.Len(t, all, 2)
}

func TestSeeder_SkipsBadRecords(t *testing.T) {
	repo := testutil.NewMemoryPromptRepo()
	svc := NewCatalogService(repo)

	records := append(seedRecords(),
		seed.Record{Title: "", PromptText: "no title", Category: "X"},
		seed.Record{Title: "survey export ", PromptText: "dup", Category: "data collection > data extraction & apis"},
	)

	err := NewSeeder(svc, repo, records).Run(context.Background())

	assert.NoError(t, err)
	all, _ := repo.ListAll(context.Background())
	assert.Len(t, all, 2)
}

func TestSeeder_StoreProbeFailure(t *testing.T) {
	repo := new(testutil.MockPromptRepo)
	svc := NewCatalogService(repo)

	repo.On("IsEmpty", mock.Anything).Return(false, errors.New("dial tcp: refused"))

	err := NewSeeder(svc, repo, seedRecords()).Run(context.Background())
	assert.Error(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
