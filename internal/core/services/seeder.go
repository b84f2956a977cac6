package services

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	ports "prompt-catalog-service/internal/core/ports/output"
	"prompt-catalog-service/internal/seed"
)

// Seeder populates an empty catalog with the bundled dataset. It runs
// once at startup, before request traffic.
type Seeder struct {
	catalog *CatalogService
	repo    ports.PromptRepository
	records []seed.Record
}

func NewSeeder(catalog *CatalogService, repo ports.PromptRepository, records []seed.Record) *Seeder {
	return &Seeder{catalog: catalog, repo: repo, records: records}
}

// Run is a no-op when the store already holds prompts, so repeated
// restarts never duplicate seed content. Records go through the normal
// create path in listed order; a failing record is logged and skipped,
// never aborting the rest (the process must still come up).
func (s *Seeder) Run(ctx context.Context) error {
	empty, err := s.repo.IsEmpty(ctx)
	if err != nil {
		return fmt.Errorf("check store before seeding: %w", err)
	}
	if !empty {
		log.Info("seed skipped: catalog already populated")
		return nil
	}

	seeded := 0
	for _, r := range s.records {
		if _, err := s.catalog.Create(ctx, r.Title, r.PromptText, r.Category, r.Source, r.Tags); err != nil {
			log.WithError(err).Warnf("seed: skipping %q", r.Title)
			continue
		}
		seeded++
	}
	log.Infof("seeded %d of %d bundled prompts", seeded, len(s.records))
	return nil
}
