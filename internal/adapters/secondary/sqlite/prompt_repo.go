// Package sqlite is the single-file store backend, kept for parity with
// the catalog's original deployment and for local development.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	sqlite3 "github.com/mattn/go-sqlite3"

	"prompt-catalog-service/internal/core/domain"
)

//go:embed schema.sql
var schema string

type PromptRepository struct {
	db *sql.DB
}

// New opens the database at path and initializes the schema.
func New(path string) (*PromptRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &PromptRepository{db: db}, nil
}

func (r *PromptRepository) Close() error {
	return r.db.Close()
}

func (r *PromptRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *PromptRepository) Create(ctx context.Context, prompt *domain.Prompt) error {
	tagsJSON, err := json.Marshal(prompt.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}

	prompt.ID = uuid.New()
	prompt.CreatedAt = time.Now().UTC()
	prompt.Views = 0

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO prompts (id, title, prompt_text, category, tags, source, views, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		prompt.ID.String(), prompt.Title, prompt.Body, prompt.Category,
		string(tagsJSON), prompt.Source, prompt.Views, prompt.CreatedAt,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return domain.ErrDuplicatePrompt
		}
		return fmt.Errorf("create prompt: %w", err)
	}
	return nil
}

func (r *PromptRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Prompt, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE prompts
		SET views = views + 1
		WHERE id = ?
		RETURNING id, title, prompt_text, category, tags, source, views, created_at`,
		id.String(),
	)
	p, err := scanPrompt(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPromptNotFound
		}
		return nil, fmt.Errorf("get prompt by id: %w", err)
	}
	return p, nil
}

func (r *PromptRepository) ListAll(ctx context.Context) ([]*domain.Prompt, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, prompt_text, category, tags, source, views, created_at
		FROM prompts
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list prompts: %w", err)
	}
	defer rows.Close()

	var prompts []*domain.Prompt
	for rows.Next() {
		p, err := scanPrompt(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan prompt row: %w", err)
		}
		prompts = append(prompts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate prompt rows: %w", err)
	}
	return prompts, nil
}

func (r *PromptRepository) IsEmpty(ctx context.Context) (bool, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM prompts`).Scan(&count); err != nil {
		return false, fmt.Errorf("count prompts: %w", err)
	}
	return count == 0, nil
}

func scanPrompt(scan func(dest ...any) error) (*domain.Prompt, error) {
	var (
		p        domain.Prompt
		rawID    string
		tagsJSON string
	)
	if err := scan(&rawID, &p.Title, &p.Body, &p.Category, &tagsJSON, &p.Source, &p.Views, &p.CreatedAt); err != nil {
		return nil, err
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("parse prompt id %q: %w", rawID, err)
	}
	p.ID = id
	if err := json.Unmarshal([]byte(tagsJSON), &p.Tags); err != nil {
		return nil, fmt.Errorf("unmarshal tags: %w", err)
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return &p, nil
}
