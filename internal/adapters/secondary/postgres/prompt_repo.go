package postgres

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"prompt-catalog-service/internal/core/domain"
)

//go:embed schema.sql
var schema string

type PromptRepository struct {
	pool *pgxpool.Pool
}

func NewPromptRepository(pool *pgxpool.Pool) *PromptRepository {
	return &PromptRepository{pool: pool}
}

// Migrate creates the prompts table and its uniqueness backstop.
func (r *PromptRepository) Migrate(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply prompts schema: %w", err)
	}
	return nil
}

func (r *PromptRepository) Create(ctx context.Context, prompt *domain.Prompt) error {
	tagsJSON, err := json.Marshal(prompt.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}

	prompt.ID = uuid.New()
	prompt.CreatedAt = time.Now().UTC()
	prompt.Views = 0

	query := `
		INSERT INTO prompts (id, title, prompt_text, category, tags, source, views, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = r.pool.Exec(ctx, query,
		prompt.ID, prompt.Title, prompt.Body, prompt.Category,
		tagsJSON, prompt.Source, prompt.Views, prompt.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicatePrompt
		}
		return fmt.Errorf("create prompt: %w", err)
	}
	return nil
}

// GetByID increments the view counter and returns the updated row in a
// single statement, so concurrent reads never lose increments.
func (r *PromptRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Prompt, error) {
	query := `
		UPDATE prompts
		SET views = views + 1
		WHERE id = $1
		RETURNING id, title, prompt_text, category, tags, source, views, created_at
	`
	p, err := scanPrompt(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPromptNotFound
		}
		return nil, fmt.Errorf("get prompt by id: %w", err)
	}
	return p, nil
}

func (r *PromptRepository) ListAll(ctx context.Context) ([]*domain.Prompt, error) {
	query := `
		SELECT id, title, prompt_text, category, tags, source, views, created_at
		FROM prompts
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list prompts: %w", err)
	}
	defer rows.Close()

	var prompts []*domain.Prompt
	for rows.Next() {
		p, err := scanPrompt(rows)
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
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM prompts)`).Scan(&exists); err != nil {
		return false, fmt.Errorf("check prompts table: %w", err)
	}
	return !exists, nil
}

func scanPrompt(row pgx.Row) (*domain.Prompt, error) {
	var (
		p        domain.Prompt
		tagsJSON []byte
	)
	err := row.Scan(&p.ID, &p.Title, &p.Body, &p.Category, &tagsJSON, &p.Source, &p.Views, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(tagsJSON, &p.Tags); err != nil {
		return nil, fmt.Errorf("unmarshal tags: %w", err)
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return &p, nil
}
