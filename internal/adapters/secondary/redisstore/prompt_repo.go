// Package redisstore keeps the catalog in Redis: one JSON blob per
// prompt, a membership set for listing, and a dedicated counter key per
// prompt so view increments stay atomic.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"prompt-catalog-service/internal/core/domain"
)

const (
	promptKeyPrefix = "prompt:data:"  // prompt:data:{id} -> JSON blob
	promptIDSetKey  = "prompt:ids"    // set of all prompt ids
	viewsKeyPrefix  = "prompt:views:" // prompt:views:{id} -> counter
)

type PromptRepository struct {
	client *redis.Client
}

func NewPromptRepository(client *redis.Client) *PromptRepository {
	return &PromptRepository{client: client}
}

func (r *PromptRepository) Create(ctx context.Context, prompt *domain.Prompt) error {
	prompt.ID = uuid.New()
	prompt.CreatedAt = time.Now().UTC()
	prompt.Views = 0

	data, err := json.Marshal(prompt)
	if err != nil {
		return fmt.Errorf("marshal prompt: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, promptKey(prompt.ID), data, 0)
	pipe.SAdd(ctx, promptIDSetKey, prompt.ID.String())
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("create prompt: %w", err)
	}
	return nil
}

// GetByID loads the blob and bumps the per-prompt counter with INCR,
// which is atomic on the server, so concurrent reads each persist a
// distinct value.
func (r *PromptRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Prompt, error) {
	data, err := r.client.Get(ctx, promptKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrPromptNotFound
		}
		return nil, fmt.Errorf("get prompt by id: %w", err)
	}

	var p domain.Prompt
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("unmarshal prompt: %w", err)
	}

	views, err := r.client.Incr(ctx, viewsKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("increment views: %w", err)
	}
	p.Views = views
	return &p, nil
}

func (r *PromptRepository) ListAll(ctx context.Context) ([]*domain.Prompt, error) {
	ids, err := r.client.SMembers(ctx, promptIDSetKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list prompt ids: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	dataKeys := make([]string, len(ids))
	viewKeys := make([]string, len(ids))
	for i, id := range ids {
		dataKeys[i] = promptKeyPrefix + id
		viewKeys[i] = viewsKeyPrefix + id
	}

	blobs, err := r.client.MGet(ctx, dataKeys...).Result()
	if err != nil {
		return nil, fmt.Errorf("fetch prompts: %w", err)
	}
	counters, err := r.client.MGet(ctx, viewKeys...).Result()
	if err != nil {
		return nil, fmt.Errorf("fetch view counters: %w", err)
	}

	prompts := make([]*domain.Prompt, 0, len(ids))
	for i, blob := range blobs {
		raw, ok := blob.(string)
		if !ok {
			// Blob expired or deleted between SMEMBERS and MGET.
			continue
		}
		var p domain.Prompt
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return nil, fmt.Errorf("unmarshal prompt %s: %w", ids[i], err)
		}
		if counter, ok := counters[i].(string); ok {
			views, err := strconv.ParseInt(counter, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("parse view counter for %s: %w", ids[i], err)
			}
			p.Views = views
		}
		prompts = append(prompts, &p)
	}
	return prompts, nil
}

func (r *PromptRepository) IsEmpty(ctx context.Context) (bool, error) {
	n, err := r.client.SCard(ctx, promptIDSetKey).Result()
	if err != nil {
		return false, fmt.Errorf("count prompt ids: %w", err)
	}
	return n == 0, nil
}

func promptKey(id uuid.UUID) string {
	return promptKeyPrefix + id.String()
}

func viewsKey(id uuid.UUID) string {
	return viewsKeyPrefix + id.String()
}
