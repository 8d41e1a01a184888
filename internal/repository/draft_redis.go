package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"inkdesk/internal/wizard"
)

const draftKeyPrefix = "inkdesk:wizard:"

// DraftRepo keeps in-progress wizards in Redis. Every save refreshes the TTL,
// so an abandoned draft disappears on its own.
type DraftRepo struct {
	rdb redis.UniversalClient
	ttl time.Duration
}

func NewDraftRepository(rdb redis.UniversalClient, ttl time.Duration) *DraftRepo {
	return &DraftRepo{
		rdb: rdb,
		ttl: ttl,
	}
}

func draftKey(id string) string {
	return draftKeyPrefix + id
}

func (r *DraftRepo) Save(ctx context.Context, w *wizard.Wizard) error {
	data, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}
	if err := r.rdb.Set(ctx, draftKey(w.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

func (r *DraftRepo) Get(ctx context.Context, id string) (*wizard.Wizard, error) {
	data, err := r.rdb.Get(ctx, draftKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("get draft: %w", err)
	}

	var w wizard.Wizard
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("decode draft: %w", err)
	}
	return &w, nil
}

func (r *DraftRepo) Delete(ctx context.Context, id string) error {
	if err := r.rdb.Del(ctx, draftKey(id)).Err(); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}
