package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redislib "github.com/redis/go-redis/v9"

	"github.com/pulsebot/backend/domain"
	"github.com/pulsebot/backend/repository"
	"github.com/pulsebot/backend/ui"
)

type stateRepository struct {
	client *redislib.Client
	prefix string
	ttl    time.Duration
}

// NewStateRepository creates a Redis-backed view-state cache.
func NewStateRepository(client *redislib.Client, ttl time.Duration) repository.ViewStateRepository {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &stateRepository{
		client: client,
		prefix: "viewstate:",
		ttl:    ttl,
	}
}

func (r *stateRepository) Get(ctx context.Context, slackUserID string) (ui.State, error) {
	result, err := r.client.Get(ctx, r.key(slackUserID)).Result()
	if err != nil {
		if err == redislib.Nil {
			return ui.State{}, domain.ErrStateNotFound
		}
		return ui.State{}, err
	}

	var state ui.State
	if err := json.Unmarshal([]byte(result), &state); err != nil {
		return ui.State{}, err
	}
	return state, nil
}

func (r *stateRepository) Save(ctx context.Context, slackUserID string, state ui.State) error {
	if slackUserID == "" {
		return domain.ErrInvalidPayload
	}
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key(slackUserID), payload, r.ttl).Err()
}

func (r *stateRepository) Delete(ctx context.Context, slackUserID string) error {
	return r.client.Del(ctx, r.key(slackUserID)).Err()
}

func (r *stateRepository) key(slackUserID string) string {
	return fmt.Sprintf("%s%s", r.prefix, slackUserID)
}
