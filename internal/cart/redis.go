package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Beka01247/forno-storefront/internal/domain"
	"github.com/redis/go-redis/v9"
)

const DefaultSessionTTL = 2 * time.Hour

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) ([]domain.LineItem, error) {
	data, err := s.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrCartNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var items []domain.LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("unmarshal cart failed: %w", err)
	}

	return items, nil
}

// Save writes the items and refreshes the session expiry.
func (s *RedisStore) Save(ctx context.Context, sessionID string, items []domain.LineItem) error {
	if items == nil {
		items = []domain.LineItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}

	if err := s.client.Set(ctx, sessionKey(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}
