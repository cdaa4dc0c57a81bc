// Package session keeps login sessions in Redis as JSON documents keyed
// by a random token.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/deppfellow/ladder-stats/internal/model"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// Commander is the subset of *redis.Client the store needs.
type Commander interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type data struct {
	Principal model.Principal `json:"principal"`
	CreatedAt time.Time       `json:"created_at"`
	ExpiresAt time.Time       `json:"expires_at"`
}

type Store struct {
	rdb Commander
	ttl time.Duration
	now func() time.Time
}

func NewStore(rdb Commander, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl, now: time.Now}
}

func key(token string) string {
	return keyPrefix + token
}

// Create stores principal under a fresh token that expires after the
// store's TTL.
func (s *Store) Create(ctx context.Context, principal model.Principal) (string, error) {
	token := uuid.NewString()
	now := s.now().UTC()

	payload, err := json.Marshal(data{
		Principal: principal,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal session data: %w", err)
	}

	if err := s.rdb.Set(ctx, key(token), payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to set session: %w", err)
	}

	return token, nil
}

func (s *Store) Get(ctx context.Context, token string) (model.Principal, bool, error) {
	raw, err := s.rdb.Get(ctx, key(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.Principal{}, false, nil
	}
	if err != nil {
		return model.Principal{}, false, fmt.Errorf("failed to get session: %w", err)
	}

	var session data
	if err := json.Unmarshal(raw, &session); err != nil {
		return model.Principal{}, false, fmt.Errorf("failed to unmarshal session data: %w", err)
	}

	return session.Principal, true, nil
}

func (s *Store) Delete(ctx context.Context, token string) error {
	if err := s.rdb.Del(ctx, key(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
