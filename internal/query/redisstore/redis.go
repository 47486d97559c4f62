// Package redisstore keeps query results in Redis so that several replicas
// share one cache.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ats-api/internal/query"

	"github.com/redis/go-redis/v9"
)

const defaultPrefix = "ats:query:"

// Store implements query.Store on a Redis client.
type Store struct {
	rdb    redis.UniversalClient
	prefix string
	ttl    time.Duration
}

var _ query.Store = (*Store)(nil)

// New returns a Store. ttl bounds how long entries survive in Redis; zero
// keeps them until invalidated.
func New(rdb redis.UniversalClient, ttl time.Duration) *Store {
	return &Store{rdb: rdb, prefix: defaultPrefix, ttl: ttl}
}

func (s *Store) Get(ctx context.Context, key string) (query.Entry, bool, error) {
	raw, err := s.rdb.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return query.Entry{}, false, nil
		}
		return query.Entry{}, false, fmt.Errorf("failed to get cache: %w", err)
	}

	var entry query.Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return query.Entry{}, false, fmt.Errorf("failed to unmarshal cache data: %w", err)
	}
	return entry, true, nil
}

func (s *Store) Set(ctx context.Context, key string, entry query.Entry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal cache data: %w", err)
	}
	if err := s.rdb.Set(ctx, s.prefix+key, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// DeleteEntity removes the collection key and scans for detail keys.
func (s *Store) DeleteEntity(ctx context.Context, entity string) error {
	keys := []string{s.prefix + entity}

	iter := s.rdb.Scan(ctx, 0, s.prefix+entity+"/*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cache keys for %s: %w", entity, err)
	}

	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete cache keys for %s: %w", entity, err)
	}
	return nil
}
