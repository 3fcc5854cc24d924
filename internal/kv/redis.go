package kv

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"
)

const (
	scanBatch = 500
	mgetBatch = 200
)

type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	b, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return json.RawMessage(b), nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value json.RawMessage) error {
	return s.rdb.Set(ctx, key, []byte(value), 0).Err()
}

func (s *RedisStore) GetByPrefix(ctx context.Context, prefix string) ([]Entry, error) {
	// SCAN may return a key more than once.
	seen := make(map[string]struct{})
	iter := s.rdb.Scan(ctx, 0, escapeGlob(prefix)+"*", scanBatch).Iterator()
	for iter.Next(ctx) {
		seen[iter.Val()] = struct{}{}
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]Entry, 0, len(keys))
	for start := 0; start < len(keys); start += mgetBatch {
		end := min(start+mgetBatch, len(keys))
		vals, err := s.rdb.MGet(ctx, keys[start:end]...).Result()
		if err != nil {
			return nil, err
		}
		for i, v := range vals {
			str, ok := v.(string)
			if !ok {
				// deleted between SCAN and MGET
				continue
			}
			entries = append(entries, Entry{Key: keys[start+i], Value: json.RawMessage(str)})
		}
	}
	return entries, nil
}

// Update uses WATCH/MULTI optimistic locking: the transaction is discarded
// when the key changes after WATCH, and the read-modify-write is retried.
func (s *RedisStore) Update(ctx context.Context, key string, fn UpdateFunc) (json.RawMessage, error) {
	for attempt := 0; attempt < MaxUpdateRetries; attempt++ {
		var out json.RawMessage
		err := s.rdb.Watch(ctx, func(tx *redis.Tx) error {
			cur, err := tx.Get(ctx, key).Bytes()
			if errors.Is(err, redis.Nil) {
				return ErrNotFound
			}
			if err != nil {
				return err
			}

			next, err := fn(json.RawMessage(cur))
			if err != nil {
				return err
			}

			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, key, []byte(next), 0)
				return nil
			})
			if err == nil {
				out = next
			}
			return err
		}, key)

		if err == nil {
			return out, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			observeRetry("redis")
			continue
		}
		return nil, err
	}
	return nil, ErrConflict
}

func (s *RedisStore) Close(context.Context) error {
	return s.rdb.Close()
}

func escapeGlob(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
