package kv

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
)

// MemoryStore keeps everything in a map. Used by tests and by the local demo
// (STORE_DRIVER=memory); data is lost on restart.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(v), nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value json.RawMessage) error {
	s.mu.Lock()
	s.data[key] = clone(value)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) GetByPrefix(_ context.Context, prefix string) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]Entry, 0)
	for k, v := range s.data {
		if strings.HasPrefix(k, prefix) {
			entries = append(entries, Entry{Key: k, Value: clone(v)})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries, nil
}

// Update holds the write lock while fn runs, so fn must not call back into
// the store.
func (s *MemoryStore) Update(_ context.Context, key string, fn UpdateFunc) (json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	next, err := fn(clone(cur))
	if err != nil {
		return nil, err
	}
	s.data[key] = clone(next)
	return clone(next), nil
}

func (s *MemoryStore) Close(context.Context) error { return nil }

func clone(b []byte) json.RawMessage {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
