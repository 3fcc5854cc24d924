package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"alumni-portal/internal/kv"
)

// Repository is typed access to every record of one kind.
type Repository[T any] struct {
	store kv.Store
	kind  string
}

func New[T any](store kv.Store, kind string) *Repository[T] {
	return &Repository[T]{store: store, kind: kind}
}

func (r *Repository[T]) Kind() string { return r.kind }

func (r *Repository[T]) Get(ctx context.Context, id string) (*T, error) {
	raw, err := r.store.Get(ctx, kv.Key(r.kind, id))
	if err != nil {
		return nil, err
	}
	var rec T
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Exists reports whether id is stored, without decoding the value.
func (r *Repository[T]) Exists(ctx context.Context, id string) (bool, error) {
	_, err := r.store.Get(ctx, kv.Key(r.kind, id))
	if errors.Is(err, kv.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (r *Repository[T]) Put(ctx context.Context, id string, rec *T) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, kv.Key(r.kind, id), raw)
}

// List decodes every record of the kind in key order. Entries that fail to
// decode are logged and left out.
func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	entries, err := r.store.GetByPrefix(ctx, kv.Prefix(r.kind))
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(entries))
	for _, e := range entries {
		var rec T
		if err := json.Unmarshal(e.Value, &rec); err != nil {
			log.Printf("repository: skip %s: %v", e.Key, err)
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *Repository[T]) Count(ctx context.Context) (int, error) {
	entries, err := r.store.GetByPrefix(ctx, kv.Prefix(r.kind))
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}

// Update applies fn to the stored record atomically. fn may be called more
// than once if another writer changes the record concurrently; an error from
// fn aborts without writing and is returned as is.
func (r *Repository[T]) Update(ctx context.Context, id string, fn func(*T) error) (*T, error) {
	var out T
	_, err := r.store.Update(ctx, kv.Key(r.kind, id), func(current json.RawMessage) (json.RawMessage, error) {
		var rec T
		if err := json.Unmarshal(current, &rec); err != nil {
			return nil, err
		}
		if err := fn(&rec); err != nil {
			return nil, err
		}
		out = rec
		return json.Marshal(&rec)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
