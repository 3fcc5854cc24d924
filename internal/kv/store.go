// Package kv is the only persistence layer of the portal: a flat key/value
// namespace addressed by "<kind>:<id>" keys and queried by exact key or by
// key prefix. There are no secondary indexes; "tables" are emulated with a
// prefix scan.
package kv

import (
	"context"
	"encoding/json"
	"errors"
)

var (
	ErrNotFound = errors.New("kv: key not found")
	ErrConflict = errors.New("kv: too many concurrent updates")
)

// MaxUpdateRetries bounds the compare-and-swap loop of Update.
const MaxUpdateRetries = 16

type Entry struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

// UpdateFunc receives the current value and returns the value to store.
// Returning an error aborts the update and nothing is written. It may run
// more than once when another writer wins the race, so it must not have
// side effects outside of its return value.
type UpdateFunc func(current json.RawMessage) (json.RawMessage, error)

type Store interface {
	// Get returns ErrNotFound when the key is absent.
	Get(ctx context.Context, key string) (json.RawMessage, error)
	// Set overwrites the whole value.
	Set(ctx context.Context, key string, value json.RawMessage) error
	// GetByPrefix returns every entry whose key starts with prefix, ordered by key.
	GetByPrefix(ctx context.Context, prefix string) ([]Entry, error)
	// Update atomically replaces the value of an existing key with fn(current).
	Update(ctx context.Context, key string, fn UpdateFunc) (json.RawMessage, error)
	Close(ctx context.Context) error
}

func Key(kind, id string) string { return kind + ":" + id }

func Prefix(kind string) string { return kind + ":" }
