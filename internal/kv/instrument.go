package kv

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"alumni-portal/internal/metrics"
)

type instrumented struct {
	next    Store
	backend string
}

// Instrument wraps a store so every call is counted and timed in Prometheus.
func Instrument(next Store, backend string) Store {
	return &instrumented{next: next, backend: backend}
}

func (s *instrumented) Get(ctx context.Context, key string) (json.RawMessage, error) {
	start := time.Now()
	v, err := s.next.Get(ctx, key)
	s.observe("get", start, err)
	return v, err
}

func (s *instrumented) Set(ctx context.Context, key string, value json.RawMessage) error {
	start := time.Now()
	err := s.next.Set(ctx, key, value)
	s.observe("set", start, err)
	return err
}

func (s *instrumented) GetByPrefix(ctx context.Context, prefix string) ([]Entry, error) {
	start := time.Now()
	entries, err := s.next.GetByPrefix(ctx, prefix)
	s.observe("get_by_prefix", start, err)
	if err == nil {
		metrics.KVPrefixScanSize.WithLabelValues(prefix).Observe(float64(len(entries)))
	}
	return entries, err
}

func (s *instrumented) Update(ctx context.Context, key string, fn UpdateFunc) (json.RawMessage, error) {
	start := time.Now()
	v, err := s.next.Update(ctx, key, fn)
	s.observe("update", start, err)
	return v, err
}

func (s *instrumented) Close(ctx context.Context) error {
	return s.next.Close(ctx)
}

func (s *instrumented) observe(op string, start time.Time, err error) {
	metrics.KVDuration.WithLabelValues(s.backend, op).Observe(time.Since(start).Seconds())
	metrics.KVOperations.WithLabelValues(s.backend, op, outcome(err)).Inc()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrConflict):
		return "conflict"
	default:
		return "error"
	}
}

func observeRetry(backend string) {
	metrics.CASRetries.WithLabelValues(backend).Inc()
}
