package kv

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alumni-portal/internal/metrics"
)

func newRedisStore(t *testing.T) Store {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisStore(rdb)
}

var backends = map[string]func(t *testing.T) Store{
	"memory": func(*testing.T) Store { return NewMemoryStore() },
	"redis":  newRedisStore,
}

func TestStoreContract(t *testing.T) {
	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			t.Run("get set", func(t *testing.T) { testGetSet(t, open(t)) })
			t.Run("prefix", func(t *testing.T) { testPrefix(t, open(t)) })
			t.Run("update", func(t *testing.T) { testUpdate(t, open(t)) })
			t.Run("concurrent update", func(t *testing.T) { testConcurrentUpdate(t, open(t)) })
		})
	}
}

func testGetSet(t *testing.T, s Store) {
	ctx := context.Background()

	_, err := s.Get(ctx, Key("user", "missing"))
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, Key("user", "1"), json.RawMessage(`{"name":"a"}`)))
	require.NoError(t, s.Set(ctx, Key("user", "1"), json.RawMessage(`{"name":"b"}`)))

	v, err := s.Get(ctx, Key("user", "1"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"b"}`, string(v))
}

func testPrefix(t *testing.T, s Store) {
	ctx := context.Background()
	for _, k := range []string{"event:b", "event:a", "events:x", "alumni:a", "event:c"} {
		require.NoError(t, s.Set(ctx, k, json.RawMessage(`{}`)))
	}

	entries, err := s.GetByPrefix(ctx, Prefix("event"))
	require.NoError(t, err)
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []string{"event:a", "event:b", "event:c"}, keys)

	entries, err = s.GetByPrefix(ctx, Prefix("nothing"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func testUpdate(t *testing.T, s Store) {
	ctx := context.Background()

	_, err := s.Update(ctx, "counter:missing", func(cur json.RawMessage) (json.RawMessage, error) { return cur, nil })
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "counter:1", json.RawMessage(`1`)))

	boom := errors.New("boom")
	_, err = s.Update(ctx, "counter:1", func(json.RawMessage) (json.RawMessage, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
	v, err := s.Get(ctx, "counter:1")
	require.NoError(t, err)
	assert.Equal(t, "1", string(v))

	out, err := s.Update(ctx, "counter:1", increment)
	require.NoError(t, err)
	assert.Equal(t, "2", string(out))
}

func testConcurrentUpdate(t *testing.T, s Store) {
	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "counter:c", json.RawMessage(`0`)))

	// Each lost race means another writer committed, so fewer writers than
	// MaxUpdateRetries always finish.
	const writers = 10
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Update(ctx, "counter:c", increment); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	v, err := s.Get(ctx, "counter:c")
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(writers), string(v))
}

func increment(cur json.RawMessage) (json.RawMessage, error) {
	n, err := strconv.Atoi(string(cur))
	if err != nil {
		return nil, err
	}
	return json.RawMessage(strconv.Itoa(n + 1)), nil
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	raw := json.RawMessage(`"abc"`)
	require.NoError(t, s.Set(ctx, "k:1", raw))
	raw[1] = 'z'

	v, err := s.Get(ctx, "k:1")
	require.NoError(t, err)
	assert.Equal(t, `"abc"`, string(v))
}

func TestEscapePatterns(t *testing.T) {
	assert.Equal(t, `user:`, escapeGlob("user:"))
	assert.Equal(t, `a\*b\?\[c\]\\`, escapeGlob(`a*b?[c]\`))

	assert.Equal(t, `user:`, escapeLike("user:"))
	assert.Equal(t, `50\%\_off\\`, escapeLike(`50%_off\`))
}

func TestInstrumentCountsOutcomes(t *testing.T) {
	s := Instrument(NewMemoryStore(), "test")
	ctx := context.Background()

	missing := metrics.KVOperations.WithLabelValues("test", "get", "not_found")
	ok := metrics.KVOperations.WithLabelValues("test", "set", "ok")
	beforeMissing, beforeOK := testutil.ToFloat64(missing), testutil.ToFloat64(ok)

	_, err := s.Get(ctx, "k:none")
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, s.Set(ctx, "k:1", json.RawMessage(`1`)))

	assert.Equal(t, beforeMissing+1, testutil.ToFloat64(missing))
	assert.Equal(t, beforeOK+1, testutil.ToFloat64(ok))
	assert.Equal(t, "conflict", outcome(ErrConflict))
}
