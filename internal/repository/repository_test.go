package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alumni-portal/internal/kv"
)

type widget struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestRepositoryPutGetList(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	repo := New[widget](store, "widget")

	require.NoError(t, repo.Put(ctx, "b", &widget{ID: "b", Name: "second"}))
	require.NoError(t, repo.Put(ctx, "a", &widget{ID: "a", Name: "first"}))

	got, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "first", got.Name)

	_, err = repo.Get(ctx, "zzz")
	assert.ErrorIs(t, err, kv.ErrNotFound)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].ID)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	ok, err := repo.Exists(ctx, "b")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRepositoryListSkipsUndecodable(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	repo := New[widget](store, "widget")

	require.NoError(t, repo.Put(ctx, "ok", &widget{ID: "ok"}))
	require.NoError(t, store.Set(ctx, kv.Key("widget", "bad"), []byte(`"not an object"`)))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "ok", all[0].ID)
}

func TestRepositoryUpdate(t *testing.T) {
	ctx := context.Background()
	repo := New[widget](kv.NewMemoryStore(), "widget")
	require.NoError(t, repo.Put(ctx, "w", &widget{ID: "w"}))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Update(ctx, "w", func(w *widget) error {
				w.Count++
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := repo.Get(ctx, "w")
	require.NoError(t, err)
	assert.Equal(t, 50, got.Count)

	stop := errors.New("stop")
	_, err = repo.Update(ctx, "w", func(w *widget) error {
		w.Count = 0
		return stop
	})
	assert.ErrorIs(t, err, stop)

	got, _ = repo.Get(ctx, "w")
	assert.Equal(t, 50, got.Count)

	_, err = repo.Update(ctx, "missing", func(*widget) error { return nil })
	assert.ErrorIs(t, err, kv.ErrNotFound)
}
