//go:build unit

package kvstore_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bulk-cleanup/internal/infra/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *kvstore.BadgerStore {
	t.Helper()
	store, err := kvstore.Open("", slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestBadgerStore(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		store := newStore(t)
		_, err := store.Get(ctx, "absent")
		assert.ErrorIs(t, err, kvstore.ErrNotFound)
	})

	t.Run("set get delete", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.Set(ctx, "a", []byte("one"), time.Hour))
		require.NoError(t, store.Set(ctx, "b", []byte("two"), 0))

		got, err := store.Get(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, []byte("one"), got)

		require.NoError(t, store.Delete(ctx, "a", "b", "never-set"))
		_, err = store.Get(ctx, "a")
		assert.ErrorIs(t, err, kvstore.ErrNotFound)
		_, err = store.Get(ctx, "b")
		assert.ErrorIs(t, err, kvstore.ErrNotFound)
	})

	t.Run("overwrite", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.Set(ctx, "k", []byte("v1"), 0))
		require.NoError(t, store.Set(ctx, "k", []byte("v2"), 0))

		got, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v2"), got)
	})

	t.Run("cancelled context", func(t *testing.T) {
		store := newStore(t)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		assert.ErrorIs(t, store.Set(cancelled, "k", []byte("v"), 0), context.Canceled)
	})
}
