package memory

import (
	"context"
	"testing"

	"github.com/bnema/witrix-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store := New()
	ctx := context.Background()

	_, err := store.Get(ctx, "witrix_token")
	require.ErrorIs(t, err, domain.ErrKeyNotFound)

	require.NoError(t, store.Put(ctx, "witrix_token", "tok"))
	value, err := store.Get(ctx, "witrix_token")
	require.NoError(t, err)
	assert.Equal(t, "tok", value)
	assert.ElementsMatch(t, []string{"witrix_token"}, store.Keys())

	require.NoError(t, store.Delete(ctx, "witrix_token"))
	require.NoError(t, store.Delete(ctx, "witrix_token"))
	_, err = store.Get(ctx, "witrix_token")
	require.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestStoreHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New().Put(ctx, "k", "v")
	require.ErrorIs(t, err, context.Canceled)
}
