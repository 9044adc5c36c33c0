package pass

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/witrix-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEntry = "witrix/http_127.0.0.1_8000/witrix_token"

func newTestStore(run runFunc) *Store {
	store := NewStore("witrix/http_127.0.0.1_8000/")
	store.run = run
	return store
}

func TestStorePutUsesPassInsert(t *testing.T) {
	t.Parallel()

	called := false
	store := newTestStore(func(ctx context.Context, input string, args ...string) (string, string, error) {
		called = true
		assert.Equal(t, []string{"insert", "-m", "-f", testEntry}, args)
		assert.Equal(t, "tok\n", input)
		return "", "", nil
	})

	require.NoError(t, store.Put(context.Background(), "witrix_token", "tok"))
	assert.True(t, called)
}

func TestStoreGetUsesPassShowAndTrimsTrailingNewline(t *testing.T) {
	t.Parallel()

	store := newTestStore(func(ctx context.Context, input string, args ...string) (string, string, error) {
		assert.Equal(t, []string{"show", testEntry}, args)
		assert.Empty(t, input)
		return "tok\n", "", nil
	})

	value, err := store.Get(context.Background(), "witrix_token")
	require.NoError(t, err)
	assert.Equal(t, "tok", value)
}

func TestStoreGetMapsMissingEntryToNotFound(t *testing.T) {
	t.Parallel()

	store := newTestStore(func(ctx context.Context, input string, args ...string) (string, string, error) {
		return "", "Error: " + testEntry + " is not in the password store.", errors.New("exit status 1")
	})

	_, err := store.Get(context.Background(), "witrix_token")
	require.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestStoreGetReturnsClearError(t *testing.T) {
	t.Parallel()

	store := newTestStore(func(ctx context.Context, input string, args ...string) (string, string, error) {
		return "", "gpg: decryption failed", errors.New("exit status 2")
	})

	_, err := store.Get(context.Background(), "witrix_token")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrKeyNotFound)
	assert.ErrorContains(t, err, "pass get")
	assert.ErrorContains(t, err, testEntry)
	assert.ErrorContains(t, err, "gpg: decryption failed")
}

func TestStoreDeleteIgnoresMissingEntry(t *testing.T) {
	t.Parallel()

	store := newTestStore(func(ctx context.Context, input string, args ...string) (string, string, error) {
		assert.Equal(t, []string{"rm", "-f", testEntry}, args)
		return "", "Error: " + testEntry + " is not in the password store.", errors.New("exit status 1")
	})

	require.NoError(t, store.Delete(context.Background(), "witrix_token"))
}

func TestStoreRejectsNestedKeys(t *testing.T) {
	t.Parallel()

	store := newTestStore(func(ctx context.Context, input string, args ...string) (string, string, error) {
		t.Fatal("pass must not run for an invalid key")
		return "", "", nil
	})

	err := store.Put(context.Background(), "../other/witrix_token", "tok")
	require.ErrorContains(t, err, "invalid storage key")
}
