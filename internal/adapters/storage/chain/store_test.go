package chain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	passstore "github.com/bnema/witrix-cli/internal/adapters/storage/pass"
	"github.com/bnema/witrix-cli/internal/domain"
	portmocks "github.com/bnema/witrix-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const key = "witrix_token"

func newTestChain(t *testing.T) (*Store, *portmocks.MockKeyValueStore, *portmocks.MockKeyValueStore) {
	t.Helper()

	primary := portmocks.NewMockKeyValueStore(t)
	fallback := portmocks.NewMockKeyValueStore(t)
	return NewStore(primary, fallback), primary, fallback
}

func TestStoreGetUsesPrimaryWhenItSucceeds(t *testing.T) {
	t.Parallel()

	store, primary, _ := newTestChain(t)
	primary.EXPECT().Get(mock.Anything, key).Return("from-pass", nil).Once()

	value, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, "from-pass", value)
}

func TestStoreGetFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestChain(t)
	primary.EXPECT().Get(mock.Anything, key).Return("", passstore.ErrUnavailable).Once()
	fallback.EXPECT().Get(mock.Anything, key).Return("from-file", nil).Once()

	value, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, "from-file", value)
}

func TestStoreGetFallsThroughNotFound(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestChain(t)
	primary.EXPECT().Get(mock.Anything, key).Return("", fmt.Errorf("pass: %w", domain.ErrKeyNotFound)).Once()
	fallback.EXPECT().Get(mock.Anything, key).Return("from-file", nil).Once()

	value, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, "from-file", value)
}

func TestStoreGetNotFoundEverywhere(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestChain(t)
	primary.EXPECT().Get(mock.Anything, key).Return("", passstore.ErrUnavailable).Once()
	fallback.EXPECT().Get(mock.Anything, key).Return("", domain.ErrKeyNotFound).Once()

	_, err := store.Get(context.Background(), key)
	require.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestStoreGetKeepsPrimaryFailureWhenFallbackIsEmpty(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestChain(t)
	primary.EXPECT().Get(mock.Anything, key).Return("", errors.New("gpg failed")).Once()
	fallback.EXPECT().Get(mock.Anything, key).Return("", domain.ErrKeyNotFound).Once()

	_, err := store.Get(context.Background(), key)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrKeyNotFound)
	assert.ErrorContains(t, err, "gpg failed")
}

func TestStoreGetReturnsCombinedErrorWhenBothBackendsFail(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestChain(t)
	primary.EXPECT().Get(mock.Anything, key).Return("", errors.New("pass failed")).Once()
	fallback.EXPECT().Get(mock.Anything, key).Return("", errors.New("file failed")).Once()

	_, err := store.Get(context.Background(), key)
	require.Error(t, err)
	assert.ErrorContains(t, err, "primary backend")
	assert.ErrorContains(t, err, "fallback backend")
	assert.ErrorContains(t, err, "pass failed")
	assert.ErrorContains(t, err, "file failed")
}

func TestStorePutFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestChain(t)
	primary.EXPECT().Put(mock.Anything, key, "tok").Return(passstore.ErrUnavailable).Once()
	fallback.EXPECT().Put(mock.Anything, key, "tok").Return(nil).Once()

	require.NoError(t, store.Put(context.Background(), key, "tok"))
}

func TestStorePutDoesNotCallFallbackWhenPrimarySucceeds(t *testing.T) {
	t.Parallel()

	store, primary, _ := newTestChain(t)
	primary.EXPECT().Put(mock.Anything, key, "tok").Return(nil).Once()

	require.NoError(t, store.Put(context.Background(), key, "tok"))
}

func TestStoreDeleteClearsBothBackends(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestChain(t)
	primary.EXPECT().Delete(mock.Anything, key).Return(nil).Once()
	fallback.EXPECT().Delete(mock.Anything, key).Return(nil).Once()

	require.NoError(t, store.Delete(context.Background(), key))
}

func TestStoreDeleteToleratesUnavailablePrimary(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestChain(t)
	primary.EXPECT().Delete(mock.Anything, key).Return(passstore.ErrUnavailable).Once()
	fallback.EXPECT().Delete(mock.Anything, key).Return(nil).Once()

	require.NoError(t, store.Delete(context.Background(), key))
}

func TestStoreDeleteReportsFailures(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newTestChain(t)
	primary.EXPECT().Delete(mock.Anything, key).Return(errors.New("gpg locked")).Once()
	fallback.EXPECT().Delete(mock.Anything, key).Return(nil).Once()

	err := store.Delete(context.Background(), key)
	require.ErrorContains(t, err, "primary backend delete failed: gpg locked")
}

func TestStoreGetDoesNotFallbackOnCanceledContextError(t *testing.T) {
	t.Parallel()

	store, primary, _ := newTestChain(t)
	primary.EXPECT().Get(mock.Anything, key).Return("", context.Canceled).Once()

	_, err := store.Get(context.Background(), key)
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewStoreCheckedRejectsNilBackends(t *testing.T) {
	t.Parallel()

	_, err := NewStoreChecked(nil, portmocks.NewMockKeyValueStore(t))
	require.ErrorIs(t, err, errNilPrimaryStore)

	_, err = NewStoreChecked(portmocks.NewMockKeyValueStore(t), nil)
	require.ErrorIs(t, err, errNilFallbackStore)
}
