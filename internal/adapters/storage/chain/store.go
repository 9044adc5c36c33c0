package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/witrix-cli/internal/adapters/storage/file"
	passstore "github.com/bnema/witrix-cli/internal/adapters/storage/pass"
	"github.com/bnema/witrix-cli/internal/domain"
	"github.com/bnema/witrix-cli/internal/ports"
)

// Store reads and writes the primary backend and falls back to the
// secondary one when the primary fails or does not hold the key.
type Store struct {
	primary  ports.KeyValueStore
	fallback ports.KeyValueStore
}

var _ ports.KeyValueStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary store is nil")
	errNilFallbackStore = errors.New("fallback store is nil")
)

func NewStore(primary ports.KeyValueStore, fallback ports.KeyValueStore) *Store {
	store, err := NewStoreChecked(primary, fallback)
	if err != nil {
		panic(err)
	}

	return store
}

func NewStoreChecked(primary ports.KeyValueStore, fallback ports.KeyValueStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback}, nil
}

func NewPassFirstWithFileFallback(passPrefix string, fileRoot string) (*Store, error) {
	return NewStoreChecked(passstore.NewStore(passPrefix), filestore.NewStore(fileRoot))
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	err := s.primary.Put(ctx, key, value)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Put(ctx, key, value)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary backend put failed: %w; fallback backend put failed: %w", err, fallbackErr)
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.primary.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if shouldSkipFallback(err) {
		return "", err
	}

	fallbackValue, fallbackErr := s.fallback.Get(ctx, key)
	if fallbackErr == nil {
		return fallbackValue, nil
	}

	if errors.Is(fallbackErr, domain.ErrKeyNotFound) {
		if isAbsent(err) {
			return "", fmt.Errorf("key %q: %w", key, domain.ErrKeyNotFound)
		}
		// The primary may hold the key but could not be read.
		return "", fmt.Errorf("primary backend get failed: %w", err)
	}
	if isAbsent(err) {
		return "", fmt.Errorf("fallback backend get failed: %w", fallbackErr)
	}

	return "", fmt.Errorf("primary backend get failed: %v; fallback backend get failed: %w", err, fallbackErr)
}

// Delete removes the key from both backends; a value written to the
// fallback while the primary was unavailable must not resurface.
func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.primary.Delete(ctx, key)
	if err != nil && shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Delete(ctx, key)

	var errs []error
	if err != nil && !errors.Is(err, passstore.ErrUnavailable) {
		errs = append(errs, fmt.Errorf("primary backend delete failed: %w", err))
	}
	if fallbackErr != nil {
		errs = append(errs, fmt.Errorf("fallback backend delete failed: %w", fallbackErr))
	}

	return errors.Join(errs...)
}

func isAbsent(err error) bool {
	return errors.Is(err, domain.ErrKeyNotFound) || errors.Is(err, passstore.ErrUnavailable)
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
