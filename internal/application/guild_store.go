package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/bnema/witrix-cli/internal/domain"
	wxlog "github.com/bnema/witrix-cli/internal/log"
	"github.com/bnema/witrix-cli/internal/ports"
)

// GuildStore holds the guild list and the selected guild. The selection is
// persisted under SelectedGuildKey.
type GuildStore struct {
	api    ports.GuildLister
	store  ports.KeyValueStore
	logger *slog.Logger

	mu       sync.RWMutex
	guilds   []domain.Guild
	selected *domain.GuildID
}

func NewGuildStore(api ports.GuildLister, store ports.KeyValueStore, logger *slog.Logger) *GuildStore {
	return &GuildStore{
		api:    api,
		store:  store,
		logger: wxlog.OrDiscard(logger),
	}
}

// Restore reads the persisted selection. Storage failures leave the
// selection empty.
func (s *GuildStore) Restore(ctx context.Context) {
	raw, err := s.store.Get(ctx, SelectedGuildKey)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			s.logger.Debug("selected guild unreadable", "error", err)
		}
		raw = ""
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = domain.GuildIDPtr(domain.GuildID(strings.TrimSpace(raw)))
}

// LoadGuilds fetches the guild list and reconciles the selection against it.
// A failed fetch leaves an empty list and keeps the selection as is.
func (s *GuildStore) LoadGuilds(ctx context.Context) {
	guilds, err := s.api.ListGuilds(ctx)
	if err != nil {
		s.logger.Debug("guild list unavailable", "error", err)

		s.mu.Lock()
		s.guilds = nil
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	s.guilds = append([]domain.Guild(nil), guilds...)
	previous := s.selected
	s.selected = domain.ReconcileSelection(s.guilds, previous)
	next := s.selected
	s.mu.Unlock()

	if sameGuildID(previous, next) {
		return
	}
	if err := s.persist(ctx, next); err != nil {
		s.logger.Warn("persist reconciled guild selection", "error", err)
	}
}

// SetSelectedGuildID stores id as the selection without validating it
// against the loaded list. nil clears the selection.
func (s *GuildStore) SetSelectedGuildID(ctx context.Context, id *domain.GuildID) error {
	var next *domain.GuildID
	if id != nil {
		next = domain.GuildIDPtr(*id)
	}

	s.mu.Lock()
	s.selected = next
	s.mu.Unlock()

	return s.persist(ctx, next)
}

func (s *GuildStore) SelectedGuildID() *domain.GuildID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selected == nil {
		return nil
	}
	id := *s.selected
	return &id
}

// SelectedGuild is nil until the list is loaded and contains the selection.
func (s *GuildStore) SelectedGuild() *domain.Guild {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selected == nil {
		return nil
	}
	guild, ok := domain.FindGuild(s.guilds, *s.selected)
	if !ok {
		return nil
	}

	return &guild
}

func (s *GuildStore) Guilds() []domain.Guild {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.Guild(nil), s.guilds...)
}

func (s *GuildStore) Context() domain.GuildContext {
	return domain.GuildContext{
		Guilds:          s.Guilds(),
		SelectedGuildID: s.SelectedGuildID(),
	}
}

func (s *GuildStore) persist(ctx context.Context, id *domain.GuildID) error {
	if id == nil {
		if err := s.store.Delete(ctx, SelectedGuildKey); err != nil {
			return fmt.Errorf("delete selected guild: %w", err)
		}
		return nil
	}

	if err := s.store.Put(ctx, SelectedGuildKey, id.String()); err != nil {
		return fmt.Errorf("persist selected guild: %w", err)
	}
	return nil
}

func sameGuildID(a, b *domain.GuildID) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
