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

const sessionExpiredMessage = "session expired, please sign in again"

// SessionStore owns the bearer token and the cached profile. Every mutation
// is mirrored to the key-value store before the call returns.
type SessionStore struct {
	api    ports.AuthAPI
	store  ports.KeyValueStore
	clock  ports.Clock
	logger *slog.Logger

	mu      sync.RWMutex
	token   string
	profile *domain.Profile
	// generation changes whenever the session identity is replaced or
	// cleared; responses started under an older generation are dropped.
	generation uint64
}

var _ ports.TokenSource = (*SessionStore)(nil)

func NewSessionStore(api ports.AuthAPI, store ports.KeyValueStore, clock ports.Clock, logger *slog.Logger) *SessionStore {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &SessionStore{
		api:    api,
		store:  store,
		clock:  clock,
		logger: wxlog.OrDiscard(logger),
	}
}

// Initialize restores the session from storage without touching the network.
// An expired or unreadable profile cache entry is deleted.
func (s *SessionStore) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.profile = nil

	token, err := s.store.Get(ctx, TokenKey)
	if err != nil && !errors.Is(err, domain.ErrKeyNotFound) {
		return fmt.Errorf("read session token: %w", err)
	}
	token = strings.TrimSpace(token)
	if token == "" {
		if err := s.store.Delete(ctx, ProfileCacheKey); err != nil {
			return fmt.Errorf("delete orphaned profile cache: %w", err)
		}
		return nil
	}
	s.token = token

	raw, err := s.store.Get(ctx, ProfileCacheKey)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return nil
		}
		return fmt.Errorf("read profile cache: %w", err)
	}

	profile, err := decodeProfileCache(raw)
	if err != nil {
		s.logger.Debug("discarding unreadable profile cache", "error", err)
		return s.deleteProfileCache(ctx)
	}
	if profile.Expired(s.clock.Now()) {
		s.logger.Debug("discarding expired profile cache", "expires_at", profile.ExpiresAt)
		return s.deleteProfileCache(ctx)
	}

	s.profile = &profile
	return nil
}

// Login exchanges credentials for a token, persists it and loads the profile.
// A rejected exchange leaves the session untouched.
func (s *SessionStore) Login(ctx context.Context, username, password string) error {
	grant, err := s.api.Login(ctx, username, password)
	if err != nil {
		return &domain.AuthError{Message: domain.DisplayMessage(err), Err: err}
	}

	token := strings.TrimSpace(grant.AccessToken)
	if token == "" {
		return &domain.AuthError{Message: "login response did not include an access token"}
	}

	if err := s.setToken(ctx, token); err != nil {
		return err
	}
	s.logger.Info("signed in", "username", username)

	return s.RefreshProfile(ctx)
}

// AdoptToken installs a token obtained elsewhere, e.g. from a Discord
// sign-in in the browser, and loads its profile.
func (s *SessionStore) AdoptToken(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return &domain.AuthError{Message: "token is empty"}
	}

	if err := s.setToken(ctx, token); err != nil {
		return err
	}

	return s.RefreshProfile(ctx)
}

// RefreshProfile reloads the profile for the current token. Any failure ends
// the session.
func (s *SessionStore) RefreshProfile(ctx context.Context) error {
	s.mu.RLock()
	token, generation := s.token, s.generation
	s.mu.RUnlock()

	if token == "" {
		return nil
	}

	profile, err := s.api.GetProfile(ctx, token)
	if err != nil {
		s.logger.Warn("profile refresh failed, clearing session", "error", err)
		if clearErr := s.clearIfGeneration(ctx, generation); clearErr != nil {
			err = errors.Join(err, clearErr)
		}

		message := domain.DisplayMessage(err)
		if errors.Is(err, domain.ErrUnauthorized) {
			message = sessionExpiredMessage
		}
		return &domain.AuthError{Message: message, Err: fmt.Errorf("%w: %w", domain.ErrSessionExpired, err)}
	}

	return s.storeProfile(ctx, generation, profile)
}

// SetDefaultGuild saves the preferred guild server-side. The returned profile
// replaces the local one.
func (s *SessionStore) SetDefaultGuild(ctx context.Context, guildID *domain.GuildID) error {
	s.mu.RLock()
	token, generation := s.token, s.generation
	s.mu.RUnlock()

	if token == "" {
		return &domain.AuthError{Message: "sign in required", Err: domain.ErrNotAuthenticated}
	}

	profile, err := s.api.SetDefaultGuild(ctx, token, guildID)
	if err != nil {
		return &domain.AuthError{Message: domain.DisplayMessage(err), Err: err}
	}

	return s.storeProfile(ctx, generation, profile)
}

// Logout clears the token, the profile cache and the in-memory state.
func (s *SessionStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.clearLocked(ctx)
}

// ExpireSession is Logout triggered by the server rejecting the token.
func (s *SessionStore) ExpireSession(ctx context.Context) error {
	s.logger.Info("session rejected by server, clearing")
	return s.Logout(ctx)
}

func (s *SessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// Session returns a snapshot. An in-memory profile that expired while the
// process was running is reported as absent.
func (s *SessionStore) Session() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session := domain.Session{Token: s.token}
	if profile := s.currentProfileLocked(); profile != nil {
		clone := profile.Clone()
		session.Profile = &clone
	}

	return session
}

func (s *SessionStore) Profile() *domain.Profile {
	return s.Session().Profile
}

func (s *SessionStore) IsAuthenticated() bool {
	return s.Token() != ""
}

func (s *SessionStore) IsDiscordUser() bool {
	profile := s.Profile()
	return profile != nil && profile.IsDiscordUser
}

// HasGuildAdminAccess fails open while no profile is loaded; the server
// enforces the real check.
func (s *SessionStore) HasGuildAdminAccess() bool {
	profile := s.Profile()
	if profile == nil {
		return true
	}

	return profile.HasGuildAdminAccess()
}

func (s *SessionStore) DefaultGuildID() *domain.GuildID {
	profile := s.Profile()
	if profile == nil {
		return nil
	}

	return profile.DefaultGuildID
}

func (s *SessionStore) Username() string {
	profile := s.Profile()
	if profile == nil {
		return ""
	}

	return profile.Username
}

func (s *SessionStore) setToken(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.token {
		s.generation++
		if s.profile != nil {
			s.profile = nil
			if err := s.deleteProfileCache(ctx); err != nil {
				return err
			}
		}
	}

	s.token = token
	if err := s.store.Put(ctx, TokenKey, token); err != nil {
		return fmt.Errorf("persist session token: %w", err)
	}

	return nil
}

func (s *SessionStore) storeProfile(ctx context.Context, generation uint64, profile domain.Profile) error {
	normalized := profile.Normalize()
	normalized.ExpiresAt = s.clock.Now().Add(ProfileCacheTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation != generation || s.token == "" {
		s.logger.Debug("dropping profile response for a replaced session")
		return nil
	}

	s.profile = &normalized

	encoded, err := encodeProfileCache(normalized)
	if err != nil {
		return err
	}
	if err := s.store.Put(ctx, ProfileCacheKey, encoded); err != nil {
		return fmt.Errorf("persist profile cache: %w", err)
	}

	return nil
}

func (s *SessionStore) clearIfGeneration(ctx context.Context, generation uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation != generation {
		return nil
	}

	return s.clearLocked(ctx)
}

func (s *SessionStore) clearLocked(ctx context.Context) error {
	s.generation++
	s.token = ""
	s.profile = nil

	var errs []error
	if err := s.store.Delete(ctx, TokenKey); err != nil {
		errs = append(errs, fmt.Errorf("delete session token: %w", err))
	}
	if err := s.deleteProfileCache(ctx); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (s *SessionStore) deleteProfileCache(ctx context.Context) error {
	if err := s.store.Delete(ctx, ProfileCacheKey); err != nil {
		return fmt.Errorf("delete profile cache: %w", err)
	}

	return nil
}

func (s *SessionStore) currentProfileLocked() *domain.Profile {
	if s.profile == nil {
		return nil
	}
	if s.profile.Expired(s.clock.Now()) {
		return nil
	}

	return s.profile
}
