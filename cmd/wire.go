package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bnema/witrix-cli/internal/adapters/api/httpapi"
	statusadapter "github.com/bnema/witrix-cli/internal/adapters/render/status"
	tomlrepo "github.com/bnema/witrix-cli/internal/adapters/repo/toml"
	"github.com/bnema/witrix-cli/internal/adapters/storage"
	chainstore "github.com/bnema/witrix-cli/internal/adapters/storage/chain"
	filestore "github.com/bnema/witrix-cli/internal/adapters/storage/file"
	memorystore "github.com/bnema/witrix-cli/internal/adapters/storage/memory"
	passstore "github.com/bnema/witrix-cli/internal/adapters/storage/pass"
	"github.com/bnema/witrix-cli/internal/application"
	"github.com/bnema/witrix-cli/internal/domain"
	wxlog "github.com/bnema/witrix-cli/internal/log"
	"github.com/bnema/witrix-cli/internal/ports"
	"github.com/bnema/witrix-cli/internal/version"
)

const passPrefixRoot = "witrix"

// app is filled in by wire once flags are parsed; commands capture the
// pointer at construction time.
type app struct {
	cfg    *viper.Viper
	logger *slog.Logger
	clock  ports.Clock

	baseURL string
	store   ports.KeyValueStore
	routes  domain.RouteTable

	session       *application.SessionStore
	guilds        *application.GuildStore
	admin         *application.GuildAdminService
	gate          *application.RouteGate
	interceptor   *application.UnauthorizedInterceptor
	notifications *application.NotificationScheduler

	statusRenderer func(statusadapter.Snapshot, statusadapter.RenderOptions) (string, error)
	toasts         toastConfig
	httpClient     *http.Client
	wired          bool
}

type toastConfig struct {
	Enabled  bool
	Duration time.Duration
}

func newApp() *app {
	return &app{
		clock:          ports.SystemClock{},
		statusRenderer: statusadapter.Render,
		httpClient:     &http.Client{},
	}
}

func (a *app) wire(cmd *cobra.Command) error {
	if a.wired {
		return nil
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = wxlog.New(wxlog.Config{
		Level:  cfg.GetString(keyLogLevel),
		Format: wxlog.ParseFormat(cfg.GetString(keyLogFormat)),
		Output: cmd.ErrOrStderr(),
	})
	a.toasts = toastConfig{
		Enabled:  cfg.GetBool(keyUIToasts),
		Duration: cfg.GetDuration(keyUIToastTTL),
	}

	tokens := &sessionRef{}
	client, err := httpapi.New(httpapi.Config{
		BaseURL:   cfg.GetString(keyAPIBaseURL),
		Timeout:   cfg.GetDuration(keyAPITimeout),
		RateLimit: cfg.GetFloat64(keyAPIRateLimit),
		Burst:     httpapi.DefaultBurst,
		UserAgent: version.UserAgent(),
	}, a.httpClient, tokens, a.logger)
	if err != nil {
		return fmt.Errorf("wire api client: %w", err)
	}
	a.baseURL = client.BaseURL()

	store, err := openStore(cfg, a.baseURL)
	if err != nil {
		return err
	}
	a.store = store

	repo, err := tomlrepo.NewRepository(cfg)
	if err != nil {
		return fmt.Errorf("wire route repository: %w", err)
	}
	routes, err := repo.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("load routes: %w", err)
	}
	a.routes = routes

	a.gate = application.NewRouteGate(application.DefaultRouteGateConfig())
	navigator := &cliNavigator{out: cmd.ErrOrStderr}
	a.interceptor = application.NewUnauthorizedInterceptor(tokens, navigator, a.gate.Config().LoginPath, a.logger)

	a.session = application.NewSessionStore(a.interceptor.AuthAPI(client), store, a.clock, a.logger)
	tokens.session = a.session
	a.guilds = application.NewGuildStore(a.interceptor.GuildLister(client), store, a.logger)
	a.admin = application.NewGuildAdminService(a.interceptor.GuildAdminAPI(client), a.guilds, a.logger)
	a.notifications = application.NewNotificationScheduler(a.clock)

	if err := a.session.Initialize(cmd.Context()); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	a.guilds.Restore(cmd.Context())

	a.wired = true
	a.logger.Debug("wired", "api", a.baseURL, "backend", cfg.GetString(keyStorageBackend))
	return nil
}

func (a *app) close() {
	if a.notifications != nil {
		a.notifications.Close()
	}
}

// openStore picks the configured backend, scoped to the API origin.
func openStore(cfg *viper.Viper, baseURL string) (ports.KeyValueStore, error) {
	namespace, err := storage.Namespace(baseURL)
	if err != nil {
		return nil, fmt.Errorf("derive storage namespace: %w", err)
	}
	fileRoot := filepath.Join(cfg.GetString(keyStoragePath), namespace)
	passPrefix := path.Join(passPrefixRoot, namespace)

	switch backend := cfg.GetString(keyStorageBackend); backend {
	case backendChain, "":
		store, err := chainstore.NewPassFirstWithFileFallback(passPrefix, fileRoot)
		if err != nil {
			return nil, fmt.Errorf("wire storage chain: %w", err)
		}
		return store, nil
	case backendFile:
		return filestore.NewStore(fileRoot), nil
	case backendPass:
		return passstore.NewStore(passPrefix), nil
	case backendMemory:
		return memorystore.New(), nil
	default:
		return nil, fmt.Errorf("unsupported storage backend %q (want %s, %s, %s or %s)", backend, backendChain, backendFile, backendPass, backendMemory)
	}
}

// sessionRef breaks the construction cycle between the API client, the
// interceptor and the session store that depends on both.
type sessionRef struct {
	session *application.SessionStore
}

func (r *sessionRef) Token() string {
	if r.session == nil {
		return ""
	}
	return r.session.Token()
}

func (r *sessionRef) ExpireSession(ctx context.Context) error {
	if r.session == nil {
		return nil
	}
	return r.session.ExpireSession(ctx)
}

type cliNavigator struct {
	out func() io.Writer
}

func (n *cliNavigator) Navigate(target string) {
	if target == domain.LoginPath {
		_, _ = fmt.Fprintln(n.out(), "session expired: run `wx login`")
		return
	}
	_, _ = fmt.Fprintf(n.out(), "redirected to %s\n", target)
}
