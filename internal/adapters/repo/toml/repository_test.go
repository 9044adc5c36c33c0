package toml

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bnema/witrix-cli/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, routesPath string) *Repository {
	t.Helper()

	config := viper.New()
	config.Set(RoutesPathKey, routesPath)

	repo, err := NewRepository(config)
	require.NoError(t, err)
	return repo
}

func TestRepositoryMissingFileYieldsDefaultTable(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "missing", "routes.toml"))

	table, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultRouteTable().Routes(), table.Routes())
}

func TestRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	routesPath := filepath.Join(t.TempDir(), "routes.toml")
	repo := newTestRepository(t, routesPath)

	table, err := domain.NewRouteTable(
		domain.Route{Path: "/login", Name: "login", Meta: domain.RouteMeta{GuestOnly: true}},
		domain.Route{Path: "/dashboard", Name: "dashboard", Title: "Home", Meta: domain.RouteMeta{RequiresAuth: true}},
		domain.Route{Path: "/dashboard/levels", Name: "levels", Meta: domain.RouteMeta{GuildAdmin: true}},
	)
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), table))

	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, table.Routes(), loaded.Routes())

	data, err := os.ReadFile(routesPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")

	info, err := os.Stat(routesPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(routesFileMode), info.Mode().Perm())
}

func TestRepositoryLoadsHandWrittenFile(t *testing.T) {
	t.Parallel()

	routesPath := filepath.Join(t.TempDir(), "routes.toml")
	require.NoError(t, os.WriteFile(routesPath, []byte(strings.Join([]string{
		"[[routes]]",
		`path = "/dashboard"`,
		"requires_auth = true",
		"",
		"[[routes]]",
		`path = "/dashboard/servers/"`,
		"guild_admin = true",
		"",
	}, "\n")), 0o600))

	table, err := newTestRepository(t, routesPath).Load(context.Background())
	require.NoError(t, err)

	_, meta := table.Match("/dashboard/servers")
	assert.Equal(t, domain.RouteMeta{RequiresAuth: true, GuildAdmin: true}, meta)
}

func TestRepositoryRejectsDuplicateRoutes(t *testing.T) {
	t.Parallel()

	routesPath := filepath.Join(t.TempDir(), "routes.toml")
	require.NoError(t, os.WriteFile(routesPath, []byte("[[routes]]\npath = \"/a\"\n\n[[routes]]\npath = \"/a/\"\n"), 0o600))

	_, err := newTestRepository(t, routesPath).Load(context.Background())
	require.ErrorContains(t, err, "duplicate route")
}

func TestRepositoryMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	routesPath := filepath.Join(t.TempDir(), "routes.toml")
	require.NoError(t, os.WriteFile(routesPath, []byte("routes = ["), 0o600))

	_, err := newTestRepository(t, routesPath).Load(context.Background())
	require.ErrorContains(t, err, "decode routes file")
}

func TestRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	routesPath := filepath.Join(t.TempDir(), "routes.toml")
	require.NoError(t, os.WriteFile(routesPath, []byte("version = 999\n"), 0o600))

	_, err := newTestRepository(t, routesPath).Load(context.Background())
	require.ErrorContains(t, err, "unsupported routes schema version")
}

func TestRepositoryDefaultPathUnderHome(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	repo, err := NewRepository(viper.New())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(homeDir, ".witrix", "routes.toml"), repo.Path())
}

func TestRepositorySaveCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	routesPath := filepath.Join(t.TempDir(), "routes.toml")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newTestRepository(t, routesPath).Save(ctx, domain.DefaultRouteTable())
	require.ErrorIs(t, err, context.Canceled)
	_, statErr := os.Stat(routesPath)
	assert.True(t, os.IsNotExist(statErr))
}
