package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/witrix-cli/internal/domain"
	"github.com/bnema/witrix-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	RoutesPathKey    = "routes.path"
	routesFileMode   = 0o600
	routesDirMode    = 0o700
	routesConfigDir  = ".witrix"
	routesConfigFile = "routes.toml"
	tempFilePattern  = ".routes-*.toml.tmp"
)

// Repository stores the route table. A missing file yields the built-in
// table.
type Repository struct {
	routesPath string
	mu         *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.RouteRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	cfg.SetDefault(RoutesPathKey, filepath.Join(homeDir, routesConfigDir, routesConfigFile))

	routesPath := cfg.GetString(RoutesPathKey)
	if routesPath == "" {
		return nil, errors.New("routes path is empty")
	}
	routesPath, err = normalizeRoutesPath(routesPath)
	if err != nil {
		return nil, err
	}

	return &Repository{routesPath: routesPath, mu: lockForPath(routesPath)}, nil
}

func (r *Repository) Path() string {
	return r.routesPath
}

func (r *Repository) Load(ctx context.Context) (domain.RouteTable, error) {
	if err := ctx.Err(); err != nil {
		return domain.RouteTable{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, found, err := r.readSchema()
	if err != nil {
		return domain.RouteTable{}, err
	}
	if !found {
		return domain.DefaultRouteTable(), nil
	}

	routes := make([]domain.Route, 0, len(file.Routes))
	for _, entry := range file.Routes {
		routes = append(routes, fromSchema(entry))
	}

	table, err := domain.NewRouteTable(routes...)
	if err != nil {
		return domain.RouteTable{}, fmt.Errorf("build route table from %s: %w", r.routesPath, err)
	}

	return table, nil
}

func (r *Repository) Save(ctx context.Context, table domain.RouteTable) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file := fileSchema{Version: currentSchemaVersion}
	for _, route := range table.Routes() {
		file.Routes = append(file.Routes, toSchema(route))
	}

	return r.writeSchema(file)
}

func (r *Repository) readSchema() (fileSchema, bool, error) {
	data, err := os.ReadFile(r.routesPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, false, nil
		}
		return fileSchema{}, false, fmt.Errorf("read routes file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, false, fmt.Errorf("decode routes file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, false, err
	}
	file.applyDefaults()

	return file, true, nil
}

func normalizeRoutesPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve routes path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.routesPath), routesDirMode); err != nil {
		return fmt.Errorf("create routes directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode routes file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.routesPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp routes file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp routes file: %w", err)
	}
	if err := tempFile.Chmod(routesFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp routes file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp routes file: %w", err)
	}
	if err := os.Rename(tempName, r.routesPath); err != nil {
		return fmt.Errorf("replace routes file: %w", err)
	}
	cleanup = false

	return nil
}
