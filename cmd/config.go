package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	tomlrepo "github.com/bnema/witrix-cli/internal/adapters/repo/toml"
)

const (
	keyAPIBaseURL     = "api.base_url"
	keyAPITimeout     = "api.timeout"
	keyAPIRateLimit   = "api.rate_limit"
	keyStorageBackend = "storage.backend"
	keyStoragePath    = "storage.path"
	keyLogLevel       = "log.level"
	keyLogFormat      = "log.format"
	keyUIToasts       = "ui.toasts"
	keyUIToastTTL     = "ui.toast_duration"

	configDirName  = ".witrix"
	configFileName = "config.toml"
	envPrefix      = "WX"

	flagConfig  = "config"
	flagAPIURL  = "api-url"
	flagVerbose = "verbose"
)

const (
	backendChain  = "chain"
	backendFile   = "file"
	backendPass   = "pass"
	backendMemory = "memory"
)

func setConfigDefaults(cfg *viper.Viper, homeDir string) {
	base := filepath.Join(homeDir, configDirName)

	cfg.SetDefault(keyAPIBaseURL, "http://127.0.0.1:8000")
	cfg.SetDefault(keyAPITimeout, 15*time.Second)
	cfg.SetDefault(keyAPIRateLimit, 10.0)
	cfg.SetDefault(keyStorageBackend, backendChain)
	cfg.SetDefault(keyStoragePath, filepath.Join(base, "storage"))
	cfg.SetDefault(tomlrepo.RoutesPathKey, filepath.Join(base, "routes.toml"))
	cfg.SetDefault(keyLogLevel, "warn")
	cfg.SetDefault(keyLogFormat, "text")
	cfg.SetDefault(keyUIToasts, true)
	cfg.SetDefault(keyUIToastTTL, 1500*time.Millisecond)
}

// loadConfig layers flags over WX_* environment variables over the config
// file over the defaults.
func loadConfig(cmd *cobra.Command) (*viper.Viper, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg := viper.New()
	setConfigDefaults(cfg, homeDir)

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	configPath := filepath.Join(homeDir, configDirName, configFileName)
	if flag := cmd.Flags().Lookup(flagConfig); flag != nil && flag.Changed {
		configPath = expandHome(flag.Value.String(), homeDir)
	}
	cfg.SetConfigFile(configPath)
	cfg.SetConfigType("toml")
	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", configPath, err)
		}
	}

	if flag := cmd.Flags().Lookup(flagAPIURL); flag != nil {
		if err := cfg.BindPFlag(keyAPIBaseURL, flag); err != nil {
			return nil, fmt.Errorf("bind --%s: %w", flagAPIURL, err)
		}
	}
	if verbose, _ := cmd.Flags().GetBool(flagVerbose); verbose {
		cfg.Set(keyLogLevel, "debug")
	}

	for _, key := range []string{keyStoragePath, tomlrepo.RoutesPathKey} {
		cfg.Set(key, expandHome(cfg.GetString(key), homeDir))
	}

	return cfg, nil
}

func expandHome(path, homeDir string) string {
	if path == "~" {
		return homeDir
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:])
	}

	return path
}
