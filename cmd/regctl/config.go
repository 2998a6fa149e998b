package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

// config is the optional regctl config file, TOML at
// $XDG_CONFIG_HOME/regctl/config.toml unless --config points elsewhere.
type config struct {
	// Prefix is the default Wine prefix directory.
	Prefix string `toml:"prefix"`
	// CacheTTLSeconds overrides the registry cache TTL.
	CacheTTLSeconds int `toml:"cache_ttl_seconds"`
}

// cacheTTL returns the configured cache TTL, or zero to accept the default.
func cacheTTL() time.Duration {
	cfg, err := loadConfig()
	if err != nil {
		return 0
	}
	return time.Duration(cfg.CacheTTLSeconds) * time.Second
}

// loadConfig reads the config file. A missing file is not an error; a
// present but malformed file is.
func loadConfig() (config, error) {
	path := configFlag
	if path == "" {
		path = filepath.Join(xdg.ConfigHome, "regctl", "config.toml")
	}

	var cfg config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if configFlag != "" {
			return cfg, fmt.Errorf("config file not found: %s", path)
		}
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	printVerbose("Loaded config: %s\n", path)
	return cfg, nil
}

// resolvePrefix picks the target prefix: --prefix beats the config file,
// which beats $WINEPREFIX, which beats ~/.wine.
func resolvePrefix() (string, error) {
	if prefixFlag != "" {
		return prefixFlag, nil
	}
	cfg, err := loadConfig()
	if err != nil {
		return "", err
	}
	if cfg.Prefix != "" {
		return cfg.Prefix, nil
	}
	if env := os.Getenv("WINEPREFIX"); env != "" {
		return env, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".wine"), nil
}
