package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/perch-docs/internal/widget"
	"github.com/rs/zerolog/log"
)

// Config represents the application configuration
type Config struct {
	CatalogPath  string `toml:"catalog_path"`
	EmbedBaseURL string `toml:"embed_base_url"`
	EmbedOrigin  string `toml:"embed_origin"`
	ListenAddr   string `toml:"listen_addr"`
	LogLevel     string `toml:"log_level"`
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		EmbedBaseURL: widget.DefaultBaseURL,
		EmbedOrigin:  widget.DefaultOrigin,
		ListenAddr:   "127.0.0.1:8080",
		LogLevel:     "info",
	}
}

// Renderer returns the widget renderer for the configured host
func (c *Config) Renderer() widget.Renderer {
	return widget.Renderer{BaseURL: c.EmbedBaseURL, Origin: c.EmbedOrigin}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "perch-docs", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults if missing
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	log.Debug().Str("path", configPath).Msg("loaded config")
	return config, nil
}

func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := save(config); err != nil {
		return nil, err
	}

	log.Debug().Str("path", GetConfigFilePath()).Msg("created default config")
	return config, nil
}

// SetCatalogPath records the catalog file used instead of the built-in one.
// An empty path restores the built-in catalog.
func SetCatalogPath(path string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	if path != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("error resolving catalog path: %w", err)
		}
		path = abs
	}
	config.CatalogPath = path

	return save(config)
}

func save(config *Config) error {
	configPath := GetConfigFilePath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error opening config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}
