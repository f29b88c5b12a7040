package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	API     APIConfig     `yaml:"api"`
	Session SessionConfig `yaml:"session"`
	UI      UIConfig      `yaml:"ui"`
	Log     LogConfig     `yaml:"log"`
}

type APIConfig struct {
	BaseURL   string `yaml:"base_url"`
	AssetBase string `yaml:"asset_base"`
	// Divisor for the computed read time: max(1, ceil(chars/divisor))
	// minutes. The backend's own readTime field, when present, wins.
	ReadTimeDivisor int `yaml:"read_time_divisor"`
}

type SessionConfig struct {
	Path string `yaml:"path"`
}

type UIConfig struct {
	ExcerptLength int `yaml:"excerpt_length"`
}

type LogConfig struct {
	Path string `yaml:"path"`
}

// Load reads configuration from file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// Default returns a configuration with every field at its default value,
// used when no config file exists yet.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = "https://hypo-backend-3.onrender.com"
	}
	if cfg.API.AssetBase == "" {
		cfg.API.AssetBase = "https://res.cloudinary.com/dxf2c3jnr/"
	}
	if cfg.API.ReadTimeDivisor == 0 {
		cfg.API.ReadTimeDivisor = 200
	}
	if cfg.UI.ExcerptLength == 0 {
		cfg.UI.ExcerptLength = 100
	}
	if cfg.Session.Path == "" {
		cfg.Session.Path = filepath.Join(configDir(), "session.db")
	} else {
		cfg.Session.Path = expandPath(cfg.Session.Path)
	}
	if cfg.Log.Path == "" {
		cfg.Log.Path = filepath.Join(configDir(), "statereadr.log")
	} else {
		cfg.Log.Path = expandPath(cfg.Log.Path)
	}
}

// Save writes configuration to file
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "statereadr")
}

// DefaultConfigPath returns the default configuration file path
func DefaultConfigPath() string {
	return filepath.Join(configDir(), "config.yaml")
}
