// Package config handles TOML-based configuration loading, validation and
// saving. The file is parsed as data only; settings changed from the CLI
// are written back atomically.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds all application configuration.
type Config struct {
	HomePage  string `toml:"home_page"`
	Player    string `toml:"player"`
	MagicURLs bool   `toml:"magic_urls"`
	OnTop     bool   `toml:"on_top"`
	Debug     bool   `toml:"debug"`
}

// Players lists the accepted values for Config.Player.
var Players = []string{"mpv", "vlc", "iina", "celluloid", "browser"}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		HomePage:  "https://www.google.com",
		Player:    "mpv",
		MagicURLs: true,
		OnTop:     true,
		Debug:     false,
	}
}

// configDir returns the XDG-compliant config directory.
func configDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "helium"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", "helium"), nil
}

// ConfigPath returns the path to the config file.
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file and merges with defaults.
// If the config file doesn't exist, defaults are returned.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Save validates c and writes it to the config file.
// Uses atomic write (write to temp file, then rename) to prevent corruption.
func (c *Config) Save() error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, "config-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.Write(buf.Bytes()); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing config: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming config file: %w", err)
	}

	return nil
}

// Validate checks config values are within acceptable bounds.
func (c *Config) Validate() error {
	valid := false
	for _, p := range Players {
		if strings.EqualFold(c.Player, p) {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unsupported player %q (valid: %s)", c.Player, strings.Join(Players, ", "))
	}

	if strings.TrimSpace(c.HomePage) == "" {
		return fmt.Errorf("home page cannot be empty")
	}

	return nil
}
