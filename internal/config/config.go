package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Profile names one Aleph instance the dashboard can point at. Index is the
// profile's position in the configured list and identifies it everywhere else
// in the program.
type Profile struct {
	Name   string `toml:"name"`
	URL    string `toml:"url"`
	APIKey string `toml:"api_key"`
	Index  int    `toml:"-"`
}

// Config captures the dashboard configuration: the ordered profile list, the
// fetch cadence, and which profile is current at startup.
type Config struct {
	Profiles      []Profile
	FetchInterval int // seconds between backend fetches
	Current       int // index into Profiles
}

// ErrNoProfiles reports a configuration with an empty profile list. It is
// fatal at startup; the dashboard cannot run without a backend to watch.
var ErrNoProfiles = errors.New("no profiles configured")

const (
	defaultConfigPath    = "~/.config/alephtop/config.toml"
	defaultFetchInterval = 10
)

// DefaultPath returns the default configuration file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Load locates and parses the configuration file.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config %s: %w", resolved, ErrNoProfiles)
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(bytes)
}

// Parse decodes and validates a TOML configuration document.
func Parse(data []byte) (Config, error) {
	var raw struct {
		FetchInterval  int       `toml:"fetch_interval"`
		DefaultProfile string    `toml:"default_profile"`
		Profiles       []Profile `toml:"profiles"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if len(raw.Profiles) == 0 {
		return Config{}, ErrNoProfiles
	}

	cfg := Config{
		Profiles:      raw.Profiles,
		FetchInterval: raw.FetchInterval,
	}
	if cfg.FetchInterval <= 0 {
		cfg.FetchInterval = defaultFetchInterval
	}

	for i := range cfg.Profiles {
		p := &cfg.Profiles[i]
		p.Index = i
		p.Name = strings.TrimSpace(p.Name)
		p.URL = strings.TrimSpace(p.URL)
		if p.Name == "" {
			return Config{}, fmt.Errorf("profile %d: name is required", i)
		}
		if p.URL == "" {
			return Config{}, fmt.Errorf("profile %q: url is required", p.Name)
		}
	}

	if name := strings.TrimSpace(raw.DefaultProfile); name != "" {
		idx := -1
		for i, p := range cfg.Profiles {
			if p.Name == name {
				idx = i
				break
			}
		}
		if idx < 0 {
			return Config{}, fmt.Errorf("default_profile %q does not match any profile", name)
		}
		cfg.Current = idx
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
