package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kamusis/switcher/internal/catalog"
)

// DefaultSuffix is the file name suffix of a launchable bundle.
const DefaultSuffix = catalog.DefaultSuffix

// DefaultWatchDebounce is how long the watcher waits for directory churn to
// settle before rebuilding the catalog.
const DefaultWatchDebounce = 500 * time.Millisecond

// Config is the in-memory representation of ~/.switcher/switcher.yaml.
type Config struct {
	Directories   []string      `yaml:"directories"`
	Suffix        string        `yaml:"suffix,omitempty"`
	PriorityApps  []string      `yaml:"priority_apps,omitempty"`
	Excludes      []string      `yaml:"excludes,omitempty"`
	WatchDebounce time.Duration `yaml:"watch_debounce,omitempty"`
	LogLevel      string        `yaml:"log_level,omitempty"`
}

// SwitcherDir returns the absolute path to ~/.switcher/.
func SwitcherDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".switcher"), nil
}

// ConfigPath returns the absolute path to ~/.switcher/switcher.yaml.
func ConfigPath() (string, error) {
	dir, err := SwitcherDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "switcher.yaml"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand ~: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// DefaultConfig returns the Config written on first switcher init.
//
// Directory order matters: earlier directories win when two bundles share a
// name, so /Applications shadows /System/Applications.
func DefaultConfig() *Config {
	return &Config{
		Directories: []string{
			"/Applications",
			"/Applications/Utilities",
			"/System/Applications",
			"/System/Applications/Utilities",
			"~/Applications",
		},
		Suffix:        DefaultSuffix,
		PriorityApps:  catalog.DefaultPriorityApps(),
		WatchDebounce: DefaultWatchDebounce,
		LogLevel:      "warn",
	}
}

// Load reads and parses ~/.switcher/switcher.yaml.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads and parses the config at path, filling unset fields from
// DefaultConfig and applying environment overrides.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing config file yields
// DefaultConfig with environment overrides applied.
func LoadOrDefault() (*Config, error) {
	cfg, err := Load()
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	cfg = DefaultConfig()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save marshals cfg and writes it to ~/.switcher/switcher.yaml.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}

// EffectiveDirectories returns Directories with ~ expanded and blank entries
// removed. Order and duplicates are preserved.
func (c *Config) EffectiveDirectories() ([]string, error) {
	out := make([]string, 0, len(c.Directories))
	for _, d := range c.Directories {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		p, err := ExpandPath(d)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// EffectiveSuffix returns the configured bundle suffix, or DefaultSuffix.
func (c *Config) EffectiveSuffix() string {
	if s := strings.TrimSpace(c.Suffix); s != "" {
		return s
	}
	return DefaultSuffix
}

// EffectiveWatchDebounce returns the configured debounce, or DefaultWatchDebounce.
func (c *Config) EffectiveWatchDebounce() time.Duration {
	if c.WatchDebounce > 0 {
		return c.WatchDebounce
	}
	return DefaultWatchDebounce
}

func (c *Config) applyEnv() error {
	dirs, err := GetConfigValue("SWITCHER_DIRS")
	if err != nil {
		return err
	}
	if dirs != "" {
		c.Directories = filepath.SplitList(dirs)
	}

	suffix, err := GetConfigValue("SWITCHER_SUFFIX")
	if err != nil {
		return err
	}
	if suffix != "" {
		c.Suffix = suffix
	}

	level, err := GetConfigValue("SWITCHER_LOG_LEVEL")
	if err != nil {
		return err
	}
	if level != "" {
		c.LogLevel = level
	}
	return nil
}
