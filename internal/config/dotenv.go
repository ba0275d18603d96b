package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DotEnvPath returns the absolute path to switcher's dotenv file (~/.switcher/.env).
func DotEnvPath() (string, error) {
	dir, err := SwitcherDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".env"), nil
}

// LoadDotEnv reads ~/.switcher/.env and returns key/value pairs.
//
// Parsing rules:
// - Lines starting with '#' are ignored.
// - Empty lines are ignored.
// - Lines must be of form KEY=VALUE.
// - Whitespace around KEY is trimmed.
// - VALUE is taken as-is (no quote parsing).
func LoadDotEnv() (map[string]string, error) {
	p, err := DotEnvPath()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(p)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("cannot open dotenv file %s: %w", p, err)
	}
	defer f.Close()

	out := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		out[k] = v
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read dotenv file %s: %w", p, err)
	}
	return out, nil
}

// GetConfigValue returns the effective value for key, using process environment variables
// first and falling back to ~/.switcher/.env.
func GetConfigValue(key string) (string, error) {
	if v := os.Getenv(key); v != "" {
		return v, nil
	}
	dotenv, err := LoadDotEnv()
	if err != nil {
		return "", err
	}
	return dotenv[key], nil
}

// EnsureDotEnvTemplate creates ~/.switcher/.env if it does not already exist.
func EnsureDotEnvTemplate() error {
	p, err := DotEnvPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(p); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("cannot stat dotenv file %s: %w", p, err)
	}

	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", filepath.Dir(p), err)
	}

	body := "" +
		"# SWITCHER_DIRS overrides the configured directories (path-list separated).\n" +
		"SWITCHER_DIRS=\n" +
		"SWITCHER_SUFFIX=\n" +
		"SWITCHER_LOG_LEVEL=\n"

	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		return fmt.Errorf("cannot write dotenv template %s: %w", p, err)
	}
	return nil
}
