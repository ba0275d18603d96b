package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestLoadOrDefault_MissingFile(t *testing.T) {
	withHome(t)
	t.Setenv("SWITCHER_DIRS", "")

	cfg, err := LoadOrDefault()
	if err != nil {
		t.Fatalf("LoadOrDefault: %v", err)
	}
	if !reflect.DeepEqual(cfg.Directories, DefaultConfig().Directories) {
		t.Fatalf("unexpected directories: %v", cfg.Directories)
	}
	if cfg.EffectiveSuffix() != ".app" {
		t.Fatalf("unexpected suffix: %q", cfg.EffectiveSuffix())
	}
}

func TestLoad_MissingFileIsError(t *testing.T) {
	withHome(t)
	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing config")
	}
}

func TestSaveLoad_RoundTripKeepsOrder(t *testing.T) {
	withHome(t)
	t.Setenv("SWITCHER_DIRS", "")

	cfg := &Config{
		Directories:   []string{"/b", "/a", "/b"},
		Suffix:        ".desktop",
		PriorityApps:  []string{"Terminal"},
		Excludes:      []string{"Install *"},
		WatchDebounce: 2 * time.Second,
	}
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got.Directories, []string{"/b", "/a", "/b"}) {
		t.Fatalf("directories reordered: %v", got.Directories)
	}
	if got.EffectiveSuffix() != ".desktop" {
		t.Fatalf("unexpected suffix: %q", got.EffectiveSuffix())
	}
	if got.EffectiveWatchDebounce() != 2*time.Second {
		t.Fatalf("unexpected debounce: %v", got.EffectiveWatchDebounce())
	}
	if !reflect.DeepEqual(got.Excludes, []string{"Install *"}) {
		t.Fatalf("unexpected excludes: %v", got.Excludes)
	}
}

func TestLoadFile_EnvOverridesDirectories(t *testing.T) {
	dir := withHome(t)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	p := filepath.Join(dir, "switcher.yaml")
	if err := os.WriteFile(p, []byte("directories:\n  - /from/file\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SWITCHER_DIRS", "/one"+string(os.PathListSeparator)+"/two")

	cfg, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !reflect.DeepEqual(cfg.Directories, []string{"/one", "/two"}) {
		t.Fatalf("env override not applied: %v", cfg.Directories)
	}
}

func TestEffectiveDirectories_ExpandsHome(t *testing.T) {
	dir := withHome(t)
	home := filepath.Dir(dir)

	cfg := &Config{Directories: []string{"~/Applications", "  ", "/Applications"}}
	got, err := cfg.EffectiveDirectories()
	if err != nil {
		t.Fatalf("EffectiveDirectories: %v", err)
	}
	want := []string{filepath.Join(home, "Applications"), "/Applications"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}
