package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamusis/switcher/internal/catalog"
	"github.com/kamusis/switcher/internal/config"
	"github.com/kamusis/switcher/internal/logging"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration and scan directories",
	Long: `Check that switcher.yaml parses, that the scan directories can be read,
and that the exclude patterns are valid. Missing directories are reported
but are not errors; the catalog simply skips them.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(_ *cobra.Command, _ []string) error {
	allOK := true
	failD := func(format string, args ...any) {
		printErr("", fmt.Sprintf(format, args...))
		allOK = false
	}

	printSection("switcher doctor")
	fmt.Println()

	// ── Check 1: config file ──────────────────────────────────────────────────
	fmt.Println("[ switcher.yaml ]")
	cfg, loadErr := config.Load()
	switch {
	case loadErr == nil:
		printOK("", fmt.Sprintf("valid YAML — %d director(ies), %d priority app(s)", len(cfg.Directories), len(cfg.PriorityApps)))
	case errors.Is(loadErr, os.ErrNotExist):
		printSkip("", "not found — using built-in defaults (run 'switcher init' to write one)")
	default:
		failD("%v", loadErr)
	}
	if loadErr != nil {
		var err error
		if cfg, err = config.LoadOrDefault(); err != nil {
			cfg = config.DefaultConfig()
		}
	}
	if err := logging.SetLevel(cfg.LogLevel); err != nil {
		printWarn("", fmt.Sprintf("unknown log_level %q — expected debug, info, warn or error", cfg.LogLevel))
	}
	fmt.Println()

	// ── Check 2: scan directories ─────────────────────────────────────────────
	fmt.Println("[ Directories ]")
	if len(flagDirs) > 0 {
		cfg.Directories = flagDirs
	}
	dirs, err := cfg.EffectiveDirectories()
	if err != nil {
		failD("cannot resolve directories: %v", err)
	}
	readable := 0
	for _, d := range dirs {
		switch err := catalog.CheckDir(d); {
		case err == nil:
			printOK(d, "readable")
			readable++
		case errors.Is(err, os.ErrNotExist):
			printMiss(d, "missing (skipped)")
		case errors.Is(err, catalog.ErrNotDir):
			printWarn(d, "not a directory (skipped)")
		default:
			printWarn(d, fmt.Sprintf("not readable (skipped): %v", err))
		}
	}
	if readable == 0 {
		failD("no readable directories — the catalog will be empty")
	}
	fmt.Println()

	// ── Check 3: exclude patterns ─────────────────────────────────────────────
	fmt.Println("[ Excludes ]")
	b, err := catalog.NewBuilder(catalog.Options{
		Suffix:   cfg.EffectiveSuffix(),
		Priority: catalog.NewPriority(cfg.PriorityApps...),
		Excludes: cfg.Excludes,
		Logger:   logging.NewLogger("catalog"),
	})
	switch {
	case err != nil:
		failD("%v", err)
	case len(cfg.Excludes) == 0:
		printSkip("", "none configured")
	default:
		printOK("", fmt.Sprintf("%d pattern(s) valid", len(cfg.Excludes)))
	}
	fmt.Println()

	// ── Check 4: catalog ──────────────────────────────────────────────────────
	fmt.Println("[ Catalog ]")
	if b != nil {
		c := b.Build(dirs)
		prio, noIcon := 0, 0
		for _, e := range c.Entries() {
			if c.Priority().Contains(e.Name) {
				prio++
			}
			if e.Icon.Placeholder {
				noIcon++
			}
		}
		printOK("", fmt.Sprintf("%d app(s) with suffix %q, %d priority", c.Len(), b.Suffix(), prio))
		if noIcon > 0 {
			printInfo("", fmt.Sprintf("%d app(s) use the placeholder icon", noIcon))
		}
	} else {
		printWarn("", "skipped (exclude patterns invalid)")
	}
	fmt.Println()

	// ── Summary ───────────────────────────────────────────────────────────────
	fmt.Println("===================")
	if allOK {
		fmt.Println("✓  All checks passed.")
		return nil
	}
	fmt.Fprintln(os.Stderr, "✗  One or more checks failed. See details above.")
	return fmt.Errorf("doctor found issues")
}
