package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamusis/switcher/internal/catalog"
	"github.com/kamusis/switcher/internal/config"
	"github.com/kamusis/switcher/internal/logging"
)

var (
	flagDirs     []string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:          "switcher",
	Short:        "Switcher — application index and fuzzy launcher core",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `Switcher scans application directories for launchable bundles and ranks
them against a typed query: exact, prefix, substring, then fuzzy matches,
with a boost for a short list of frequently used apps.`,
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&flagDirs, "dir", nil, "Directory to scan (repeatable; replaces configured directories)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// launcherEnv is the resolved configuration shared by commands that build a catalog.
type launcherEnv struct {
	cfg     *config.Config
	dirs    []string
	builder *catalog.Builder
}

// loadEnv resolves config, applies the log level, and prepares a catalog builder.
// --dir and --log-level take precedence over the config file.
func loadEnv(cmd *cobra.Command) (*launcherEnv, error) {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return nil, fmt.Errorf("cannot load config: %w", err)
	}

	level := cfg.LogLevel
	if f := cmd.Flag("log-level"); f != nil && f.Changed {
		level = flagLogLevel
	}
	if err := logging.SetLevel(level); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	if len(flagDirs) > 0 {
		cfg.Directories = flagDirs
	}
	dirs, err := cfg.EffectiveDirectories()
	if err != nil {
		return nil, err
	}

	b, err := catalog.NewBuilder(catalog.Options{
		Suffix:   cfg.EffectiveSuffix(),
		Priority: catalog.NewPriority(cfg.PriorityApps...),
		Excludes: cfg.Excludes,
		Logger:   logging.NewLogger("catalog"),
	})
	if err != nil {
		return nil, err
	}
	return &launcherEnv{cfg: cfg, dirs: dirs, builder: b}, nil
}
