package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamusis/switcher/internal/config"
)

var flagInitForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration to ~/.switcher/",
	Long: `Write ~/.switcher/switcher.yaml with the default scan directories and
priority apps, and a ~/.switcher/.env template for overrides.

  switcher init                         Default macOS application folders
  switcher init --dir /opt/apps --dir ~/Apps   Custom directories, in priority order
  switcher init --force                 Overwrite an existing switcher.yaml`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&flagInitForce, "force", false, "Overwrite an existing switcher.yaml")
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	path, err := config.ConfigPath()
	if err != nil {
		return err
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil && !flagInitForce:
		printSkip("switcher.yaml", fmt.Sprintf("already exists: %s (use --force to overwrite)", path))
	case statErr != nil && !os.IsNotExist(statErr):
		return fmt.Errorf("cannot stat %s: %w", path, statErr)
	default:
		cfg := config.DefaultConfig()
		if len(flagDirs) > 0 {
			cfg.Directories = flagDirs
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		printOK("switcher.yaml", fmt.Sprintf("written: %s (%d directories)", path, len(cfg.Directories)))
	}

	if err := config.EnsureDotEnvTemplate(); err != nil {
		return err
	}
	envPath, _ := config.DotEnvPath()
	printOK(".env", envPath)
	return nil
}
