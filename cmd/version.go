package cmd

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X github.com/kamusis/switcher/cmd.version=...".
var (
	version   = "dev"
	commit    = ""
	buildDate = ""
)

var flagVersionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show Switcher version and build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		writeVersion(cmd.OutOrStdout(), flagVersionShort)
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&flagVersionShort, "short", false, "Print only the version string")
	rootCmd.AddCommand(versionCmd)
}

func writeVersion(w io.Writer, short bool) {
	if short {
		fmt.Fprintln(w, version)
		return
	}
	fmt.Fprintf(w, "Version:    %s\n", version)
	fmt.Fprintf(w, "Commit:     %s\n", orNA(commit))
	fmt.Fprintf(w, "Build Date: %s\n", orNA(buildDate))
	fmt.Fprintf(w, "Go Version: %s\n", runtime.Version())
	fmt.Fprintf(w, "OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

func orNA(s string) string {
	if s == "" {
		return "n/a"
	}
	return s
}
