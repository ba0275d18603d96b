package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kamusis/switcher/internal/catalog"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the application catalog in base order",
	Long: `List every discovered application: priority apps first, then the rest
alphabetically. Bundles hidden by an earlier directory with the same name
are not shown.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	c := env.builder.Build(env.dirs)
	if stdoutIsTerminal() {
		printCatalog(os.Stdout, c)
	} else {
		for _, e := range c.Entries() {
			fmt.Println(e.Path)
		}
	}
	return nil
}

// printCatalog prints one row per entry; priority apps are marked with ★.
func printCatalog(w io.Writer, c *catalog.Catalog) {
	fmt.Fprintf(w, "\nCatalog (%d apps):\n", c.Len())
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, e := range c.Entries() {
		mark := " "
		if c.Priority().Contains(e.Name) {
			mark = "★"
		}
		icon := ""
		if e.Icon.Placeholder {
			icon = "(no icon)"
		}
		fmt.Fprintf(tw, "  %d.\t%s %s\t%s\t%s\n", i+1, mark, e.Name, e.Path, icon)
	}
	_ = tw.Flush()
}
