package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kamusis/switcher/internal/search"
)

var (
	flagSearchK      int
	flagSearchScores bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Rank installed applications against a query",
	Long: `Rank installed applications against a query.

Arguments are joined with single spaces to form the query. With no query the
whole catalog is printed in base order. When stdout is not a terminal only
bundle paths are printed, one per line, best match first.`,
	Args: cobra.ArbitraryArgs,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVar(&flagSearchK, "k", 10, "Number of results to show (0 for all)")
	searchCmd.Flags().BoolVar(&flagSearchScores, "scores", false, "Show score and match tier")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	query := strings.Join(args, " ")

	c := env.builder.Build(env.dirs)
	results := search.Limit(search.RankResults(c, query), flagSearchK)

	if stdoutIsTerminal() {
		printSearchResults(os.Stdout, query, results, flagSearchScores)
	} else {
		printResultPaths(os.Stdout, results)
	}
	return nil
}

func printSearchResults(w io.Writer, query string, results []search.Result, scores bool) {
	fmt.Fprintf(w, "\nswitcher search %q\n\n", query)
	fmt.Fprintf(w, "Results (%d found):\n", len(results))
	if len(results) == 0 {
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, r := range results {
		if scores {
			fmt.Fprintf(tw, "  %d.\t[%d %s]\t%s\t%s\n", i+1, r.Score, r.Tier, r.Entry.Name, r.Entry.Path)
		} else {
			fmt.Fprintf(tw, "  %d.\t%s\t%s\n", i+1, r.Entry.Name, r.Entry.Path)
		}
	}
	_ = tw.Flush()
}

func printResultPaths(w io.Writer, results []search.Result) {
	for _, r := range results {
		fmt.Fprintln(w, r.Entry.Path)
	}
}
