package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ── Unified output helpers ────────────────────────────────────────────────────
// Icon semantics:
//   ✓  success / healthy
//   ✗  error / failure          (written to stderr)
//   ⚠  warning
//   ○  skipped / not applicable
//   -  not found / missing
//   ~  neutral info / state change

// printSection prints a top-level section header, e.g. "=== Doctor ===".
func printSection(title string) {
	fmt.Printf("\n=== %s ===\n", title)
}

// printOK prints a success line.
//   name = "" → "  ✓  msg"
//   name set  → "  ✓  [name] msg"
func printOK(name, msg string) {
	printLine(os.Stdout, "✓", name, msg)
}

// printErr prints an error line to stderr.
func printErr(name, msg string) {
	printLine(os.Stderr, "✗", name, msg)
}

// printWarn prints a warning line.
func printWarn(name, msg string) {
	printLine(os.Stdout, "⚠", name, msg)
}

// printSkip prints a skipped / not-applicable line.
func printSkip(name, msg string) {
	printLine(os.Stdout, "○", name, msg)
}

// printMiss prints a not-found / missing line.
func printMiss(name, msg string) {
	printLine(os.Stdout, "-", name, msg)
}

// printInfo prints a neutral informational / state-change line.
func printInfo(name, msg string) {
	printLine(os.Stdout, "~", name, msg)
}

func printLine(w io.Writer, icon, name, msg string) {
	if name == "" {
		fmt.Fprintf(w, "  %s  %s\n", icon, msg)
	} else {
		fmt.Fprintf(w, "  %s  [%s] %s\n", icon, name, msg)
	}
}

// stdoutIsTerminal reports whether results are shown to a person rather than piped.
func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
