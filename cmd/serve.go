package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"github.com/kamusis/switcher/internal/catalog"
	"github.com/kamusis/switcher/internal/logging"
)

// serveFlags holds flag values for the `switcher serve` command.
type serveFlags struct {
	watch       bool
	debounce    time.Duration
	lockTimeout time.Duration
	k           int
}

var flagServe serveFlags

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run an interactive launcher panel on stdin/stdout",
	Long: `Run the launcher panel as a line-oriented loop.

Each input line is a query and re-ranks the list; an empty line shows the
whole catalog. Control lines:

  :up / :down   move the selection
  :enter        print "open <path>" for the selected app
  :refresh      rescan directories
  :quit         exit

Only one panel runs per user at a time.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&flagServe.watch, "watch", false, "Rescan automatically when bundles are added or removed")
	serveCmd.Flags().DurationVar(&flagServe.debounce, "debounce", 0, "Delay before rescanning after a change (default from config)")
	serveCmd.Flags().DurationVar(&flagServe.lockTimeout, "lock-timeout", 0, "How long to wait for another panel to exit")
	serveCmd.Flags().IntVar(&flagServe.k, "k", 10, "Number of rows to show (0 for all)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	log := logging.NewLogger("serve")

	_, unlock, err := acquireServeLock(flagServe.lockTimeout)
	if err != nil {
		return err
	}
	defer unlock()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := catalog.NewStore(nil)
	c := store.Refresh(env.builder, env.dirs)
	log.WithField("entries", c.Len()).Info("catalog loaded")

	var refreshed chan struct{}
	if flagServe.watch {
		debounce := flagServe.debounce
		if debounce <= 0 {
			debounce = env.cfg.EffectiveWatchDebounce()
		}
		w, err := catalog.NewWatcher(store, env.builder, env.dirs, debounce)
		if err != nil {
			return err
		}
		refreshed = make(chan struct{}, 1)
		w.OnRefresh(func(*catalog.Catalog) {
			select {
			case refreshed <- struct{}{}:
			default:
			}
		})
		go func() { _ = w.Run(ctx) }()
		printInfo("", fmt.Sprintf("watching %d director(ies)", len(w.Watched())))
	}

	p := newPanel(store, func() *catalog.Catalog {
		return store.Refresh(env.builder, env.dirs)
	}, os.Stdout, flagServe.k)
	return p.run(ctx, os.Stdin, refreshed)
}

// acquireServeLock obtains the per-user panel lock, retrying until timeout.
// A zero timeout tries once.
func acquireServeLock(timeout time.Duration) (*flock.Flock, func(), error) {
	lockPath, err := serveLockPath()
	if err != nil {
		return nil, func() {}, err
	}
	l := flock.New(lockPath)
	deadline := time.Now().Add(timeout)
	for {
		locked, err := l.TryLock()
		if err != nil {
			return nil, func() {}, fmt.Errorf("cannot acquire panel lock: %w", err)
		}
		if locked {
			return l, func() { _ = l.Unlock() }, nil
		}
		if !time.Now().Before(deadline) {
			return nil, func() {}, fmt.Errorf("%w (lock: %s)", errPanelRunning, lockPath)
		}
		time.Sleep(100 * time.Millisecond)
	}
}

// serveLockPath returns <user cache dir>/switcher/serve.lock, falling back to
// ~/.switcher/serve.lock.
func serveLockPath() (string, error) {
	if cacheDir, err := os.UserCacheDir(); err == nil && cacheDir != "" {
		dir := filepath.Join(cacheDir, "switcher")
		if err := os.MkdirAll(dir, 0o755); err == nil {
			return filepath.Join(dir, "serve.lock"), nil
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine lock location: %w", err)
	}
	dir := filepath.Join(home, ".switcher")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create %s: %w", dir, err)
	}
	return filepath.Join(dir, "serve.lock"), nil
}
