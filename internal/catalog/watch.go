package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/kamusis/switcher/internal/logging"
)

// Watcher rebuilds a Store's catalog when bundles appear in or vanish from
// the scanned directories.
type Watcher struct {
	fsw      *fsnotify.Watcher
	store    *Store
	builder  *Builder
	dirs     []string
	watched  []string
	debounce time.Duration
	log      *logrus.Entry

	mu        sync.Mutex
	timer     *time.Timer
	onRefresh func(*Catalog)
}

// NewWatcher watches every existing directory in dirs. Directories that
// cannot be watched are logged and skipped; they are still scanned on each
// refresh.
func NewWatcher(store *Store, b *Builder, dirs []string, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("cannot create watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}

	w := &Watcher{
		fsw:      fsw,
		store:    store,
		builder:  b,
		dirs:     dirs,
		debounce: debounce,
		log:      logging.NewLogger("watcher"),
	}

	added := make(map[string]bool)
	for _, d := range dirs {
		if added[d] {
			continue
		}
		if err := fsw.Add(d); err != nil {
			w.log.WithError(err).WithField("dir", d).Debug("not watching directory")
			continue
		}
		added[d] = true
		w.watched = append(w.watched, d)
	}
	return w, nil
}

// OnRefresh registers fn to be called with each rebuilt catalog. fn runs on
// the watcher's timer goroutine.
func (w *Watcher) OnRefresh(fn func(*Catalog)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onRefresh = fn
}

// Watched returns the directories actually being watched.
func (w *Watcher) Watched() []string {
	out := make([]string, len(w.watched))
	copy(out, w.watched)
	return out
}

// Run processes filesystem events until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if w.relevant(ev) {
				w.log.Debugf("fsnotify event: %s op=%v", ev.Name, ev.Op)
				w.schedule()
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.WithError(err).Warn("watcher error")
		case <-ctx.Done():
			w.mu.Lock()
			if w.timer != nil {
				w.timer.Stop()
			}
			w.mu.Unlock()
			return nil
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return false
	}
	return strings.HasSuffix(filepath.Base(ev.Name), w.builder.Suffix())
}

// schedule debounces bursts of events into one refresh.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer == nil {
		w.timer = time.AfterFunc(w.debounce, w.refresh)
		return
	}
	w.timer.Reset(w.debounce)
}

func (w *Watcher) refresh() {
	c := w.store.Refresh(w.builder, w.dirs)
	w.log.WithField("entries", c.Len()).Info("catalog refreshed")

	w.mu.Lock()
	fn := w.onRefresh
	w.mu.Unlock()
	if fn != nil {
		fn(c)
	}
}
