package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/moby/patternmatcher"
	"github.com/sirupsen/logrus"

	"github.com/kamusis/switcher/internal/logging"
)

// DefaultSuffix marks a directory entry as a launchable bundle.
const DefaultSuffix = ".app"

// Options controls catalog building. Zero fields take defaults.
type Options struct {
	Suffix   string        // bundle suffix, default DefaultSuffix
	Priority Priority      // default DefaultPriority()
	Icons    IconResolver  // default BundleIcons
	Excludes []string      // patterns matched against display names
	Logger   *logrus.Entry // default logging.NewLogger("catalog")
}

// Builder scans directories into a Catalog.
type Builder struct {
	suffix   string
	priority Priority
	icons    IconResolver
	excludes *patternmatcher.PatternMatcher
	log      *logrus.Entry
}

// NewBuilder validates opts and returns a Builder. Only a malformed exclude
// pattern is an error.
func NewBuilder(opts Options) (*Builder, error) {
	b := &Builder{
		suffix:   opts.Suffix,
		priority: opts.Priority,
		icons:    opts.Icons,
		log:      opts.Logger,
	}
	if b.suffix == "" {
		b.suffix = DefaultSuffix
	}
	if b.priority.isZero() {
		b.priority = DefaultPriority()
	}
	if b.icons == nil {
		b.icons = BundleIcons
	}
	if b.log == nil {
		b.log = logging.NewLogger("catalog")
	}
	if len(opts.Excludes) > 0 {
		pm, err := patternmatcher.New(opts.Excludes)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern: %w", err)
		}
		b.excludes = pm
	}
	return b, nil
}

// Build scans dirs with default options.
func Build(dirs []string) *Catalog {
	b, _ := NewBuilder(Options{})
	return b.Build(dirs)
}

// Suffix returns the bundle suffix the builder matches.
func (b *Builder) Suffix() string {
	return b.suffix
}

// Priority returns the priority set applied to built catalogs.
func (b *Builder) Priority() Priority {
	return b.priority
}

// Build scans dirs in order and returns a new Catalog. Directories that
// cannot be listed are skipped. When two bundles share a name, the one from
// the earlier directory wins.
func (b *Builder) Build(dirs []string) *Catalog {
	start := time.Now()
	seen := make(map[string]struct{})
	var found []AppEntry

	for _, dir := range dirs {
		for _, name := range b.listBundles(dir) {
			display := strings.TrimSuffix(name, b.suffix)
			if _, dup := seen[display]; dup {
				b.log.WithFields(logrus.Fields{"dir": dir, "name": display}).Debug("shadowed by earlier directory")
				continue
			}
			if b.excluded(display) {
				b.log.WithField("name", display).Debug("excluded")
				continue
			}
			seen[display] = struct{}{}

			path := filepath.Join(dir, name)
			found = append(found, AppEntry{
				Name: display,
				Path: path,
				Icon: b.resolveIcon(path),
			})
		}
	}

	c := New(found, b.priority)
	b.log.WithFields(logrus.Fields{
		"dirs":    len(dirs),
		"entries": c.Len(),
		"took":    time.Since(start).Round(time.Millisecond),
	}).Debug("catalog built")
	return c
}

// listBundles returns the file names in dir that end in the suffix and have a
// non-empty name before it. Unlistable directories yield nothing.
func (b *Builder) listBundles(dir string) []string {
	items, err := os.ReadDir(dir)
	if err != nil {
		// ReadDir may return a partial listing alongside the error.
		b.log.WithError(err).WithField("dir", dir).Debug("skipping unreadable directory")
		if len(items) == 0 {
			return nil
		}
	}

	var out []string
	for _, it := range items {
		name := it.Name()
		if !strings.HasSuffix(name, b.suffix) || len(name) == len(b.suffix) {
			continue
		}
		out = append(out, name)
	}
	return out
}

func (b *Builder) excluded(name string) bool {
	if b.excludes == nil {
		return false
	}
	ok, err := b.excludes.MatchesOrParentMatches(name)
	if err != nil {
		b.log.WithError(err).WithField("name", name).Warn("exclude match failed")
		return false
	}
	return ok
}

func (b *Builder) resolveIcon(path string) Icon {
	icon, err := b.icons.Resolve(path)
	if err != nil {
		b.log.WithError(err).WithField("path", path).Debug("using placeholder icon")
		return PlaceholderIcon()
	}
	return icon
}
