// Package catalog discovers launchable application bundles and keeps them in
// an immutable, deduplicated, base-sorted Catalog.
package catalog

import "time"

// Icon is an opaque handle to an application's icon. Ranking never looks at it.
type Icon struct {
	Path        string
	Placeholder bool
}

// PlaceholderIcon is substituted when a bundle's icon cannot be resolved.
func PlaceholderIcon() Icon {
	return Icon{Placeholder: true}
}

// AppEntry is one launchable application.
type AppEntry struct {
	Name string // file name without the bundle suffix
	Path string // absolute path to the bundle
	Icon Icon
}

// Catalog is an ordered, immutable collection of AppEntry values.
// Names are unique (case-sensitive) and so are paths.
//
// A nil *Catalog behaves as an empty catalog.
type Catalog struct {
	entries  []AppEntry
	priority Priority
	builtAt  time.Time
}

// New returns a Catalog holding entries deduplicated by name (first one wins)
// and sorted into base order: priority names first, then case-insensitive by
// name. entries is not modified.
func New(entries []AppEntry, p Priority) *Catalog {
	if p.isZero() {
		p = DefaultPriority()
	}
	kept := dedup(entries)
	baseSort(kept, p)
	return &Catalog{entries: kept, priority: p, builtAt: time.Now()}
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// At returns the i'th entry in base order.
func (c *Catalog) At(i int) AppEntry {
	return c.entries[i]
}

// Entries returns a copy of the entries in base order.
func (c *Catalog) Entries() []AppEntry {
	if c == nil {
		return []AppEntry{}
	}
	out := make([]AppEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Priority returns the priority set the catalog was sorted with.
func (c *Catalog) Priority() Priority {
	if c == nil {
		return Priority{}
	}
	return c.priority
}

// BuiltAt reports when the catalog was created.
func (c *Catalog) BuiltAt() time.Time {
	if c == nil {
		return time.Time{}
	}
	return c.builtAt
}

func dedup(entries []AppEntry) []AppEntry {
	seenName := make(map[string]struct{}, len(entries))
	seenPath := make(map[string]struct{}, len(entries))
	out := make([]AppEntry, 0, len(entries))
	for _, e := range entries {
		if _, ok := seenName[e.Name]; ok {
			continue
		}
		if _, ok := seenPath[e.Path]; ok {
			continue
		}
		seenName[e.Name] = struct{}{}
		seenPath[e.Path] = struct{}{}
		out = append(out, e)
	}
	return out
}
