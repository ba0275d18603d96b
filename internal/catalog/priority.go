package catalog

import (
	"sort"
	"strings"
)

var defaultPriorityApps = []string{
	"terminal",
	"firefox",
	"microsoft word",
	"microsoft excel",
	"microsoft outlook",
	"microsoft powerpoint",
	"visual studio code",
	"codex",
}

// DefaultPriorityApps returns the built-in list of frequently used application names.
func DefaultPriorityApps() []string {
	out := make([]string, len(defaultPriorityApps))
	copy(out, defaultPriorityApps)
	return out
}

// Priority is a read-only set of lowercase application names that sort first
// in the catalog and get a score boost when ranked.
type Priority struct {
	set map[string]struct{}
}

// NewPriority builds a Priority from names. Names are trimmed and lowercased;
// blanks are dropped. The result is never the zero value, even when empty.
func NewPriority(names ...string) Priority {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" {
			continue
		}
		set[n] = struct{}{}
	}
	return Priority{set: set}
}

// DefaultPriority returns the Priority built from DefaultPriorityApps.
func DefaultPriority() Priority {
	return NewPriority(defaultPriorityApps...)
}

// Contains reports whether name, lowercased, is in the set.
func (p Priority) Contains(name string) bool {
	_, ok := p.set[strings.ToLower(name)]
	return ok
}

// Len returns the number of names in the set.
func (p Priority) Len() int {
	return len(p.set)
}

// Names returns the set's names in lexical order.
func (p Priority) Names() []string {
	out := make([]string, 0, len(p.set))
	for n := range p.set {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func (p Priority) isZero() bool {
	return p.set == nil
}
