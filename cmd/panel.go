package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/kamusis/switcher/internal/catalog"
	"github.com/kamusis/switcher/internal/search"
	"github.com/kamusis/switcher/internal/selection"
)

// Panel commands. Any other input line is taken as the query.
const (
	panelUp      = ":up"
	panelDown    = ":down"
	panelEnter   = ":enter"
	panelRefresh = ":refresh"
	panelQuit    = ":quit"
)

// panel is a line-oriented stand-in for the launcher window: it holds the
// current query, the ranked list, and the selection cursor. All state is
// owned by the goroutine calling run.
type panel struct {
	store   *catalog.Store
	refresh func() *catalog.Catalog
	out     io.Writer
	limit   int

	query   string
	results []catalog.AppEntry
	cursor  selection.Cursor
}

func newPanel(store *catalog.Store, refresh func() *catalog.Catalog, out io.Writer, limit int) *panel {
	return &panel{store: store, refresh: refresh, out: out, limit: limit}
}

// show resets the query and lists the whole catalog, as when the panel opens.
func (p *panel) show() {
	p.setQuery("")
}

// setQuery ranks the current catalog snapshot and resets the selection.
func (p *panel) setQuery(q string) {
	p.query = q
	p.results = search.Rank(p.store.Load(), q)
	p.cursor.Reset(len(p.results))
	p.render()
}

// selected returns the highlighted entry, if any.
func (p *panel) selected() (catalog.AppEntry, bool) {
	if !p.cursor.Valid() {
		return catalog.AppEntry{}, false
	}
	return p.results[p.cursor.Index()], true
}

// handle applies one input line. It reports false when the panel should close.
func (p *panel) handle(line string) bool {
	switch line {
	case panelUp:
		p.cursor.Up()
		p.render()
	case panelDown:
		p.cursor.Down()
		p.render()
	case panelEnter:
		e, ok := p.selected()
		if !ok {
			fmt.Fprintln(p.out, "  -  nothing selected")
			return true
		}
		fmt.Fprintf(p.out, "open %s\n", e.Path)
	case panelRefresh:
		if p.refresh != nil {
			p.refresh()
		}
		p.setQuery(p.query)
	case panelQuit:
		return false
	default:
		p.setQuery(line)
	}
	return true
}

func (p *panel) render() {
	fmt.Fprintf(p.out, "query %q: %d result(s)\n", p.query, len(p.results))
	shown := search.Limit(p.results, p.limit)
	for i, e := range shown {
		marker := " "
		if i == p.cursor.Index() {
			marker = ">"
		}
		fmt.Fprintf(p.out, "%s %s\t%s\n", marker, e.Name, e.Path)
	}
	if len(shown) < len(p.results) {
		fmt.Fprintf(p.out, "  … %d more\n", len(p.results)-len(shown))
	}
}

// run reads input lines until EOF, :quit, or ctx is done. A value on
// refreshed re-ranks the current query against the newest catalog.
func (p *panel) run(ctx context.Context, in io.Reader, refreshed <-chan struct{}) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- strings.TrimRight(sc.Text(), "\r"):
			case <-ctx.Done():
				return
			}
		}
		scanErr <- sc.Err()
	}()

	p.show()
	for {
		select {
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					if err != nil {
						return fmt.Errorf("cannot read input: %w", err)
					}
				default:
				}
				return nil
			}
			if !p.handle(line) {
				return nil
			}
		case <-refreshed:
			p.setQuery(p.query)
		case <-ctx.Done():
			return nil
		}
	}
}
