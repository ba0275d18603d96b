package catalog

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(name string) AppEntry {
	return AppEntry{Name: name, Path: "/Applications/" + name + ".app"}
}

func TestNew_BaseOrder(t *testing.T) {
	c := New([]AppEntry{
		entry("Terminal"),
		entry("TextEdit"),
		entry("Safari"),
		entry("Microsoft Word"),
	}, NewPriority("terminal", "microsoft word"))

	assert.Equal(t, []string{"Microsoft Word", "Terminal", "Safari", "TextEdit"}, names(c.Entries()))
}

func TestNew_DedupIsCaseSensitiveAndKeepsFirst(t *testing.T) {
	first := AppEntry{Name: "Notes", Path: "/a/Notes.app"}
	c := New([]AppEntry{
		first,
		{Name: "Notes", Path: "/b/Notes.app"},
		{Name: "notes", Path: "/b/notes.app"},
	}, NewPriority())

	require.Equal(t, 2, c.Len())
	assert.Contains(t, c.Entries(), first)
	assert.NotContains(t, c.Entries(), AppEntry{Name: "Notes", Path: "/b/Notes.app"})
}

func TestNew_DoesNotModifyInput(t *testing.T) {
	in := []AppEntry{entry("b"), entry("a")}
	New(in, NewPriority())
	assert.Equal(t, []string{"b", "a"}, names(in))
}

func TestNew_ZeroPriorityUsesDefault(t *testing.T) {
	c := New([]AppEntry{entry("Safari"), entry("Terminal")}, Priority{})
	assert.True(t, c.Priority().Contains("Terminal"))
	assert.Equal(t, []string{"Terminal", "Safari"}, names(c.Entries()))
}

func TestEntries_ReturnsCopy(t *testing.T) {
	c := New([]AppEntry{entry("Safari")}, NewPriority())
	got := c.Entries()
	got[0].Name = "mutated"
	assert.Equal(t, "Safari", c.At(0).Name)
}

func TestNilCatalog(t *testing.T) {
	var c *Catalog
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Entries())
	assert.False(t, c.Priority().Contains("terminal"))
	assert.True(t, c.BuiltAt().IsZero())
}

func TestPriority(t *testing.T) {
	p := NewPriority("  Visual Studio Code ", "", "TERMINAL")
	assert.Equal(t, 2, p.Len())
	assert.True(t, p.Contains("visual studio code"))
	assert.True(t, p.Contains("Terminal"))
	assert.False(t, p.Contains("Safari"))
	assert.Equal(t, []string{"terminal", "visual studio code"}, p.Names())
	assert.Equal(t, len(DefaultPriorityApps()), DefaultPriority().Len())
}

func TestStore_LoadSwap(t *testing.T) {
	s := NewStore(nil)
	require.NotNil(t, s.Load())
	assert.Equal(t, 0, s.Load().Len())

	c1 := New([]AppEntry{entry("Safari")}, NewPriority())
	assert.Nil(t, s.Swap(c1))
	assert.Same(t, c1, s.Load())

	c2 := New(nil, NewPriority())
	assert.Same(t, c1, s.Swap(c2))
	// A reader holding the old snapshot is unaffected.
	assert.Equal(t, 1, c1.Len())
}

func TestStore_ConcurrentReadersDuringRefresh(t *testing.T) {
	tmp := t.TempDir()
	mkBundles(t, tmp, "Mail.app", "Maps.app")
	b := newTestBuilder(t, Options{})
	s := NewStore(nil)
	s.Refresh(b, []string{tmp})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				snap := s.Load()
				n := snap.Len()
				assert.Len(t, snap.Entries(), n)
			}
		}()
	}
	for i := 0; i < 10; i++ {
		s.Refresh(b, []string{tmp})
	}
	wg.Wait()
	assert.Equal(t, 2, s.Load().Len())
}

func TestWatcher_RefreshesOnNewBundle(t *testing.T) {
	tmp := t.TempDir()
	mkBundles(t, tmp, "Mail.app")
	b := newTestBuilder(t, Options{})
	s := NewStore(nil)
	s.Refresh(b, []string{tmp})

	w, err := NewWatcher(s, b, []string{tmp, filepath.Join(tmp, "missing")}, 20*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, []string{tmp}, w.Watched())

	refreshed := make(chan *Catalog, 4)
	w.OnRefresh(func(c *Catalog) { refreshed <- c })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	require.NoError(t, os.Mkdir(filepath.Join(tmp, "Notes.app"), 0o755))

	select {
	case c := <-refreshed:
		assert.Equal(t, []string{"Mail", "Notes"}, names(c.Entries()))
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not refresh")
	}
	assert.Equal(t, 2, s.Load().Len())
}
