package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamusis/switcher/internal/logging"
)

func mkBundles(t *testing.T, dir string, names ...string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, n := range names {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, n), 0o755))
	}
}

func noIcons(string) (Icon, error) { return Icon{}, ErrNoIcon }

func newTestBuilder(t *testing.T, opts Options) *Builder {
	t.Helper()
	if opts.Icons == nil {
		opts.Icons = IconFunc(noIcons)
	}
	opts.Logger = logging.Discard()
	b, err := NewBuilder(opts)
	require.NoError(t, err)
	return b
}

func names(entries []AppEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestBuild_FirstDirectoryWinsOnDuplicateName(t *testing.T) {
	tmp := t.TempDir()
	a := filepath.Join(tmp, "A")
	b := filepath.Join(tmp, "B")
	mkBundles(t, a, "Foo.app")
	mkBundles(t, b, "Foo.app", "Bar.app")

	c := newTestBuilder(t, Options{Priority: NewPriority()}).Build([]string{a, b})

	require.Equal(t, 2, c.Len())
	entries := c.Entries()
	assert.Equal(t, []string{"Bar", "Foo"}, names(entries))
	assert.Equal(t, filepath.Join(a, "Foo.app"), entries[1].Path)
	assert.Equal(t, filepath.Join(b, "Bar.app"), entries[0].Path)
}

func TestBuild_SkipsMissingAndDuplicateDirectories(t *testing.T) {
	tmp := t.TempDir()
	a := filepath.Join(tmp, "A")
	mkBundles(t, a, "Safari.app")

	c := newTestBuilder(t, Options{}).Build([]string{
		filepath.Join(tmp, "missing"),
		a,
		a,
	})

	assert.Equal(t, []string{"Safari"}, names(c.Entries()))
}

func TestBuild_EmptyInputYieldsEmptyCatalog(t *testing.T) {
	tmp := t.TempDir()
	b := newTestBuilder(t, Options{})

	assert.Equal(t, 0, b.Build(nil).Len())
	assert.Equal(t, 0, b.Build([]string{filepath.Join(tmp, "nope")}).Len())
	assert.NotNil(t, b.Build(nil).Entries())
}

func TestBuild_OnlySuffixedEntriesQualify(t *testing.T) {
	tmp := t.TempDir()
	mkBundles(t, tmp, "Notes.app", "README", ".app", "Archive.app.zip")
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "Script.app"), []byte("#!/bin/sh\n"), 0o755))

	c := newTestBuilder(t, Options{}).Build([]string{tmp})

	assert.Equal(t, []string{"Notes", "Script"}, names(c.Entries()))
}

func TestBuild_CustomSuffix(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "gedit.desktop"), nil, 0o644))
	mkBundles(t, tmp, "Ignored.app")

	c := newTestBuilder(t, Options{Suffix: ".desktop"}).Build([]string{tmp})

	assert.Equal(t, []string{"gedit"}, names(c.Entries()))
}

func TestBuild_IconFailureKeepsEntryWithPlaceholder(t *testing.T) {
	tmp := t.TempDir()
	mkBundles(t, tmp, "Calculator.app")

	c := newTestBuilder(t, Options{Icons: IconFunc(func(string) (Icon, error) {
		return Icon{}, errors.New("boom")
	})}).Build([]string{tmp})

	require.Equal(t, 1, c.Len())
	assert.True(t, c.At(0).Icon.Placeholder)
}

func TestBuild_BundleIconsFindsIcns(t *testing.T) {
	tmp := t.TempDir()
	res := filepath.Join(tmp, "Maps.app", "Contents", "Resources")
	require.NoError(t, os.MkdirAll(res, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(res, "zz.icns"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(res, "Maps.icns"), nil, 0o644))
	mkBundles(t, tmp, "Bare.app")

	c := newTestBuilder(t, Options{Icons: BundleIcons}).Build([]string{tmp})

	require.Equal(t, 2, c.Len())
	assert.True(t, c.At(0).Icon.Placeholder, "Bare has no resources")
	assert.Equal(t, filepath.Join(res, "Maps.icns"), c.At(1).Icon.Path)
}

func TestBuild_Excludes(t *testing.T) {
	tmp := t.TempDir()
	mkBundles(t, tmp, "Install macOS Sonoma.app", "Mail.app", "Uninstaller.app")

	c := newTestBuilder(t, Options{Excludes: []string{"Install *", "Uninstaller"}}).Build([]string{tmp})

	assert.Equal(t, []string{"Mail"}, names(c.Entries()))
}

func TestNewBuilder_InvalidExclude(t *testing.T) {
	_, err := NewBuilder(Options{Excludes: []string{"[unterminated"}, Logger: logging.Discard()})
	assert.Error(t, err)
}

func TestBuild_PriorityFirstThenCaseInsensitive(t *testing.T) {
	tmp := t.TempDir()
	mkBundles(t, tmp, "zoom.us.app", "Terminal.app", "Safari.app", "appStore.app", "Firefox.app")

	c := newTestBuilder(t, Options{Priority: NewPriority("Terminal", "firefox")}).Build([]string{tmp})

	assert.Equal(t, []string{"Firefox", "Terminal", "appStore", "Safari", "zoom.us"}, names(c.Entries()))
}

func TestBuild_UnreadableDirectorySkipped(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits not enforced")
	}
	tmp := t.TempDir()
	locked := filepath.Join(tmp, "locked")
	open := filepath.Join(tmp, "open")
	mkBundles(t, locked, "Secret.app")
	mkBundles(t, open, "Public.app")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	c := newTestBuilder(t, Options{}).Build([]string{locked, open})

	assert.Equal(t, []string{"Public"}, names(c.Entries()))
	assert.Error(t, CheckDir(locked))
	assert.NoError(t, CheckDir(open))
}

func TestCheckDir(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	assert.NoError(t, CheckDir(tmp))
	assert.ErrorIs(t, CheckDir(filepath.Join(tmp, "missing")), os.ErrNotExist)
	assert.ErrorIs(t, CheckDir(file), ErrNotDir)
}
