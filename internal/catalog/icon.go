package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// IconResolver resolves the icon for a bundle path.
type IconResolver interface {
	Resolve(bundlePath string) (Icon, error)
}

// IconFunc adapts a function to IconResolver.
type IconFunc func(bundlePath string) (Icon, error)

// Resolve calls f(bundlePath).
func (f IconFunc) Resolve(bundlePath string) (Icon, error) {
	return f(bundlePath)
}

// BundleIcons finds a .icns file inside a macOS-style bundle.
var BundleIcons IconResolver = IconFunc(resolveBundleIcon)

// resolveBundleIcon looks in <bundle>/Contents/Resources for, in order,
// AppIcon.icns, <bundle name>.icns, and the lexically first *.icns.
func resolveBundleIcon(bundlePath string) (Icon, error) {
	res := filepath.Join(bundlePath, "Contents", "Resources")
	base := filepath.Base(bundlePath)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	for _, cand := range []string{"AppIcon.icns", name + ".icns"} {
		p := filepath.Join(res, cand)
		if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
			return Icon{Path: p}, nil
		}
	}

	items, err := os.ReadDir(res)
	if err != nil {
		return Icon{}, fmt.Errorf("cannot read %s: %w", res, err)
	}
	for _, it := range items {
		if it.IsDir() || !strings.EqualFold(filepath.Ext(it.Name()), ".icns") {
			continue
		}
		return Icon{Path: filepath.Join(res, it.Name())}, nil
	}
	return Icon{}, fmt.Errorf("%s: %w", bundlePath, ErrNoIcon)
}
