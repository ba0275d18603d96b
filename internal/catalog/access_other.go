//go:build !unix

package catalog

import (
	"fmt"
	"os"
)

// CheckDir reports why dir cannot be scanned, or nil when it can be listed.
func CheckDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", dir, ErrNotDir)
	}
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	return f.Close()
}
