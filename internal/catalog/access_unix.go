//go:build unix

package catalog

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
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
	if err := unix.Access(dir, unix.R_OK|unix.X_OK); err != nil {
		return &os.PathError{Op: "access", Path: dir, Err: err}
	}
	return nil
}
