package catalog

import "errors"

// ErrNoIcon indicates a bundle carries no icon file.
var ErrNoIcon = errors.New("no icon found")

// ErrNotDir indicates a configured directory path is not a directory.
var ErrNotDir = errors.New("not a directory")
