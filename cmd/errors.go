package cmd

import "errors"

// errPanelRunning indicates another `switcher serve` holds the panel lock.
var errPanelRunning = errors.New("another switcher panel is already running")
