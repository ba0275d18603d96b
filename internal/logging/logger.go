// Package logging hands out logrus loggers tagged with a component name.
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = logrus.WarnLevel

var (
	base     *logrus.Logger
	baseOnce sync.Once

	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex
)

func root() *logrus.Logger {
	baseOnce.Do(func() {
		base = logrus.New()
		base.SetOutput(os.Stderr)
		base.SetLevel(levelFromEnv())
		interactive := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
		base.SetFormatter(&logrus.TextFormatter{
			DisableColors:    !interactive,
			DisableTimestamp: interactive,
			FullTimestamp:    !interactive,
		})
	})
	return base
}

func levelFromEnv() logrus.Level {
	if s := os.Getenv("SWITCHER_LOG_LEVEL"); s != "" {
		if lvl, err := logrus.ParseLevel(s); err == nil {
			return lvl
		}
	}
	return DefaultLevel
}

// NewLogger returns the logger for component, creating it on first use.
// All component loggers share one underlying logrus.Logger.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if l, ok := loggers[component]; ok {
		return l
	}
	l := root().WithField("component", component)
	loggers[component] = l
	return l
}

// SetLevel parses level and applies it to every component logger.
// An empty level is ignored.
func SetLevel(level string) error {
	if level == "" {
		return nil
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	root().SetLevel(lvl)
	return nil
}

// SetOutput redirects every component logger to w.
func SetOutput(w io.Writer) {
	root().SetOutput(w)
}

// Discard returns a logger that drops everything. Useful in tests.
func Discard() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}
