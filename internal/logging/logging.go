// Package logging configures the process-wide logrus logger. The terminal
// belongs to the game screen, so log output goes to a file.
package logging

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// Options selects where and how much to log.
type Options struct {
	File  string // Empty discards all output
	Level string // logrus level name, e.g. "info" or "debug"
}

// Setup points the standard logger at opts.File and returns a function that
// closes it.
func Setup(opts Options) (closeFn func() error, err error) {
	level := log.InfoLevel
	if opts.Level != "" {
		level, err = log.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
	}

	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		DisableColors:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})

	if opts.File == "" {
		log.SetOutput(io.Discard)
		return func() error { return nil }, nil
	}

	f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: open %s: %w", opts.File, err)
	}
	log.SetOutput(f)

	return func() error {
		log.SetOutput(os.Stderr)
		return f.Close()
	}, nil
}
