// logger.go - slog setup for interactive and static runs
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// newLogger returns the process logger and a function that releases
// its output and reports any error from closing the log file.
//
// With --log-output, JSON records at debug level go to that file. An
// interactive run without it discards logs, since anything written to
// the terminal would corrupt the alt screen. Static runs log to stderr:
// text on a terminal, JSON otherwise.
func newLogger(stderr io.Writer, interactive bool, logOutput string) (*slog.Logger, func() error, error) {
	if logOutput != "" {
		file, err := os.Create(logOutput)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file %s: %w", logOutput, err)
		}
		handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
		closeFile := func() error {
			if err := file.Close(); err != nil {
				return fmt.Errorf("closing log file %s: %w", logOutput, err)
			}
			return nil
		}
		return slog.New(handler), closeFile, nil
	}

	if interactive {
		return slog.New(slog.DiscardHandler), func() error { return nil }, nil
	}

	options := &slog.HandlerOptions{Level: slog.LevelInfo}
	var handler slog.Handler
	if f, ok := stderr.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		handler = slog.NewTextHandler(stderr, options)
	} else {
		handler = slog.NewJSONHandler(stderr, options)
	}
	return slog.New(handler), func() error { return nil }, nil
}
