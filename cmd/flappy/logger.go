package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// newLogger builds a logger that writes to w at the level named by flagLogLevel.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// openLogFile opens a rotating log file so the terminal stays free for the game.
func openLogFile(path string) (*lumberjack.Logger, error) {
	path, err := storage.ExpandHome(path)
	if err != nil {
		return nil, err
	}

	return &lumberjack.Logger{
		Filename:   filepath.Clean(path),
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
	}, nil
}
