package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const (
	logFileName = "spin-wheel.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging opens the debug log under dir when debug is set
// Without debug all records are discarded, the terminal owns stdout and stderr
// The returned file is nil when logging is disabled or the file cannot be opened
func setupLogging(dir string, debug bool) (*slog.Logger, *os.File) {
	if !debug {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nil
	}

	logPath := filepath.Join(dir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, "spin-wheel-"+time.Now().Format("20060102-150405")+".log")
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nil
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	logger.Info("logging started", "pid", os.Getpid())
	return logger, f
}
