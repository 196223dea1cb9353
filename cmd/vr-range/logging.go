package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const (
	logDir      = "logs"
	logFileName = "vr-range.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging opens logs/vr-range.log when debug is set, rotating an oversized one
// Without debug it returns nil and std log output is discarded; the terminal is never written to
func setupLogging(debug bool) *os.File {
	log.SetOutput(io.Discard)
	if !debug {
		return nil
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil
	}

	path := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		stamp := time.Now().Format("20060102-150405")
		_ = os.Rename(path, filepath.Join(logDir, fmt.Sprintf("vr-range-%s.log", stamp)))
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

// newLogger builds the root structured logger over the debug log file
func newLogger(f *os.File) zerolog.Logger {
	if f == nil {
		return zerolog.Nop()
	}
	zerolog.TimeFieldFormat = time.RFC3339Nano
	return zerolog.New(f).With().Timestamp().Logger().Level(zerolog.DebugLevel)
}
