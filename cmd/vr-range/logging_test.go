package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestSetupLoggingDisabled(t *testing.T) {
	t.Chdir(t.TempDir())

	if f := setupLogging(false); f != nil {
		f.Close()
		t.Fatal("setupLogging(false) opened a file")
	}
	if log.Writer() != io.Discard {
		t.Errorf("std log writer = %v, want io.Discard", log.Writer())
	}
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Errorf("log dir created with debug off: %v", err)
	}
	if l := newLogger(nil); l.GetLevel() != zerolog.Disabled {
		t.Errorf("newLogger(nil) level = %v, want disabled", l.GetLevel())
	}
}

func TestSetupLoggingDebug(t *testing.T) {
	t.Chdir(t.TempDir())

	f := setupLogging(true)
	if f == nil {
		t.Fatal("setupLogging(true) = nil")
	}
	defer f.Close()

	l := newLogger(f)
	l.Info().Str("round", "r1").Msg("round started")
	log.Print("from std log")

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	for _, want := range []string{`"round":"r1"`, "from std log"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("log file missing %q:\n%s", want, data)
		}
	}
}

func TestSetupLoggingRotation(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(path, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatal(err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("setupLogging(true) = nil")
	}
	defer f.Close()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("fresh log size = %d, want 0", info.Size())
	}
	rotated, _ := filepath.Glob(filepath.Join(logDir, "vr-range-*.log"))
	if len(rotated) != 1 {
		t.Errorf("rotated files = %v, want 1", rotated)
	}
}
