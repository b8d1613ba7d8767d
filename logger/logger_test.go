package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	for _, verbose := range []bool{false, true} {
		l, err := New(verbose)
		if err != nil {
			t.Fatalf("New(%v) unexpected error: %v", verbose, err)
		}
		if got := l.Core().Enabled(zap.DebugLevel); got != verbose {
			t.Errorf("New(%v) debug enabled = %v", verbose, got)
		}
		if got := l.Core().Enabled(zap.WarnLevel); got != verbose {
			t.Errorf("New(%v) warn enabled = %v", verbose, got)
		}
	}
}

func TestNamed(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	Named(zap.New(core), "shell").Info("hello")

	entries := logs.All()
	if len(entries) != 1 || entries[0].LoggerName != "shell" {
		t.Errorf("entries = %+v, want one entry from the shell logger", entries)
	}

	// nil base is allowed
	Named(nil, "shell").Info("ignored")
}
