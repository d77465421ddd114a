package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"breathe.klederson.com/internal/animation"
	"breathe.klederson.com/internal/config"
	"breathe.klederson.com/internal/shape"
	"github.com/rs/zerolog/log"
)

func TestOverrideConfig(t *testing.T) {
	cfg, err := overrideConfig("", 0)
	if err != nil || cfg != nil {
		t.Fatalf("overrideConfig(\"\", 0) = %v, %v; want nil, nil", cfg, err)
	}

	cfg, err = overrideConfig("square", 0)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Shape != shape.Square || cfg.PhaseDurationsMs[0] != 4000 {
		t.Errorf("got %+v", cfg)
	}

	cfg, err = overrideConfig("", 2500)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Shape != shape.Triangle || cfg.CycleDurationMs() != 7500 {
		t.Errorf("got %+v", cfg)
	}

	if _, err := overrideConfig("circle", 0); err == nil {
		t.Error("expected error for unknown shape")
	}
	if _, err := overrideConfig("square", -5); err == nil {
		t.Error("expected error for negative duration")
	}
}

func TestTraceRows(t *testing.T) {
	var buf bytes.Buffer
	err := trace(&buf, animation.UniformConfig(shape.Square, 4000), 1000*time.Millisecond, 4000*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// path, header, t=0, then one row per second
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want 7:\n%s", len(lines), buf.String())
	}
	if want := "# square path M 100 75 L 300 75 L 300 275 L 100 275 Z"; lines[0] != want {
		t.Errorf("path line = %q, want %q", lines[0], want)
	}
	if !strings.HasPrefix(lines[1], "T_MS") || !strings.Contains(lines[1], "HEAD") {
		t.Errorf("header = %q", lines[1])
	}

	first := strings.Fields(lines[2])
	if first[0] != "0" || first[1] != "0" {
		t.Errorf("first row = %v", first)
	}

	// after one full phase the marker sits at the start of phase 1 and the
	// trail head has travelled a quarter of the 800 unit path
	last := strings.Fields(lines[6])
	if last[0] != "4000" || last[1] != "1" {
		t.Errorf("row at 4000ms = %v, want phase 1", last)
	}
	if head := last[len(last)-3]; head != "200.00" {
		t.Errorf("trail head at 4000ms = %s, want 200.00", head)
	}
	if !strings.Contains(lines[3], "on") {
		t.Errorf("pulse should be visible at 1000ms: %q", lines[3])
	}
}

func TestTraceRejectsInvalidConfig(t *testing.T) {
	var buf bytes.Buffer
	err := trace(&buf, animation.Config{Shape: shape.Square, PhaseDurationsMs: []int{1}}, time.Second, time.Second)
	if err == nil {
		t.Error("expected invalid config error")
	}
}

func TestSetupLoggingFileMode(t *testing.T) {
	saved := log.Logger
	t.Cleanup(func() { log.Logger = saved })

	path := filepath.Join(t.TempDir(), "logs", "breathe.log")
	f, err := setupLogging(true, config.LogSettings{File: path})
	if err != nil {
		t.Fatal(err)
	}
	if f == nil {
		t.Fatal("TUI mode should return the open log file")
	}
	log.Info().Msg("hello")
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file = %q, want the logged message", data)
	}
}

func TestSetupLoggingConsoleMode(t *testing.T) {
	saved := log.Logger
	t.Cleanup(func() { log.Logger = saved })

	f, err := setupLogging(false, config.LogSettings{})
	if err != nil || f != nil {
		t.Errorf("setupLogging(false) = %v, %v; want nil, nil", f, err)
	}
}
