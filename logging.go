package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"breathe.klederson.com/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// setupLogging routes zerolog to a file in TUI mode so output does not
// corrupt the alt screen, and to stderr otherwise. The returned file is nil
// outside TUI mode; callers close it on exit.
func setupLogging(tui bool, s config.LogSettings) (*os.File, error) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if s.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if !tui {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
		return nil, nil
	}

	logFile := s.File
	if logFile == "" {
		dir, err := config.EnsureDataDir()
		if err != nil {
			return nil, err
		}
		logFile = filepath.Join(dir, "logs", "breathe.log")
	}
	if err := os.MkdirAll(filepath.Dir(logFile), 0750); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}

	//nolint:gosec // G304: path comes from the user's own config
	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	log.Logger = zerolog.New(file).With().Timestamp().Logger()
	log.Debug().Str("log_file", logFile).Msg("File logging initialized")
	return file, nil
}
