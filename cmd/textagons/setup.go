package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/shadowFAQs/textagons/internal/config"
	"github.com/shadowFAQs/textagons/internal/dictionary"
)

const defaultLogPath = "~/.textagons/textagons.log"

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// openLogger opens the event log. The TUI owns the terminal, so the log
// always goes to a file; an empty path discards it.
func openLogger(path, level string) (logger *log.Logger, closeLog func() error, err error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	var w io.Writer = io.Discard
	closeLog = func() error { return nil }
	if path != "" {
		path, err = expandHome(path)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closeLog = f, f.Close
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "textagons",
		Level:           lvl,
	})
	return logger, closeLog, nil
}

// loadConfig applies --config and the usual search order.
func loadConfig() (config.Config, error) {
	return config.Load(flagConfig)
}

// loadDictionary reads --dict, or the built-in list when it is empty.
func loadDictionary() (*dictionary.Dictionary, error) {
	if flagDict == "" {
		return dictionary.Default()
	}
	path, err := expandHome(flagDict)
	if err != nil {
		return nil, err
	}
	return dictionary.LoadFile(path)
}
