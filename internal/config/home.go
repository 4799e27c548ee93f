package config

import (
	"os"
	"path/filepath"
)

const (
	// TagsweepHomeEnv is the environment variable overriding the tagsweep home directory.
	TagsweepHomeEnv = "TAGSWEEP_HOME"
	// DefaultTagsweepDir is the default directory name under user home.
	DefaultTagsweepDir = ".tagsweep"
	// LogsSubdir is the subdirectory for log files.
	LogsSubdir = "logs"
)

// TagsweepHome returns the tagsweep home directory.
// It checks TAGSWEEP_HOME first, then defaults to ~/.tagsweep.
func TagsweepHome() (string, error) {
	if home := os.Getenv(TagsweepHomeEnv); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultTagsweepDir), nil
}

// LogsDir returns the log file directory (~/.tagsweep/logs).
func LogsDir() (string, error) {
	home, err := TagsweepHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, LogsSubdir), nil
}
