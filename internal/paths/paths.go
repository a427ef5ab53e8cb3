// Package paths resolves the configuration directory and the notes file location.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName names the per-user configuration directory.
const AppName = "scribe"

// DefaultNotesFile is the notes file used when nothing else is configured,
// relative to the working directory.
const DefaultNotesFile = "notes.json"

// Environment variable names for location overrides.
const (
	EnvConfigDir = "SCRIBE_CONFIG_DIR"
	EnvFile      = "SCRIBE_FILE"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/scribe (fallback ~/.config/scribe)
// macOS:   ~/Library/Application Support/scribe
// Windows: %APPDATA%/scribe
func DefaultConfigDir() (string, error) {
	if runtime.GOOS == "linux" {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, AppName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", AppName), nil
	}
	dir, err := platformDir.userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName), nil
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > SCRIBE_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveNotesFile returns the notes file path following the precedence
// chain: flag > SCRIBE_FILE env > config file value > DefaultNotesFile.
// Relative paths are kept relative to the working directory.
func ResolveNotesFile(flag, configValue string) string {
	if flag != "" {
		return flag
	}
	if env := os.Getenv(EnvFile); env != "" {
		return env
	}
	if configValue != "" {
		return configValue
	}
	return DefaultNotesFile
}
