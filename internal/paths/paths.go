// Package paths resolves where the vendors CLI keeps its configuration,
// its local store, and the optional .env credential file.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// CWD-relative directory and file names.
const (
	DefaultDataDirName = ".vendors-db"
	EnvFileName        = ".env"
	appDirName         = "vendors"
)

// Environment variables that override directory locations.
const (
	EnvConfigDir = "VENDORS_CONFIG_DIR"
	EnvDataDir   = "VENDORS_DATA_DIR"
)

// platformDir holds platform lookups so tests can replace them.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
	getwd         func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
	getwd:         os.Getwd,
}

// DefaultConfigDir returns the platform configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/vendors (fallback ~/.config/vendors)
// macOS:   ~/Library/Application Support/vendors
// Windows: %APPDATA%/vendors
func DefaultConfigDir() (string, error) {
	if runtime.GOOS == "linux" {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", appDirName), nil
	}
	dir, err := platformDir.userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDirName), nil
}

// ResolveConfigDir applies the precedence flag > VENDORS_CONFIG_DIR >
// DefaultConfigDir. Explicit values are made absolute.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir applies the precedence flag > config file value >
// VENDORS_DATA_DIR > $(CWD)/.vendors-db.
func ResolveDataDir(flag, configValue string) (string, error) {
	for _, v := range []string{flag, configValue, os.Getenv(EnvDataDir)} {
		if v != "" {
			return filepath.Abs(v)
		}
	}
	cwd, err := platformDir.getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}

// ResolveEnvFile returns the .env file to load: the flag when given,
// otherwise the first existing of $(CWD)/.env and <configDir>/.env.
// It returns "" when there is nothing to load.
func ResolveEnvFile(flag, configDir string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	cwd, err := platformDir.getwd()
	if err != nil {
		return "", err
	}
	for _, candidate := range []string{
		filepath.Join(cwd, EnvFileName),
		filepath.Join(configDir, EnvFileName),
	} {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", nil
}
