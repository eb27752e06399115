// Package paths resolves the configuration directory and the scenario file
// used by the ocean CLI.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// File and directory names.
const (
	AppDirName          = "ocean"
	ConfigFileName      = "config.yaml"
	DefaultScenarioName = "scenario.yaml"
)

// Environment variable names for overrides.
const (
	EnvConfigDir = "OCEAN_CONFIG_DIR"
	EnvScenario  = "OCEAN_SCENARIO"
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
// Linux:   $XDG_CONFIG_HOME/ocean (fallback ~/.config/ocean)
// macOS:   ~/Library/Application Support/ocean
// Windows: %APPDATA%/ocean
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, AppDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", AppDirName), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, AppDirName), nil
	}
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > OCEAN_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveScenario returns the scenario file path following the precedence
// chain: arg > OCEAN_SCENARIO env > config.yaml scenario > configDir/scenario.yaml.
//
// A relative config.yaml value is taken relative to configDir; a relative
// arg or env value is taken relative to the working directory.
func ResolveScenario(arg, configValue, configDir string) (string, error) {
	if arg != "" {
		return filepath.Abs(arg)
	}
	if env := os.Getenv(EnvScenario); env != "" {
		return filepath.Abs(env)
	}
	if configValue != "" {
		if filepath.IsAbs(configValue) {
			return configValue, nil
		}
		return filepath.Join(configDir, configValue), nil
	}
	return filepath.Join(configDir, DefaultScenarioName), nil
}
