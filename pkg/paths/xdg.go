package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// AppName is the directory name used below the XDG base directories
	AppName = "nominal"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "nominal.log"

	// LockFileName is the name of the lock held while renames are applied
	LockFileName = "nominal.lock"

	// EnvConfigDir overrides the configuration directory
	EnvConfigDir = "NOMINAL_CONFIG_DIR"

	// EnvStateDir overrides the state directory
	EnvStateDir = "NOMINAL_STATE_DIR"
)

// ConfigDir returns the directory holding nominal's configuration
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, AppName)
}

// StateDir returns the directory holding nominal's state (logs)
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.StateHome, AppName)
}

// ConfigFile returns the path of the user configuration file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// LogFile returns the path of the log file
func LogFile() string {
	return filepath.Join(StateDir(), LogFileName)
}

// LockFile returns the path of the lock held while renames are applied
func LockFile() string {
	return filepath.Join(StateDir(), LockFileName)
}
