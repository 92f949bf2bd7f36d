// Package config provides the configuration directory and settings file for
// the fluorine CLI.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// appName is the directory name used under the platform config root.
const appName = "fluorine"

// Dir returns the fluorine configuration directory.
//
// Resolution:
//   - $FLUORINE_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/fluorine if set
//   - %AppData%/fluorine on Windows
//   - ~/.config/fluorine otherwise
//
// Returns "" when no home directory can be found.
func Dir() string {
	if dir := os.Getenv("FLUORINE_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}
