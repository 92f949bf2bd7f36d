// Package basedir locates the Fluorine installation directory.
package basedir

import (
	"fmt"
	"os"
	"path/filepath"
)

// Env overrides the base directory, e.g. from an AppImage wrapper.
const Env = "MO2_BASE_DIR"

// executable is replaced in tests.
var executable = os.Executable

// Base returns $MO2_BASE_DIR when set and non-empty, otherwise the directory
// holding the running executable.
func Base() (string, error) {
	if dir := os.Getenv(Env); dir != "" {
		return dir, nil
	}

	exe, err := executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}
