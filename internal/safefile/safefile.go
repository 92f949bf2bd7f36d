// Package safefile writes small files in place, reporting free space when a
// write fails.
package safefile

import (
	"fmt"
	"os"
	"path/filepath"
)

// Write truncates and writes path, creating parent directories as needed.
// On failure the error names the path and the space left on its filesystem.
func Write(path string, data []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating parent of %s: %w", path, err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return writeError(path, "open", err)
	}

	if _, err := file.Write(data); err != nil {
		_ = file.Close() //nolint:errcheck // write error takes precedence
		return writeError(path, "write", err)
	}
	if err := file.Sync(); err != nil {
		_ = file.Close() //nolint:errcheck // sync error takes precedence
		return writeError(path, "sync", err)
	}
	if err := file.Close(); err != nil {
		return writeError(path, "close", err)
	}
	return nil
}

// Error is returned when Write fails.
type Error struct {
	Path      string
	Op        string
	Available int64 // bytes free on the target filesystem, -1 if unknown
	Err       error
}

func (e *Error) Error() string {
	if e.Available < 0 {
		return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
	}
	gib := float64(e.Available) / (1 << 30)
	return fmt.Sprintf("failed to %s %s: %v (%.3fGB available)", e.Op, e.Path, e.Err, gib)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

func writeError(path, op string, err error) error {
	return &Error{
		Path:      path,
		Op:        op,
		Available: availableBytes(filepath.Dir(path)),
		Err:       err,
	}
}
