package datadir

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// DirPerm is the mode used for the data root and its subdirectories.
const DirPerm os.FileMode = 0o700

// Ensure creates root and the layout subdirectories below it.
// Existing directories are left untouched.
func Ensure(ctx context.Context, root string) error {
	if root == "" {
		return errors.New("ensure data dir: empty path")
	}

	dirs := append([]string{root}, NewLayout(root).Subdirs()...)
	for _, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := os.MkdirAll(dir, DirPerm); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	return nil
}

// Status describes the state of a data root on disk.
type Status struct {
	Path     string `json:"path"`
	Exists   bool   `json:"exists"`
	IsDir    bool   `json:"is_dir"`
	Writable bool   `json:"writable"`
	Err      string `json:"error,omitempty"`
}

// Check inspects root without creating it. Writability is probed by
// creating and removing a temporary file, so it is only attempted when
// root is an existing directory.
func Check(root string) Status {
	st := Status{Path: root}

	info, err := os.Stat(root)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			st.Err = err.Error()
		}
		return st
	}
	st.Exists = true
	st.IsDir = info.IsDir()
	if !st.IsDir {
		return st
	}

	probe, err := os.CreateTemp(root, ".probe-*")
	if err != nil {
		st.Err = err.Error()
		return st
	}
	name := probe.Name()
	_ = probe.Close()   //nolint:errcheck // probe file carries no data
	_ = os.Remove(name) //nolint:errcheck // best-effort cleanup
	st.Writable = true
	return st
}
