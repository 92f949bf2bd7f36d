package migrate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// copyThenRemove copies the tree at from to to and removes from once every
// file is in place. On failure the partial target is removed and from is
// left untouched, so the next run starts over.
func copyThenRemove(ctx context.Context, from, to string, log *zerolog.Logger) error {
	if err := copyTree(ctx, from, to, log); err != nil {
		if rmErr := os.RemoveAll(to); rmErr != nil {
			err = errors.Join(err, fmt.Errorf("cleaning up %s: %w", to, rmErr))
		}
		return err
	}
	if err := os.RemoveAll(from); err != nil {
		return fmt.Errorf("removing %s after copy: %w", from, err)
	}
	return nil
}

func copyTree(ctx context.Context, from, to string, log *zerolog.Logger) error {
	return filepath.WalkDir(from, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(from, path)
		if err != nil {
			return err
		}
		dest := filepath.Join(to, rel)

		info, err := d.Info()
		if err != nil {
			return err
		}

		switch {
		case d.IsDir():
			return os.MkdirAll(dest, info.Mode().Perm()|0o700)
		case info.Mode()&fs.ModeSymlink != 0:
			target, err := os.Readlink(path)
			if err != nil {
				return err
			}
			return os.Symlink(target, dest)
		case info.Mode().IsRegular():
			log.Debug().Str("file", rel).Msg("copying")
			return copyFile(path, dest, info.Mode().Perm())
		default:
			log.Debug().Str("file", rel).Msg("skipping special file")
			return nil
		}
	})
}

func copyFile(src, dst string, perm os.FileMode) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck // read-only handle

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copying %s: %w", src, err)
	}
	return nil
}
