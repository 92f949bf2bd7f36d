// Package migrate moves Fluorine data from the legacy ~/.local/share/fluorine
// location back to the data directory.
//
// Run is safe to call on every start: it does nothing when there is no
// legacy directory and never overwrites a populated target.
package migrate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/CamRed25/Fluorine-Manager/internal/safefile"
)

// MarkerFile is written into the target after a successful migration.
const MarkerFile = ".migrated"

// Outcome describes what Run did.
type Outcome string

const (
	OutcomeNotNeeded Outcome = "not_needed"
	OutcomeSkipped   Outcome = "skipped"
	OutcomeMoved     Outcome = "moved"
	OutcomeCopied    Outcome = "copied"
	OutcomeDryRun    Outcome = "dry_run"
)

// Options configures a migration.
type Options struct {
	From   string
	To     string
	DryRun bool
	Logger *zerolog.Logger
}

// Result reports a migration.
type Result struct {
	Outcome Outcome `json:"outcome"`
	From    string  `json:"from"`
	To      string  `json:"to"`
	Files   int     `json:"files"`
	Reason  string  `json:"reason,omitempty"`
}

// renameFunc is swapped in tests to force the cross-device path.
var renameFunc = os.Rename

// Run performs the migration described by opts.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.From == "" || opts.To == "" {
		return nil, errors.New("migrate: source and target are required")
	}
	log := opts.Logger
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}
	res := &Result{From: opts.From, To: opts.To}

	info, err := os.Stat(opts.From)
	if errors.Is(err, os.ErrNotExist) {
		res.Outcome = OutcomeNotNeeded
		log.Debug().Str("from", opts.From).Msg("no legacy data directory")
		return res, nil
	}
	if err != nil {
		return nil, fmt.Errorf("inspecting %s: %w", opts.From, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("legacy path %s is not a directory", opts.From)
	}

	empty, err := isEmptyOrMissing(opts.To)
	if err != nil {
		return nil, fmt.Errorf("inspecting %s: %w", opts.To, err)
	}
	if !empty {
		res.Outcome = OutcomeSkipped
		res.Reason = "target already contains data"
		log.Warn().Str("from", opts.From).Str("to", opts.To).Msg("legacy data left in place: target is not empty")
		return res, nil
	}

	files, err := countFiles(opts.From)
	if err != nil {
		return nil, err
	}
	res.Files = files

	if opts.DryRun {
		res.Outcome = OutcomeDryRun
		return res, nil
	}

	restore, err := prepareTarget(opts.To)
	if err != nil {
		return nil, err
	}

	err = renameFunc(opts.From, opts.To)
	switch {
	case err == nil:
		res.Outcome = OutcomeMoved
		log.Info().Str("from", opts.From).Str("to", opts.To).Int("files", files).Msg("moved legacy data directory")
	case errors.Is(err, syscall.EXDEV):
		log.Debug().Err(err).Msg("rename crosses filesystems, copying")
		if err := copyThenRemove(ctx, opts.From, opts.To, log); err != nil {
			restore(log)
			return nil, err
		}
		res.Outcome = OutcomeCopied
		log.Info().Str("from", opts.From).Str("to", opts.To).Int("files", files).Msg("copied legacy data directory")
	default:
		restore(log)
		return nil, fmt.Errorf("moving %s to %s: %w", opts.From, opts.To, err)
	}

	marker := fmt.Sprintf("from: %s\nat: %s\n", opts.From, time.Now().UTC().Format(time.RFC3339))
	if err := safefile.Write(filepath.Join(opts.To, MarkerFile), []byte(marker), 0o600); err != nil {
		log.Warn().Err(err).Msg("writing migration marker")
	}
	return res, nil
}

// isEmptyOrMissing reports whether dir is absent or an empty directory.
func isEmptyOrMissing(dir string) (bool, error) {
	f, err := os.Open(dir)
	if errors.Is(err, os.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	defer f.Close() //nolint:errcheck // read-only handle

	info, err := f.Stat()
	if err != nil {
		return false, err
	}
	if !info.IsDir() {
		return false, nil
	}
	_, err = f.Readdirnames(1)
	if errors.Is(err, io.EOF) {
		return true, nil
	}
	return false, err
}

// prepareTarget creates the parent of to and removes an empty to, so that a
// rename can take its place. The returned func puts a removed directory back
// after a failed move.
func prepareTarget(to string) (func(*zerolog.Logger), error) {
	noop := func(*zerolog.Logger) {}
	if err := os.MkdirAll(filepath.Dir(to), 0o700); err != nil {
		return noop, fmt.Errorf("creating parent of %s: %w", to, err)
	}
	info, err := os.Stat(to)
	if errors.Is(err, os.ErrNotExist) {
		return noop, nil
	}
	if err != nil {
		return noop, fmt.Errorf("inspecting %s: %w", to, err)
	}
	if err := os.Remove(to); err != nil {
		return noop, fmt.Errorf("removing empty %s: %w", to, err)
	}
	perm := info.Mode().Perm()
	return func(log *zerolog.Logger) {
		if err := os.Mkdir(to, perm); err != nil && !errors.Is(err, os.ErrExist) {
			log.Warn().Err(err).Str("to", to).Msg("restoring empty data directory")
		}
	}, nil
}

func countFiles(root string) (int, error) {
	n := 0
	err := filepath.WalkDir(root, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			n++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("scanning %s: %w", root, err)
	}
	return n, nil
}
