//go:build linux || darwin || freebsd

package migrate

import (
	"context"
	"path/filepath"
	"syscall"
	"testing"

	"golang.org/x/sys/unix"
)

func TestRun_CrossDeviceSkipsSpecialFiles(t *testing.T) {
	forceRename(t, syscall.EXDEV)
	from, to := paths(t)
	writeTree(t, from, map[string]string{"a.txt": "a"})
	if err := unix.Mkfifo(filepath.Join(from, "mo.pipe"), 0o600); err != nil {
		t.Skipf("mkfifo unsupported: %v", err)
	}

	res, err := Run(context.Background(), Options{From: from, To: to})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Outcome != OutcomeCopied {
		t.Errorf("Outcome = %q, want %q", res.Outcome, OutcomeCopied)
	}
	assertFile(t, filepath.Join(to, "a.txt"), "a")
	assertMissing(t, filepath.Join(to, "mo.pipe"))
	assertMissing(t, from)
}
