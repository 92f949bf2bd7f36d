package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/CamRed25/Fluorine-Manager/internal/output"
)

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestMigrate_NothingToDo(t *testing.T) {
	testHome(t)

	stdout, _, err := execute(t, "migrate", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got := decodeJSON(t, stdout)["outcome"]; got != "not_needed" {
		t.Errorf("outcome = %v, want not_needed", got)
	}
}

func TestMigrate_Moves(t *testing.T) {
	home := testHome(t)
	writeTestFile(t, filepath.Join(home, ".local", "share", "fluorine", "stylesheets", "dark.qss"), "dark")

	stdout, _, err := execute(t, "migrate")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "Migrated legacy data") {
		t.Errorf("stdout = %q", stdout)
	}
	moved := filepath.Join(home, ".var", "app", "com.fluorine.manager", "stylesheets", "dark.qss")
	if _, err := os.Stat(moved); err != nil {
		t.Errorf("dark.qss not moved: %v", err)
	}
}

func TestMigrate_DryRunAndFrom(t *testing.T) {
	home := testHome(t)
	from := filepath.Join(t.TempDir(), "old")
	writeTestFile(t, filepath.Join(from, "a.txt"), "a")

	stdout, _, err := execute(t, "migrate", "--dry-run", "--from", from, "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	result := decodeJSON(t, stdout)
	if result["outcome"] != "dry_run" || result["files"] != float64(1) {
		t.Errorf("result = %v", result)
	}
	if _, err := os.Stat(filepath.Join(home, ".var")); err == nil {
		t.Error("dry run created the data directory")
	}
}

func TestMigrate_SkippedRequire(t *testing.T) {
	home := testHome(t)
	writeTestFile(t, filepath.Join(home, ".local", "share", "fluorine", "a.txt"), "legacy")
	writeTestFile(t, filepath.Join(home, ".var", "app", "com.fluorine.manager", "a.txt"), "current")

	if _, _, err := execute(t, "migrate"); err != nil {
		t.Errorf("skip without --require should succeed, got %v", err)
	}

	_, _, err := execute(t, "migrate", "--require")
	if output.GetExitCode(err) != output.ExitConflict {
		t.Errorf("exit code = %d, want %d", output.GetExitCode(err), output.ExitConflict)
	}
}

func TestMigrate_UnknownHome(t *testing.T) {
	testHome(t)
	unsetHome(t)

	_, _, err := execute(t, "migrate")
	if output.GetExitCode(err) != output.ExitUserError {
		t.Errorf("exit code = %d, want %d (err=%v)", output.GetExitCode(err), output.ExitUserError, err)
	}
}
