package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/CamRed25/Fluorine-Manager/internal/output"
)

func TestThemes_ListsAndOrders(t *testing.T) {
	home := testHome(t)
	data := filepath.Join(home, ".var", "app", "com.fluorine.manager")
	instance := filepath.Join(t.TempDir(), "skyrim")
	writeTestFile(t, filepath.Join(os.Getenv("MO2_BASE_DIR"), "stylesheets", "Paper Dark.qss"), "base")
	writeTestFile(t, filepath.Join(instance, "stylesheets", "Paper Dark.qss"), "instance")
	writeTestFile(t, filepath.Join(data, "stylesheets", "custom.qss"), "user")

	stdout, _, err := execute(t, "themes", "--instance", instance, "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	result := decodeJSON(t, stdout)
	themes, ok := result["themes"].([]any)
	if !ok || len(themes) != 2 {
		t.Fatalf("themes = %v, want 2", result["themes"])
	}
	first := themes[0].(map[string]any)
	if first["name"] != "Paper Dark" || !strings.HasPrefix(first["path"].(string), os.Getenv("MO2_BASE_DIR")) {
		t.Errorf("first theme = %v, want base Paper Dark", first)
	}
	dirs := result["dirs"].([]any)
	if len(dirs) != 3 {
		t.Errorf("dirs = %v, want 3", dirs)
	}
}

func TestThemes_None(t *testing.T) {
	testHome(t)

	stdout, _, err := execute(t, "themes")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "No themes found") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestThemes_StrictHomeFromConfig(t *testing.T) {
	testHome(t)
	writeTestFile(t, filepath.Join(os.Getenv("FLUORINE_CONFIG_HOME"), "config.yaml"), "strict_home: true\n")
	unsetHome(t)

	_, _, err := execute(t, "themes")
	if output.GetExitCode(err) != output.ExitUserError {
		t.Errorf("exit code = %d, want %d (err=%v)", output.GetExitCode(err), output.ExitUserError, err)
	}
}

func TestThemes_UnreadableExtraDir(t *testing.T) {
	home := testHome(t)
	writeTestFile(t, filepath.Join(home, ".var", "app", "com.fluorine.manager", "stylesheets", "dark.qss"), "user")
	notDir := filepath.Join(t.TempDir(), "themes.txt")
	writeTestFile(t, notDir, "x")
	writeTestFile(t, filepath.Join(os.Getenv("FLUORINE_CONFIG_HOME"), "config.yaml"),
		"extra_stylesheet_dirs:\n  - "+notDir+"\n")

	stdout, stderr, err := execute(t, "themes", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	result := decodeJSON(t, stdout)
	if themes := result["themes"].([]any); len(themes) != 1 {
		t.Errorf("themes = %v, want dark only", themes)
	}
	if skipped := result["skipped"].([]any); len(skipped) != 1 {
		t.Errorf("skipped = %v, want %s", skipped, notDir)
	}
	if !strings.Contains(stderr, "skipping unreadable stylesheet directory") {
		t.Errorf("stderr = %q", stderr)
	}
}
