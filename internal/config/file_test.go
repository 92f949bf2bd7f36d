package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, &Config{}) {
		t.Errorf("Load() = %+v, want zero value", cfg)
	}
}

func TestLoad_EmptyDir(t *testing.T) {
	cfg, err := Load("")
	if err != nil || cfg == nil {
		t.Fatalf("Load(\"\") = %v, %v", cfg, err)
	}
}

func TestLoad_ParsesYAML(t *testing.T) {
	dir := t.TempDir()
	content := `strict_home: true
legacy_dir: /old/fluorine
extra_stylesheet_dirs:
  - /usr/share/fluorine/themes
log_level: debug
`
	if err := os.WriteFile(Path(dir), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := &Config{
		StrictHome:          true,
		LegacyDir:           "/old/fluorine",
		ExtraStylesheetDirs: []string{"/usr/share/fluorine/themes"},
		LogLevel:            "debug",
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("Load() = %+v, want %+v", cfg, want)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantSub string
	}{
		{"bad yaml", "strict_home: [", "parsing"},
		{"bad level", "log_level: loud\n", "LogLevel"},
		{"empty theme dir", "extra_stylesheet_dirs:\n  - \"\"\n", "ExtraStylesheetDirs"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if err := os.WriteFile(Path(dir), []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}
			_, err := Load(dir)
			if err == nil {
				t.Fatal("Load() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantSub)
			}
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "fluorine")
	cfg := &Config{StrictHome: true, LogLevel: "info"}

	if err := Save(dir, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, cfg) {
		t.Errorf("Load() after Save() = %+v, want %+v", got, cfg)
	}
}

func TestSave_RejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	if err := Save(dir, &Config{LogLevel: "verbose"}); err == nil {
		t.Fatal("Save() expected validation error")
	}
	if _, err := os.Stat(Path(dir)); err == nil {
		t.Error("invalid config was written")
	}
}
