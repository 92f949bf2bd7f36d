package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/CamRed25/Fluorine-Manager/internal/config"
	"github.com/CamRed25/Fluorine-Manager/internal/datadir"
)

func resolverFor(home string) datadir.Resolver {
	return datadir.Resolver{LookupEnv: func(key string) (string, bool) {
		if key == datadir.HomeEnv && home != "" {
			return home, true
		}
		return "", false
	}}
}

func TestGather(t *testing.T) {
	home := t.TempDir()
	t.Setenv("MO2_BASE_DIR", "/opt/fluorine")
	data := filepath.Join(home, ".var", "app", "com.fluorine.manager")
	if err := os.MkdirAll(filepath.Join(data, "stylesheets"), 0o700); err != nil {
		t.Fatal(err)
	}

	report := Gather(Options{Resolver: resolverFor(home), ConfigDir: "/cfg"})

	if report.Data.Path != data {
		t.Errorf("Data.Path = %q, want %q", report.Data.Path, data)
	}
	want := map[string]struct {
		path   string
		exists bool
	}{
		NameData:        {data, true},
		NameStylesheets: {filepath.Join(data, "stylesheets"), true},
		NameLogs:        {filepath.Join(data, "logs"), false},
		NameLegacy:      {filepath.Join(home, ".local", "share", "fluorine"), false},
		NameConfig:      {"/cfg", false},
		NameBase:        {"/opt/fluorine", false},
	}
	if len(report.Entries) != len(want) {
		t.Fatalf("len(Entries) = %d, want %d", len(report.Entries), len(want))
	}
	for _, e := range report.Entries {
		w, ok := want[e.Name]
		if !ok {
			t.Errorf("unexpected entry %q", e.Name)
			continue
		}
		if e.Path != w.path || e.Exists != w.exists {
			t.Errorf("%s = {%q %v}, want {%q %v}", e.Name, e.Path, e.Exists, w.path, w.exists)
		}
	}
}

func TestGather_ConfiguredLegacy(t *testing.T) {
	report := Gather(Options{
		Resolver: resolverFor(""),
		Config:   &config.Config{LegacyDir: "/old"},
	})
	if got := report.Lookup(NameLegacy); got != "/old" {
		t.Errorf("legacy = %q, want /old", got)
	}
	if report.Data.HomeKnown() {
		t.Error("HomeKnown() = true with HOME unset")
	}
	if got := report.Lookup(NameConfig); got != "" {
		t.Errorf("config entry = %q, want none", got)
	}
}
