package datadir

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func envMap(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestResolver_Dir(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"home set", map[string]string{"HOME": "/home/alice"}, "/home/alice/.var/app/com.fluorine.manager"},
		{"home unset", map[string]string{}, "/tmp/.var/app/com.fluorine.manager"},
		{"home empty", map[string]string{"HOME": ""}, "/tmp/.var/app/com.fluorine.manager"},
		{"trailing slash", map[string]string{"HOME": "/home/bob/"}, "/home/bob/.var/app/com.fluorine.manager"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Resolver{LookupEnv: envMap(tt.env)}
			if got := r.Dir(); got != tt.want {
				t.Errorf("Dir() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolver_Resolve_Source(t *testing.T) {
	r := Resolver{LookupEnv: envMap(map[string]string{"HOME": "/home/alice"})}
	res := r.Resolve()
	if !res.HomeKnown() {
		t.Error("HomeKnown() = false, want true")
	}
	if res.Home != "/home/alice" {
		t.Errorf("Home = %q, want %q", res.Home, "/home/alice")
	}

	r = Resolver{LookupEnv: envMap(nil)}
	res = r.Resolve()
	if res.HomeKnown() {
		t.Error("HomeKnown() = true, want false")
	}
	if res.Source != SourceFallback {
		t.Errorf("Source = %v, want %v", res.Source, SourceFallback)
	}
	if res.Home != FallbackHome {
		t.Errorf("Home = %q, want %q", res.Home, FallbackHome)
	}
}

func TestResolver_ResolveStrict(t *testing.T) {
	r := Resolver{LookupEnv: envMap(nil)}
	if _, err := r.ResolveStrict(); !errors.Is(err, ErrHomeUnknown) {
		t.Errorf("ResolveStrict() error = %v, want ErrHomeUnknown", err)
	}

	r = Resolver{LookupEnv: envMap(map[string]string{"HOME": "/home/alice"})}
	got, err := r.ResolveStrict()
	if err != nil {
		t.Fatalf("ResolveStrict() error = %v", err)
	}
	if got != "/home/alice/.var/app/com.fluorine.manager" {
		t.Errorf("ResolveStrict() = %q", got)
	}
}

func TestResolution_JSON(t *testing.T) {
	res := Resolver{LookupEnv: envMap(nil)}.Resolve()
	data, err := json.Marshal(res)
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded["source"] != "fallback" {
		t.Errorf("source = %v, want %q", decoded["source"], "fallback")
	}
}

func TestDir_ProcessEnv(t *testing.T) {
	t.Setenv("HOME", "/home/alice")
	if got := Dir(); got != "/home/alice/.var/app/com.fluorine.manager" {
		t.Errorf("Dir() = %q", got)
	}

	_ = os.Unsetenv("HOME") //nolint:errcheck // restored by t.Setenv cleanup
	if got := Dir(); got != "/tmp/.var/app/com.fluorine.manager" {
		t.Errorf("Dir() with HOME unset = %q", got)
	}
}

func TestDir_Idempotent(t *testing.T) {
	t.Setenv("HOME", "/home/carol")
	first := Dir()
	for range 10 {
		if got := Dir(); got != first {
			t.Fatalf("Dir() = %q, want %q", got, first)
		}
	}
}

func TestDir_NoFilesystemMutation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := Dir()
	if _, err := os.Stat(dir); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Stat(%q) error = %v, want not exist", dir, err)
	}
	if _, err := os.Stat(filepath.Join(home, ".var")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf(".var was created under home")
	}
}

func TestDir_Concurrent(t *testing.T) {
	r := Resolver{LookupEnv: envMap(map[string]string{"HOME": "/home/dave"})}
	want := r.Dir()

	var wg sync.WaitGroup
	errs := make(chan string, 32)
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := r.Dir(); got != want {
				errs <- got
			}
		}()
	}
	wg.Wait()
	close(errs)
	for got := range errs {
		t.Errorf("concurrent Dir() = %q, want %q", got, want)
	}
}

func TestLayout(t *testing.T) {
	l := NewLayout("/data")
	if got := l.Stylesheets(); got != "/data/stylesheets" {
		t.Errorf("Stylesheets() = %q", got)
	}
	if got := l.Logs(); got != "/data/logs" {
		t.Errorf("Logs() = %q", got)
	}
	if got := LegacyDir("/home/alice"); got != "/home/alice/.local/share/fluorine" {
		t.Errorf("LegacyDir() = %q", got)
	}
}
