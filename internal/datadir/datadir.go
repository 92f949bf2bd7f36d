// Package datadir resolves the Fluorine data directory.
//
// All Fluorine state lives under ~/.var/app/com.fluorine.manager. The
// resolver only reads the environment: it never creates, stats, or caches
// anything, so it is safe to call from any goroutine.
package datadir

import (
	"errors"
	"os"
	"path/filepath"
)

const (
	// HomeEnv is the environment variable naming the user's home directory.
	HomeEnv = "HOME"

	// FallbackHome is substituted when HomeEnv is unset or empty.
	FallbackHome = "/tmp"

	// AppID is the reverse-domain identifier of the application.
	AppID = "com.fluorine.manager"
)

// Suffix is the path below the home directory that holds the data root.
var Suffix = filepath.Join(".var", "app", AppID)

// ErrHomeUnknown is returned by strict resolution when the home directory
// cannot be determined from the environment.
var ErrHomeUnknown = errors.New("home directory unknown: " + HomeEnv + " is not set")

// Source records where the home directory of a Resolution came from.
type Source int

const (
	// SourceEnv means the home directory was read from HomeEnv.
	SourceEnv Source = iota
	// SourceFallback means HomeEnv was missing and FallbackHome was used.
	SourceFallback
)

// String returns "env" or "fallback".
func (s Source) String() string {
	if s == SourceFallback {
		return "fallback"
	}
	return "env"
}

// MarshalText encodes the source by name.
func (s Source) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Resolution is the result of resolving the data directory.
type Resolution struct {
	Path   string `json:"path"`
	Home   string `json:"home"`
	Source Source `json:"source"`
}

// HomeKnown reports whether the home directory came from the environment.
func (r Resolution) HomeKnown() bool {
	return r.Source == SourceEnv
}

// Resolver computes the data directory from an environment lookup function.
// The zero value uses os.LookupEnv.
type Resolver struct {
	LookupEnv func(key string) (string, bool)
}

// Resolve returns the data directory together with the source of the home
// directory.
func (r Resolver) Resolve() Resolution {
	lookup := r.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if home, ok := lookup(HomeEnv); ok && home != "" {
		return Resolution{Path: filepath.Join(home, Suffix), Home: home, Source: SourceEnv}
	}
	return Resolution{
		Path:   filepath.Join(FallbackHome, Suffix),
		Home:   FallbackHome,
		Source: SourceFallback,
	}
}

// Dir returns the data directory, falling back to FallbackHome silently.
func (r Resolver) Dir() string {
	return r.Resolve().Path
}

// ResolveStrict returns the data directory, or ErrHomeUnknown instead of
// falling back.
func (r Resolver) ResolveStrict() (string, error) {
	res := r.Resolve()
	if !res.HomeKnown() {
		return "", ErrHomeUnknown
	}
	return res.Path, nil
}

// Dir returns the Fluorine data directory: $HOME/.var/app/com.fluorine.manager,
// or /tmp/.var/app/com.fluorine.manager when HOME is unset.
func Dir() string {
	return Resolver{}.Dir()
}

// Resolve is Resolver.Resolve on the process environment.
func Resolve() Resolution {
	return Resolver{}.Resolve()
}

// ResolveStrict is Resolver.ResolveStrict on the process environment.
func ResolveStrict() (string, error) {
	return Resolver{}.ResolveStrict()
}
