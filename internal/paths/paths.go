// Package paths gathers every location the fluorine tools know about into a
// single report.
package paths

import (
	"os"

	"github.com/CamRed25/Fluorine-Manager/internal/basedir"
	"github.com/CamRed25/Fluorine-Manager/internal/config"
	"github.com/CamRed25/Fluorine-Manager/internal/datadir"
)

// Entry names.
const (
	NameData        = "data"
	NameStylesheets = "stylesheets"
	NameLogs        = "logs"
	NameLegacy      = "legacy"
	NameConfig      = "config"
	NameBase        = "base"
)

// Options controls Gather.
type Options struct {
	Resolver  datadir.Resolver
	Config    *config.Config
	ConfigDir string
}

// Entry is one named location.
type Entry struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
}

// Report is the result of Gather.
type Report struct {
	Data    datadir.Resolution `json:"data"`
	Entries []Entry            `json:"entries"`
}

// Lookup returns the path of the named entry, or "".
func (r Report) Lookup(name string) string {
	for _, e := range r.Entries {
		if e.Name == name {
			return e.Path
		}
	}
	return ""
}

// LegacyDir returns the configured legacy directory, or the default one
// under home.
func LegacyDir(cfg *config.Config, home string) string {
	if cfg != nil && cfg.LegacyDir != "" {
		return cfg.LegacyDir
	}
	return datadir.LegacyDir(home)
}

// Gather resolves the data directory and lists the known locations.
// Nothing is created; Exists reflects a stat at call time.
func Gather(opts Options) Report {
	res := opts.Resolver.Resolve()
	layout := datadir.NewLayout(res.Path)

	entries := []Entry{
		{Name: NameData, Path: res.Path},
		{Name: NameStylesheets, Path: layout.Stylesheets()},
		{Name: NameLogs, Path: layout.Logs()},
		{Name: NameLegacy, Path: LegacyDir(opts.Config, res.Home)},
	}
	if opts.ConfigDir != "" {
		entries = append(entries, Entry{Name: NameConfig, Path: opts.ConfigDir})
	}
	if base, err := basedir.Base(); err == nil {
		entries = append(entries, Entry{Name: NameBase, Path: base})
	}

	for i := range entries {
		_, err := os.Stat(entries[i].Path)
		entries[i].Exists = err == nil
	}
	return Report{Data: res, Entries: entries}
}
