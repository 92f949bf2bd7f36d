// Package stylesheets discovers Qt stylesheet themes (*.qss) across the
// install, instance and user data directories.
package stylesheets

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Subdir is the directory name that holds themes under each search root.
const Subdir = "stylesheets"

// Ext is the theme file extension.
const Ext = ".qss"

// Theme is a discovered stylesheet.
type Theme struct {
	Name string `json:"name"` // file name without extension
	File string `json:"file"` // file name, the key used for de-duplication
	Path string `json:"path"`
	Dir  string `json:"dir"`
}

// SearchDirs returns the directories to scan, in priority order:
// <base>/stylesheets, <instance>/stylesheets, <data>/stylesheets, then extra.
// Empty roots are skipped and duplicates dropped.
func SearchDirs(base, instance, data string, extra []string) []string {
	var dirs []string
	seen := make(map[string]bool)
	add := func(dir string) {
		if dir == "" {
			return
		}
		dir = filepath.Clean(dir)
		if seen[dir] {
			return
		}
		seen[dir] = true
		dirs = append(dirs, dir)
	}

	for _, root := range []string{base, instance, data} {
		if root != "" {
			add(filepath.Join(root, Subdir))
		}
	}
	for _, dir := range extra {
		add(dir)
	}
	return dirs
}

// Skipped is a search directory that exists but could not be listed.
type Skipped struct {
	Dir string `json:"dir"`
	Err string `json:"error"`
}

// Discover lists the themes found in dirs. When several directories hold a
// file with the same name, the earlier directory wins. Missing directories
// are skipped silently; directories that cannot be read are skipped and
// reported. Within a directory themes are sorted by file name. Hidden files
// are ignored and symlinks count when they resolve to a regular file.
func Discover(dirs []string) ([]Theme, []Skipped) {
	var themes []Theme
	var skipped []Skipped
	seen := make(map[string]bool)

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				skipped = append(skipped, Skipped{Dir: dir, Err: err.Error()})
			}
			continue
		}

		sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
		for _, entry := range entries {
			name := entry.Name()
			if strings.HasPrefix(name, ".") || !strings.EqualFold(filepath.Ext(name), Ext) {
				continue
			}
			if seen[name] || !isThemeFile(dir, entry) {
				continue
			}
			seen[name] = true
			themes = append(themes, Theme{
				Name: strings.TrimSuffix(name, filepath.Ext(name)),
				File: name,
				Path: filepath.Join(dir, name),
				Dir:  dir,
			})
		}
	}
	return themes, skipped
}

func isThemeFile(dir string, entry fs.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	return err == nil && info.Mode().IsRegular()
}
