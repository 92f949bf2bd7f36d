package datadir

import "path/filepath"

// Layout names the well-known locations under a data root.
type Layout struct {
	Root string
}

// NewLayout returns the layout rooted at root.
func NewLayout(root string) Layout {
	return Layout{Root: root}
}

// Stylesheets is where user themes (*.qss) live.
func (l Layout) Stylesheets() string {
	return filepath.Join(l.Root, "stylesheets")
}

// Logs is where log files are written once logging starts.
func (l Layout) Logs() string {
	return filepath.Join(l.Root, "logs")
}

// Subdirs returns every subdirectory Ensure creates, in creation order.
func (l Layout) Subdirs() []string {
	return []string{l.Stylesheets(), l.Logs()}
}

// LegacyDir returns the pre-migration data location under home,
// ~/.local/share/fluorine.
func LegacyDir(home string) string {
	return filepath.Join(home, ".local", "share", "fluorine")
}
