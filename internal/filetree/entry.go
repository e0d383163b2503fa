// Package filetree reconstructs an in-memory hierarchical tree from a flat
// list of filesystem entries discovered under a root path.
package filetree

import (
	"path"
	"path/filepath"
	"strings"
)

// Entry describes one discovered filesystem object. Entries are immutable
// once produced by the collector; the path doubles as the entry's identity.
type Entry struct {
	Path   string
	IsFile bool
}

// canonicalPathKey converts a path to its slash-joined form without a
// trailing separator. Parent lookups during tree construction use this key,
// so the same path always maps to the same node regardless of how the
// walker spelled it.
func canonicalPathKey(rawPath string) string {
	return path.Clean(filepath.ToSlash(rawPath))
}

// pathDepth returns the number of path segments in a canonical key. Sorting
// entries by depth guarantees a parent is inserted before any of its
// children.
func pathDepth(canonicalKey string) int {
	if canonicalKey == "/" {
		return 0
	}
	return strings.Count(canonicalKey, "/") + 1
}
