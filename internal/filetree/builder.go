package filetree

import (
	"fmt"
	"path/filepath"
	"sort"
)

// errorOrphanEntryFormat reports an entry whose parent never received a node.
const errorOrphanEntryFormat = "no parent node for %s: %w"

// BuildTree reconstructs the hierarchical tree for rootPath from an
// unordered, complete list of collected entries.
//
// Entries are first sorted by path-segment count so every parent directory
// is guaranteed a node before any of its children is inserted. The root node
// is created unconditionally from rootPath; each entry is then attached
// under its filesystem parent, resolved through a path-to-handle index that
// lives only for the duration of the build. An entry whose parent is absent
// from the index signals a broken collector contract and fails the build
// with ErrOrphanEntry; no partial tree is returned on any failure.
func BuildTree(rootPath string, entries []Entry) (*Tree, error) {
	orderedEntries := append([]Entry(nil), entries...)
	sort.SliceStable(orderedEntries, func(leftPosition, rightPosition int) bool {
		leftDepth := pathDepth(canonicalPathKey(orderedEntries[leftPosition].Path))
		rightDepth := pathDepth(canonicalPathKey(orderedEntries[rightPosition].Path))
		return leftDepth < rightDepth
	})

	tree := newTree(Entry{Path: rootPath, IsFile: false})
	handleIndex := map[string]NodeID{
		canonicalPathKey(rootPath): tree.Root(),
	}

	for _, currentEntry := range orderedEntries {
		parentKey := canonicalPathKey(filepath.Dir(currentEntry.Path))
		parentHandle, parentKnown := handleIndex[parentKey]
		if !parentKnown {
			return nil, fmt.Errorf(errorOrphanEntryFormat, currentEntry.Path, ErrOrphanEntry)
		}

		childHandle, insertionError := tree.insertChild(parentHandle, currentEntry)
		if insertionError != nil {
			return nil, insertionError
		}
		if sortError := tree.sortChildren(parentHandle); sortError != nil {
			return nil, sortError
		}
		handleIndex[canonicalPathKey(currentEntry.Path)] = childHandle
	}

	return tree, nil
}
