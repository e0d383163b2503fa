package filetree

import (
	"context"
	"os"
)

// Create builds the in-memory tree for the filesystem subtree rooted at
// rootPath. A file root yields a single-node tree immediately; a directory
// root is collected in full and then reconstructed by BuildTree.
//
// TODO: honor useGitIgnore once ignore-file filtering lands. The flag is
// accepted today so callers do not change when filtering ships, but it has
// no effect on the produced tree.
func Create(executionContext context.Context, rootPath string, useGitIgnore bool) (*Tree, error) {
	rootInformation, statError := os.Stat(rootPath)
	if statError != nil {
		return nil, &WalkError{Path: rootPath, Cause: statError}
	}

	if !rootInformation.IsDir() {
		return newTree(Entry{Path: rootPath, IsFile: true}), nil
	}

	collectedEntries, collectionError := CollectEntries(executionContext, rootPath)
	if collectionError != nil {
		return nil, collectionError
	}
	return BuildTree(rootPath, collectedEntries)
}
