package filetree

import (
	"context"
	"io/fs"
	"path/filepath"
)

// CollectEntries walks the filesystem under rootPath and returns one Entry
// per discovered descendant. A directory root is the traversal starting
// point and is not yielded; a file root yields exactly its own entry. The
// returned order is whatever order the walk produced; callers must not rely
// on it — BuildTree imposes the deterministic order.
//
// Any failure to read a directory or its metadata aborts the whole
// collection; partial results are discarded. A cancelled context stops the
// walk before the next filesystem operation.
func CollectEntries(executionContext context.Context, rootPath string) ([]Entry, error) {
	var collectedEntries []Entry
	walkFailure := filepath.WalkDir(rootPath, func(currentPath string, directoryEntry fs.DirEntry, visitError error) error {
		if contextError := executionContext.Err(); contextError != nil {
			return contextError
		}
		if visitError != nil {
			return &WalkError{Path: currentPath, Cause: visitError}
		}
		if currentPath == rootPath && directoryEntry.IsDir() {
			return nil
		}
		collectedEntries = append(collectedEntries, Entry{
			Path:   currentPath,
			IsFile: !directoryEntry.IsDir(),
		})
		return nil
	})
	if walkFailure != nil {
		return nil, walkFailure
	}
	return collectedEntries, nil
}
