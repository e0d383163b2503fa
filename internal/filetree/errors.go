package filetree

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by the tree construction pipeline.
var (
	// ErrOrphanEntry indicates an entry whose parent path had no node at insertion time.
	ErrOrphanEntry = errors.New("entry parent is not present in the tree")
	// ErrTreeInsertion indicates a structural insertion failure such as a duplicate path.
	ErrTreeInsertion = errors.New("tree insertion failed")
	// ErrInvalidNode indicates a node handle that does not belong to the tree.
	ErrInvalidNode = errors.New("node handle does not belong to this tree")
)

// WalkError reports a filesystem-access failure encountered during traversal.
type WalkError struct {
	Path  string
	Cause error
}

// Error formats the failing path together with the underlying cause.
func (walkError *WalkError) Error() string {
	return fmt.Sprintf("walking %s: %v", walkError.Path, walkError.Cause)
}

// Unwrap exposes the underlying cause for errors.Is and errors.As.
func (walkError *WalkError) Unwrap() error {
	return walkError.Cause
}
