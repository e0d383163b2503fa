package filetree

import (
	"fmt"
	"sort"
)

const (
	// errorDuplicatePathFormat reports an insertion colliding with an existing sibling path.
	errorDuplicatePathFormat = "node for path %s already exists: %w"
	// errorInvalidNodeFormat reports usage of a handle the tree does not own.
	errorInvalidNodeFormat = "node handle %d out of range: %w"

	rootParentIndex = -1
)

// NodeID is an opaque handle referencing one node of a Tree. The zero value
// is invalid and is rejected by every Tree method.
type NodeID struct {
	reference int
}

// treeNode stores one entry together with its structural links. Nodes live
// in the tree's flat node table and reference each other by table index.
type treeNode struct {
	entry        Entry
	parentIndex  int
	childIndexes []int
}

// Tree is a single rooted hierarchy of entries. It is assembled once by
// BuildTree and handed to callers as a read-only snapshot; no method mutates
// it after construction.
type Tree struct {
	nodes []treeNode
}

// newTree creates a tree containing only the provided root entry.
func newTree(rootEntry Entry) *Tree {
	return &Tree{
		nodes: []treeNode{{entry: rootEntry, parentIndex: rootParentIndex}},
	}
}

// Root returns the handle of the tree's root node.
func (tree *Tree) Root() NodeID {
	return nodeIDForIndex(0)
}

// Len returns the number of nodes in the tree including the root.
func (tree *Tree) Len() int {
	return len(tree.nodes)
}

// Entry returns the entry held by the referenced node.
func (tree *Tree) Entry(identifier NodeID) (Entry, error) {
	nodeIndex, resolveError := tree.indexForNodeID(identifier)
	if resolveError != nil {
		return Entry{}, resolveError
	}
	return tree.nodes[nodeIndex].entry, nil
}

// Children returns the referenced node's child handles in ascending
// lexicographic order of their canonical paths.
func (tree *Tree) Children(identifier NodeID) ([]NodeID, error) {
	nodeIndex, resolveError := tree.indexForNodeID(identifier)
	if resolveError != nil {
		return nil, resolveError
	}
	childIndexes := tree.nodes[nodeIndex].childIndexes
	childHandles := make([]NodeID, 0, len(childIndexes))
	for _, childIndex := range childIndexes {
		childHandles = append(childHandles, nodeIDForIndex(childIndex))
	}
	return childHandles, nil
}

// Parent returns the referenced node's parent handle. The second return
// value is false for the root node, which has no parent.
func (tree *Tree) Parent(identifier NodeID) (NodeID, bool, error) {
	nodeIndex, resolveError := tree.indexForNodeID(identifier)
	if resolveError != nil {
		return NodeID{}, false, resolveError
	}
	parentIndex := tree.nodes[nodeIndex].parentIndex
	if parentIndex == rootParentIndex {
		return NodeID{}, false, nil
	}
	return nodeIDForIndex(parentIndex), true, nil
}

// TraversePreOrder returns the handles of the subtree rooted at the provided
// node in pre-order: each node before its children, children in their stored
// sorted order.
func (tree *Tree) TraversePreOrder(start NodeID) ([]NodeID, error) {
	startIndex, resolveError := tree.indexForNodeID(start)
	if resolveError != nil {
		return nil, resolveError
	}
	var ordered []NodeID
	tree.appendPreOrder(startIndex, &ordered)
	return ordered, nil
}

// appendPreOrder accumulates the pre-order handle sequence for one subtree.
func (tree *Tree) appendPreOrder(nodeIndex int, ordered *[]NodeID) {
	*ordered = append(*ordered, nodeIDForIndex(nodeIndex))
	for _, childIndex := range tree.nodes[nodeIndex].childIndexes {
		tree.appendPreOrder(childIndex, ordered)
	}
}

// insertChild appends a new node holding the entry under the parent handle.
// Inserting a path that already exists among the parent's children fails
// with ErrTreeInsertion.
func (tree *Tree) insertChild(parent NodeID, entry Entry) (NodeID, error) {
	parentIndex, resolveError := tree.indexForNodeID(parent)
	if resolveError != nil {
		return NodeID{}, resolveError
	}
	entryKey := canonicalPathKey(entry.Path)
	for _, siblingIndex := range tree.nodes[parentIndex].childIndexes {
		if canonicalPathKey(tree.nodes[siblingIndex].entry.Path) == entryKey {
			return NodeID{}, fmt.Errorf(errorDuplicatePathFormat, entry.Path, ErrTreeInsertion)
		}
	}
	childIndex := len(tree.nodes)
	tree.nodes = append(tree.nodes, treeNode{entry: entry, parentIndex: parentIndex})
	tree.nodes[parentIndex].childIndexes = append(tree.nodes[parentIndex].childIndexes, childIndex)
	return nodeIDForIndex(childIndex), nil
}

// sortChildren reorders the parent's children by canonical path key so that
// sibling order stays deterministic after every insertion.
func (tree *Tree) sortChildren(parent NodeID) error {
	parentIndex, resolveError := tree.indexForNodeID(parent)
	if resolveError != nil {
		return resolveError
	}
	childIndexes := tree.nodes[parentIndex].childIndexes
	sort.SliceStable(childIndexes, func(leftPosition, rightPosition int) bool {
		leftKey := canonicalPathKey(tree.nodes[childIndexes[leftPosition]].entry.Path)
		rightKey := canonicalPathKey(tree.nodes[childIndexes[rightPosition]].entry.Path)
		return leftKey < rightKey
	})
	return nil
}

// indexForNodeID resolves a handle to its node-table index, rejecting the
// zero handle and handles issued by a differently sized tree.
func (tree *Tree) indexForNodeID(identifier NodeID) (int, error) {
	nodeIndex := identifier.reference - 1
	if nodeIndex < 0 || nodeIndex >= len(tree.nodes) {
		return 0, fmt.Errorf(errorInvalidNodeFormat, identifier.reference, ErrInvalidNode)
	}
	return nodeIndex, nil
}

// nodeIDForIndex wraps a node-table index into an opaque handle.
func nodeIDForIndex(nodeIndex int) NodeID {
	return NodeID{reference: nodeIndex + 1}
}
