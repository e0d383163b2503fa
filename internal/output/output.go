// Package output renders built file trees in raw, JSON, and XML formats.
package output

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/temirov/filetree/internal/filetree"
	"github.com/temirov/filetree/internal/types"
)

const (
	indentPrefix = ""
	indentSpacer = "  "

	xmlHeader      = xml.Header
	xmlResultsName = "results"

	treeBranchConnector = "├── "
	treeLastConnector   = "└── "
	treeBranchPadding   = "│   "
	treeLastPadding     = "    "

	fileNodeFormat = "%s[File] %s\n"
)

// BuildOutputNode converts a built tree into its serializable node form.
// The conversion walks the read-only handle API, so sibling order in the
// output matches the tree's deterministic order.
func BuildOutputNode(tree *filetree.Tree) (*types.TreeOutputNode, error) {
	return outputNodeForHandle(tree, tree.Root())
}

// outputNodeForHandle converts one subtree rooted at the given handle.
func outputNodeForHandle(tree *filetree.Tree, handle filetree.NodeID) (*types.TreeOutputNode, error) {
	nodeEntry, entryError := tree.Entry(handle)
	if entryError != nil {
		return nil, entryError
	}

	outputNode := &types.TreeOutputNode{
		Path: nodeEntry.Path,
		Name: filepath.Base(nodeEntry.Path),
		Type: types.NodeTypeDirectory,
	}
	if nodeEntry.IsFile {
		outputNode.Type = types.NodeTypeFile
		return outputNode, nil
	}

	childHandles, childrenError := tree.Children(handle)
	if childrenError != nil {
		return nil, childrenError
	}
	for _, childHandle := range childHandles {
		childNode, conversionError := outputNodeForHandle(tree, childHandle)
		if conversionError != nil {
			return nil, conversionError
		}
		outputNode.Children = append(outputNode.Children, childNode)
	}
	return outputNode, nil
}

// treeNodeLinePrefix computes the connector for a node line and the prefix
// its children inherit.
func treeNodeLinePrefix(prefix string, isRoot bool, isLast bool) (string, string) {
	if isRoot {
		return "", ""
	}
	connector := treeBranchConnector
	childPrefix := prefix + treeBranchPadding
	if isLast {
		connector = treeLastConnector
		childPrefix = prefix + treeLastPadding
	}
	return prefix + connector, childPrefix
}

// renderTreeNode writes one node and its descendants using tree connectors.
func renderTreeNode(writer io.Writer, node *types.TreeOutputNode, prefix string, isRoot bool, isLast bool) {
	if node == nil {
		return
	}
	linePrefix, childPrefix := treeNodeLinePrefix(prefix, isRoot, isLast)
	if node.Type == types.NodeTypeFile {
		fmt.Fprintf(writer, fileNodeFormat, linePrefix, node.Path)
		return
	}
	fmt.Fprintf(writer, "%s%s\n", linePrefix, node.Path)
	for index, child := range node.Children {
		if child == nil {
			continue
		}
		renderTreeNode(writer, child, childPrefix, false, index == len(node.Children)-1)
	}
}

// PrintTreeRaw renders a tree to standard output using the raw formatter.
func PrintTreeRaw(node *types.TreeOutputNode) {
	WriteTreeRaw(os.Stdout, node)
}

// WriteTreeRaw renders a tree to the provided writer.
func WriteTreeRaw(writer io.Writer, node *types.TreeOutputNode) {
	if node == nil {
		return
	}
	renderTreeNode(writer, node, "", true, true)
}

// RenderTreesJSON marshals the provided root nodes to indented JSON. A
// single root is rendered as an object, multiple roots as an array.
func RenderTreesJSON(rootNodes []*types.TreeOutputNode) (string, error) {
	if len(rootNodes) == 0 {
		return "[]", nil
	}
	if len(rootNodes) == 1 {
		encoded, jsonEncodeError := json.MarshalIndent(rootNodes[0], indentPrefix, indentSpacer)
		return string(encoded), jsonEncodeError
	}
	encoded, jsonEncodeError := json.MarshalIndent(rootNodes, indentPrefix, indentSpacer)
	return string(encoded), jsonEncodeError
}

// RenderTreesXML marshals the provided root nodes to an XML document. A
// single root becomes the document element; multiple roots are wrapped in a
// results element.
func RenderTreesXML(rootNodes []*types.TreeOutputNode) (string, error) {
	if len(rootNodes) == 1 {
		encoded, xmlMarshalError := xml.MarshalIndent(rootNodes[0], indentPrefix, indentSpacer)
		if xmlMarshalError != nil {
			return "", xmlMarshalError
		}
		return xmlHeader + string(encoded), nil
	}
	wrapper := struct {
		XMLName xml.Name                `xml:""`
		Nodes   []*types.TreeOutputNode `xml:"node"`
	}{
		XMLName: xml.Name{Local: xmlResultsName},
		Nodes:   rootNodes,
	}
	encoded, xmlMarshalError := xml.MarshalIndent(wrapper, indentPrefix, indentSpacer)
	if xmlMarshalError != nil {
		return "", xmlMarshalError
	}
	return xmlHeader + string(encoded), nil
}
