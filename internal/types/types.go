// Package types defines every cross-package data structure used by the filetree CLI.
package types

import "encoding/xml"

const (
	NodeTypeFile      = "file"
	NodeTypeDirectory = "directory"

	FormatRaw  = "raw"
	FormatJSON = "json"
	FormatXML  = "xml"
)

// ValidatedPath is an absolute input path that already passed existence checks.
type ValidatedPath struct {
	AbsolutePath string
	IsDir        bool
}

// TreeOutputNode is the serializable form of one built tree node.
type TreeOutputNode struct {
	XMLName  xml.Name          `json:"-" xml:"node"`
	Path     string            `json:"path" xml:"path"`
	Name     string            `json:"name" xml:"name"`
	Type     string            `json:"type" xml:"type"`
	Children []*TreeOutputNode `json:"children,omitempty" xml:"children>node,omitempty"`
}
