package output_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/temirov/filetree/internal/filetree"
	"github.com/temirov/filetree/internal/output"
	"github.com/temirov/filetree/internal/types"
)

// buildSampleTree constructs a small tree with one nested directory and two files.
func buildSampleTree(testingInstance *testing.T) *filetree.Tree {
	testingInstance.Helper()
	sampleEntries := []filetree.Entry{
		{Path: "root/z", IsFile: true},
		{Path: "root/dir/x", IsFile: true},
		{Path: "root/dir", IsFile: false},
	}
	builtTree, buildError := filetree.BuildTree("root", sampleEntries)
	if buildError != nil {
		testingInstance.Fatalf("BuildTree failed: %v", buildError)
	}
	return builtTree
}

// buildSampleOutputNode converts the sample tree to its serializable form.
func buildSampleOutputNode(testingInstance *testing.T) *types.TreeOutputNode {
	testingInstance.Helper()
	outputNode, conversionError := output.BuildOutputNode(buildSampleTree(testingInstance))
	if conversionError != nil {
		testingInstance.Fatalf("BuildOutputNode failed: %v", conversionError)
	}
	return outputNode
}

// TestBuildOutputNode verifies the conversion preserves structure, order, and node types.
func TestBuildOutputNode(testingInstance *testing.T) {
	outputNode := buildSampleOutputNode(testingInstance)

	if outputNode.Path != "root" || outputNode.Type != types.NodeTypeDirectory {
		testingInstance.Fatalf("unexpected root node: %+v", outputNode)
	}
	if len(outputNode.Children) != 2 {
		testingInstance.Fatalf("expected two children, got %d", len(outputNode.Children))
	}
	if outputNode.Children[0].Path != "root/dir" || outputNode.Children[0].Type != types.NodeTypeDirectory {
		testingInstance.Fatalf("unexpected first child: %+v", outputNode.Children[0])
	}
	if outputNode.Children[1].Path != "root/z" || outputNode.Children[1].Type != types.NodeTypeFile {
		testingInstance.Fatalf("unexpected second child: %+v", outputNode.Children[1])
	}
	if outputNode.Children[0].Children[0].Name != "x" {
		testingInstance.Fatalf("unexpected grandchild: %+v", outputNode.Children[0].Children[0])
	}
}

// rawTreeExpected defines the expected raw rendering of the sample tree.
const rawTreeExpected = "root\n" +
	"├── root/dir\n" +
	"│   └── [File] root/dir/x\n" +
	"└── [File] root/z\n"

// TestWriteTreeRaw verifies the raw tree rendering.
func TestWriteTreeRaw(testingInstance *testing.T) {
	var buffer bytes.Buffer
	output.WriteTreeRaw(&buffer, buildSampleOutputNode(testingInstance))
	if buffer.String() != rawTreeExpected {
		testingInstance.Fatalf("unexpected output: %q", buffer.String())
	}
}

// jsonTreeExpected defines the expected JSON rendering of the sample tree.
const jsonTreeExpected = "{\n" +
	"  \"path\": \"root\",\n" +
	"  \"name\": \"root\",\n" +
	"  \"type\": \"directory\",\n" +
	"  \"children\": [\n" +
	"    {\n" +
	"      \"path\": \"root/dir\",\n" +
	"      \"name\": \"dir\",\n" +
	"      \"type\": \"directory\",\n" +
	"      \"children\": [\n" +
	"        {\n" +
	"          \"path\": \"root/dir/x\",\n" +
	"          \"name\": \"x\",\n" +
	"          \"type\": \"file\"\n" +
	"        }\n" +
	"      ]\n" +
	"    },\n" +
	"    {\n" +
	"      \"path\": \"root/z\",\n" +
	"      \"name\": \"z\",\n" +
	"      \"type\": \"file\"\n" +
	"    }\n" +
	"  ]\n" +
	"}"

// TestRenderTreesJSON verifies the JSON rendering of a single root.
func TestRenderTreesJSON(testingInstance *testing.T) {
	rendered, renderError := output.RenderTreesJSON([]*types.TreeOutputNode{buildSampleOutputNode(testingInstance)})
	if renderError != nil {
		testingInstance.Fatalf("RenderTreesJSON failed: %v", renderError)
	}
	if rendered != jsonTreeExpected {
		testingInstance.Fatalf("unexpected output: %q", rendered)
	}
}

// TestRenderTreesJSONMultipleRoots verifies multiple roots render as a JSON array.
func TestRenderTreesJSONMultipleRoots(testingInstance *testing.T) {
	outputNode := buildSampleOutputNode(testingInstance)
	rendered, renderError := output.RenderTreesJSON([]*types.TreeOutputNode{outputNode, outputNode})
	if renderError != nil {
		testingInstance.Fatalf("RenderTreesJSON failed: %v", renderError)
	}
	if !strings.HasPrefix(rendered, "[") {
		testingInstance.Fatalf("expected a JSON array, got %q", rendered)
	}
}

// TestRenderTreesJSONEmpty verifies an empty node list renders as an empty array.
func TestRenderTreesJSONEmpty(testingInstance *testing.T) {
	rendered, renderError := output.RenderTreesJSON(nil)
	if renderError != nil {
		testingInstance.Fatalf("RenderTreesJSON failed: %v", renderError)
	}
	if rendered != "[]" {
		testingInstance.Fatalf("unexpected output: %q", rendered)
	}
}

// TestRenderTreesXML verifies the XML rendering of a single root.
func TestRenderTreesXML(testingInstance *testing.T) {
	rendered, renderError := output.RenderTreesXML([]*types.TreeOutputNode{buildSampleOutputNode(testingInstance)})
	if renderError != nil {
		testingInstance.Fatalf("RenderTreesXML failed: %v", renderError)
	}
	if !strings.HasPrefix(rendered, "<?xml") {
		testingInstance.Fatalf("expected XML header, got %q", rendered)
	}
	if !strings.Contains(rendered, "<path>root/dir/x</path>") {
		testingInstance.Fatalf("missing nested node: %q", rendered)
	}
	if !strings.Contains(rendered, "<type>file</type>") {
		testingInstance.Fatalf("missing file type: %q", rendered)
	}
}

// TestRenderTreesXMLMultipleRoots verifies multiple roots are wrapped in a results element.
func TestRenderTreesXMLMultipleRoots(testingInstance *testing.T) {
	outputNode := buildSampleOutputNode(testingInstance)
	rendered, renderError := output.RenderTreesXML([]*types.TreeOutputNode{outputNode, outputNode})
	if renderError != nil {
		testingInstance.Fatalf("RenderTreesXML failed: %v", renderError)
	}
	if !strings.Contains(rendered, "<results>") {
		testingInstance.Fatalf("expected results wrapper, got %q", rendered)
	}
}
