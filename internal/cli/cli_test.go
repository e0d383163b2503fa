package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/temirov/filetree/internal/config"
	"github.com/temirov/filetree/internal/types"
)

// TestIsSupportedFormat verifies format validation accepts only known formats.
func TestIsSupportedFormat(testingHandle *testing.T) {
	testCases := []struct {
		format    string
		supported bool
	}{
		{types.FormatRaw, true},
		{types.FormatJSON, true},
		{types.FormatXML, true},
		{"yaml", false},
		{"", false},
	}
	for _, testCase := range testCases {
		if isSupportedFormat(testCase.format) != testCase.supported {
			testingHandle.Fatalf("unexpected result for format %q", testCase.format)
		}
	}
}

// TestResolveTreeOptionsConfigurationDefaults verifies configuration values apply when flags are untouched.
func TestResolveTreeOptionsConfigurationDefaults(testingHandle *testing.T) {
	gitignoreEnabled := true
	clipboardEnabled := true
	configuration := config.TreeCommandConfiguration{
		Format:       types.FormatJSON,
		UseGitignore: &gitignoreEnabled,
		Clipboard:    &clipboardEnabled,
	}

	resolved := resolveTreeOptions(treeOptions{format: types.FormatRaw}, configuration)
	if resolved.format != types.FormatJSON {
		testingHandle.Fatalf("expected configured format, got %q", resolved.format)
	}
	if !resolved.useGitignore || !resolved.copyToClipboard {
		testingHandle.Fatalf("expected configured booleans to apply: %+v", resolved)
	}
}

// TestResolveTreeOptionsFlagsWin verifies explicit flags override configuration values.
func TestResolveTreeOptionsFlagsWin(testingHandle *testing.T) {
	clipboardEnabled := true
	configuration := config.TreeCommandConfiguration{
		Format:    types.FormatJSON,
		Clipboard: &clipboardEnabled,
	}

	explicitOptions := treeOptions{
		format:        types.FormatXML,
		formatChanged: true,
		copyChanged:   true,
	}
	resolved := resolveTreeOptions(explicitOptions, configuration)
	if resolved.format != types.FormatXML {
		testingHandle.Fatalf("expected flag format to win, got %q", resolved.format)
	}
	if resolved.copyToClipboard {
		testingHandle.Fatal("expected explicit copy flag to win over configuration")
	}
}

// TestResolveAndValidatePathsDeduplicates verifies duplicate inputs collapse to one validated path.
func TestResolveAndValidatePathsDeduplicates(testingHandle *testing.T) {
	temporaryDirectory := testingHandle.TempDir()

	validatedPaths, validationError := resolveAndValidatePaths([]string{temporaryDirectory, temporaryDirectory})
	if validationError != nil {
		testingHandle.Fatalf("resolveAndValidatePaths failed: %v", validationError)
	}
	if len(validatedPaths) != 1 {
		testingHandle.Fatalf("expected one validated path, got %d", len(validatedPaths))
	}
	if !validatedPaths[0].IsDir {
		testingHandle.Fatal("expected directory classification")
	}
}

// TestResolveAndValidatePathsMissing verifies a missing path is rejected.
func TestResolveAndValidatePathsMissing(testingHandle *testing.T) {
	missingPath := filepath.Join(testingHandle.TempDir(), "absent")

	_, validationError := resolveAndValidatePaths([]string{missingPath})
	if validationError == nil || !strings.Contains(validationError.Error(), "does not exist") {
		testingHandle.Fatalf("expected missing path error, got %v", validationError)
	}
}

// TestResolveAndValidatePathsFile verifies file inputs validate with the file classification.
func TestResolveAndValidatePathsFile(testingHandle *testing.T) {
	temporaryDirectory := testingHandle.TempDir()
	filePath := filepath.Join(temporaryDirectory, "sample.txt")
	if writeFileError := os.WriteFile(filePath, []byte("sample"), 0o644); writeFileError != nil {
		testingHandle.Fatalf("failed to write %s: %v", filePath, writeFileError)
	}

	validatedPaths, validationError := resolveAndValidatePaths([]string{filePath})
	if validationError != nil {
		testingHandle.Fatalf("resolveAndValidatePaths failed: %v", validationError)
	}
	if len(validatedPaths) != 1 || validatedPaths[0].IsDir {
		testingHandle.Fatalf("unexpected validation result: %+v", validatedPaths)
	}
}
