// Package cli provides the command line interface.
package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/temirov/filetree/internal/config"
	"github.com/temirov/filetree/internal/filetree"
	"github.com/temirov/filetree/internal/output"
	"github.com/temirov/filetree/internal/services/clipboard"
	"github.com/temirov/filetree/internal/types"
	"github.com/temirov/filetree/internal/utils"
)

const (
	formatFlagName    = "format"
	gitignoreFlagName = "gitignore"
	copyFlagName      = "copy"
	configFlagName    = "config"
	versionFlagName   = "version"
	versionTemplate   = "filetree version: %s\n"
	defaultPath       = "."
	rootUse           = "filetree"

	rootShortDescription = "filetree command line interface"
	rootLongDescription  = `filetree builds a deterministic in-memory representation of a filesystem subtree.
It discovers every descendant of a root path and renders the resulting tree.
Use --format to select raw, json, or xml output and --version to print the application version.`

	treeUse              = "tree [paths...]"
	treeAlias            = "t"
	treeShortDescription = "build and display a file tree (" + treeAlias + ")"

	// treeLongDescription provides detailed help for the tree command.
	treeLongDescription = `Build the file tree for one or more paths and display it.
Sibling entries are always ordered lexicographically, independent of discovery order.
Use --format to select raw, json, or xml output.`
	// treeUsageExample demonstrates tree command usage.
	treeUsageExample = `  # Render the tree of the current directory
  filetree tree

  # Render a subtree as JSON and copy it to the clipboard
  filetree tree --format json --copy ./cmd`

	versionFlagDescription   = "display application version"
	formatFlagDescription    = "output format"
	gitignoreFlagDescription = "respect .gitignore files (reserved, not applied yet)"
	copyFlagDescription      = "copy rendered output to the clipboard"
	configFlagDescription    = "path to an explicit configuration file"

	invalidFormatMessage        = "Invalid format value '%s'"
	workingDirectoryErrorFormat = "unable to determine working directory: %w"
	// errorAbsolutePathFormat reports failure to resolve an absolute path.
	errorAbsolutePathFormat = "abs failed for '%s': %w"
	// errorPathMissingFormat reports a missing path.
	errorPathMissingFormat = "path '%s' does not exist"
	// errorStatFormat reports failure to retrieve file statistics.
	errorStatFormat = "stat failed for '%s': %w"
	// errorNoValidPaths indicates that all paths are invalid.
	errorNoValidPaths = "no valid paths"
	// errorBuildTreeFormat reports a failed tree construction for one root.
	errorBuildTreeFormat = "building tree for %s: %w"
	// errorCopyFormat reports a clipboard copy failure.
	errorCopyFormat = "copying output to clipboard: %w"
)

// isSupportedFormat reports whether the provided format is recognized.
func isSupportedFormat(format string) bool {
	switch format {
	case types.FormatRaw, types.FormatJSON, types.FormatXML:
		return true
	default:
		return false
	}
}

// Execute runs the filetree application.
func Execute() error {
	rootCommand := createRootCommand()
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command.
func createRootCommand() *cobra.Command {
	var showVersion bool

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
		PersistentPreRun: func(command *cobra.Command, arguments []string) {
			if showVersion {
				fmt.Printf(versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
		},
	}
	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.AddCommand(createTreeCommand())
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// treeOptions stores the flag values of the tree command.
type treeOptions struct {
	format           string
	useGitignore     bool
	copyToClipboard  bool
	explicitConfig   string
	formatChanged    bool
	gitignoreChanged bool
	copyChanged      bool
}

// createTreeCommand returns the tree subcommand.
func createTreeCommand() *cobra.Command {
	var options treeOptions

	treeCommand := &cobra.Command{
		Use:     treeUse,
		Aliases: []string{treeAlias},
		Short:   treeShortDescription,
		Long:    treeLongDescription,
		Example: treeUsageExample,
		Args:    cobra.ArbitraryArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			if len(arguments) == 0 {
				arguments = []string{defaultPath}
			}
			options.formatChanged = command.Flags().Changed(formatFlagName)
			options.gitignoreChanged = command.Flags().Changed(gitignoreFlagName)
			options.copyChanged = command.Flags().Changed(copyFlagName)
			return runTreeCommand(command, arguments, options)
		},
	}

	treeCommand.Flags().StringVar(&options.format, formatFlagName, types.FormatRaw, formatFlagDescription)
	treeCommand.Flags().BoolVar(&options.useGitignore, gitignoreFlagName, false, gitignoreFlagDescription)
	treeCommand.Flags().BoolVar(&options.copyToClipboard, copyFlagName, false, copyFlagDescription)
	treeCommand.Flags().StringVar(&options.explicitConfig, configFlagName, "", configFlagDescription)
	return treeCommand
}

// runTreeCommand builds the trees for all requested paths and renders them.
func runTreeCommand(command *cobra.Command, arguments []string, options treeOptions) error {
	workingDirectory, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		return fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
	}

	applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: workingDirectory,
		ExplicitFilePath: options.explicitConfig,
	})
	if configurationError != nil {
		return configurationError
	}
	resolved := resolveTreeOptions(options, applicationConfiguration.Tree)

	outputFormat := strings.ToLower(resolved.format)
	if !isSupportedFormat(outputFormat) {
		return fmt.Errorf(invalidFormatMessage, outputFormat)
	}

	validatedPaths, pathValidationError := resolveAndValidatePaths(arguments)
	if pathValidationError != nil {
		return pathValidationError
	}

	outputNodes, buildError := buildOutputNodes(command, validatedPaths, resolved.useGitignore)
	if buildError != nil {
		return buildError
	}

	renderedOutput, renderError := renderOutputNodes(outputNodes, outputFormat)
	if renderError != nil {
		return renderError
	}
	fmt.Print(renderedOutput)

	if resolved.copyToClipboard {
		if copyError := clipboard.NewService().Copy(renderedOutput); copyError != nil {
			return fmt.Errorf(errorCopyFormat, copyError)
		}
	}
	return nil
}

// resolveTreeOptions overlays configuration defaults under explicit flags.
// A flag the user set on the command line always wins over the
// configuration file.
func resolveTreeOptions(options treeOptions, configuration config.TreeCommandConfiguration) treeOptions {
	resolved := options
	if !options.formatChanged && configuration.Format != "" {
		resolved.format = configuration.Format
	}
	if !options.gitignoreChanged && configuration.UseGitignore != nil {
		resolved.useGitignore = *configuration.UseGitignore
	}
	if !options.copyChanged && configuration.Clipboard != nil {
		resolved.copyToClipboard = *configuration.Clipboard
	}
	return resolved
}

// buildOutputNodes constructs one tree per validated path. Builds over
// distinct roots share no state, so they run concurrently; the results keep
// the input path order.
func buildOutputNodes(command *cobra.Command, validatedPaths []types.ValidatedPath, useGitignore bool) ([]*types.TreeOutputNode, error) {
	group, groupContext := errgroup.WithContext(command.Context())
	outputNodes := make([]*types.TreeOutputNode, len(validatedPaths))

	for pathIndex, validatedPath := range validatedPaths {
		pathIndex, validatedPath := pathIndex, validatedPath
		group.Go(func() error {
			builtTree, createError := filetree.Create(groupContext, validatedPath.AbsolutePath, useGitignore)
			if createError != nil {
				return fmt.Errorf(errorBuildTreeFormat, validatedPath.AbsolutePath, createError)
			}
			outputNode, conversionError := output.BuildOutputNode(builtTree)
			if conversionError != nil {
				return conversionError
			}
			outputNodes[pathIndex] = outputNode
			return nil
		})
	}

	if waitError := group.Wait(); waitError != nil {
		return nil, waitError
	}
	return outputNodes, nil
}

// renderOutputNodes renders the built trees in the requested format.
func renderOutputNodes(outputNodes []*types.TreeOutputNode, outputFormat string) (string, error) {
	switch outputFormat {
	case types.FormatJSON:
		rendered, renderError := output.RenderTreesJSON(outputNodes)
		if renderError != nil {
			return "", renderError
		}
		return rendered + "\n", nil
	case types.FormatXML:
		rendered, renderError := output.RenderTreesXML(outputNodes)
		if renderError != nil {
			return "", renderError
		}
		return rendered + "\n", nil
	default:
		var buffer bytes.Buffer
		for _, outputNode := range outputNodes {
			output.WriteTreeRaw(&buffer, outputNode)
		}
		return buffer.String(), nil
	}
}

// resolveAndValidatePaths converts input paths to absolute form and validates their existence.
func resolveAndValidatePaths(inputs []string) ([]types.ValidatedPath, error) {
	seen := make(map[string]struct{})
	var result []types.ValidatedPath
	for _, inputPath := range inputs {
		absolutePath, absolutePathError := filepath.Abs(inputPath)
		if absolutePathError != nil {
			return nil, fmt.Errorf(errorAbsolutePathFormat, inputPath, absolutePathError)
		}
		cleanPath := filepath.Clean(absolutePath)
		if _, ok := seen[cleanPath]; ok {
			continue
		}
		info, fileStatusError := os.Stat(cleanPath)
		if fileStatusError != nil {
			if os.IsNotExist(fileStatusError) {
				return nil, fmt.Errorf(errorPathMissingFormat, inputPath)
			}
			return nil, fmt.Errorf(errorStatFormat, inputPath, fileStatusError)
		}
		seen[cleanPath] = struct{}{}
		result = append(result, types.ValidatedPath{AbsolutePath: cleanPath, IsDir: info.IsDir()})
	}
	if len(result) == 0 {
		return nil, fmt.Errorf(errorNoValidPaths)
	}
	return result, nil
}
