// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/toolshed-cli/toolshed/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// toolsDir is the explicit --tools-dir override for the global tools directory
	toolsDir string
)

// newRootCommand builds the full command tree around the App.
func newRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "toolshed",
		Short: "Discover, validate, and serve tool descriptors",
		Long: TitleStyle.Render("toolshed") + SubtitleStyle.Render(" - Discover, validate, and serve tool descriptors") + `

toolshed collects tool descriptors from a shared global directory and a
project-local directory, validates them against a capability contract,
merges the two sets with local-wins semantics, and exposes the result to
clients over stdio or directly from the command line.

Descriptors are CUE (or JSON) files declaring a name, a description, an
input schema, and a shell script to run.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Run 'toolshed new <name>' to scaffold a descriptor
  2. Edit the generated .cue file under ./.toolshed/tools
  3. Run 'toolshed list' to see the merged tool set

` + SubtitleStyle.Render("Examples:") + `
  toolshed list                 List all discovered tools
  toolshed run build            Invoke the 'build' tool
  toolshed info build           Show one tool in detail
  toolshed serve                Serve the merged set over stdio
  toolshed config show          Show current configuration`,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/toolshed/config.cue)")
	rootCmd.PersistentFlags().StringVar(&toolsDir, "tools-dir", "", "explicit global tools directory (overrides config and TOOLSHED_TOOLS_DIR)")

	rootCmd.AddCommand(newListCommand(app))
	rootCmd.AddCommand(newServeCommand(app))
	rootCmd.AddCommand(newRunCommand(app))
	rootCmd.AddCommand(newNewCommand(app))
	rootCmd.AddCommand(newInfoCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute builds the App and command tree and runs the CLI.
// This is called by main.main(). It only needs to happen once.
func Execute() {
	app := NewApp(Dependencies{})
	rootCmd := newRootCommand(app)

	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
