// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/toolshed-cli/toolshed/internal/issue"

	"github.com/spf13/cobra"
)

// newRunCommand creates the `toolshed run` command.
func newRunCommand(app *App) *cobra.Command {
	var argFlags []string

	runCmd := &cobra.Command{
		Use:   "run <name>",
		Short: "Invoke one tool and print its output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			toolArgs, err := parseArgFlags(argFlags)
			if err != nil {
				return err
			}

			result, _, err := app.discover(cmd.Context())
			if err != nil {
				fmt.Fprintln(app.stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
				return err
			}

			renderDiagnostics(app.stderr, result.Diagnostics, verbose)

			entry, ok := result.Set.Lookup(name)
			if !ok {
				return issue.NewErrorContext().
					WithOperation("invoke tool").
					WithResource(name).
					WithSuggestion("Run 'toolshed list' to see available tools").
					WithSuggestion("Tool names are matched exactly, including case").
					Wrap(fmt.Errorf("tool %q not found", name)).
					BuildError()
			}

			out, err := app.Runner.Invoke(cmd.Context(), entry.Tool, toolArgs)
			if err != nil {
				return &ExitError{Code: 1, Err: err}
			}

			fmt.Fprint(app.stdout, out)
			return nil
		},
	}

	runCmd.Flags().StringArrayVar(&argFlags, "arg", nil, "tool argument as key=value (repeatable)")

	return runCmd
}

// parseArgFlags converts repeated --arg key=value flags into the argument
// map handed to the tool script.
func parseArgFlags(flags []string) (map[string]any, error) {
	if len(flags) == 0 {
		return nil, nil
	}

	args := make(map[string]any, len(flags))
	for _, f := range flags {
		key, value, found := strings.Cut(f, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid --arg %q: expected key=value", f)
		}
		args[key] = value
	}
	return args, nil
}
