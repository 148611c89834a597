// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/toolshed-cli/toolshed/internal/discovery"
	"github.com/toolshed-cli/toolshed/internal/issue"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

// newInfoCommand creates the `toolshed info` command.
func newInfoCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "info <name>",
		Short: "Show one tool in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			result, _, err := app.discover(cmd.Context())
			if err != nil {
				fmt.Fprintln(app.stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
				return err
			}

			renderDiagnostics(app.stderr, result.Diagnostics, verbose)

			entry, ok := result.Set.Lookup(name)
			if !ok {
				return issue.NewErrorContext().
					WithOperation("show tool").
					WithResource(name).
					WithSuggestion("Run 'toolshed list' to see available tools").
					Wrap(fmt.Errorf("tool %q not found", name)).
					BuildError()
			}

			markdown := toolMarkdown(entry)

			rendered, err := renderMarkdown(markdown)
			if err != nil {
				// Fall back to raw markdown on renderer trouble.
				fmt.Fprintln(app.stdout, markdown)
				return nil
			}

			fmt.Fprint(app.stdout, rendered)
			return nil
		},
	}
}

// toolMarkdown builds the markdown detail page for one discovered tool.
func toolMarkdown(entry *discovery.DiscoveredTool) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", entry.Tool.Name)
	if entry.Tool.Description != "" {
		fmt.Fprintf(&sb, "%s\n\n", entry.Tool.Description)
	}

	fmt.Fprintf(&sb, "**Source:** %s (`%s`)\n\n", entry.SourceKind, entry.File)

	if len(entry.Tool.InputSchema) > 0 {
		sb.WriteString("## Input schema\n\n")
		if schemaJSON, err := json.MarshalIndent(entry.Tool.InputSchema, "", "  "); err == nil {
			fmt.Fprintf(&sb, "```json\n%s\n```\n\n", schemaJSON)
		}
	}

	sb.WriteString("## Script\n\n")
	fmt.Fprintf(&sb, "```sh\n%s\n```\n", entry.Tool.Run.Script)

	if entry.Tool.Run.Workdir != "" {
		fmt.Fprintf(&sb, "\n**Workdir:** `%s`\n", entry.Tool.Run.Workdir)
	}
	if len(entry.Tool.Run.Env) > 0 {
		sb.WriteString("\n**Environment:**\n\n")
		keys := make([]string, 0, len(entry.Tool.Run.Env))
		for k := range entry.Tool.Run.Env {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&sb, "- `%s=%s`\n", k, entry.Tool.Run.Env[k])
		}
	}

	return sb.String()
}

// renderMarkdown renders markdown for the terminal using glamour.
func renderMarkdown(content string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", err
	}

	return renderer.Render(content)
}
