// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/toolshed-cli/toolshed/internal/discovery"

	"github.com/spf13/cobra"
)

// newListCommand creates the `toolshed list` command.
func newListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all discovered tools",
		Long: `List the merged tool set discovered from the global and local
tools directories. Local descriptors shadow global ones with the same name;
shadowed names are reported in a conflicts section.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, _, err := app.discover(cmd.Context())
			if err != nil {
				fmt.Fprintln(app.stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
				return err
			}

			renderDiagnostics(app.stderr, result.Diagnostics, verbose)
			renderToolList(app.stdout, result.Set)
			return nil
		},
	}
}

// renderToolList writes the merged set as a styled listing.
func renderToolList(w io.Writer, set *discovery.ToolSet) {
	fmt.Fprintln(w, TitleStyle.Render("Tools"))
	fmt.Fprintln(w)

	if len(set.Entries) == 0 {
		fmt.Fprintln(w, SubtitleStyle.Render("No tools found. Run 'toolshed new <name>' to scaffold one."))
		return
	}

	nameWidth := 0
	for _, e := range set.Entries {
		if len(e.Tool.Name) > nameWidth {
			nameWidth = len(e.Tool.Name)
		}
	}

	for _, e := range set.Entries {
		fmt.Fprintf(w, "  %s  %s  %s\n",
			ToolStyle.Render(fmt.Sprintf("%-*s", nameWidth, e.Tool.Name)),
			SubtitleStyle.Render(fmt.Sprintf("[%s]", e.SourceKind)),
			e.Tool.Description,
		)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %d total (%d global, %d local)\n",
		SubtitleStyle.Render("Summary:"),
		set.Summary.Total, set.Summary.GlobalCount, set.Summary.LocalCount)

	if len(set.Summary.ConflictNames) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, WarningStyle.Render("Conflicts (local wins):"))
		for _, name := range set.Summary.ConflictNames {
			fmt.Fprintf(w, "  %s\n", ToolStyle.Render(name))
		}
	}
}
