// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/toolshed-cli/toolshed/internal/config"
	"github.com/toolshed-cli/toolshed/internal/scaffold"

	"github.com/spf13/cobra"
)

// newNewCommand creates the `toolshed new` command.
func newNewCommand(app *App) *cobra.Command {
	var global bool

	newCmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Scaffold a new tool descriptor",
		Long: `Create a starter tool descriptor with the name pre-filled.

By default the descriptor is written to the project-local tools directory
(./.toolshed/tools). With --global it goes to the shared global directory
instead. When the target filename is taken, a -2, -3, ... suffix is probed;
the declared tool name inside the file is what discovery keys on.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			dir := config.LocalToolsDir()
			if global {
				cfg, err := app.loadConfig(cmd.Context())
				if err != nil {
					return err
				}
				resolved, _, err := app.resolveGlobalDir(cfg)
				if err != nil {
					return err
				}
				dir = resolved.Path
			}

			path, err := scaffold.Generate(dir, name)
			if err != nil {
				return err
			}

			fmt.Fprintf(app.stdout, "%s Created %s\n", SuccessStyle.Render("✓"), path)
			fmt.Fprintln(app.stdout)
			fmt.Fprintln(app.stdout, SubtitleStyle.Render("Next steps:"))
			fmt.Fprintln(app.stdout, "  1. Edit the descriptor's script and input schema")
			fmt.Fprintf(app.stdout, "  2. Run 'toolshed run %s' to try it\n", name)
			fmt.Fprintln(app.stdout, "  3. Run 'toolshed list' to see the merged tool set")

			return nil
		},
	}

	newCmd.Flags().BoolVarP(&global, "global", "g", false, "scaffold into the global tools directory")

	return newCmd
}
