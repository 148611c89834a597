// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/toolshed-cli/toolshed/internal/config"
	"github.com/toolshed-cli/toolshed/internal/mcpserver"

	"github.com/spf13/cobra"
)

// newServeCommand creates the `toolshed serve` command.
func newServeCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the merged tool set over stdio",
		Long: `Discover and merge tools, then serve them to a connecting client over
stdin/stdout. Diagnostics and logs go to stderr; stdout carries the protocol
stream. The command blocks until the client closes the stream.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, cfg, err := app.discover(cmd.Context())
			if err != nil {
				fmt.Fprintln(app.stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
				return err
			}

			renderDiagnostics(app.stderr, result.Diagnostics, verbose)

			name := cfg.Serve.ServerName.String()
			if name == "" {
				name = config.AppName
			}
			version := cfg.Serve.Version
			if version == "" {
				version = Version
			}

			// Provenance stops here: the server sees descriptors only.
			srv, err := mcpserver.New(result.Set.Tools(), app.Runner, mcpserver.Options{
				Name:    name,
				Version: version,
			})
			if err != nil {
				return err
			}

			return srv.ServeStdio()
		},
	}
}
