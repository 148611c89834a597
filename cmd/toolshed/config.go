// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/toolshed-cli/toolshed/internal/config"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `toolshed config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage toolshed configuration",
		Long: `Manage toolshed configuration.

Configuration is stored in:
  - Linux: ~/.config/toolshed/config.cue
  - macOS: ~/Library/Application Support/toolshed/config.cue
  - Windows: %APPDATA%\toolshed\config.cue`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.Context(), app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.CreateDefaultConfig(); err != nil {
				return err
			}
			cfgDir, err := config.ConfigDir()
			if err != nil {
				return err
			}
			fmt.Fprintf(app.stdout, "%s Config ready at %s\n",
				SuccessStyle.Render("✓"),
				filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt))
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgDir, err := config.ConfigDir()
			if err != nil {
				return err
			}
			fmt.Fprintln(app.stdout, filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt))
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output raw configuration as CUE",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			return nil
		},
	})

	return cfgCmd
}

func showConfig(ctx context.Context, app *App) error {
	cfg, err := app.loadConfig(ctx)
	if err != nil {
		fmt.Fprintln(app.stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return err
	}

	keyStyle := ToolStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(app.stdout, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(app.stdout)

	cfgDir, dirErr := config.ConfigDir()
	if dirErr == nil {
		cfgPath := filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt)
		if _, statErr := os.Stat(cfgPath); statErr == nil {
			fmt.Fprintf(app.stdout, "%s: %s\n", keyStyle.Render("Config file"), cfgPath)
		} else {
			fmt.Fprintf(app.stdout, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
		}
	}
	fmt.Fprintln(app.stdout)

	toolsDirValue := cfg.ToolsDir.String()
	if toolsDirValue == "" {
		if def, derr := config.DefaultToolsDir(); derr == nil {
			toolsDirValue = def + " (default)"
		}
	}
	fmt.Fprintf(app.stdout, "%s: %s\n", keyStyle.Render("tools_dir"), valueStyle.Render(toolsDirValue))
	fmt.Fprintf(app.stdout, "%s: %s\n", keyStyle.Render("ui.color_scheme"), valueStyle.Render(cfg.UI.ColorScheme.String()))
	fmt.Fprintf(app.stdout, "%s: %v\n", keyStyle.Render("ui.verbose"), cfg.UI.Verbose)

	serverName := cfg.Serve.ServerName.String()
	if serverName == "" {
		serverName = config.AppName + " (default)"
	}
	fmt.Fprintf(app.stdout, "%s: %s\n", keyStyle.Render("serve.server_name"), valueStyle.Render(serverName))

	serveVersion := cfg.Serve.Version
	if serveVersion == "" {
		serveVersion = getVersionString() + " (default)"
	}
	fmt.Fprintf(app.stdout, "%s: %s\n", keyStyle.Render("serve.version"), valueStyle.Render(serveVersion))

	return nil
}
