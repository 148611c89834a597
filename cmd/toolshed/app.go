// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/toolshed-cli/toolshed/internal/config"
	"github.com/toolshed-cli/toolshed/internal/discovery"
	"github.com/toolshed-cli/toolshed/internal/issue"
	"github.com/toolshed-cli/toolshed/internal/runner"
	"github.com/toolshed-cli/toolshed/internal/toolpath"
)

type (
	// App wires CLI services and shared dependencies. It is the composition
	// root for the CLI layer: all Cobra command handlers receive an App
	// reference and delegate through it.
	App struct {
		Config config.Provider
		Loader discovery.Loader
		Runner *runner.Runner

		stdout io.Writer
		stderr io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp; tests supply
	// substitutes to isolate behavior.
	Dependencies struct {
		Config config.Provider
		Loader discovery.Loader
		Runner *runner.Runner
		Stdout io.Writer
		Stderr io.Writer
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Loader == nil {
		deps.Loader = discovery.FileLoader{}
	}
	if deps.Runner == nil {
		deps.Runner = runner.New()
	}

	return &App{
		Config: deps.Config,
		Loader: deps.Loader,
		Runner: deps.Runner,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
	}
}

// loadConfig loads configuration honoring the --config flag.
func (a *App) loadConfig(ctx context.Context) (*config.Config, error) {
	return a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: cfgFile})
}

// resolveGlobalDir resolves the global tools directory from the override
// chain: --tools-dir flag, then the config file's tools_dir, then the
// environment variable, then the built-in default. Advisories come back as
// discovery diagnostics so all warnings share one rendering path.
func (a *App) resolveGlobalDir(cfg *config.Config) (toolpath.ResolvedPath, []discovery.Diagnostic, error) {
	explicit := toolsDir
	if explicit == "" && cfg != nil {
		explicit = cfg.ToolsDir.String()
	}

	def, err := config.DefaultToolsDir()
	if err != nil {
		return toolpath.ResolvedPath{}, nil, err
	}

	home, _ := os.UserHomeDir()

	resolved, advisories, err := toolpath.Resolve(toolpath.Options{
		Explicit: explicit,
		EnvValue: os.Getenv(config.EnvToolsDir),
		Default:  def,
		Home:     home,
	})
	if err != nil {
		return toolpath.ResolvedPath{}, nil, wrapResolveError(err)
	}

	return resolved, advisoryDiagnostics(advisories), nil
}

// discover resolves the global directory and runs the two-source discovery.
// Resolution advisories are prepended to the discovery diagnostics.
func (a *App) discover(ctx context.Context) (*discovery.Result, *config.Config, error) {
	cfg, err := a.loadConfig(ctx)
	if err != nil {
		return nil, nil, err
	}

	resolved, advDiags, err := a.resolveGlobalDir(cfg)
	if err != nil {
		return nil, nil, err
	}

	result, err := discovery.Discover(ctx, resolved.Path, config.LocalToolsDir(), a.Loader)
	if err != nil {
		return nil, nil, err
	}

	if len(advDiags) > 0 {
		result.Diagnostics = append(advDiags, result.Diagnostics...)
	}

	return result, cfg, nil
}

// wrapResolveError converts path resolution failures into actionable errors.
func wrapResolveError(err error) error {
	builder := issue.NewErrorContext().
		WithOperation("resolve tools directory").
		Wrap(err)

	switch {
	case errors.Is(err, toolpath.ErrProtectedPath):
		builder = builder.
			WithSuggestion("Point TOOLSHED_TOOLS_DIR or --tools-dir at a directory you own, e.g. ~/.toolshed/tools").
			WithSuggestion("System directories are refused to avoid scanning files you did not write")
	case errors.Is(err, toolpath.ErrNotAbsolute):
		builder = builder.
			WithSuggestion("Use an absolute path, or a ~-prefixed path that expands to one")
	}

	return builder.BuildError()
}

// advisoryDiagnostics converts resolution advisories into warning diagnostics.
func advisoryDiagnostics(advisories []toolpath.Advisory) []discovery.Diagnostic {
	if len(advisories) == 0 {
		return nil
	}

	diags := make([]discovery.Diagnostic, 0, len(advisories))
	for _, adv := range advisories {
		diags = append(diags, discovery.Diagnostic{
			Severity: discovery.SeverityWarning,
			Code:     adv.Code,
			Message:  adv.Message,
			Path:     adv.Path,
		})
	}
	return diags
}
