// SPDX-License-Identifier: MPL-2.0

// Package runner executes a tool's run script in the embedded mvdan/sh
// interpreter and captures its output. No system shell is involved, so
// invocation behaves identically across platforms.
package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/toolshed-cli/toolshed/pkg/toolfile"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

const (
	// EnvArgsJSON is the environment variable holding the full argument
	// object as canonical JSON.
	EnvArgsJSON = "TOOLSHED_ARGS"
	// EnvArgPrefix prefixes the per-argument environment variables exposed
	// to the script (scalar arguments only).
	EnvArgPrefix = "TOOLSHED_ARG_"
)

// Runner invokes tools. The zero value is ready to use.
type Runner struct{}

// New creates a Runner.
func New() *Runner {
	return &Runner{}
}

// Invoke runs the tool's script with args exposed through the environment
// and returns the captured stdout. A non-zero exit or interpreter failure
// returns an error carrying the script's stderr. Cancellation of ctx stops
// the script.
func (r *Runner) Invoke(ctx context.Context, tool *toolfile.Tool, args map[string]any) (string, error) {
	parser := syntax.NewParser()
	prog, err := parser.Parse(strings.NewReader(tool.Run.Script), tool.Name)
	if err != nil {
		return "", fmt.Errorf("failed to parse script for tool %q: %w", tool.Name, err)
	}

	env, err := buildEnv(tool, args)
	if err != nil {
		return "", err
	}

	var stdout, stderr bytes.Buffer

	opts := []interp.RunnerOption{
		interp.Env(expand.ListEnviron(env...)),
		interp.StdIO(nil, &stdout, &stderr),
	}
	if tool.Run.Workdir != "" {
		opts = append(opts, interp.Dir(tool.Run.Workdir))
	}

	sh, err := interp.New(opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create interpreter: %w", err)
	}

	if err := sh.Run(ctx, prog); err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			return stdout.String(), fmt.Errorf("tool %q exited with status %d: %s",
				tool.Name, int(exitStatus), strings.TrimSpace(stderr.String()))
		}
		return stdout.String(), fmt.Errorf("tool %q failed: %w", tool.Name, err)
	}

	return stdout.String(), nil
}

// buildEnv assembles the script environment: the process environment, the
// descriptor's env block, the JSON argument object, and one variable per
// scalar argument.
func buildEnv(tool *toolfile.Tool, args map[string]any) ([]string, error) {
	env := os.Environ()

	for k, v := range tool.Run.Env {
		env = append(env, k+"="+v)
	}

	if args == nil {
		args = map[string]any{}
	}
	argsJSON, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("failed to encode arguments for tool %q: %w", tool.Name, err)
	}
	env = append(env, EnvArgsJSON+"="+string(argsJSON))

	for k, v := range args {
		switch v.(type) {
		case string, bool, float64, int, int64:
			env = append(env, EnvArgPrefix+envName(k)+"="+fmt.Sprint(v))
		}
	}

	return env, nil
}

// envName uppercases an argument name and replaces everything outside
// [A-Z0-9] with underscores.
func envName(name string) string {
	upper := strings.ToUpper(name)
	var sb strings.Builder
	for _, r := range upper {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		} else {
			sb.WriteRune('_')
		}
	}
	return sb.String()
}
