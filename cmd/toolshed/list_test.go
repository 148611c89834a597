// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/toolshed-cli/toolshed/internal/discovery"
	"github.com/toolshed-cli/toolshed/pkg/toolfile"
)

func listEntry(name string, kind discovery.SourceKind) discovery.DiscoveredTool {
	return discovery.DiscoveredTool{
		Tool: &toolfile.Tool{
			Name:        name,
			Description: "does " + name,
			Run:         toolfile.RunSpec{Script: "echo " + name},
		},
		SourceKind: kind,
		File:       name + ".cue",
	}
}

func TestRenderToolList(t *testing.T) {
	set := &discovery.ToolSet{
		Entries: []discovery.DiscoveredTool{
			listEntry("build", discovery.SourceGlobal),
			listEntry("deploy", discovery.SourceLocal),
		},
		Summary: discovery.Summary{
			Total:         2,
			GlobalCount:   1,
			LocalCount:    1,
			ConflictNames: []string{"deploy"},
		},
	}

	var sb strings.Builder
	renderToolList(&sb, set)
	out := sb.String()

	for _, want := range []string{"build", "deploy", "does build", "[global]", "[local]",
		"2 total (1 global, 1 local)", "Conflicts (local wins):"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderToolList_Empty(t *testing.T) {
	var sb strings.Builder
	renderToolList(&sb, &discovery.ToolSet{})

	if !strings.Contains(sb.String(), "No tools found") {
		t.Errorf("empty set should render a hint:\n%s", sb.String())
	}
}

func TestRenderDiagnostics(t *testing.T) {
	diags := []discovery.Diagnostic{
		{
			Severity: discovery.SeverityWarning,
			Code:     discovery.CodeLoadSkipped,
			Message:  "skipped broken.cue",
			Path:     "/home/u/.toolshed/tools/broken.cue",
			Cause:    errors.New("unexpected token"),
		},
	}

	var plain strings.Builder
	renderDiagnostics(&plain, diags, false)
	if !strings.Contains(plain.String(), "skipped broken.cue") {
		t.Errorf("missing message:\n%s", plain.String())
	}
	if strings.Contains(plain.String(), "unexpected token") {
		t.Errorf("cause should only appear in verbose mode:\n%s", plain.String())
	}

	var verboseOut strings.Builder
	renderDiagnostics(&verboseOut, diags, true)
	if !strings.Contains(verboseOut.String(), "unexpected token") {
		t.Errorf("verbose output missing cause:\n%s", verboseOut.String())
	}
}
