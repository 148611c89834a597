// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"context"
	"fmt"
	"sync"

	"github.com/toolshed-cli/toolshed/pkg/toolfile"
)

const (
	// SourceGlobal tags entries found in the shared tools directory.
	SourceGlobal SourceKind = "global"
	// SourceLocal tags entries found in the project-local tools directory.
	SourceLocal SourceKind = "local"
)

type (
	// SourceKind identifies which discovery root an entry came from.
	SourceKind string

	// DiscoveredTool is an immutable wrapper around a validated tool plus
	// its provenance. Created once per successfully validated file and
	// never mutated afterwards.
	DiscoveredTool struct {
		// Tool is the validated descriptor.
		Tool *toolfile.Tool
		// SourceKind is the discovery root the tool came from.
		SourceKind SourceKind
		// SourceDir is the absolute directory the file was found in.
		SourceDir string
		// File is the descriptor's base file name.
		File string
	}

	// Summary aggregates counts over a ToolSet.
	Summary struct {
		// Total is the number of entries.
		Total int
		// GlobalCount and LocalCount split Total by source.
		GlobalCount int
		LocalCount  int
		// ConflictNames lists names where a local entry displaced a global
		// one, sorted lexicographically. Always empty for a single-source
		// scan; conflicts are a cross-source concept.
		ConflictNames []string
	}

	// ToolSet is a collection of discovered tools with its summary.
	// Produced by both Scan (conflicts always empty) and Merge (conflicts
	// populated).
	ToolSet struct {
		Entries []DiscoveredTool
		Summary Summary
	}

	// Result bundles a ToolSet with the diagnostics produced while
	// building it.
	Result struct {
		Set         *ToolSet
		Diagnostics []Diagnostic
	}

	// Loader loads one candidate descriptor file. The default loader
	// parses CUE toolfiles; tests and alternative loading mechanisms can
	// substitute their own. A Load failure affects only that file.
	Loader interface {
		Load(path string) (*toolfile.ToolFile, error)
	}

	// FileLoader is the default Loader, parsing descriptors from disk.
	FileLoader struct{}
)

// Load implements Loader via toolfile.Parse.
func (FileLoader) Load(path string) (*toolfile.ToolFile, error) {
	return toolfile.Parse(path)
}

// Tools returns the flat, provenance-stripped descriptor collection for
// downstream consumers. Source kind and origin file are internal and must
// not leak past this boundary.
func (s *ToolSet) Tools() []toolfile.Tool {
	tools := make([]toolfile.Tool, 0, len(s.Entries))
	for _, e := range s.Entries {
		tools = append(tools, *e.Tool)
	}
	return tools
}

// Lookup finds an entry by exact tool name.
func (s *ToolSet) Lookup(name string) (*DiscoveredTool, bool) {
	for i := range s.Entries {
		if s.Entries[i].Tool.Name == name {
			return &s.Entries[i], true
		}
	}
	return nil, false
}

// Discover scans the global and local tools directories and merges the two
// result sets. The scans share no state and run concurrently; the merge is
// the join point. Per-source diagnostics are concatenated global-first.
//
// The only error is context cancellation: scanning itself never fails.
func Discover(ctx context.Context, globalDir, localDir string, loader Loader) (*Result, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("discovery canceled: %w", ctx.Err())
	default:
	}

	scanner := NewScanner(loader)

	var (
		wg          sync.WaitGroup
		globalSet   *ToolSet
		localSet    *ToolSet
		globalDiags []Diagnostic
		localDiags  []Diagnostic
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		globalSet, globalDiags = scanner.Scan(globalDir, SourceGlobal)
	}()
	go func() {
		defer wg.Done()
		localSet, localDiags = scanner.Scan(localDir, SourceLocal)
	}()
	wg.Wait()

	merged := Merge(globalSet, localSet)

	diags := make([]Diagnostic, 0, len(globalDiags)+len(localDiags))
	diags = append(diags, globalDiags...)
	diags = append(diags, localDiags...)

	return &Result{Set: merged, Diagnostics: diags}, nil
}
