// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/toolshed-cli/toolshed/pkg/toolfile"
)

// Scanner enumerates one tools directory and loads its descriptors.
type Scanner struct {
	loader Loader
}

// NewScanner creates a Scanner. A nil loader selects the default file
// loader.
func NewScanner(loader Loader) *Scanner {
	if loader == nil {
		loader = FileLoader{}
	}
	return &Scanner{loader: loader}
}

// Scan enumerates dir and loads every candidate descriptor, tagging results
// with kind. It never fails: a missing or non-directory target degrades to
// an empty set with a diagnostic, and each candidate's load or contract
// failure is recorded without affecting the others. Entries keep the
// directory's enumeration order; no sorting happens at this stage.
func (s *Scanner) Scan(dir string, kind SourceKind) (*ToolSet, []Diagnostic) {
	var diags []Diagnostic

	absDir, err := filepath.Abs(dir)
	if err != nil {
		diags = append(diags, Diagnostic{
			Severity: SeverityWarning,
			Code:     CodeDirMissing,
			Message:  fmt.Sprintf("cannot resolve %s tools directory %q", kind, dir),
			Path:     dir,
			Cause:    err,
		})
		return emptySet(), diags
	}

	info, err := os.Stat(absDir)
	if err != nil || !info.IsDir() {
		diags = append(diags, Diagnostic{
			Severity: SeverityWarning,
			Code:     CodeDirMissing,
			Message:  fmt.Sprintf("%s tools directory %q is missing or not a directory; no tools from this source", kind, absDir),
			Path:     absDir,
			Cause:    err,
		})
		return emptySet(), diags
	}

	dirEntries, err := os.ReadDir(absDir)
	if err != nil {
		diags = append(diags, Diagnostic{
			Severity: SeverityWarning,
			Code:     CodeDirMissing,
			Message:  fmt.Sprintf("cannot read %s tools directory %q", kind, absDir),
			Path:     absDir,
			Cause:    err,
		})
		return emptySet(), diags
	}

	set := emptySet()
	for _, entry := range dirEntries {
		if entry.IsDir() || !toolfile.IsLoadable(entry.Name()) {
			continue
		}

		path := filepath.Join(absDir, entry.Name())

		candidate, err := s.loader.Load(path)
		if err != nil {
			diags = append(diags, Diagnostic{
				Severity: SeverityWarning,
				Code:     CodeLoadSkipped,
				Message:  fmt.Sprintf("skipping %q: load failed", entry.Name()),
				Path:     path,
				Cause:    err,
			})
			continue
		}

		tool, err := toolfile.Validate(candidate)
		if err != nil {
			diags = append(diags, Diagnostic{
				Severity: SeverityWarning,
				Code:     CodeContractSkipped,
				Message:  fmt.Sprintf("skipping %q: capability contract not satisfied", entry.Name()),
				Path:     path,
				Cause:    err,
			})
			continue
		}

		set.Entries = append(set.Entries, DiscoveredTool{
			Tool:       tool,
			SourceKind: kind,
			SourceDir:  absDir,
			File:       entry.Name(),
		})
	}

	set.Summary = summarize(set.Entries, nil)
	return set, diags
}

func emptySet() *ToolSet {
	return &ToolSet{}
}

// summarize recomputes counts from the entry collection.
func summarize(entries []DiscoveredTool, conflicts []string) Summary {
	s := Summary{Total: len(entries), ConflictNames: conflicts}
	for _, e := range entries {
		switch e.SourceKind {
		case SourceGlobal:
			s.GlobalCount++
		case SourceLocal:
			s.LocalCount++
		}
	}
	return s
}
