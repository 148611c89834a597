// SPDX-License-Identifier: MPL-2.0

package toolfile

import (
	"encoding/json"
	"path/filepath"
	"strings"
)

// LoadableExtensions lists the file extensions the scanner considers
// loadable tool descriptors. JSON files are parsed by the same CUE
// pipeline since JSON is a subset of CUE.
var LoadableExtensions = []string{".cue", ".json"}

type (
	// ToolFile is a decoded tool descriptor candidate. All fields are
	// optional at this stage; Validate promotes a complete candidate to a
	// Tool and enumerates what an incomplete one is missing.
	ToolFile struct {
		// Name is the tool's declared name. The discovery engine keys on
		// this value, not on the file name.
		Name string `json:"name,omitempty"`

		// Description is an optional human-readable summary.
		Description string `json:"description,omitempty"`

		// InputSchema is the JSON-Schema-shaped description of the tool's
		// arguments. It is treated as opaque structured data.
		InputSchema map[string]any `json:"inputSchema,omitempty"`

		// Run declares how the tool is executed.
		Run *RunSpec `json:"run,omitempty"`

		// FilePath is the path this candidate was parsed from. Set by
		// Parse, not part of the descriptor itself.
		FilePath string `json:"-"`
	}

	// RunSpec declares the executable body of a tool.
	RunSpec struct {
		// Script is the shell script executed by the embedded interpreter.
		Script string `json:"script"`

		// Workdir optionally overrides the working directory for the run.
		// Relative paths are resolved against the invoking process's
		// working directory.
		Workdir string `json:"workdir,omitempty"`

		// Env lists extra environment variables visible to the script.
		Env map[string]string `json:"env,omitempty"`
	}

	// Tool is a validated tool descriptor. Every field has passed the
	// capability contract; instances are never mutated after creation.
	Tool struct {
		Name        string
		Description string
		InputSchema map[string]any
		Run         RunSpec
	}
)

// IsLoadable reports whether the file name carries one of the loadable
// descriptor extensions.
func IsLoadable(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range LoadableExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// SchemaJSON marshals the tool's input schema to canonical JSON, as required
// by downstream consumers that register the schema verbatim.
func (t *Tool) SchemaJSON() (json.RawMessage, error) {
	return json.Marshal(t.InputSchema)
}
