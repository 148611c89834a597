// SPDX-License-Identifier: MPL-2.0

package toolfile

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/toolshed-cli/toolshed/pkg/cueutil"
)

//go:embed toolfile_schema.cue
var toolfileSchema []byte

// Parse reads and parses a tool descriptor from the given path.
func Parse(path string) (*ToolFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read toolfile at %s: %w", path, err)
	}

	return ParseBytes(data, path)
}

// ParseBytes parses tool descriptor content from bytes. JSON input parses
// through the same pipeline since JSON is valid CUE.
func ParseBytes(data []byte, path string) (*ToolFile, error) {
	result, err := cueutil.DecodeWithSchema[ToolFile](
		toolfileSchema,
		data,
		"#ToolFile",
		cueutil.WithFilename(path),
	)
	if err != nil {
		return nil, err
	}

	tf := result.Value
	tf.FilePath = path
	return tf, nil
}
