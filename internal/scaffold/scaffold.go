// SPDX-License-Identifier: MPL-2.0

// Package scaffold generates starter tool descriptor files.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/toolshed-cli/toolshed/pkg/toolfile"
)

// maxProbes bounds the filename conflict probe so a pathological directory
// cannot loop forever.
const maxProbes = 1000

// Generate writes a starter descriptor named after the tool into dir and
// returns the path of the created file. When <name>.cue already exists the
// filename is probed with -2, -3, ... suffixes; only the filename is
// deconflicted, since discovery keys on the declared name, not the filename.
func Generate(dir, name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("tool name must not be empty")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create tools directory: %w", err)
	}

	path, err := probeFilename(dir, name)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(template(name)), 0o644); err != nil {
		return "", fmt.Errorf("failed to write descriptor: %w", err)
	}

	return path, nil
}

// probeFilename returns the first free <name>.cue, <name>-2.cue, ... path.
func probeFilename(dir, name string) (string, error) {
	base := filepath.Join(dir, name)

	candidate := base + toolfile.LoadableExtensions[0]
	for i := 1; i <= maxProbes; i++ {
		if i > 1 {
			candidate = fmt.Sprintf("%s-%d%s", base, i, toolfile.LoadableExtensions[0])
		}
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate, nil
		} else if err != nil && !os.IsExist(err) {
			return "", fmt.Errorf("failed to probe %s: %w", candidate, err)
		}
	}

	return "", fmt.Errorf("no free filename for %q under %s", name, dir)
}

// template renders the starter descriptor with the tool name pre-filled.
func template(name string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("name: %q\n", name))
	sb.WriteString(fmt.Sprintf("description: %q\n\n", "Describe what "+name+" does"))
	sb.WriteString("inputSchema: {\n")
	sb.WriteString("\ttype: \"object\"\n")
	sb.WriteString("\tproperties: {\n")
	sb.WriteString("\t\ttarget: {\n")
	sb.WriteString("\t\t\ttype:        \"string\"\n")
	sb.WriteString("\t\t\tdescription: \"Example argument\"\n")
	sb.WriteString("\t\t}\n")
	sb.WriteString("\t}\n")
	sb.WriteString("}\n\n")
	sb.WriteString("run: {\n")
	sb.WriteString(fmt.Sprintf("\tscript: \"echo 'Running %s...'\"\n", name))
	sb.WriteString("\t// env: {KEY: \"value\"}\n")
	sb.WriteString("\t// workdir: \"subdir\"\n")
	sb.WriteString("}\n")

	return sb.String()
}
