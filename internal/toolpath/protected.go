// SPDX-License-Identifier: MPL-2.0

package toolpath

import (
	"os"
	"path/filepath"
	"runtime"
)

// protectedRoots returns the platform deny list of system directories a
// tools directory must never equal or sit under. The filesystem root entry
// is matched by equality only.
func protectedRoots() []string {
	var roots []string

	switch runtime.GOOS {
	case "windows":
		systemRoot := os.Getenv("SystemRoot")
		if systemRoot == "" {
			systemRoot = `C:\Windows`
		}
		programFiles := os.Getenv("ProgramFiles")
		if programFiles == "" {
			programFiles = `C:\Program Files`
		}
		roots = append(roots, `C:\`, systemRoot, programFiles)
	case "darwin":
		roots = append(roots, "/",
			"/System", "/Library", "/private",
			"/bin", "/sbin", "/usr", "/etc", "/var")
	default: // Linux and others
		roots = append(roots, "/",
			"/bin", "/sbin", "/usr", "/etc", "/var",
			"/boot", "/dev", "/proc", "/sys", "/lib", "/lib64")
	}

	roots = append(roots, filepath.Clean(os.TempDir()))
	return roots
}
