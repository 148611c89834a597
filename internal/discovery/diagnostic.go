// SPDX-License-Identifier: MPL-2.0

package discovery

const (
	// SeverityWarning indicates a recoverable discovery warning.
	SeverityWarning Severity = "warning"
	// SeverityError indicates a non-fatal discovery error diagnostic.
	SeverityError Severity = "error"
)

// Diagnostic codes emitted by the scanner.
const (
	// CodeDirMissing: the scan target does not exist or is not a directory.
	CodeDirMissing = "tools_dir_missing"
	// CodeLoadSkipped: a candidate file failed to load and was skipped.
	CodeLoadSkipped = "toolfile_load_skipped"
	// CodeContractSkipped: a loaded candidate failed the capability
	// contract and was skipped.
	CodeContractSkipped = "toolfile_contract_skipped"
	// CodeOutsideHome: the resolved tools directory lies outside the home
	// directory (advisory from path resolution, carried through here so
	// all discovery output shares one rendering path).
	CodeOutsideHome = "tools_dir_outside_home"
)

type (
	// Severity represents discovery diagnostic severity.
	Severity string

	// Diagnostic represents a structured discovery diagnostic that is
	// returned to callers (rather than written to stderr) for consistent
	// rendering policy.
	Diagnostic struct {
		// Severity is the diagnostic level (warning or error).
		Severity Severity
		// Code is a machine-readable identifier (e.g., "toolfile_load_skipped").
		Code string
		// Message is the human-readable description.
		Message string
		// Path is the file or directory associated with this diagnostic (optional).
		Path string
		// Cause is the underlying error (optional, for programmatic inspection).
		Cause error
	}
)
