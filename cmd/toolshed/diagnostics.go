// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/toolshed-cli/toolshed/internal/discovery"
)

// renderDiagnostics writes discovery diagnostics to w, one line each.
// Diagnostics are warnings about what discovery skipped or noticed; they
// never abort the command, so they are rendered and then forgotten.
func renderDiagnostics(w io.Writer, diags []discovery.Diagnostic, verbose bool) {
	for _, d := range diags {
		label := WarningStyle.Render("warning")
		if d.Severity == discovery.SeverityError {
			label = ErrorStyle.Render("error")
		}

		line := fmt.Sprintf("%s: %s", label, d.Message)
		if d.Path != "" {
			line += " " + SubtitleStyle.Render("("+d.Path+")")
		}
		fmt.Fprintln(w, line)

		if verbose && d.Cause != nil {
			fmt.Fprintln(w, VerboseStyle.Render("  cause: "+d.Cause.Error()))
		}
	}
}
