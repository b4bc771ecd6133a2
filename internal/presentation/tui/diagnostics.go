package tui

import (
	"fmt"

	"github.com/muesli/termenv"

	"github.com/aretw0/schemargs/pkg/diag"
)

// FormatDiagnostic renders one diagnostic as a single line for stderr.
// With color off the output is plain ASCII.
func FormatDiagnostic(d diag.Diagnostic, color bool) string {
	prefix := fmt.Sprintf("warning[%s]", d.Code)
	if !color {
		return fmt.Sprintf("%s: %s", prefix, d.Error())
	}

	p := termenv.EnvColorProfile()
	styled := termenv.String(prefix).Foreground(p.Color("#f59e0b")).Bold()
	return fmt.Sprintf("%s: %s", styled, d.Error())
}
