package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/schemargs/internal/config"
	"github.com/aretw0/schemargs/internal/presentation/table"
	"github.com/aretw0/schemargs/internal/presentation/tui"
	"github.com/aretw0/schemargs/pkg/diag"
	"github.com/aretw0/schemargs/pkg/schema"
)

const defaultWidth = 80

// terminalOf returns the file behind w when it is a terminal.
func terminalOf(w io.Writer) (*os.File, bool) {
	f, ok := w.(*os.File)
	if !ok || !tui.IsTerminal(f) {
		return nil, false
	}
	return f, true
}

func writeSlots(w io.Writer, slots schema.Slots, format string) error {
	if format == config.FormatAuto {
		format = config.FormatYAML
		if _, ok := terminalOf(w); ok {
			format = config.FormatTable
		}
	}

	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(slots)

	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(slots); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()

	case config.FormatTable:
		width := defaultWidth
		if f, ok := terminalOf(w); ok {
			width = tui.Width(f, defaultWidth)
		}
		rendered, err := tui.NewRenderer(width)(table.GenerateMarkdown(slots))
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
		_, err = io.WriteString(w, rendered)
		return err

	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func printDiagnostics(w io.Writer, ds []diag.Diagnostic) {
	_, tty := terminalOf(w)
	color := cfg.Color && tty
	for _, d := range ds {
		fmt.Fprintln(w, tui.FormatDiagnostic(d, color))
	}
}

func writeMetrics(w io.Writer, reg prometheus.Gatherer) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
