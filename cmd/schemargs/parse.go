package main

import (
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/aretw0/schemargs"
	"github.com/aretw0/schemargs/internal/config"
	"github.com/aretw0/schemargs/pkg/observability"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] -- [arguments...]",
	Short: "Parse arguments against a schema and print the typed values",
	Long: `Compiles the schema, parses every argument after "--" against it and
prints the resulting slots. Diagnostics go to stderr and never stop parsing.`,
	Example: `  schemargs parse -s "l#.,A,i+,c'" -- -l 1.5,2,3.25 -A -i 42 -c hello
  schemargs parse -s "n+." --format json -- -n 1,2 -n 3`,
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringP("schema", "s", "", "Comma separated schema tokens (overrides the config file)")
	parseCmd.Flags().String("format", "", "Output format: auto, table, yaml or json")
	parseCmd.Flags().Bool("metrics", false, "Print parse metrics in Prometheus text format to stderr")
	parseCmd.Flags().Bool("strict", false, "Exit with an error when any diagnostic is reported")
}

// schemaTokens returns the --schema tokens, falling back to the config file.
func schemaTokens(cmd *cobra.Command) []string {
	if cmd.Flags().Changed("schema") {
		raw, _ := cmd.Flags().GetString("schema")
		if raw == "" {
			return nil
		}
		return strings.Split(raw, ",")
	}
	return cfg.Schema
}

func runParse(cmd *cobra.Command, args []string) error {
	tokens := schemaTokens(cmd)
	if len(tokens) == 0 {
		return fmt.Errorf("no schema given: use --schema or set schema in %s", config.DefaultPath)
	}

	format := cfg.Format
	if cmd.Flags().Changed("format") {
		format, _ = cmd.Flags().GetString("format")
	}
	if err := (&config.Config{Format: format, LogLevel: cfg.LogLevel}).Validate(); err != nil {
		return err
	}

	// Diagnostics are printed by printDiagnostics, not logged.
	opts := []schemargs.Option{schemargs.WithLogger(nil)}

	var reg *prometheus.Registry
	if withMetrics, _ := cmd.Flags().GetBool("metrics"); withMetrics {
		reg = prometheus.NewRegistry()
		m, err := observability.NewMetrics(reg)
		if err != nil {
			return fmt.Errorf("failed to init metrics: %w", err)
		}
		opts = append(opts, schemargs.WithHooks(m.Hooks()))
	}

	argv := append([]string{rootCmd.Name()}, args...)
	p, err := schemargs.New(tokens, argv, opts...)
	if err != nil {
		logger.Error("parse failed", "error", err)
	}
	if p == nil {
		return err
	}

	printDiagnostics(cmd.ErrOrStderr(), p.Diagnostics())

	if err := writeSlots(cmd.OutOrStdout(), p.Slots(), format); err != nil {
		return err
	}

	if reg != nil {
		if err := writeMetrics(cmd.ErrOrStderr(), reg); err != nil {
			return err
		}
	}

	if strict, _ := cmd.Flags().GetBool("strict"); strict && len(p.Diagnostics()) > 0 {
		return fmt.Errorf("%d diagnostic(s) reported", len(p.Diagnostics()))
	}
	return nil
}
