package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/schemargs/internal/config"
	"github.com/aretw0/schemargs/pkg/diag"
	"github.com/aretw0/schemargs/pkg/schema"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a schema for invalid or duplicate tokens",
	Long: `Compiles the schema without parsing any arguments. Prints the canonical
schema and exits with an error if any token was rejected.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringP("schema", "s", "", "Comma separated schema tokens (overrides the config file)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	tokens := schemaTokens(cmd)
	if len(tokens) == 0 {
		return fmt.Errorf("no schema given: use --schema or set schema in %s", config.DefaultPath)
	}

	var c diag.Collector
	slots := schema.Compile(tokens, &c)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, strings.Join(slots.Tokens(), ","))
	for _, id := range slots.IDs() {
		fmt.Fprintf(out, "  -%s  %s\n", string(id), slots[id].Kind())
	}

	printDiagnostics(cmd.ErrOrStderr(), c.Diagnostics())

	if c.Len() > 0 {
		return fmt.Errorf("schema has %d problem(s)", c.Len())
	}
	return nil
}
