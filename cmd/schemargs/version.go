package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/schemargs"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of schemargs",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "schemargs version %s\n", schemargs.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
