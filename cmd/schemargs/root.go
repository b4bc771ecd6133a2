package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/schemargs/internal/config"
	"github.com/aretw0/schemargs/internal/logging"
)

var (
	cfg    = config.Default()
	logger = logging.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "schemargs",
	Short: "schemargs parses arguments against a compact flag schema",
	Long: `schemargs compiles a schema such as "l#.,A,i+,c'" and parses an
argument vector against it, printing the typed values and any diagnostics.

Schema tokens: A (bool), c' (string), x# (float), i+ (int), and the list
forms b'. l#. n+.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to the configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error, off)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored diagnostics")
}

// loadSettings reads the config file, then lets explicit flags win.
func loadSettings(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg = loaded

	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		cfg.Color = false
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger = logging.New(cmd.ErrOrStderr(), level)
	logger.Debug("settings loaded", "config", path, "format", cfg.Format, "level", level)
	return nil
}
