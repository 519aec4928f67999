// Package main provides the stocktake CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tleving/stocktake/internal/config"
	"github.com/tleving/stocktake/internal/logging"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

// inventoryDir is the directory read by search, summary, and show
var inventoryDir string

var (
	cfg config.Config
	log zerolog.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stocktake",
	Short: "CSV inventory manager",
	Long: `stocktake consolidates CSV inventory exports into a single in-memory
dataset and answers questions about it: filtered search, row preview, and
per-category summary reports. All commands output JSON by default.

Run without a subcommand to start the interactive shell.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initRuntime,
	RunE:              runShell,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().StringVarP(&inventoryDir, "dir", "d", "", "Directory of CSV inventory files")
	rootCmd.Version = Version
}

// initRuntime loads the configuration and builds the logger before any
// command runs.
func initRuntime(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log = logging.New(cfg.Env, cfg.LogLevel)
	return nil
}
