package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"rzt/internal/cli"
	"rzt/internal/cli/commands"
	"rzt/internal/config"
	"rzt/internal/report"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "run_tests <source_root> <binary_root>",
		Short: "Golden output tests for razers3",
		Long: `Runs razers3 over the adeno fixtures for every combination of read length,
mode, identity, output format, sort order and pairing, and compares each
output against the golden files under <source_root>/extras/apps/razers3/tests.
The binary is located under <binary_root>. Exits non-zero if any case fails.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "run_tests",
		Level:  log.InfoLevel,
	})

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	cmds := commands.NewCommands(cfg, logger)
	cmds.Register(rootCmd, &flags, cfg, logger)

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, report.ErrCasesFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
