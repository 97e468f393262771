package commands

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"rzt/internal/cli"
	"rzt/internal/config"
	"rzt/internal/discovery"
	"rzt/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Check    *CheckCommand
	Failures *FailuresCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, logger *log.Logger) *Commands {
	filter := discovery.NewFilter()
	scanner := discovery.NewScanner([]string{"se-", "pe-"})
	formatter := ui.NewFormatter(nil, false)

	return &Commands{
		Run:      NewRunCommand(cfg, logger, filter),
		List:     NewListCommand(cfg, filter, formatter),
		Check:    NewCheckCommand(cfg, scanner, formatter),
		Failures: NewFailuresCommand(),
	}
}

// Register configures rootCmd as the run command and attaches the subcommands
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config, logger *log.Logger) {
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Log every command and show diffs of failed comparisons")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		cfg.Flags = flags.ToConfigFlags()
		if cfg.Flags.Verbose {
			logger.SetLevel(log.DebugLevel)
		}
		return nil
	}

	// Run (root) command
	rootCmd.Args = cobra.ExactArgs(2)
	rootCmd.RunE = c.Run.Execute
	rootCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Run only cases whose name matches (supports wildcards, e.g. 'pe-*' or '*-of4')")
	rootCmd.Flags().BoolVar(&flags.FailFast, "fail-fast", false, "Stop on first failed case")
	rootCmd.Flags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar instead of one line per case (terminal only)")
	rootCmd.Flags().StringVar(&flags.ReportPath, "report", "", "Write a JSON report of the run to this file or directory")

	// List command
	listCmd := &cobra.Command{
		Use:   "list <source_root> [binary_root]",
		Short: "List the generated cases",
		Long:  "Enumerate every case of the suite without executing the program",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  c.List.Execute,
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "List only cases whose name matches (supports wildcards)")
	listCmd.Flags().BoolVarP(&flags.ShowCommands, "commands", "c", false, "Show the command line of each case")
	rootCmd.AddCommand(listCmd)

	// Check command
	checkCmd := &cobra.Command{
		Use:   "check <source_root>",
		Short: "Check the golden corpus",
		Long:  "Verify that every golden file the suite compares against exists, that SAM goldens parse, and report unused golden files",
		Args:  cobra.ExactArgs(1),
		RunE:  c.Check.Execute,
	}
	rootCmd.AddCommand(checkCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:   "failures <report.json>",
		Short: "View failed cases interactively",
		Long:  "Display the failed cases of a JSON run report in an interactive viewer",
		Args:  cobra.ExactArgs(1),
		RunE:  c.Failures.Execute,
	}
	rootCmd.AddCommand(failuresCmd)
}
