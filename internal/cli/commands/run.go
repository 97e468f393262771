package commands

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rzt/internal/config"
	"rzt/internal/discovery"
	"rzt/internal/execution"
	"rzt/internal/paths"
	"rzt/internal/report"
	"rzt/internal/storage"
	"rzt/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	config *config.Config
	logger *log.Logger
	filter *discovery.Filter
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(cfg *config.Config, logger *log.Logger, filter *discovery.Filter) *RunCommand {
	return &RunCommand{
		config: cfg,
		logger: logger,
		filter: filter,
	}
}

// Execute runs the command. It returns an error wrapping report.ErrCasesFailed
// when any case failed, so the process exits non-zero.
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) (err error) {
	if err := rc.config.SetRoots(args[0], args[1]); err != nil {
		return err
	}

	program, err := paths.LocateBinary(rc.config.BinaryRoot, rc.config.ProgramDir, rc.config.ProgramName)
	if err != nil {
		return err
	}
	rc.logger.Debug("located program", "path", program)

	helper := newHelper(rc.config)
	if err := helper.Open(); err != nil {
		return err
	}
	defer func() {
		if cerr := helper.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()
	rc.logger.Debug("scratch directory", "path", helper.TempDir())

	cases, err := buildSuite(rc.config, helper, program, rc.filter)
	if err != nil {
		return fmt.Errorf("build suite: %w", err)
	}
	if len(cases) == 0 {
		color.Yellow("No cases to execute")
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	formatter := ui.NewFormatter(cmd.OutOrStdout(), rc.config.Flags.Verbose)
	tally := report.NewTally()
	executor := execution.NewSequential(execution.NewRunner(rc.logger), rc.logger)
	executor.SetFailFast(rc.config.Flags.FailFast)
	executor.AddObserver(tally)
	executor.AddObserver(formatter)

	var progress *ui.ProgressBar
	if rc.config.Flags.Progress && ui.CanShowProgress() {
		progress = ui.NewProgressBar(len(cases), cmd.ErrOrStderr())
		formatter.SetQuiet(true)
		executor.AddObserver(progress)
	}

	formatter.PrintHeader(rc.config.ProgramName)
	results, duration, err := executor.Execute(ctx, cases)
	if progress != nil {
		progress.Finish()
	}
	if err != nil {
		return err
	}

	formatter.PrintSummary(tally)
	if progress != nil {
		formatter.PrintFailedCases(tally)
	}
	rc.logger.Debug("run finished", "duration", duration)

	if reportPath := rc.config.GetReportPath(); reportPath != "" {
		st := storage.NewJSONStorage(reportPath)
		if err := st.Save(rc.config.ProgramName, results, duration); err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
		rc.logger.Info("report written", "path", st.Path())
	}

	return tally.Err()
}
