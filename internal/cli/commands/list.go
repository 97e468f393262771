package commands

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rzt/internal/config"
	"rzt/internal/discovery"
	"rzt/internal/paths"
	"rzt/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	filter    *discovery.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, filter *discovery.Filter, formatter *ui.Formatter) *ListCommand {
	return &ListCommand{
		config:    cfg,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) (err error) {
	binaryRoot := ""
	if len(args) > 1 {
		binaryRoot = args[1]
	}
	if err := lc.config.SetRoots(args[0], binaryRoot); err != nil {
		return err
	}

	// The program is only named in command lines, so fall back to its bare name.
	program := lc.config.ProgramName
	if binaryRoot != "" {
		if located, err := paths.LocateBinary(binaryRoot, lc.config.ProgramDir, lc.config.ProgramName); err == nil {
			program = located
		}
	}

	helper := newHelper(lc.config)
	if err := helper.Open(); err != nil {
		return err
	}
	defer func() {
		if cerr := helper.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()

	cases, err := buildSuite(lc.config, helper, program, lc.filter)
	if err != nil {
		return err
	}
	if len(cases) == 0 {
		color.Yellow("No cases found")
		return nil
	}

	lc.formatter.SetOutput(cmd.OutOrStdout())
	lc.formatter.PrintCaseList(cases, lc.config.Flags.ShowCommands)
	return nil
}
