package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"rzt/internal/config"
	"rzt/internal/discovery"
	"rzt/internal/ui"
)

// ErrCorpusIncomplete is returned when golden files are missing or unparseable
var ErrCorpusIncomplete = errors.New("golden corpus incomplete")

// CheckCommand handles the check command
type CheckCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	formatter *ui.Formatter
}

// NewCheckCommand creates a new CheckCommand
func NewCheckCommand(cfg *config.Config, scanner *discovery.Scanner, formatter *ui.Formatter) *CheckCommand {
	return &CheckCommand{
		config:    cfg,
		scanner:   scanner,
		formatter: formatter,
	}
}

// Execute runs the command
func (cc *CheckCommand) Execute(cmd *cobra.Command, args []string) (err error) {
	if err := cc.config.SetRoots(args[0], ""); err != nil {
		return err
	}

	helper := newHelper(cc.config)
	if err := helper.Open(); err != nil {
		return err
	}
	defer func() {
		if cerr := helper.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()

	// Golden paths do not depend on the program, every case is checked.
	cases, err := buildSuite(cc.config, helper, cc.config.ProgramName, discovery.NewFilter())
	if err != nil {
		return err
	}

	corpus, err := discovery.CheckCorpus(cases, cc.scanner, cc.config.GetTestsPath())
	if err != nil {
		return err
	}
	cc.formatter.SetOutput(cmd.OutOrStdout())
	cc.formatter.PrintCorpusReport(corpus)

	if !corpus.OK() {
		return ErrCorpusIncomplete
	}
	return nil
}
