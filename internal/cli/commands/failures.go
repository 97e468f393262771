package commands

import (
	"github.com/spf13/cobra"

	"rzt/internal/storage"
	"rzt/internal/ui"
)

// FailuresCommand handles the failures command
type FailuresCommand struct{}

// NewFailuresCommand creates a new FailuresCommand
func NewFailuresCommand() *FailuresCommand {
	return &FailuresCommand{}
}

// Execute runs the command
func (fc *FailuresCommand) Execute(cmd *cobra.Command, args []string) error {
	st := storage.NewJSONStorage(args[0])
	results, err := st.Load()
	if err != nil {
		return err
	}

	var viewer ui.Viewer = ui.NewFailureViewer(st)
	return viewer.View(results)
}
