package cli

import "rzt/internal/config"

// Flags holds command-line flags
type Flags struct {
	Verbose      bool
	NameFilter   string
	FailFast     bool
	Progress     bool
	ReportPath   string
	ShowCommands bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Verbose:      f.Verbose,
		NameFilter:   f.NameFilter,
		FailFast:     f.FailFast,
		Progress:     f.Progress,
		ReportPath:   f.ReportPath,
		ShowCommands: f.ShowCommands,
	}
}
