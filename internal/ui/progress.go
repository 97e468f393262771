package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"

	"rzt/internal/domain"
)

// ProgressBar creates and manages progress bars
type ProgressBar struct {
	bar    *progressbar.ProgressBar
	passed int
	failed int
}

// CanShowProgress reports whether stderr is a terminal a bar can be drawn on
func CanShowProgress() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// NewProgressBar creates a new progress bar writing to w
func NewProgressBar(count int, w io.Writer) *ProgressBar {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(describe(0, 0)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(w),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar}
}

func describe(passed, failed int) string {
	return color.CyanString("Running cases: ") +
		color.GreenString("[ok: %d", passed) +
		" | " +
		color.RedString("failed: %d]", failed)
}

// Update updates the progress bar with success and failure counts
func (p *ProgressBar) Update(passed, failed int) {
	p.passed, p.failed = passed, failed
	_ = p.bar.Set(passed + failed)
	p.bar.Describe(describe(passed, failed))
}

// CaseFinished advances the bar by one case
func (p *ProgressBar) CaseFinished(r domain.CaseResult) {
	if r.Success {
		p.Update(p.passed+1, p.failed)
	} else {
		p.Update(p.passed, p.failed+1)
	}
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	_ = p.bar.Finish()
}
