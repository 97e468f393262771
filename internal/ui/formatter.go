package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"rzt/internal/discovery"
	"rzt/internal/domain"
	"rzt/internal/report"
)

const rule = "=============================="

// Formatter formats and displays output
type Formatter struct {
	out     io.Writer
	verbose bool
	quiet   bool

	ok     *color.Color
	failed *color.Color
}

// NewFormatter creates a new Formatter writing to out, or stdout when out is nil
func NewFormatter(out io.Writer, verbose bool) *Formatter {
	if out == nil {
		out = os.Stdout
	}
	return &Formatter{
		out:     out,
		verbose: verbose,
		ok:      color.New(color.FgGreen),
		failed:  color.New(color.FgRed, color.Bold),
	}
}

// SetOutput redirects all further output to w
func (f *Formatter) SetOutput(w io.Writer) {
	f.out = w
}

// SetQuiet suppresses per-case lines, e.g. while a progress bar is drawn
func (f *Formatter) SetQuiet(quiet bool) {
	f.quiet = quiet
}

// PrintHeader prints the run banner
func (f *Formatter) PrintHeader(program string) {
	title := "Executing test for " + program
	fmt.Fprintln(f.out, title)
	fmt.Fprintln(f.out, strings.Repeat("=", len(title)+1))
	fmt.Fprintln(f.out)
}

// CaseFinished prints the verdict line of one case
func (f *Formatter) CaseFinished(r domain.CaseResult) {
	if f.quiet {
		return
	}
	fmt.Fprint(f.out, r.Case.CommandLine(), " ")
	if r.Success {
		f.ok.Fprintln(f.out, "OK")
		return
	}
	f.failed.Fprintln(f.out, "FAILED")
	if f.verbose {
		f.printFailure(r)
	}
}

func (f *Formatter) printFailure(r domain.CaseResult) {
	if r.ExitErr != nil {
		fmt.Fprintf(f.out, "  %s\n", r.ExitErr)
		if r.Stderr != "" {
			fmt.Fprintf(f.out, "  stderr:\n%s\n", indent(r.Stderr))
		}
	}
	for _, m := range r.Mismatches {
		color.New(color.FgYellow).Fprintf(f.out, "  %s\n", m.Reason)
		fmt.Fprintf(f.out, "    expected: %s\n    actual:   %s\n", m.Expected, m.Actual)
		if m.Diff != "" {
			fmt.Fprintln(f.out, indent(m.Diff))
		}
	}
}

// PrintSummary prints the totals block
func (f *Formatter) PrintSummary(t *report.Tally) {
	fmt.Fprintln(f.out, rule)
	fmt.Fprintf(f.out, "     total tests: %d\n", t.Total())
	fmt.Fprint(f.out, "    failed tests: ")
	if t.Failed() > 0 {
		f.failed.Fprintf(f.out, "%d\n", t.Failed())
	} else {
		fmt.Fprintf(f.out, "%d\n", t.Failed())
	}
	fmt.Fprint(f.out, "successful tests: ")
	f.ok.Fprintf(f.out, "%d\n", t.Passed())
	fmt.Fprintln(f.out, rule)
}

// PrintFailedCases lists the names of failed cases, e.g. after a quiet run
func (f *Formatter) PrintFailedCases(t *report.Tally) {
	failures := t.Failures()
	if len(failures) == 0 {
		return
	}
	fmt.Fprintln(f.out)
	f.failed.Fprintf(f.out, "✗ %d case(s) failed:\n", len(failures))
	for i, r := range failures {
		prefix := "├── "
		if i == len(failures)-1 {
			prefix = "└── "
		}
		fmt.Fprintf(f.out, "%s%s\n", prefix, color.YellowString(r.Case.Name))
	}
}

// PrintCaseList prints the suite as a tree, optionally with each case's command line
func (f *Formatter) PrintCaseList(suite domain.Suite, showCommands bool) {
	color.New(color.FgGreen).Fprintf(f.out, "Found %d case(s):\n\n", len(suite))

	for i, tc := range suite {
		isLast := i == len(suite)-1
		prefix := "├── "
		childPrefix := "│   └── "
		if isLast {
			prefix = "└── "
			childPrefix = "    └── "
		}
		fmt.Fprintf(f.out, "%s%s\n", prefix, color.CyanString(tc.Name))
		if showCommands {
			fmt.Fprintf(f.out, "%s%s\n", childPrefix, tc.CommandLine())
		}
	}
}

// PrintCorpusReport prints the result of a golden corpus check
func (f *Formatter) PrintCorpusReport(r discovery.CorpusReport) {
	fmt.Fprintf(f.out, "Referenced golden files: %d\n", r.Referenced)

	if len(r.Missing) > 0 {
		f.failed.Fprintf(f.out, "\nMissing (%d):\n", len(r.Missing))
		for _, p := range r.Missing {
			fmt.Fprintf(f.out, "  %s\n", p)
		}
	}
	if len(r.InvalidSAM) > 0 {
		f.failed.Fprintf(f.out, "\nUnparseable SAM (%d):\n", len(r.InvalidSAM))
		for p, msg := range r.InvalidSAM {
			fmt.Fprintf(f.out, "  %s: %s\n", p, msg)
		}
	}
	if len(r.SAM) > 0 {
		fmt.Fprintf(f.out, "\nSAM golden files parsed: %d\n", len(r.SAM))
	}
	if len(r.Unreferenced) > 0 {
		color.New(color.FgYellow).Fprintf(f.out, "\nUnreferenced (%d):\n", len(r.Unreferenced))
		for _, p := range r.Unreferenced {
			fmt.Fprintf(f.out, "  %s\n", p)
		}
	}

	fmt.Fprintln(f.out)
	if r.OK() {
		f.ok.Fprintln(f.out, "✓ Golden corpus is complete")
	} else {
		f.failed.Fprintln(f.out, "✗ Golden corpus is incomplete")
	}
}

func indent(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = "    " + l
	}
	return strings.Join(lines, "\n")
}
