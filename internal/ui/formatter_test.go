package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"rzt/internal/discovery"
	"rzt/internal/domain"
	"rzt/internal/report"
)

func init() {
	color.NoColor = true
}

func sampleResults() []domain.CaseResult {
	return []domain.CaseResult{
		{
			Case:    domain.TestCase{Name: "se-adeno-reads36_1-i95", Program: "/build/bin/razers3", Args: []string{"-i", "95", "g.fa", "r.fa"}},
			Success: true,
		},
		{
			Case: domain.TestCase{Name: "se-adeno-reads36_1-r", Program: "/build/bin/razers3", Args: []string{"-r", "g.fa", "r.fa"}},
			Mismatches: []domain.Mismatch{{
				Expected: "/src/se-adeno-reads36_1-r.razers",
				Actual:   "/tmp/se-adeno-reads36_1-r.razers",
				Reason:   "content differs",
				Diff:     "-a\n+b\n",
			}},
		},
		{
			Case:    domain.TestCase{Name: "se-adeno-reads36_1-f", Program: "/build/bin/razers3", Args: []string{"-f"}},
			ExitErr: errors.New("exit status 1"),
			Stderr:  "no reads",
		},
	}
}

func TestFormatter_CaseLines(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf, false)
	for _, r := range sampleResults() {
		f.CaseFinished(r)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		"razers3 -i 95 g.fa r.fa OK",
		"razers3 -r g.fa r.fa FAILED",
		"razers3 -f FAILED",
	}, lines)
}

func TestFormatter_VerboseShowsDiff(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf, true)
	for _, r := range sampleResults() {
		f.CaseFinished(r)
	}

	out := buf.String()
	assert.Contains(t, out, "content differs")
	assert.Contains(t, out, "    -a")
	assert.Contains(t, out, "exit status 1")
	assert.Contains(t, out, "no reads")
}

func TestFormatter_QuietSuppressesLines(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf, false)
	f.SetQuiet(true)
	f.CaseFinished(sampleResults()[0])
	assert.Empty(t, buf.String())
}

func TestFormatter_Summary(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf, false)
	tally := report.NewTally()
	for _, r := range sampleResults() {
		tally.Record(r)
	}

	f.PrintSummary(tally)
	f.PrintFailedCases(tally)

	out := buf.String()
	assert.Contains(t, out, "     total tests: 3\n")
	assert.Contains(t, out, "    failed tests: 2\n")
	assert.Contains(t, out, "successful tests: 1\n")
	assert.Contains(t, out, "├── se-adeno-reads36_1-r")
	assert.Contains(t, out, "└── se-adeno-reads36_1-f")
}

func TestFormatter_Header(t *testing.T) {
	var buf bytes.Buffer
	NewFormatter(&buf, false).PrintHeader("razers3")
	assert.Equal(t, "Executing test for razers3\n===========================\n\n", buf.String())
}

func TestFormatter_CaseList(t *testing.T) {
	var buf bytes.Buffer
	suite := domain.Suite{
		{Name: "a", Program: "razers3", Args: []string{"x"}},
		{Name: "b", Program: "razers3"},
	}
	NewFormatter(&buf, false).PrintCaseList(suite, true)

	out := buf.String()
	assert.Contains(t, out, "Found 2 case(s)")
	assert.Contains(t, out, "├── a\n│   └── razers3 x\n")
	assert.Contains(t, out, "└── b\n    └── razers3\n")
}

func TestFormatter_CorpusReport(t *testing.T) {
	var buf bytes.Buffer
	NewFormatter(&buf, false).PrintCorpusReport(discovery.CorpusReport{
		Referenced:   3,
		Missing:      []string{"/src/pe-adeno-reads36_2-ng.razers"},
		Unreferenced: []string{"/src/old.razers"},
	})

	out := buf.String()
	assert.Contains(t, out, "Missing (1)")
	assert.Contains(t, out, "Unreferenced (1)")
	assert.Contains(t, out, "incomplete")
}
