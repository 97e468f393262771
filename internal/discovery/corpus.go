package discovery

import (
	"os"
	"path/filepath"
	"sort"

	"rzt/internal/domain"
)

// CorpusReport is the result of checking the golden files a suite relies on
type CorpusReport struct {
	Referenced   int               // Distinct golden files referenced by the suite
	Missing      []string          // Referenced but absent
	Unreferenced []string          // Present in the tests dir but used by no case
	InvalidSAM   map[string]string // SAM golden file -> parse error
	SAM          map[string]SAMSummary
}

// OK reports whether every referenced golden file exists and parses
func (r CorpusReport) OK() bool {
	return len(r.Missing) == 0 && len(r.InvalidSAM) == 0
}

// CheckCorpus verifies the golden side of every diff pair in suite and lists
// files in testsDir matched by scanner that no case references.
func CheckCorpus(suite domain.Suite, scanner *Scanner, testsDir string) (CorpusReport, error) {
	report := CorpusReport{
		InvalidSAM: make(map[string]string),
		SAM:        make(map[string]SAMSummary),
	}

	referenced := make(map[string]bool)
	for _, tc := range suite {
		for _, d := range tc.Diffs {
			referenced[filepath.Clean(d.Expected)] = true
		}
	}
	report.Referenced = len(referenced)

	for path := range referenced {
		if _, err := os.Stat(path); err != nil {
			report.Missing = append(report.Missing, path)
			continue
		}
		if filepath.Ext(path) != ".sam" {
			continue
		}
		summary, err := ValidateSAM(path)
		if err != nil {
			report.InvalidSAM[path] = err.Error()
			continue
		}
		report.SAM[path] = summary
	}
	sort.Strings(report.Missing)

	present, err := scanner.Scan(testsDir)
	if err != nil {
		return report, err
	}
	for _, path := range present {
		if !referenced[filepath.Clean(path)] {
			report.Unreferenced = append(report.Unreferenced, path)
		}
	}
	return report, nil
}
