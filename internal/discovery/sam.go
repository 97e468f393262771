package discovery

import (
	"fmt"
	"io"
	"os"

	biogosam "github.com/biogo/hts/sam"
)

// SAMSummary describes a golden SAM file that parsed cleanly
type SAMSummary struct {
	References int
	Records    int
	Unmapped   int
}

// ValidateSAM parses every header line and record of the SAM file at path
func ValidateSAM(path string) (SAMSummary, error) {
	f, err := os.Open(path)
	if err != nil {
		return SAMSummary{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return validateSAM(f)
}

func validateSAM(in io.Reader) (SAMSummary, error) {
	var summary SAMSummary

	s, err := biogosam.NewReader(in)
	if err != nil {
		return summary, fmt.Errorf("parse header: %w", err)
	}
	summary.References = len(s.Header().Refs())

	for {
		rec, err := s.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return summary, fmt.Errorf("parse record %d: %w", summary.Records+1, err)
		}
		summary.Records++
		if rec.Flags&biogosam.Unmapped != 0 {
			summary.Unmapped++
		}
	}
	return summary, nil
}
