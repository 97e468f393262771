package domain

// FailureRecord is the persisted form of a failed case
type FailureRecord struct {
	CaseName    string     `json:"case_name"`
	CommandLine string     `json:"command_line"`
	ExitError   string     `json:"exit_error,omitempty"`
	Stderr      string     `json:"stderr,omitempty"`
	Mismatches  []Mismatch `json:"mismatches,omitempty"`
	Reviewed    bool       `json:"reviewed,omitempty"` // Toggled in the failures viewer
}

// NewFailureRecord converts a failed result into its persisted form
func NewFailureRecord(r CaseResult) FailureRecord {
	rec := FailureRecord{
		CaseName:    r.Case.Name,
		CommandLine: r.Case.CommandLine(),
		Stderr:      r.Stderr,
		Mismatches:  r.Mismatches,
	}
	if r.ExitErr != nil {
		rec.ExitError = r.ExitErr.Error()
	}
	return rec
}
