package config

const (
	// DefaultProgramName is the executable under test
	DefaultProgramName = "razers3"
	// DefaultProgramDir is where the build places the executable, relative to the binary root
	DefaultProgramDir = "extras/apps/razers3"
	// DefaultTestsDir holds fixtures and golden outputs, relative to the source root
	DefaultTestsDir = "extras/apps/razers3/tests"
	// DefaultReportFile is the report name used when --report is given without a directory
	DefaultReportFile = "razers3-test-results.json"
)
