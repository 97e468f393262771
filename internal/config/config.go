package config

import (
	"errors"
	"path/filepath"
)

// Config holds all configuration for a harness run
type Config struct {
	// Roots given on the command line
	SourceRoot string
	BinaryRoot string

	// Program under test
	ProgramName string
	ProgramDir  string

	// Fixture directory relative to SourceRoot
	TestsDir string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Verbose      bool
	NameFilter   string
	FailFast     bool
	Progress     bool
	ReportPath   string
	ShowCommands bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ProgramName: DefaultProgramName,
		ProgramDir:  DefaultProgramDir,
		TestsDir:    DefaultTestsDir,
	}
}

// SetRoots records the source and binary roots. The binary root may be
// empty for commands that never spawn the program.
func (c *Config) SetRoots(sourceRoot, binaryRoot string) error {
	if sourceRoot == "" {
		return errors.New("source root must not be empty")
	}
	c.SourceRoot = sourceRoot
	c.BinaryRoot = binaryRoot
	return nil
}

// GetTestsPath returns the absolute fixture directory
func (c *Config) GetTestsPath() string {
	return filepath.Join(c.SourceRoot, filepath.FromSlash(c.TestsDir))
}

// GetReportPath returns where the JSON report goes, or "" when no report was requested.
// A directory gets DefaultReportFile appended.
func (c *Config) GetReportPath() string {
	p := c.Flags.ReportPath
	if p == "" {
		return ""
	}
	if filepath.Ext(p) == "" {
		p = filepath.Join(p, DefaultReportFile)
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
