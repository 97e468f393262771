package config

import (
	"path/filepath"
	"testing"
)

func TestConfig_GetTestsPath(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name:     "default tests dir",
			config:   &Config{SourceRoot: "/seqan", TestsDir: DefaultTestsDir},
			expected: filepath.Join("/seqan", "extras", "apps", "razers3", "tests"),
		},
		{
			name:     "custom tests dir",
			config:   &Config{SourceRoot: "/seqan", TestsDir: "tests"},
			expected: filepath.Join("/seqan", "tests"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.GetTestsPath()
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestConfig_GetReportPath(t *testing.T) {
	t.Run("no report requested", func(t *testing.T) {
		cfg := New()
		if p := cfg.GetReportPath(); p != "" {
			t.Errorf("expected empty path, got %s", p)
		}
	})

	t.Run("explicit file", func(t *testing.T) {
		cfg := New()
		cfg.Flags.ReportPath = "/tmp/out.json"
		if p := cfg.GetReportPath(); p != "/tmp/out.json" {
			t.Errorf("expected /tmp/out.json, got %s", p)
		}
	})

	t.Run("directory gets default name", func(t *testing.T) {
		cfg := New()
		cfg.Flags.ReportPath = "/tmp/reports"
		expected := filepath.Join("/tmp/reports", DefaultReportFile)
		if p := cfg.GetReportPath(); p != expected {
			t.Errorf("expected %s, got %s", expected, p)
		}
	})
}

func TestConfig_SetRoots(t *testing.T) {
	cfg := New()
	if err := cfg.SetRoots("", "/build"); err == nil {
		t.Error("expected error for empty source root")
	}
	if err := cfg.SetRoots("/src", ""); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if cfg.SourceRoot != "/src" {
		t.Errorf("expected /src, got %s", cfg.SourceRoot)
	}
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.ProgramName != DefaultProgramName {
		t.Errorf("expected ProgramName %s, got %s", DefaultProgramName, cfg.ProgramName)
	}
	if cfg.TestsDir != DefaultTestsDir {
		t.Errorf("expected TestsDir %s, got %s", DefaultTestsDir, cfg.TestsDir)
	}
	if cfg.ProgramDir != DefaultProgramDir {
		t.Errorf("expected ProgramDir %s, got %s", DefaultProgramDir, cfg.ProgramDir)
	}
}
