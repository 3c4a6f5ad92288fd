package main

import (
	"os"
	"path/filepath"
	"testing"

	"state_diff/diff"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Granularity != "words" {
		t.Errorf("Granularity = %q, want %q", config.Granularity, "words")
	}
	if config.ContextLines != diff.DefaultContextLines {
		t.Errorf("ContextLines = %d, want %d", config.ContextLines, diff.DefaultContextLines)
	}
	if config.Matcher != "greedy" {
		t.Errorf("Matcher = %q, want %q", config.Matcher, "greedy")
	}
	if !config.Color {
		t.Error("Color should default to true")
	}
	if config.HistoryLimit != 100 {
		t.Errorf("HistoryLimit = %d, want 100", config.HistoryLimit)
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("missing config file should not error: %v", err)
	}
	if config != DefaultConfig() {
		t.Errorf("config = %+v, want defaults", config)
	}
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
granularity = "chars"
context_lines = 5
matcher = "lcs"
color = false
history_limit = 10
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config fixture: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if config.Granularity != "chars" {
		t.Errorf("Granularity = %q, want %q", config.Granularity, "chars")
	}
	if config.ContextLines != 5 {
		t.Errorf("ContextLines = %d, want 5", config.ContextLines)
	}
	if config.Matcher != "lcs" {
		t.Errorf("Matcher = %q, want %q", config.Matcher, "lcs")
	}
	if config.Color {
		t.Error("Color should be false")
	}
	if config.HistoryLimit != 10 {
		t.Errorf("HistoryLimit = %d, want 10", config.HistoryLimit)
	}
}

func TestLoadConfig_ClampsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
context_lines = -2
history_limit = 0
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config fixture: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if config.ContextLines != 0 {
		t.Errorf("ContextLines = %d, want clamped 0", config.ContextLines)
	}
	if config.HistoryLimit != 1 {
		t.Errorf("HistoryLimit = %d, want clamped 1", config.HistoryLimit)
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("granularity = [broken"), 0o644); err != nil {
		t.Fatalf("failed to write config fixture: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("malformed config should error")
	}
}

func TestConfigDiffOptions(t *testing.T) {
	config := Config{
		Granularity:  "trimmed-lines",
		ContextLines: 7,
		Matcher:      "myers",
	}

	opts := config.DiffOptions()
	if opts.Granularity != diff.TrimmedLines {
		t.Errorf("Granularity = %v, want %v", opts.Granularity, diff.TrimmedLines)
	}
	if opts.ContextLines != 7 {
		t.Errorf("ContextLines = %d, want 7", opts.ContextLines)
	}
	if _, ok := opts.Matcher.(diff.MyersMatcher); !ok {
		t.Errorf("Matcher = %T, want diff.MyersMatcher", opts.Matcher)
	}
}

func TestMatcherByName(t *testing.T) {
	tests := []struct {
		name string
		want diff.LineMatcher
	}{
		{"greedy", diff.GreedyMatcher{}},
		{"lcs", diff.LCSMatcher{}},
		{"myers", diff.MyersMatcher{}},
		{"unknown", diff.GreedyMatcher{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matcherByName(tt.name); got != tt.want {
				t.Errorf("matcherByName(%q) = %T, want %T", tt.name, got, tt.want)
			}
		})
	}
}
