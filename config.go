package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"state_diff/diff"
)

// Config holds user preferences loaded from the TOML config file. Flags
// override whatever is set here.
type Config struct {
	Granularity  string `toml:"granularity"`
	ContextLines int    `toml:"context_lines"`
	Matcher      string `toml:"matcher"`
	Color        bool   `toml:"color"`
	HistoryPath  string `toml:"history_path"`
	HistoryLimit int    `toml:"history_limit"`
}

// DefaultConfig returns the configuration used when no config file exists
func DefaultConfig() Config {
	return Config{
		Granularity:  diff.Words.String(),
		ContextLines: diff.DefaultContextLines,
		Matcher:      "greedy",
		Color:        true,
		HistoryLimit: 100,
	}
}

// configDir returns the state_diff config directory, creating it if needed
func configDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, "state_diff")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// LoadConfig reads the config file at path, or the default location when
// path is empty. A missing file is not an error; defaults apply.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	if path == "" {
		dir, err := configDir()
		if err != nil {
			return config, nil
		}
		path = filepath.Join(dir, "config.toml")
	}

	if _, err := toml.DecodeFile(path, &config); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return config, nil
		}
		return config, err
	}

	if config.ContextLines < 0 {
		config.ContextLines = 0
	}
	if config.HistoryLimit < 1 {
		config.HistoryLimit = 1
	}
	return config, nil
}

// DiffOptions converts the config into engine options
func (c Config) DiffOptions() diff.Options {
	opts := diff.DefaultOptions()
	opts.Granularity = diff.ParseGranularity(c.Granularity)
	opts.ContextLines = c.ContextLines
	opts.Matcher = matcherByName(c.Matcher)
	return opts
}

// matcherByName maps a config or flag name to a line matcher. Unknown names
// select the default greedy matcher for output compatibility.
func matcherByName(name string) diff.LineMatcher {
	switch name {
	case "lcs":
		return diff.LCSMatcher{}
	case "myers":
		return diff.MyersMatcher{}
	default:
		return diff.GreedyMatcher{}
	}
}
