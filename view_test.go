package main

import (
	"strings"
	"testing"

	"state_diff/diff"
)

func TestRenderHeaderContainsIndicators(t *testing.T) {
	model := testModel()
	model.width = 100

	header := model.renderHeader()

	for _, want := range []string{"state_diff", "state.json", "[Unified]", "[words]", "Press ? for help"} {
		if !strings.Contains(header, want) {
			t.Errorf("header missing %q:\n%s", want, header)
		}
	}
}

func TestRenderHeaderShowsStats(t *testing.T) {
	model := testModel()
	model.width = 100
	model.records = []diff.LineRecord{
		{Class: diff.Added},
		{Class: diff.Removed},
		{Class: diff.Modified},
	}

	header := model.renderHeader()
	if !strings.Contains(header, "+1/-1/~1") {
		t.Errorf("header missing stats:\n%s", header)
	}
}

func TestRenderContentPadsToHeight(t *testing.T) {
	model := testModel()
	model.width = 80
	model.height = 24

	content := model.renderContent(10)
	if got := strings.Count(content, "\n"); got != 9 {
		t.Errorf("content has %d newlines, want 9 for 10 padded rows", got)
	}
}

func TestRenderHelpListsBindings(t *testing.T) {
	model := testModel()
	model.width = 100
	model.height = 40
	model.showHelp = true

	help := model.renderHelp()
	if !strings.Contains(help, "Keyboard Shortcuts") {
		t.Error("help modal missing title")
	}
	if !strings.Contains(help, "Cycle word-diff granularity") {
		t.Error("help modal missing granularity binding")
	}
}

func TestRenderHelpHiddenWhenClosed(t *testing.T) {
	model := testModel()

	if got := model.renderHelp(); got != "" {
		t.Errorf("renderHelp() with help closed = %q, want empty", got)
	}
}

func TestGetKeyBindings(t *testing.T) {
	bindings := GetKeyBindings()
	if len(bindings) == 0 {
		t.Fatal("expected key bindings to be defined")
	}

	sections := make(map[string]bool)
	for _, kb := range bindings {
		if kb.Key == "" || kb.Action == "" || kb.Section == "" {
			t.Errorf("incomplete binding: %+v", kb)
		}
		sections[kb.Section] = true
	}
	for _, want := range []string{"Navigation", "Diff", "System"} {
		if !sections[want] {
			t.Errorf("missing binding section %q", want)
		}
	}
}
