package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// KeyBinding represents a keyboard shortcut with its description
type KeyBinding struct {
	Key     string
	Action  string
	Section string
}

// All key bindings for the application
var keyBindings = []KeyBinding{
	// Navigation
	{"up/k", "Scroll up", "Navigation"},
	{"down/j", "Scroll down", "Navigation"},
	{"pgup/b", "Page up", "Navigation"},
	{"pgdown/f", "Page down", "Navigation"},
	{"g/home", "Jump to top", "Navigation"},
	{"G/end", "Jump to bottom", "Navigation"},

	// Diff
	{"w", "Cycle word-diff granularity", "Diff"},
	{"d", "Toggle word-level highlighting", "Diff"},
	{"o", "Toggle changes-only view", "Diff"},
	{"+/-", "Grow/shrink surrounding context", "Diff"},
	{"s/tab", "Cycle unified/split/structural view", "Diff"},
	{"r", "Reload the watched file", "Diff"},

	// System
	{"q/ctrl+c", "Quit application", "System"},
	{"?", "Show/hide this help screen", "System"},
}

// renderHelp renders the help modal centered in the window
func (m Model) renderHelp() string {
	if !m.showHelp {
		return ""
	}

	modalWidth, modalHeight := helpModalDimensions(m.width, m.height)

	modalStyle := lipgloss.NewStyle().
		Width(modalWidth).
		Height(modalHeight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBlue).
		Background(colorGray235).
		Padding(1, 2)

	var content strings.Builder

	content.WriteString(helpTitleStyle.Render("Keyboard Shortcuts"))
	content.WriteString("\n")

	currentSection := ""
	for _, kb := range keyBindings {
		if kb.Section != currentSection {
			currentSection = kb.Section
			content.WriteString("\n")
			content.WriteString(helpSectionStyle.Render(currentSection))
			content.WriteString("\n")
		}

		key := helpKeyStyle.Render(kb.Key)
		desc := helpDescStyle.Render(kb.Action)
		content.WriteString(fmt.Sprintf("%s %s\n", key, desc))
	}

	content.WriteString("\n")
	content.WriteString(subtleStyle.Render("Press ? to close"))

	helpContent := modalStyle.Render(content.String())
	helpLines := strings.Split(helpContent, "\n")

	// Center vertically and horizontally
	verticalPadding := (m.height - len(helpLines)) / 2
	if verticalPadding < 0 {
		verticalPadding = 0
	}

	horizontalPadding := (m.width - modalWidth) / 2
	if horizontalPadding < 0 {
		horizontalPadding = 0
	}

	var result strings.Builder
	for i := 0; i < verticalPadding; i++ {
		result.WriteString("\n")
	}
	for _, line := range helpLines {
		result.WriteString(strings.Repeat(" ", horizontalPadding))
		result.WriteString(line)
		result.WriteString("\n")
	}

	return result.String()
}

// GetKeyBindings returns all key bindings (for documentation/testing)
func GetKeyBindings() []KeyBinding {
	return keyBindings
}
