package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showHelp {
		return m.renderHelp()
	}

	header := m.renderHeader()
	content := m.renderContent(m.contentHeight())
	footer := m.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (m Model) renderHeader() string {
	var parts []string

	parts = append(parts, headerStyle.Render("state_diff"))
	parts = append(parts, subtleStyle.Render(m.path))
	parts = append(parts, modeIndicatorStyle.Render("["+m.viewMode.String()+"]"))
	parts = append(parts, granularityIndicatorStyle.Render("["+m.opts.Granularity.String()+"]"))

	if m.opts.ShowDiffOnly {
		parts = append(parts, granularityIndicatorStyle.Render(
			fmt.Sprintf("[±%d]", m.opts.ContextLines)))
	}

	added, removed, modified := m.GetStats()
	if added > 0 || removed > 0 || modified > 0 {
		stats := fmt.Sprintf("+%d/-%d/~%d", added, removed, modified)
		parts = append(parts, statsSubtleStyle.Render("("+stats+")"))
	}

	if m.err != nil {
		parts = append(parts, errorStyle.Render("error: "+m.err.Error()))
	}

	parts = append(parts, subtleStyle.Render("Press ? for help"))

	header := strings.Join(parts, " ")
	separator := headerSeparatorStyle.Render(strings.Repeat("─", max(0, m.width)))

	return lipgloss.JoinVertical(lipgloss.Left, header, separator)
}

func (m Model) renderContent(height int) string {
	allLines := m.renderedLines()

	if len(allLines) == 0 {
		allLines = []string{panelInfoStyle.Render("No differences")}
	}

	start, end := visibleRange(m.scroll, height, len(allLines))
	lines := allLines[start:end]

	// Pad to exact content height so the footer stays pinned
	padded := make([]string, 0, height)
	padded = append(padded, lines...)
	for len(padded) < height {
		padded = append(padded, "")
	}

	return strings.Join(padded, "\n")
}

func (m Model) renderFooter() string {
	help := []string{
		footerKeyStyle.Render("[↑↓]") + " Scroll",
		footerKeyStyle.Render("[w]") + " Granularity",
		footerKeyStyle.Render("[o]") + " Changes Only",
		footerKeyStyle.Render("[s]") + " View",
		footerKeyStyle.Render("[?]") + " Help",
		footerKeyStyle.Render("[q]") + " Quit",
	}

	footer := footerBaseStyle.Render(strings.Join(help, "  "))

	total := len(m.renderedLines())
	if total > m.contentHeight() {
		percent := 100
		if maxScroll := m.maxScroll(); maxScroll > 0 {
			percent = m.scroll * 100 / maxScroll
		}
		footer += "  " + footerScrollStyle.Render(fmt.Sprintf("%d%%", percent))
	}

	return footer
}
