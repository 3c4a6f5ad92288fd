package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"state_diff/diff"
)

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case snapshotMsg:
		if m.current == nil && msg.previous != nil {
			m.previous = msg.previous
		} else {
			m.previous = m.current
		}
		m.current = msg.snapshot
		m.recompute()
		m.clampScroll()
		m.err = nil
		return m, nil

	case FSChangeMsg:
		m.logger.Debug("file changed, reloading", map[string]any{
			"file": m.path,
		})
		return m, tea.Batch(
			m.loadSnapshot(),
			m.watcher.WaitForChange(),
		)

	case errMsg:
		m.err = msg.err
		m.logger.Error("watch update failed", msg.err, nil)
		return m, tea.Tick(5*time.Second, func(time.Time) tea.Msg {
			return clearErrorMsg{}
		})

	case clearErrorMsg:
		m.err = nil
		return m, m.watcher.WaitForChange()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch msg.String() {
		case "q", "esc", "?":
			m.showHelp = false
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "?":
		m.showHelp = true

	case "up", "k":
		m.scroll = clamp(m.scroll-1, 0, m.maxScroll())

	case "down", "j":
		m.scroll = clamp(m.scroll+1, 0, m.maxScroll())

	case "pgup", "b":
		m.scroll = clamp(m.scroll-m.contentHeight(), 0, m.maxScroll())

	case "pgdown", "f":
		m.scroll = clamp(m.scroll+m.contentHeight(), 0, m.maxScroll())

	case "g", "home":
		m.scroll = 0

	case "G", "end":
		m.scroll = m.maxScroll()

	case "w":
		m.opts.Granularity = nextGranularity(m.opts.Granularity)
		m.recompute()
		m.clampScroll()

	case "d":
		m.opts.DisableWordDiff = !m.opts.DisableWordDiff
		m.recompute()

	case "o":
		m.opts.ShowDiffOnly = !m.opts.ShowDiffOnly
		m.recompute()
		m.clampScroll()

	case "+", "=":
		m.opts.ContextLines = clamp(m.opts.ContextLines+contextStep, 0, maxContext)
		m.recompute()
		m.clampScroll()

	case "-", "_":
		m.opts.ContextLines = clamp(m.opts.ContextLines-contextStep, 0, maxContext)
		m.recompute()
		m.clampScroll()

	case "s", "tab":
		m.viewMode = (m.viewMode + 1) % 3
		m.clampScroll()

	case "r":
		return m, m.loadSnapshot()
	}

	return m, nil
}

// nextGranularity cycles through the word-diff granularities
func nextGranularity(g diff.Granularity) diff.Granularity {
	switch g {
	case diff.Chars:
		return diff.Words
	case diff.Words:
		return diff.Lines
	case diff.Lines:
		return diff.TrimmedLines
	default:
		return diff.Chars
	}
}

func (m *Model) contentHeight() int {
	return contentHeight(m.height)
}

func (m *Model) maxScroll() int {
	total := len(m.renderedLines())
	return clamp(total-m.contentHeight(), 0, total)
}

func (m *Model) clampScroll() {
	m.scroll = clamp(m.scroll, 0, m.maxScroll())
}
