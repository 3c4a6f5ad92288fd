package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"state_diff/diff"
)

// ViewMode represents how the diff is laid out
type ViewMode int

const (
	UnifiedView ViewMode = iota
	SplitView
	StructuralView
)

// String returns the string representation of the view mode
func (v ViewMode) String() string {
	switch v {
	case UnifiedView:
		return "Unified"
	case SplitView:
		return "Split"
	case StructuralView:
		return "Structural"
	default:
		return "Unknown"
	}
}

// Model holds the watch-mode application state
type Model struct {
	path     string
	opts     diff.Options
	viewMode ViewMode

	previous *Snapshot
	current  *Snapshot
	records  []diff.LineRecord
	items    []diff.Item

	renderer *Renderer
	watcher  *Watcher
	history  *History
	logger   *Logger

	scroll   int
	width    int
	height   int
	showHelp bool
	quitting bool
	err      error
}

// NewModel creates a new watch-mode model
func NewModel(path string, opts diff.Options, renderer *Renderer, watcher *Watcher, history *History, logger *Logger) Model {
	return Model{
		path:     path,
		opts:     opts,
		viewMode: UnifiedView,
		renderer: renderer,
		watcher:  watcher,
		history:  history,
		logger:   logger,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadSnapshot(),
		m.watcher.WaitForChange(),
	)
}

// loadSnapshot reads the watched file and records it in the history. On the
// first load it also pulls the previously recorded snapshot out of the
// history so the initial view diffs against the last known state instead of
// showing everything as new.
func (m Model) loadSnapshot() tea.Cmd {
	return func() tea.Msg {
		snapshot, err := LoadSnapshot(m.path, m.logger)
		if err != nil {
			return errMsg{err}
		}
		var previous *Snapshot
		if m.history != nil {
			if _, err := m.history.Record(m.path, snapshot.Raw); err != nil {
				m.logger.Error("record snapshot", err, map[string]any{
					"file": m.path,
				})
			} else if m.current == nil {
				stored, _, ok, err := m.history.LastTwo(m.path)
				if err != nil {
					m.logger.Warn("read snapshot history", map[string]any{
						"file":  m.path,
						"error": err.Error(),
					})
				} else if ok {
					previous = snapshotFromHistory(stored, m.logger)
				}
			}
		}
		return snapshotMsg{snapshot: snapshot, previous: previous}
	}
}

// recompute refreshes both diff outputs from the current snapshot pair
func (m *Model) recompute() {
	var oldValue, newValue any
	if m.previous != nil {
		oldValue = m.previous.Value
	}
	if m.current != nil {
		newValue = m.current.Value
	}

	m.records = diff.ComputeLineDiff(oldValue, newValue, m.opts)
	m.items = diff.Diff(oldValue, newValue)
}

// renderedLines returns the full content for the active view mode
func (m *Model) renderedLines() []string {
	switch m.viewMode {
	case SplitView:
		return m.renderer.RenderSplit(m.records, max(20, m.width))
	case StructuralView:
		return m.renderer.RenderItems(m.items)
	default:
		return m.renderer.RenderUnified(m.records)
	}
}

// GetStats returns added/removed/modified row counts for the header
func (m *Model) GetStats() (added, removed, modified int) {
	for _, record := range m.records {
		switch record.Class {
		case diff.Added:
			added++
		case diff.Removed:
			removed++
		case diff.Modified:
			modified++
		}
	}
	return added, removed, modified
}

// Messages

type snapshotMsg struct {
	snapshot *Snapshot
	// previous is set on the first load when the history holds an earlier
	// snapshot of the same source.
	previous *Snapshot
}

type errMsg struct {
	err error
}

type clearErrorMsg struct{}
