package main

import (
	"errors"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// FSChangeMsg is sent when the watched snapshot file changes
type FSChangeMsg struct {
	time time.Time
}

// Watcher handles file system watching for a single snapshot file
type Watcher struct {
	watcher    *fsnotify.Watcher
	path       string
	isWatching bool
}

// NewWatcher creates a watcher for the snapshot at path. The parent
// directory is watched rather than the file itself so atomic-rename writers
// (editors, most apps persisting JSON) are still observed.
func NewWatcher(path string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		_ = fsWatcher.Close()
		return nil, err
	}

	if err := fsWatcher.Add(filepath.Dir(absPath)); err != nil {
		_ = fsWatcher.Close()
		return nil, err
	}

	return &Watcher{
		watcher:    fsWatcher,
		path:       absPath,
		isWatching: true,
	}, nil
}

// WaitForChange waits for the next change to the watched file
func (w *Watcher) WaitForChange() tea.Cmd {
	return func() tea.Msg {
		if !w.isWatching {
			return errMsg{errors.New("watcher is not running")}
		}

		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return errMsg{errors.New("watcher closed")}
				}

				if !w.isWatchedFile(event.Name) {
					continue
				}
				if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
					// Small debounce so rapid write bursts coalesce.
					time.Sleep(50 * time.Millisecond)
					return FSChangeMsg{time: time.Now()}
				}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return errMsg{errors.New("watcher closed")}
				}
				return errMsg{err}
			}
		}
	}
}

// Close closes the file system watcher
func (w *Watcher) Close() error {
	if !w.isWatching {
		return nil
	}

	w.isWatching = false
	return w.watcher.Close()
}

func (w *Watcher) isWatchedFile(name string) bool {
	absName, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	return absName == w.path
}
