package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

const (
	// MaxSnapshotSize is the maximum snapshot size we'll diff (10MB)
	MaxSnapshotSize = 10 * 1024 * 1024
)

// Snapshot is one captured state value together with its raw bytes
type Snapshot struct {
	Source string
	Value  any
	Raw    []byte
}

// LoadSnapshot reads a snapshot from a file, or from stdin when path is "-"
func LoadSnapshot(path string, logger *Logger) (*Snapshot, error) {
	var raw []byte
	var err error

	if path == "-" {
		raw, err = io.ReadAll(io.LimitReader(os.Stdin, MaxSnapshotSize+1))
		if err != nil {
			return nil, fmt.Errorf("failed to read snapshot from stdin: %w", err)
		}
	} else {
		raw, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
		}
	}

	if err := enforceSizeLimit(path, raw, logger); err != nil {
		return nil, err
	}

	return &Snapshot{
		Source: path,
		Value:  parseSnapshot(raw, path, logger),
		Raw:    raw,
	}, nil
}

// LoadHeadSnapshot reads the committed HEAD version of a file from the
// enclosing git repository.
func LoadHeadSnapshot(path string, logger *Logger) (*Snapshot, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	repo, err := git.PlainOpenWithOptions(filepath.Dir(absPath), &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository for %s: %w", path, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}

	relPath, err := filepath.Rel(worktree.Filesystem.Root(), absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s inside the repository: %w", path, err)
	}
	relPath = filepath.ToSlash(relPath)

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to get HEAD: %w", err)
	}
	headCommit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("failed to get HEAD commit: %w", err)
	}

	file, err := headCommit.File(relPath)
	if err != nil {
		return nil, fmt.Errorf("failed to find %s in HEAD: %w", relPath, err)
	}
	reader, err := file.Reader()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s from HEAD: %w", relPath, err)
	}
	raw, err := io.ReadAll(reader)
	reader.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s from HEAD: %w", relPath, err)
	}

	if err := enforceSizeLimit(relPath, raw, logger); err != nil {
		return nil, err
	}

	source := "HEAD:" + relPath
	return &Snapshot{
		Source: source,
		Value:  parseSnapshot(raw, source, logger),
		Raw:    raw,
	}, nil
}

// snapshotFromHistory rebuilds a snapshot from a stored history row
func snapshotFromHistory(entry *HistoryEntry, logger *Logger) *Snapshot {
	return &Snapshot{
		Source: entry.Source,
		Value:  parseSnapshot(entry.Raw, entry.Source, logger),
		Raw:    entry.Raw,
	}
}

// parseSnapshot decodes raw bytes as JSON. Invalid JSON degrades to the raw
// text as a single string value; the engine is total, so the diff still
// works, it just loses structure.
func parseSnapshot(raw []byte, source string, logger *Logger) any {
	if len(raw) == 0 {
		return nil
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		if logger != nil {
			logger.Warn("snapshot is not valid JSON, diffing as plain text", map[string]any{
				"source": source,
			})
		}
		return string(raw)
	}
	return value
}

// enforceSizeLimit checks if snapshot content exceeds the size limit
func enforceSizeLimit(source string, raw []byte, logger *Logger) error {
	if len(raw) <= MaxSnapshotSize {
		return nil
	}
	if logger != nil {
		logger.Warn("snapshot too large to diff", map[string]any{
			"source": source,
			"size":   len(raw),
			"max":    MaxSnapshotSize,
		})
	}
	return fmt.Errorf("snapshot %s too large to diff (%d > %d)", source, len(raw), MaxSnapshotSize)
}
