package main

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// History is a snapshot store backed by sqlite. It is constructed once with
// OpenHistory and closed explicitly; tests use an in-memory database.
type History struct {
	db    *sql.DB
	limit int
}

// HistoryEntry describes one stored snapshot
type HistoryEntry struct {
	ID      int64
	Source  string
	TakenAt time.Time
	Raw     []byte
}

const historySchema = `
CREATE TABLE IF NOT EXISTS snapshots (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	source   TEXT NOT NULL,
	taken_at TEXT NOT NULL,
	body     BLOB NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_snapshots_source ON snapshots(source, id);
`

// OpenHistory opens (creating if necessary) the snapshot history database at
// path. Use ":memory:" for an ephemeral store. limit caps retained snapshots
// per source; older rows are pruned on record.
func OpenHistory(path string, limit int) (*History, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database %s: %w", path, err)
	}

	if _, err := db.Exec(historySchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}

	if limit < 1 {
		limit = 1
	}
	return &History{db: db, limit: limit}, nil
}

// Close closes the underlying database
func (h *History) Close() error {
	return h.db.Close()
}

// Record stores a snapshot for source and prunes rows beyond the limit
func (h *History) Record(source string, raw []byte) (int64, error) {
	result, err := h.db.Exec(
		`INSERT INTO snapshots (source, taken_at, body) VALUES (?, ?, ?)`,
		source, time.Now().UTC().Format(time.RFC3339Nano), raw,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to record snapshot for %s: %w", source, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get snapshot id: %w", err)
	}

	_, err = h.db.Exec(
		`DELETE FROM snapshots WHERE source = ? AND id NOT IN (
			SELECT id FROM snapshots WHERE source = ? ORDER BY id DESC LIMIT ?
		)`,
		source, source, h.limit,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to prune snapshots for %s: %w", source, err)
	}

	return id, nil
}

// LastTwo returns the two most recent snapshots for source, oldest first.
// ok is false when fewer than two snapshots exist.
func (h *History) LastTwo(source string) (previous, current *HistoryEntry, ok bool, err error) {
	entries, err := h.Recent(source, 2)
	if err != nil {
		return nil, nil, false, err
	}
	if len(entries) < 2 {
		return nil, nil, false, nil
	}
	// Recent returns newest first.
	return &entries[1], &entries[0], true, nil
}

// Recent returns up to n snapshots for source, newest first
func (h *History) Recent(source string, n int) ([]HistoryEntry, error) {
	rows, err := h.db.Query(
		`SELECT id, source, taken_at, body FROM snapshots
		 WHERE source = ? ORDER BY id DESC LIMIT ?`,
		source, n,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots for %s: %w", source, err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var entry HistoryEntry
		var takenAt string
		if err := rows.Scan(&entry.ID, &entry.Source, &takenAt, &entry.Raw); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		if parsed, parseErr := time.Parse(time.RFC3339Nano, takenAt); parseErr == nil {
			entry.TakenAt = parsed
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Count returns the number of stored snapshots for source
func (h *History) Count(source string) (int, error) {
	var count int
	err := h.db.QueryRow(`SELECT COUNT(*) FROM snapshots WHERE source = ?`, source).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count snapshots for %s: %w", source, err)
	}
	return count, nil
}
