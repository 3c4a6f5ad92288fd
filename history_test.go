package main

import (
	"bytes"
	"testing"
)

func openTestHistory(t *testing.T, limit int) *History {
	t.Helper()
	history, err := OpenHistory(":memory:", limit)
	if err != nil {
		t.Fatalf("OpenHistory() error: %v", err)
	}
	t.Cleanup(func() {
		if err := history.Close(); err != nil {
			t.Errorf("close history: %v", err)
		}
	})
	return history
}

func TestHistoryRecordAndRecent(t *testing.T) {
	history := openTestHistory(t, 10)

	id1, err := history.Record("state.json", []byte(`{"v":1}`))
	if err != nil {
		t.Fatalf("Record() error: %v", err)
	}
	id2, err := history.Record("state.json", []byte(`{"v":2}`))
	if err != nil {
		t.Fatalf("Record() error: %v", err)
	}
	if id2 <= id1 {
		t.Errorf("ids should be monotonic: %d then %d", id1, id2)
	}

	entries, err := history.Recent("state.json", 10)
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Recent() returned %d entries, want 2", len(entries))
	}
	// Newest first
	if !bytes.Equal(entries[0].Raw, []byte(`{"v":2}`)) {
		t.Errorf("entries[0].Raw = %s, want newest snapshot", entries[0].Raw)
	}
	if entries[0].Source != "state.json" {
		t.Errorf("Source = %q, want %q", entries[0].Source, "state.json")
	}
	if entries[0].TakenAt.IsZero() {
		t.Error("TakenAt should be populated")
	}
}

func TestHistoryLastTwo(t *testing.T) {
	history := openTestHistory(t, 10)

	if _, _, ok, err := history.LastTwo("state.json"); err != nil || ok {
		t.Fatalf("LastTwo() on empty store = ok %v, err %v; want false, nil", ok, err)
	}

	if _, err := history.Record("state.json", []byte("a")); err != nil {
		t.Fatalf("Record() error: %v", err)
	}
	if _, _, ok, _ := history.LastTwo("state.json"); ok {
		t.Fatal("LastTwo() with one snapshot should report ok=false")
	}

	if _, err := history.Record("state.json", []byte("b")); err != nil {
		t.Fatalf("Record() error: %v", err)
	}
	previous, current, ok, err := history.LastTwo("state.json")
	if err != nil || !ok {
		t.Fatalf("LastTwo() = ok %v, err %v; want true, nil", ok, err)
	}
	if string(previous.Raw) != "a" || string(current.Raw) != "b" {
		t.Errorf("LastTwo() = %s/%s, want a/b oldest first", previous.Raw, current.Raw)
	}
}

func TestHistoryPrunesBeyondLimit(t *testing.T) {
	history := openTestHistory(t, 3)

	for _, body := range []string{"1", "2", "3", "4", "5"} {
		if _, err := history.Record("state.json", []byte(body)); err != nil {
			t.Fatalf("Record() error: %v", err)
		}
	}

	count, err := history.Count("state.json")
	if err != nil {
		t.Fatalf("Count() error: %v", err)
	}
	if count != 3 {
		t.Errorf("Count() = %d, want limit 3", count)
	}

	entries, err := history.Recent("state.json", 10)
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	if string(entries[len(entries)-1].Raw) != "3" {
		t.Errorf("oldest surviving snapshot = %s, want 3", entries[len(entries)-1].Raw)
	}
}

func TestHistorySourcesAreIndependent(t *testing.T) {
	history := openTestHistory(t, 10)

	if _, err := history.Record("a.json", []byte("a")); err != nil {
		t.Fatalf("Record() error: %v", err)
	}
	if _, err := history.Record("b.json", []byte("b")); err != nil {
		t.Fatalf("Record() error: %v", err)
	}

	count, err := history.Count("a.json")
	if err != nil {
		t.Fatalf("Count() error: %v", err)
	}
	if count != 1 {
		t.Errorf("Count(a.json) = %d, want 1", count)
	}

	entries, err := history.Recent("b.json", 10)
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	if len(entries) != 1 || string(entries[0].Raw) != "b" {
		t.Errorf("Recent(b.json) = %v, want single b snapshot", entries)
	}
}

func TestOpenHistoryClampsLimit(t *testing.T) {
	history := openTestHistory(t, 0)

	for _, body := range []string{"1", "2"} {
		if _, err := history.Record("state.json", []byte(body)); err != nil {
			t.Fatalf("Record() error: %v", err)
		}
	}

	count, err := history.Count("state.json")
	if err != nil {
		t.Fatalf("Count() error: %v", err)
	}
	if count != 1 {
		t.Errorf("Count() = %d, want clamped limit 1", count)
	}
}
