package diff

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestComputeLineDiff_IdenticalInput(t *testing.T) {
	value := map[string]any{
		"user":  map[string]any{"name": "John", "age": 30},
		"items": []any{"a", "b", "c"},
	}

	records := ComputeLineDiff(value, value, DefaultOptions())

	if len(records) == 0 {
		t.Fatal("expected at least one row")
	}
	for _, record := range records {
		if record.Class != Unchanged {
			t.Errorf("row %d/%d classified %v, want Unchanged", record.LeftNumber, record.RightNumber, record.Class)
		}
		if record.LeftNumber != record.RightNumber {
			t.Errorf("line numbers diverge: left=%d right=%d", record.LeftNumber, record.RightNumber)
		}
		if record.LeftRaw != record.RightRaw {
			t.Errorf("raw content diverges: left=%q right=%q", record.LeftRaw, record.RightRaw)
		}
	}
}

// wideValue returns a map rendering as 22 lines (brace, 20 entries, brace)
// with deterministic ordering thanks to JSON's sorted map keys.
func wideValue(changedKey string, changedTo any) map[string]any {
	value := make(map[string]any, 20)
	for c := 'a'; c < 'a'+20; c++ {
		value[string(c)] = 1
	}
	if changedKey != "" {
		value[changedKey] = changedTo
	}
	return value
}

func TestComputeLineDiff_ContextFiltering(t *testing.T) {
	old := wideValue("", nil)
	new := wideValue("j", 2)

	opts := DefaultOptions()
	opts.ShowDiffOnly = true
	opts.ContextLines = 2

	records := ComputeLineDiff(old, new, opts)

	// 2 context rows, the modified row, 2 context rows.
	if len(records) != 5 {
		t.Fatalf("ComputeLineDiff() = %d rows, want 5", len(records))
	}
	for idx, record := range records {
		wantClass := Unchanged
		if idx == 2 {
			wantClass = Modified
		}
		if record.Class != wantClass {
			t.Errorf("row %d classified %v, want %v", idx, record.Class, wantClass)
		}
	}
	if !strings.Contains(records[2].LeftRaw, `"j"`) {
		t.Errorf("changed row = %q, want the j entry", records[2].LeftRaw)
	}
}

func TestComputeLineDiff_ContextFilteringNoChanges(t *testing.T) {
	value := wideValue("", nil)

	opts := DefaultOptions()
	opts.ShowDiffOnly = true

	records := ComputeLineDiff(value, value, opts)
	if len(records) != 0 {
		t.Fatalf("ComputeLineDiff() = %d rows, want 0 when nothing changed", len(records))
	}
}

func TestComputeLineDiff_NegativeContextClamps(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowDiffOnly = true
	opts.ContextLines = -7

	records := ComputeLineDiff(wideValue("", nil), wideValue("j", 2), opts)

	if len(records) != 1 {
		t.Fatalf("ComputeLineDiff() = %d rows, want only the changed row", len(records))
	}
	if records[0].Class != Modified {
		t.Fatalf("row classified %v, want Modified", records[0].Class)
	}
}

func TestComputeLineDiff_WordDiffDisabled(t *testing.T) {
	opts := DefaultOptions()
	opts.DisableWordDiff = true

	records := ComputeLineDiff(
		map[string]any{"name": "John"},
		map[string]any{"name": "Jane"},
		opts,
	)

	modified := modifiedRows(records)
	if len(modified) != 1 {
		t.Fatalf("got %d modified rows, want 1", len(modified))
	}
	row := modified[0]
	if row.LeftSpans != nil || row.RightSpans != nil {
		t.Errorf("spans present with word diff disabled: left=%v right=%v", row.LeftSpans, row.RightSpans)
	}
	if row.LeftRaw == "" || row.RightRaw == "" {
		t.Errorf("raw content missing: left=%q right=%q", row.LeftRaw, row.RightRaw)
	}
}

func TestComputeLineDiff_LinesGranularityDisablesSubDiff(t *testing.T) {
	opts := DefaultOptions()
	opts.Granularity = Lines

	records := ComputeLineDiff(
		map[string]any{"name": "John"},
		map[string]any{"name": "Jane"},
		opts,
	)

	modified := modifiedRows(records)
	if len(modified) != 1 {
		t.Fatalf("got %d modified rows, want 1", len(modified))
	}
	row := modified[0]

	wantLeft := []WordSpan{{Text: row.LeftRaw, Class: Removed}}
	if d := cmp.Diff(wantLeft, row.LeftSpans); d != "" {
		t.Errorf("left spans mismatch (-want +got):\n%s", d)
	}
	wantRight := []WordSpan{{Text: row.RightRaw, Class: Added}}
	if d := cmp.Diff(wantRight, row.RightSpans); d != "" {
		t.Errorf("right spans mismatch (-want +got):\n%s", d)
	}
}

func TestComputeLineDiff_WordSpans(t *testing.T) {
	records := ComputeLineDiff(
		map[string]any{"name": "John"},
		map[string]any{"name": "Jane"},
		DefaultOptions(),
	)

	modified := modifiedRows(records)
	if len(modified) != 1 {
		t.Fatalf("got %d modified rows, want 1", len(modified))
	}
	row := modified[0]

	wantLeft := []WordSpan{
		{Text: `  "name": `, Class: Unchanged},
		{Text: `"John"`, Class: Removed},
	}
	if d := cmp.Diff(wantLeft, row.LeftSpans); d != "" {
		t.Errorf("left spans mismatch (-want +got):\n%s", d)
	}
	wantRight := []WordSpan{
		{Text: `  "name": `, Class: Unchanged},
		{Text: `"Jane"`, Class: Added},
	}
	if d := cmp.Diff(wantRight, row.RightSpans); d != "" {
		t.Errorf("right spans mismatch (-want +got):\n%s", d)
	}
}

func TestComputeLineDiff_NilRendersAsNull(t *testing.T) {
	records := ComputeLineDiff(nil, nil, DefaultOptions())
	if len(records) != 1 {
		t.Fatalf("got %d rows, want 1", len(records))
	}
	if records[0].LeftRaw != "null" || records[0].RightRaw != "null" {
		t.Fatalf("raw = %q/%q, want null on both sides", records[0].LeftRaw, records[0].RightRaw)
	}
	if records[0].Class != Unchanged {
		t.Fatalf("row classified %v, want Unchanged", records[0].Class)
	}
}

func TestComputeLineDiff_AdditionAndRemovalNumbering(t *testing.T) {
	old := map[string]any{"a": 1}
	new := map[string]any{"a": 1, "b": 2}

	records := ComputeLineDiff(old, new, DefaultOptions())

	var added, removed int
	for _, record := range records {
		switch record.Class {
		case Added:
			added++
			if record.LeftNumber != 0 {
				t.Errorf("added row has left number %d, want 0", record.LeftNumber)
			}
			if record.RightNumber == 0 {
				t.Error("added row missing right number")
			}
		case Removed:
			removed++
			if record.RightNumber != 0 {
				t.Errorf("removed row has right number %d, want 0", record.RightNumber)
			}
		}
	}
	if added == 0 {
		t.Errorf("expected added rows, got added=%d removed=%d", added, removed)
	}
}

func TestComputeLineDiff_UnmarshalableFallsBack(t *testing.T) {
	// Channels cannot be marshaled; the serializer falls back to a fmt
	// rendering instead of propagating the error.
	records := ComputeLineDiff(map[string]any{"ch": make(chan int)}, map[string]any{"a": 1}, DefaultOptions())
	if len(records) == 0 {
		t.Fatal("expected rows from fallback rendering")
	}
}

func modifiedRows(records []LineRecord) []LineRecord {
	var modified []LineRecord
	for _, record := range records {
		if record.Class == Modified {
			modified = append(modified, record)
		}
	}
	return modified
}
