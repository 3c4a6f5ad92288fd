package diff

// filterContext keeps only changed rows plus contextLines of unchanged rows
// around each contiguous changed region, in original order. Overlapping and
// adjacent windows merge. With no changed rows the result is empty, not the
// full unchanged content.
func filterContext(records []LineRecord, contextLines int) []LineRecord {
	keep := make([]bool, len(records))
	changed := false
	for idx, record := range records {
		if record.Class == Unchanged {
			continue
		}
		changed = true
		lo := max(0, idx-contextLines)
		hi := min(len(records)-1, idx+contextLines)
		for k := lo; k <= hi; k++ {
			keep[k] = true
		}
	}
	if !changed {
		return []LineRecord{}
	}

	filtered := make([]LineRecord, 0, len(records))
	for idx, record := range records {
		if keep[idx] {
			filtered = append(filtered, record)
		}
	}
	return filtered
}
