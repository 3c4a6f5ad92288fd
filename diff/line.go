package diff

// LineClass represents the classification of an emitted diff row
type LineClass int

const (
	Unchanged LineClass = iota
	Added
	Removed
	Modified
)

// String returns the string representation of the line class
func (c LineClass) String() string {
	switch c {
	case Unchanged:
		return "unchanged"
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Modified:
		return "modified"
	default:
		return "unknown"
	}
}

// WordSpan is a contiguous run of characters or words from one side of a
// modified row. Class is Unchanged, Added or Removed; never Modified.
type WordSpan struct {
	Text  string
	Class LineClass
}

// LineRecord is one emitted diff row. Line numbers are 1-based into the
// rendered text of each side; 0 means the row has no line on that side.
// When word diffing is active and the row is Modified, LeftSpans/RightSpans
// carry the segmented content; otherwise they are nil and LeftRaw/RightRaw
// are the content. The raw fields always hold the unmodified source line.
type LineRecord struct {
	LeftNumber  int
	RightNumber int
	Class       LineClass
	LeftSpans   []WordSpan
	RightSpans  []WordSpan
	LeftRaw     string
	RightRaw    string
}

// ComputeLineDiff renders both values as pretty-printed JSON, aligns the two
// line lists with the configured matcher, sub-diffs modified rows at the
// configured granularity, and optionally filters the result down to changed
// regions plus context. It is a pure function: no I/O, no shared state, safe
// for concurrent use.
func ComputeLineDiff(oldValue, newValue any, opts Options) []LineRecord {
	opts = opts.normalized()

	leftLines := renderLines(oldValue)
	rightLines := renderLines(newValue)

	rows := opts.Matcher.Align(leftLines, rightLines, opts.Granularity == TrimmedLines)

	records := make([]LineRecord, 0, len(rows))
	for _, row := range rows {
		record := LineRecord{Class: row.Class}
		if row.Left >= 0 {
			record.LeftNumber = row.Left + 1
			record.LeftRaw = leftLines[row.Left]
		}
		if row.Right >= 0 {
			record.RightNumber = row.Right + 1
			record.RightRaw = rightLines[row.Right]
		}
		if row.Class == Modified && !opts.DisableWordDiff {
			record.LeftSpans, record.RightSpans = modifiedSpans(record.LeftRaw, record.RightRaw, opts.Granularity)
		}
		records = append(records, record)
	}

	if opts.ShowDiffOnly {
		records = filterContext(records, opts.ContextLines)
	}
	return records
}

// modifiedSpans segments the two sides of a modified row. Line granularity
// skips tokenization: the whole old line is one removed span and the whole
// new line one added span.
func modifiedSpans(oldLine, newLine string, granularity Granularity) (left, right []WordSpan) {
	if granularity == Lines {
		return []WordSpan{{Text: oldLine, Class: Removed}},
			[]WordSpan{{Text: newLine, Class: Added}}
	}
	return subDiff(oldLine, newLine, granularity)
}
