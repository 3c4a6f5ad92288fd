package diff

// Granularity selects the unit of comparison for sub-diffing inside a
// modified line.
type Granularity int

const (
	// Chars compares individual characters.
	Chars Granularity = iota
	// Words compares alternating runs of non-whitespace and whitespace.
	Words
	// Lines disables sub-diffing; a modified line is a whole-line removal
	// followed by a whole-line addition.
	Lines
	// TrimmedLines compares like Words but matches whole lines ignoring
	// leading and trailing whitespace.
	TrimmedLines
)

// String returns the string representation of the granularity
func (g Granularity) String() string {
	switch g {
	case Chars:
		return "chars"
	case Words:
		return "words"
	case Lines:
		return "lines"
	case TrimmedLines:
		return "trimmed-lines"
	default:
		return "unknown"
	}
}

// ParseGranularity parses a granularity name as used in config files and
// CLI flags. Unknown names fall back to Words.
func ParseGranularity(name string) Granularity {
	switch name {
	case "chars":
		return Chars
	case "words":
		return Words
	case "lines":
		return Lines
	case "trimmed-lines":
		return TrimmedLines
	default:
		return Words
	}
}

const (
	// DefaultContextLines is the default number of unchanged lines kept
	// around each changed region when ShowDiffOnly is set.
	DefaultContextLines = 3
)

// Options configures ComputeLineDiff.
type Options struct {
	// Granularity is the unit of comparison for sub-diffing modified lines.
	Granularity Granularity

	// DisableWordDiff makes modified rows carry raw text on both sides
	// instead of word spans.
	DisableWordDiff bool

	// ShowDiffOnly filters the output to changed rows plus ContextLines of
	// unchanged rows around each contiguous changed region.
	ShowDiffOnly bool

	// ContextLines is the number of unchanged lines kept around changed
	// regions. Negative values clamp to zero.
	ContextLines int

	// Matcher aligns the two rendered line lists. Nil selects the default
	// greedy matcher.
	Matcher LineMatcher
}

// DefaultOptions returns the standard options: word granularity, word diff
// enabled, full output, three context lines.
func DefaultOptions() Options {
	return Options{
		Granularity:  Words,
		ContextLines: DefaultContextLines,
	}
}

// normalized returns a copy with out-of-range values clamped and the
// default matcher filled in.
func (o Options) normalized() Options {
	if o.ContextLines < 0 {
		o.ContextLines = 0
	}
	if o.Matcher == nil {
		o.Matcher = GreedyMatcher{}
	}
	return o
}
