package diff

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// AlignedRow is one row of a line alignment. Left and Right are indices into
// the two input line lists; -1 marks a side absent from the row.
type AlignedRow struct {
	Left  int
	Right int
	Class LineClass
}

// LineMatcher aligns two line lists into a sequence of rows. trimmed selects
// whole-line matching that ignores leading and trailing whitespace.
//
// GreedyMatcher is the default. LCSMatcher and MyersMatcher produce
// minimal diffs instead of the greedy single-pass alignment.
type LineMatcher interface {
	Align(left, right []string, trimmed bool) []AlignedRow
}

// GreedyMatcher is a sequential single-pass aligner. It walks both line
// lists with two cursors and never looks ahead past the current line pair:
// equal lines pair as Unchanged, differing lines with a shared 3-character
// trimmed prefix pair as Modified, anything else becomes a Removed row
// immediately followed by an Added row.
type GreedyMatcher struct{}

// Align implements LineMatcher.
func (GreedyMatcher) Align(left, right []string, trimmed bool) []AlignedRow {
	rows := []AlignedRow{}
	i, j := 0, 0
	for i < len(left) || j < len(right) {
		switch {
		case i >= len(left):
			rows = append(rows, AlignedRow{Left: -1, Right: j, Class: Added})
			j++
		case j >= len(right):
			rows = append(rows, AlignedRow{Left: i, Right: -1, Class: Removed})
			i++
		case linesEqual(left[i], right[j], trimmed):
			rows = append(rows, AlignedRow{Left: i, Right: j, Class: Unchanged})
			i++
			j++
		case looksModified(left[i], right[j]):
			rows = append(rows, AlignedRow{Left: i, Right: j, Class: Modified})
			i++
			j++
		default:
			rows = append(rows,
				AlignedRow{Left: i, Right: -1, Class: Removed},
				AlignedRow{Left: -1, Right: j, Class: Added})
			i++
			j++
		}
	}
	return rows
}

func linesEqual(a, b string, trimmed bool) bool {
	if trimmed {
		return strings.TrimSpace(a) == strings.TrimSpace(b)
	}
	return a == b
}

// looksModified decides whether two differing lines are a modification of
// each other or an unrelated remove/add pair. Both trimmed lines must be
// non-empty and one's first 3 characters must prefix the other's.
func looksModified(a, b string) bool {
	ta, tb := strings.TrimSpace(a), strings.TrimSpace(b)
	if ta == "" || tb == "" {
		return false
	}
	pa, pb := headRunes(ta, 3), headRunes(tb, 3)
	return strings.HasPrefix(pa, pb) || strings.HasPrefix(pb, pa)
}

func headRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes)
}

// LCSMatcher aligns lines with difflib's SequenceMatcher. Replace blocks are
// paired positionally into Modified rows, with the longer side's leftovers
// emitted as plain Removed or Added rows.
type LCSMatcher struct{}

// Align implements LineMatcher.
func (LCSMatcher) Align(left, right []string, trimmed bool) []AlignedRow {
	a, b := left, right
	if trimmed {
		a, b = trimAll(left), trimAll(right)
	}

	rows := []AlignedRow{}
	matcher := difflib.NewMatcher(a, b)
	for _, op := range matcher.GetOpCodes() {
		switch op.Tag {
		case 'e':
			for k := 0; k < op.I2-op.I1; k++ {
				rows = append(rows, AlignedRow{Left: op.I1 + k, Right: op.J1 + k, Class: Unchanged})
			}
		case 'd':
			for i := op.I1; i < op.I2; i++ {
				rows = append(rows, AlignedRow{Left: i, Right: -1, Class: Removed})
			}
		case 'i':
			for j := op.J1; j < op.J2; j++ {
				rows = append(rows, AlignedRow{Left: -1, Right: j, Class: Added})
			}
		case 'r':
			rows = appendReplaceRows(rows, op.I1, op.I2, op.J1, op.J2)
		}
	}
	return rows
}

// MyersMatcher aligns lines through diffmatchpatch's line-mode diff: lines
// are encoded as characters, diffed with Myers' algorithm, and the equal,
// delete and insert runs are mapped back to line indices. Adjacent
// delete/insert runs pair positionally into Modified rows like LCSMatcher.
type MyersMatcher struct{}

// Align implements LineMatcher.
func (MyersMatcher) Align(left, right []string, trimmed bool) []AlignedRow {
	a, b := left, right
	if trimmed {
		a, b = trimAll(left), trimAll(right)
	}

	dmp := diffmatchpatch.New()
	oldChars, newChars, _ := dmp.DiffLinesToChars(
		strings.Join(a, "\n")+"\n",
		strings.Join(b, "\n")+"\n",
	)
	diffs := dmp.DiffMain(oldChars, newChars, false)

	rows := []AlignedRow{}
	i, j := 0, 0
	for k := 0; k < len(diffs); k++ {
		count := len([]rune(diffs[k].Text))
		switch diffs[k].Type {
		case diffmatchpatch.DiffEqual:
			for n := 0; n < count && i < len(left) && j < len(right); n++ {
				rows = append(rows, AlignedRow{Left: i, Right: j, Class: Unchanged})
				i++
				j++
			}
		case diffmatchpatch.DiffDelete:
			removed := min(count, len(left)-i)
			if k+1 < len(diffs) && diffs[k+1].Type == diffmatchpatch.DiffInsert {
				inserted := min(len([]rune(diffs[k+1].Text)), len(right)-j)
				rows = appendReplaceRows(rows, i, i+removed, j, j+inserted)
				i += removed
				j += inserted
				k++
				continue
			}
			for n := 0; n < removed; n++ {
				rows = append(rows, AlignedRow{Left: i, Right: -1, Class: Removed})
				i++
			}
		case diffmatchpatch.DiffInsert:
			inserted := min(count, len(right)-j)
			for n := 0; n < inserted; n++ {
				rows = append(rows, AlignedRow{Left: -1, Right: j, Class: Added})
				j++
			}
		}
	}
	return rows
}

// appendReplaceRows pairs a replace block positionally: matched pairs become
// Modified rows, the longer side's tail becomes single-sided rows.
func appendReplaceRows(rows []AlignedRow, i1, i2, j1, j2 int) []AlignedRow {
	paired := min(i2-i1, j2-j1)
	for k := 0; k < paired; k++ {
		rows = append(rows, AlignedRow{Left: i1 + k, Right: j1 + k, Class: Modified})
	}
	for i := i1 + paired; i < i2; i++ {
		rows = append(rows, AlignedRow{Left: i, Right: -1, Class: Removed})
	}
	for j := j1 + paired; j < j2; j++ {
		rows = append(rows, AlignedRow{Left: -1, Right: j, Class: Added})
	}
	return rows
}

func trimAll(lines []string) []string {
	trimmed := make([]string, len(lines))
	for i, line := range lines {
		trimmed[i] = strings.TrimSpace(line)
	}
	return trimmed
}
