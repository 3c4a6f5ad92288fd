package diff

import "regexp"

// tokenPattern splits a line into alternating runs of non-whitespace and
// whitespace, keeping the whitespace as its own token.
var tokenPattern = regexp.MustCompile(`\S+|\s+`)

// tokenLookahead bounds how far the sub-diff scans for a resynchronizing
// token after a mismatch.
const tokenLookahead = 4

// subDiff computes the word- or char-level diff inside a modified row. It
// walks both token lists with parallel cursors; on a mismatch it scans up to
// tokenLookahead positions ahead on the old side and then on the new side
// for a token equal to the other cursor's token, marking the skipped tokens
// removed or added. If neither scan resynchronizes, both current tokens are
// marked and both cursors advance.
func subDiff(oldLine, newLine string, granularity Granularity) (left, right []WordSpan) {
	oldParts := tokenize(oldLine, granularity)
	newParts := tokenize(newLine, granularity)

	i, j := 0, 0
	for i < len(oldParts) || j < len(newParts) {
		switch {
		case i >= len(oldParts):
			right = appendSpan(right, newParts[j], Added)
			j++
		case j >= len(newParts):
			left = appendSpan(left, oldParts[i], Removed)
			i++
		case oldParts[i] == newParts[j]:
			left = appendSpan(left, oldParts[i], Unchanged)
			right = appendSpan(right, newParts[j], Unchanged)
			i++
			j++
		default:
			if k := scanAhead(oldParts, i, newParts[j]); k >= 0 {
				for ; i < k; i++ {
					left = appendSpan(left, oldParts[i], Removed)
				}
				continue
			}
			if k := scanAhead(newParts, j, oldParts[i]); k >= 0 {
				for ; j < k; j++ {
					right = appendSpan(right, newParts[j], Added)
				}
				continue
			}
			left = appendSpan(left, oldParts[i], Removed)
			right = appendSpan(right, newParts[j], Added)
			i++
			j++
		}
	}
	return left, right
}

func tokenize(line string, granularity Granularity) []string {
	if granularity == Chars {
		runes := []rune(line)
		parts := make([]string, len(runes))
		for i, r := range runes {
			parts[i] = string(r)
		}
		return parts
	}
	return tokenPattern.FindAllString(line, -1)
}

// scanAhead returns the index of the first token equal to target within
// tokenLookahead positions after from, or -1.
func scanAhead(parts []string, from int, target string) int {
	limit := min(from+tokenLookahead, len(parts)-1)
	for k := from + 1; k <= limit; k++ {
		if parts[k] == target {
			return k
		}
	}
	return -1
}

// appendSpan extends the last span when the class matches so each span stays
// a maximal contiguous run.
func appendSpan(spans []WordSpan, text string, class LineClass) []WordSpan {
	if n := len(spans); n > 0 && spans[n-1].Class == class {
		spans[n-1].Text += text
		return spans
	}
	return append(spans, WordSpan{Text: text, Class: class})
}
