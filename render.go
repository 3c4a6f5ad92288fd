package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"state_diff/diff"
)

// Renderer turns engine output into terminal lines. With color disabled it
// emits plain text suitable for piping.
type Renderer struct {
	color       bool
	highlighter *SyntaxHighlighter
}

// NewRenderer creates a renderer; color selects lipgloss/chroma styling
func NewRenderer(color bool) *Renderer {
	r := &Renderer{color: color}
	if color {
		r.highlighter = NewSyntaxHighlighter()
	}
	return r
}

// RenderUnified renders line records as a unified diff: one line per side of
// each row, with -/+/space markers and both line number columns. A modified
// row becomes a removed line followed by an added line, each with its word
// spans highlighted.
func (r *Renderer) RenderUnified(records []diff.LineRecord) []string {
	lines := make([]string, 0, len(records))
	lastLeft, lastRight := 0, 0

	for _, record := range records {
		if r.hasGap(record, lastLeft, lastRight) {
			lines = append(lines, r.gapLine())
		}
		if record.LeftNumber > 0 {
			lastLeft = record.LeftNumber
		}
		if record.RightNumber > 0 {
			lastRight = record.RightNumber
		}

		switch record.Class {
		case diff.Unchanged:
			lines = append(lines, r.unifiedLine(record.LeftNumber, record.RightNumber, " ", r.contextContent(record.LeftRaw)))
		case diff.Added:
			lines = append(lines, r.unifiedLine(0, record.RightNumber, "+", r.sideContent(record.RightRaw, record.RightSpans, diff.Added)))
		case diff.Removed:
			lines = append(lines, r.unifiedLine(record.LeftNumber, 0, "-", r.sideContent(record.LeftRaw, record.LeftSpans, diff.Removed)))
		case diff.Modified:
			lines = append(lines,
				r.unifiedLine(record.LeftNumber, 0, "-", r.sideContent(record.LeftRaw, record.LeftSpans, diff.Removed)),
				r.unifiedLine(0, record.RightNumber, "+", r.sideContent(record.RightRaw, record.RightSpans, diff.Added)))
		}
	}
	return lines
}

// RenderSplit renders line records side by side within the given total width
func (r *Renderer) RenderSplit(records []diff.LineRecord, width int) []string {
	cellWidth := max(10, (width-3)/2)
	lines := make([]string, 0, len(records))
	lastLeft, lastRight := 0, 0

	for _, record := range records {
		if r.hasGap(record, lastLeft, lastRight) {
			lines = append(lines, r.gapLine())
		}
		if record.LeftNumber > 0 {
			lastLeft = record.LeftNumber
		}
		if record.RightNumber > 0 {
			lastRight = record.RightNumber
		}

		var left, right string
		switch record.Class {
		case diff.Unchanged:
			left = r.splitCell(record.LeftNumber, " ", record.LeftRaw, nil, diff.Unchanged, cellWidth)
			right = r.splitCell(record.RightNumber, " ", record.RightRaw, nil, diff.Unchanged, cellWidth)
		case diff.Added:
			left = r.splitCell(0, " ", "", nil, diff.Unchanged, cellWidth)
			right = r.splitCell(record.RightNumber, "+", record.RightRaw, record.RightSpans, diff.Added, cellWidth)
		case diff.Removed:
			left = r.splitCell(record.LeftNumber, "-", record.LeftRaw, record.LeftSpans, diff.Removed, cellWidth)
			right = r.splitCell(0, " ", "", nil, diff.Unchanged, cellWidth)
		case diff.Modified:
			left = r.splitCell(record.LeftNumber, "~", record.LeftRaw, record.LeftSpans, diff.Removed, cellWidth)
			right = r.splitCell(record.RightNumber, "~", record.RightRaw, record.RightSpans, diff.Added, cellWidth)
		}
		lines = append(lines, left+" "+r.separator()+" "+right)
	}
	return lines
}

// RenderItems renders structural diff items, one per line:
//
//	~ user.name: "John" -> "Jane"
//	+ items[3]: 4
//	- legacy: {...}
func (r *Renderer) RenderItems(items []diff.Item) []string {
	if len(items) == 0 {
		return []string{r.infoLine("no structural changes")}
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		path := item.Path.String()
		if path == "" {
			path = "(root)"
		}

		var marker, body string
		switch item.Kind {
		case diff.Create:
			marker = r.styled(itemCreateStyle, "+")
			body = fmt.Sprintf("%s: %s", r.styled(itemPathStyle, path), formatValue(item.Value))
		case diff.Remove:
			marker = r.styled(itemRemoveStyle, "-")
			body = fmt.Sprintf("%s: %s", r.styled(itemPathStyle, path), formatValue(item.OldValue))
		case diff.Change:
			marker = r.styled(itemChangeStyle, "~")
			body = fmt.Sprintf("%s: %s -> %s", r.styled(itemPathStyle, path), formatValue(item.OldValue), formatValue(item.Value))
		}
		lines = append(lines, marker+" "+body)
	}
	return lines
}

func (r *Renderer) unifiedLine(leftNum, rightNum int, marker, content string) string {
	nums := lineNumbers(leftNum, rightNum)
	if !r.color {
		return nums + " " + marker + " " + content
	}

	var markerStyled string
	switch marker {
	case "+":
		markerStyled = diffAddedPrefixStyle.Render(marker)
	case "-":
		markerStyled = diffRemovedPrefixStyle.Render(marker)
	default:
		markerStyled = diffContextStyle.Render(marker)
	}
	return diffLineNumStyle.Render(nums) + " " + markerStyled + " " + content
}

func (r *Renderer) splitCell(num int, marker, raw string, spans []diff.WordSpan, class diff.LineClass, width int) string {
	numText := "    "
	if num > 0 {
		numText = fmt.Sprintf("%*d", lineNumWidth, num)
	}

	content := padRight(raw, max(0, width-lineNumWidth-3))
	if !r.color {
		return numText + " " + marker + " " + content
	}

	var markerStyled string
	switch marker {
	case "+":
		markerStyled = diffAddedPrefixStyle.Render(marker)
	case "-":
		markerStyled = diffRemovedPrefixStyle.Render(marker)
	case "~":
		markerStyled = diffModifiedPrefixStyle.Render(marker)
	default:
		markerStyled = diffContextStyle.Render(marker)
	}

	var body string
	if spans != nil {
		// Pad before styling so escape codes don't count toward the width.
		body = r.renderSpans(padSpans(spans, max(0, width-lineNumWidth-3)), class)
	} else {
		body = r.lineStyle(class).Render(content)
	}
	return diffLineNumStyle.Render(numText) + " " + markerStyled + " " + body
}

// sideContent renders one side of a row: span-segmented when word diffing
// produced spans, styled raw text otherwise.
func (r *Renderer) sideContent(raw string, spans []diff.WordSpan, class diff.LineClass) string {
	if !r.color {
		return raw
	}
	if spans != nil {
		return r.renderSpans(spans, class)
	}
	return r.lineStyle(class).Render(raw)
}

func (r *Renderer) contextContent(raw string) string {
	if !r.color {
		return raw
	}
	if r.highlighter != nil {
		return r.highlighter.Highlight(raw)
	}
	return diffContextStyle.Render(raw)
}

// renderSpans styles each span: unchanged runs take the side's line color,
// changed runs get the emphasized word style.
func (r *Renderer) renderSpans(spans []diff.WordSpan, class diff.LineClass) string {
	var b strings.Builder
	for _, span := range spans {
		switch span.Class {
		case diff.Unchanged:
			b.WriteString(r.lineStyle(class).Render(span.Text))
		case diff.Added:
			b.WriteString(wordAddedStyle.Render(span.Text))
		case diff.Removed:
			b.WriteString(wordRemovedStyle.Render(span.Text))
		}
	}
	return b.String()
}

func (r *Renderer) lineStyle(class diff.LineClass) lipgloss.Style {
	switch class {
	case diff.Added:
		return diffAddedStyle
	case diff.Removed:
		return diffRemovedStyle
	default:
		return diffContextStyle
	}
}

func (r *Renderer) hasGap(record diff.LineRecord, lastLeft, lastRight int) bool {
	if lastLeft == 0 && lastRight == 0 {
		return false
	}
	if record.LeftNumber > 0 && record.LeftNumber > lastLeft+1 {
		return true
	}
	return record.RightNumber > 0 && record.RightNumber > lastRight+1
}

func (r *Renderer) gapLine() string {
	if !r.color {
		return "..."
	}
	return diffGapStyle.Render("···")
}

func (r *Renderer) separator() string {
	if !r.color {
		return "|"
	}
	return diffGapStyle.Render("│")
}

func (r *Renderer) infoLine(text string) string {
	if !r.color {
		return text
	}
	return panelInfoStyle.Render(text)
}

func (r *Renderer) styled(style lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return style.Render(text)
}

func lineNumbers(leftNum, rightNum int) string {
	left := strings.Repeat(" ", lineNumWidth)
	if leftNum > 0 {
		left = fmt.Sprintf("%*d", lineNumWidth, leftNum)
	}
	right := strings.Repeat(" ", lineNumWidth)
	if rightNum > 0 {
		right = fmt.Sprintf("%*d", lineNumWidth, rightNum)
	}
	return left + " " + right
}

// padSpans extends the final span with spaces so the styled cell reaches the
// target width.
func padSpans(spans []diff.WordSpan, width int) []diff.WordSpan {
	total := 0
	for _, span := range spans {
		total += lipgloss.Width(span.Text)
	}
	if total >= width {
		return spans
	}

	padded := make([]diff.WordSpan, len(spans), len(spans)+1)
	copy(padded, spans)
	padded = append(padded, diff.WordSpan{
		Text:  strings.Repeat(" ", width-total),
		Class: diff.Unchanged,
	})
	return padded
}

// formatValue renders a value compactly for structural output
func formatValue(v any) string {
	encoded, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(encoded)
}
