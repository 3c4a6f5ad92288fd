package main

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// SyntaxHighlighter colors unchanged snapshot lines. Snapshots render as
// JSON, so a single lexer is enough.
type SyntaxHighlighter struct {
	style *chroma.Style
	lexer chroma.Lexer
}

// NewSyntaxHighlighter creates a new highlighter with a terminal-friendly style
func NewSyntaxHighlighter() *SyntaxHighlighter {
	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}
	return &SyntaxHighlighter{
		style: style,
		lexer: lexers.Get("json"),
	}
}

// Highlight highlights a single line of rendered JSON
func (h *SyntaxHighlighter) Highlight(line string) string {
	if h.lexer == nil {
		return line
	}

	iterator, err := h.lexer.Tokenise(nil, line)
	if err != nil {
		return line
	}

	var result strings.Builder
	for _, token := range iterator.Tokens() {
		result.WriteString(h.styleToken(token))
	}
	return result.String()
}

// styleToken applies lipgloss styling to a chroma token
func (h *SyntaxHighlighter) styleToken(token chroma.Token) string {
	content := token.Value
	entry := h.style.Get(token.Type)

	if entry == (chroma.StyleEntry{}) {
		return content
	}

	style := lipgloss.NewStyle()

	if entry.Colour.IsSet() {
		color := entry.Colour.String()
		if strings.HasPrefix(color, "#") {
			style = style.Foreground(lipgloss.Color(color))
		}
	}
	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		style = style.Italic(true)
	}

	return style.Render(content)
}
