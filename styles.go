package main

import (
	"github.com/charmbracelet/lipgloss"
)

// Color constants for consistent theming
var (
	colorBlue   = lipgloss.Color("blue")
	colorYellow = lipgloss.Color("yellow")
	colorWhite  = lipgloss.Color("white")

	// Gray scale (for subtle elements)
	colorGray243 = lipgloss.Color("243") // Medium gray
	colorGray244 = lipgloss.Color("244") // Subtle gray
	colorGray245 = lipgloss.Color("245") // Light gray
	colorGray235 = lipgloss.Color("235") // Dark gray (background)
	colorGray237 = lipgloss.Color("237") // Border gray

	// Diff colors
	colorGreen142 = lipgloss.Color("142") // Soft green (added content)
	colorGreen86  = lipgloss.Color("86")  // Bright green (added markers)
	colorRed203   = lipgloss.Color("203") // Soft red (removed content)
	colorRed196   = lipgloss.Color("196") // Bright red (removed markers)

	// Accent colors
	colorSoftBlue75 = lipgloss.Color("75")  // Soft blue (selection)
	colorSoftYellow = lipgloss.Color("229") // Soft warm yellow (modified)
)

// Predefined styles for reuse
var (
	headerStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	subtleStyle = lipgloss.NewStyle().
			Foreground(colorGray244)

	modeIndicatorStyle = lipgloss.NewStyle().
				Foreground(colorYellow).
				Bold(true)

	granularityIndicatorStyle = lipgloss.NewStyle().
					Foreground(colorGreen86).
					Bold(true)

	headerSeparatorStyle = lipgloss.NewStyle().
				Foreground(colorGray237)

	// Diff row styles
	diffAddedStyle = lipgloss.NewStyle().
			Foreground(colorGreen142)

	diffRemovedStyle = lipgloss.NewStyle().
				Foreground(colorRed203)

	diffAddedPrefixStyle = lipgloss.NewStyle().
				Foreground(colorGreen86).
				Bold(true)

	diffRemovedPrefixStyle = lipgloss.NewStyle().
				Foreground(colorRed196).
				Bold(true)

	diffModifiedPrefixStyle = lipgloss.NewStyle().
				Foreground(colorSoftYellow).
				Bold(true)

	diffContextStyle = lipgloss.NewStyle().
				Foreground(colorGray245)

	diffLineNumStyle = lipgloss.NewStyle().
				Foreground(colorGray244)

	diffGapStyle = lipgloss.NewStyle().
			Foreground(colorGray244)

	// Word span styles: changed words get a background so they stand out
	// inside an already colored line.
	wordAddedStyle = lipgloss.NewStyle().
			Foreground(colorGreen86).
			Background(colorGray235).
			Bold(true)

	wordRemovedStyle = lipgloss.NewStyle().
				Foreground(colorRed196).
				Background(colorGray235).
				Bold(true)

	// Structural item styles
	itemCreateStyle = lipgloss.NewStyle().
			Foreground(colorGreen142).
			Bold(true)

	itemRemoveStyle = lipgloss.NewStyle().
			Foreground(colorRed203).
			Bold(true)

	itemChangeStyle = lipgloss.NewStyle().
			Foreground(colorSoftYellow).
			Bold(true)

	itemPathStyle = lipgloss.NewStyle().
			Foreground(colorSoftBlue75)

	// Stats styles
	statsSubtleStyle = lipgloss.NewStyle().
				Foreground(colorGray244)

	// Informational text (empty diffs, binary fallbacks)
	panelInfoStyle = lipgloss.NewStyle().
			Foreground(colorGray243).
			Italic(true)

	// Footer styles
	footerBaseStyle = lipgloss.NewStyle().
			Foreground(colorGray243)

	footerKeyStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	footerScrollStyle = lipgloss.NewStyle().
				Foreground(colorYellow)

	// Help modal styles
	helpTitleStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true).
			Underline(true)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorSoftYellow).
			Bold(true).
			Width(12)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(colorGray243)

	helpSectionStyle = lipgloss.NewStyle().
				Foreground(colorSoftBlue75).
				Bold(true).
				MarginTop(1)

	// Error styles
	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed203).
			Bold(true)
)
