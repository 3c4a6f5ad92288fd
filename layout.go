package main

// Layout constants for the TUI
const (
	// Header and footer dimensions
	headerRows = 2 // Number of rows for header (title + separator)
	footerRows = 1 // Number of rows for footer

	// Line number formatting
	lineNumWidth = 4 // Width in characters for each line number column

	// Help modal dimensions
	helpModalMaxWidth  = 60 // Maximum width of help modal
	helpModalMaxHeight = 30 // Maximum height of help modal
	helpModalPadding   = 4  // Padding around help modal (2 on each side)

	// Context stepping for the +/- keys
	contextStep = 2
	maxContext  = 99

	// Assumed width for non-interactive split output, where no
	// WindowSizeMsg ever arrives
	terminalWidth = 120
)

// contentHeight calculates the available content height given total height
func contentHeight(totalHeight int) int {
	return max(1, totalHeight-headerRows-footerRows)
}

// helpModalDimensions calculates the dimensions for the help modal
func helpModalDimensions(screenWidth, screenHeight int) (width, height int) {
	width = min(helpModalMaxWidth, screenWidth-helpModalPadding)
	height = min(helpModalMaxHeight, screenHeight-helpModalPadding)
	return width, height
}
