package main

import "testing"

func TestPadRight(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"pads ascii", "abc", 6, "abc   "},
		{"truncates ascii", "abcdef", 3, "abc"},
		{"exact fit", "abc", 3, "abc"},
		{"empty", "", 2, "  "},
		{"multibyte rune survives truncation", "héllo", 3, "hél"},
		{"pads multibyte by cells", "hé", 4, "hé  "},
		{"wide rune counts two cells", "日本", 3, "日 "},
		{"wide rune pads", "日", 4, "日  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := padRight(tt.input, tt.width); got != tt.want {
				t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		value, lower, upper, want int
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{42, 0, 10, 10},
		{0, 0, 0, 0},
	}
	for _, tt := range tests {
		if got := clamp(tt.value, tt.lower, tt.upper); got != tt.want {
			t.Errorf("clamp(%d, %d, %d) = %d, want %d", tt.value, tt.lower, tt.upper, got, tt.want)
		}
	}
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		name                 string
		start, window, total int
		wantStart, wantEnd   int
	}{
		{"window inside", 2, 5, 20, 2, 7},
		{"window past end", 18, 5, 20, 18, 20},
		{"start past end", 30, 5, 20, 20, 20},
		{"empty input", 0, 5, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := visibleRange(tt.start, tt.window, tt.total)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("visibleRange(%d, %d, %d) = %d, %d; want %d, %d",
					tt.start, tt.window, tt.total, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}
