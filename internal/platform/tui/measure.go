package tui

import "github.com/mattn/go-runewidth"

// CellWidth returns the number of terminal cells text occupies.
// Wide runes count as two, combining marks as zero.
func CellWidth(text string) int {
	return runewidth.StringWidth(text)
}
