package ui

import "github.com/mattn/go-runewidth"

// TruncateString shortens s to at most maxWidth terminal cells, ending in an
// ellipsis when anything was cut.
func TruncateString(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxWidth, "…")
}
