package vtcore

import "github.com/unilibs/uniwidth"

// runeWidth returns the display width of r: 2 for wide glyphs (CJK,
// fullwidth forms), 1 for normal glyphs, 0 for zero-width marks and
// control characters.
func runeWidth(r rune) int {
	return uniwidth.RuneWidth(r)
}

// StringWidth returns the total display width of s.
func StringWidth(s string) int {
	return uniwidth.StringWidth(s)
}
