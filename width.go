package sgr

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// WidthMethod selects how rendered width is measured. Terminals disagree on
// grapheme cluster handling, so the measurement that matches the display is
// a property of the terminal, not of the text
type WidthMethod uint8

const (
	// WidthUnicode measures in extended grapheme clusters
	WidthUnicode WidthMethod = iota
	// WidthNoZWJ measures like WidthUnicode but ignores zero-width
	// joiners, for terminals which advance on each joined part
	WidthNoZWJ
	// WidthWC measures rune-by-rune with wcwidth semantics, skipping
	// variation selectors
	WidthWC
)

// StringWidth returns the number of terminal cells s occupies when printed,
// measured with [WidthUnicode]
func StringWidth(s string) int {
	return StringWidthMethod(s, WidthUnicode)
}

// StringWidthMethod returns the number of terminal cells s occupies when
// printed, measured with the given method
func StringWidthMethod(s string, method WidthMethod) int {
	switch method {
	case WidthNoZWJ:
		s = strings.ReplaceAll(s, "‍", "")
		return uniseg.StringWidth(s)
	case WidthWC:
		total := 0
		for _, r := range s {
			if r >= 0xFE00 && r <= 0xFE0F {
				// Variation Selectors 1 - 16
				continue
			}
			if r >= 0xE0100 && r <= 0xE01EF {
				// Variation Selectors 17-256
				continue
			}
			total += runewidth.RuneWidth(r)
		}
		return total
	default:
		return uniseg.StringWidth(s)
	}
}
