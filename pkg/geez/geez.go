// Package geez renders integers as Ethiopic (Geez) numerals.
//
// Geez numerals have no zero and are composed additively from unit
// glyphs (1-9), tens glyphs (10-90) and the hundred marker. Values of
// 10000 and above are not composed and fall back to decimal digits.
package geez

import (
	"strconv"
	"strings"
)

// Hundred is the Geez hundred marker.
const Hundred = "፻"

// Limit is the first value Encode renders in decimal digits.
const Limit = 10000

var units = [10]string{"", "፩", "፪", "፫", "፬", "፭", "፮", "፯", "፰", "፱"}

// tens[i] is the glyph for i*10, U+1372 through U+137A.
var tens = [10]string{"", "፲", "፳", "፴", "፵", "፶", "፷", "፸", "፹", "፺"}

// Encode returns the Geez numeral text for n. Zero and negative values
// render as the empty string.
func Encode(n int) string {
	switch {
	case n <= 0:
		return ""
	case n >= Limit:
		return strconv.Itoa(n)
	}

	var b strings.Builder
	hundreds, rest := n/100, n%100
	switch {
	case hundreds >= 10:
		// The hundreds count is itself written as a two place value.
		b.WriteString(belowHundred(hundreds))
		b.WriteString(Hundred)
	case hundreds > 1:
		b.WriteString(units[hundreds])
		b.WriteString(Hundred)
	case hundreds == 1:
		b.WriteString(Hundred)
	}
	b.WriteString(belowHundred(rest))
	return b.String()
}

// belowHundred renders 0 <= n < 100.
func belowHundred(n int) string {
	return tens[n/10] + units[n%10]
}

// Digits returns n in Geez when geez is set, otherwise in decimal.
func Digits(n int, geez bool) string {
	if geez {
		return Encode(n)
	}
	return strconv.Itoa(n)
}
