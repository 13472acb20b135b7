// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/image/math/fixed"
)

// breakLines greedily breaks str into lines no wider than maxDotX and
// returns the width of every line. Lines are broken after the last
// space that fits; a line without spaces is broken after its last
// fitting rune.
func breakLines(ppem fixed.Int26_6, str string, f *opentype, maxDotX fixed.Int26_6) []fixed.Int26_6 {
	type state struct {
		r     rune
		adv   fixed.Int26_6
		x     fixed.Int26_6
		idx   int
		valid bool
	}
	var widths []fixed.Int26_6
	var prev, word state
	endLine := func() {
		widths = append(widths, prev.x+prev.adv)
		str = str[prev.idx:]
		prev = state{}
		word = state{}
	}
	for prev.idx < len(str) {
		c, s := utf8.DecodeRuneInString(str[prev.idx:])
		if c == '\n' {
			// The newline is zero width; use the previous
			// character for line measurements.
			prev.idx += s
			endLine()
			continue
		}
		a, ok := f.GlyphAdvance(ppem, c)
		if !ok {
			prev.idx += s
			continue
		}
		next := state{
			r:     c,
			idx:   prev.idx + s,
			x:     prev.x + prev.adv,
			adv:   a,
			valid: true,
		}
		var k fixed.Int26_6
		if prev.valid {
			k = f.Kern(ppem, prev.r, next.r)
		}
		// Break the line if we're out of space.
		if prev.idx > 0 && next.x+next.adv+k > maxDotX {
			// If the line contains no word breaks, break off the last rune.
			if word.idx == 0 {
				word = prev
			}
			next.x -= word.x + word.adv
			next.idx -= word.idx
			prev = word
			endLine()
		} else {
			next.adv += k
		}
		if unicode.IsSpace(next.r) {
			word = next
		}
		prev = next
	}
	endLine()
	return widths
}
