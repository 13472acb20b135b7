// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
	"stackbox.org/f32"
)

// Cells measures text in terminal cells, one dp per cell. Fonts are
// ignored. The zero value is ready for use.
type Cells struct{}

// Measure implements Provider.
func (Cells) Measure(p Params) f32.Point {
	if p.Text == "" {
		return f32.Point{}
	}
	lines := Wrap(p.Text, cellWidth(p.MaxWidth))
	if p.MaxLines > 0 && len(lines) > p.MaxLines {
		lines = lines[:p.MaxLines]
	}
	var w int
	for _, l := range lines {
		w = max(w, runewidth.StringWidth(l))
	}
	return f32.Pt(float32(w), float32(len(lines)))
}

// cellWidth converts a width in dp to whole cells. Unbounded widths
// map to zero, which Wrap treats as no limit.
func cellWidth(w float32) int {
	if math.IsInf(float64(w), 1) || w >= math.MaxInt32 {
		return 0
	}
	return max(1, int(w))
}

// Wrap breaks s into lines at most width cells wide. Lines break at
// spaces where possible; words wider than width are broken between
// runes. Explicit newlines are kept. A width of zero disables wrapping.
func Wrap(s string, width int) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		if width <= 0 {
			lines = append(lines, para)
			continue
		}
		lines = append(lines, wrapParagraph(para, width)...)
	}
	return lines
}

func wrapParagraph(para string, width int) []string {
	var (
		lines []string
		line  strings.Builder
		lineW int
	)
	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineW = 0
	}
	for _, word := range strings.Fields(para) {
		w := runewidth.StringWidth(word)
		switch {
		case lineW > 0 && lineW+1+w <= width:
			line.WriteByte(' ')
			line.WriteString(word)
			lineW += 1 + w
			continue
		case lineW > 0:
			flush()
		}
		for w > width {
			head, rest := splitCells(word, width)
			lines = append(lines, head)
			word = rest
			w = runewidth.StringWidth(word)
		}
		line.WriteString(word)
		lineW = w
	}
	if lineW > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}

// splitCells splits s after the longest prefix that fits in width
// cells. The prefix holds at least one rune.
func splitCells(s string, width int) (string, string) {
	w := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > width && i > 0 {
			return s[:i], s[i:]
		}
		w += rw
	}
	return s, ""
}
