// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"stackbox.org/f32"
	"stackbox.org/text"
)

func (e *Engine) text() text.Provider {
	if e.Text == nil {
		return text.Default()
	}
	return e.Text
}

// round rounds a leaf size up to whole device pixels.
func (e *Engine) round(sz f32.Point) f32.Point {
	return f32.Pt(e.Metric.RoundUp(sz.X), e.Metric.RoundUp(sz.Y))
}

func (e *Engine) measureLabel(l *Label, cs Constraints) f32.Point {
	return e.round(e.text().Measure(text.Params{
		Text:     l.Text,
		Font:     l.Font,
		MaxWidth: cs.Max.X,
		MaxLines: l.MaxLines,
	}))
}

func (e *Engine) measureButton(b *Button, cs Constraints) f32.Point {
	pad := b.ContentInsets.Size()
	title := b.Title
	if title == "" {
		// An empty title keeps the height of a line.
		title = " "
	}
	tsz := e.text().Measure(text.Params{
		Text:     title,
		Font:     b.Font,
		MaxWidth: nonNeg(cs.Max.X - pad.X - b.ImageSize.X),
	})
	if b.Title == "" {
		tsz.X = 0
	}
	sz := f32.Point{
		X: b.ImageSize.X + tsz.X + pad.X,
		Y: max(b.ImageSize.Y, tsz.Y) + pad.Y,
	}
	if b.ImageSize == (f32.Point{}) && b.ContentInsets == (Insets{}) {
		sz.X = max(sz.X, buttonMinWidth)
		sz.Y += buttonPadding
	}
	return e.round(sz)
}

func (e *Engine) measureTextView(t *TextView, cs Constraints) f32.Point {
	pad := t.ContainerInsets.Size()
	txt := t.Text
	if txt == "" {
		txt = " "
	}
	tsz := e.text().Measure(text.Params{
		Text:     txt,
		Font:     t.Font,
		MaxWidth: nonNeg(cs.Max.X - pad.X),
	})
	if t.Text == "" {
		tsz.X = 0
	}
	return e.round(tsz.Add(pad))
}
