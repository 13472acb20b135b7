// SPDX-License-Identifier: Unlicense OR MIT

/*
Package text implements the intrinsic size providers used to measure
text leaves of a layout.

A Provider is a pure function from text parameters to a size in dp.
Shaper measures with sfnt fonts, Cells measures in terminal cells.
Both are safe for concurrent use.
*/
package text

import (
	"stackbox.org/f32"
	"stackbox.org/unit"
)

// Style is the font style.
type Style int

// Weight is a font weight, in CSS units subtracted 400 so the zero value
// is normal text weight.
type Weight int

// Typeface identifies a particular typeface design. The empty
// string denotes the default typeface.
type Typeface string

// Font specify a particular typeface, style, weight and size.
type Font struct {
	Typeface Typeface
	Style    Style
	Weight   Weight
	// Size is the text size. The zero value means DefaultSize.
	Size unit.Sp
}

// Params describes a text measurement.
type Params struct {
	Text string
	Font Font
	// MaxWidth is the width available for wrapping, in dp. It may be
	// f32.Inf.
	MaxWidth float32
	// MaxLines limits the number of lines. Zero means no limit.
	MaxLines int
}

// Provider measures text.
type Provider interface {
	// Measure returns the size in dp of the text laid out
	// according to p.
	Measure(p Params) f32.Point
}

// DefaultSize is the text size used when a Font doesn't specify one.
const DefaultSize = unit.Sp(16)

const (
	Regular Style = iota
	Italic
)

const (
	Normal Weight = 0
	Medium Weight = 100
	Bold   Weight = 300
)

// Mono is the typeface name of monospaced faces.
const Mono Typeface = "Go Mono"

func (s Style) String() string {
	switch s {
	case Regular:
		return "Regular"
	case Italic:
		return "Italic"
	default:
		panic("invalid Style")
	}
}

func (f Font) size() unit.Sp {
	if f.Size <= 0 {
		return DefaultSize
	}
	return f.Size
}
