// SPDX-License-Identifier: Unlicense OR MIT

/*
Package unit implements device independent units.

Device independent pixel, or dp, is the unit for sizes independent of
the underlying display device. Layout nodes are measured and arranged
in dp.

Scaled pixels, or sp, is the unit for text sizes. An sp is like dp with
text scaling applied.

Finally, pixels, or px, is the unit for display dependent pixels. Their
size vary between platforms and displays. Frames are converted to px
only when they are applied to widgets.
*/
package unit

import (
	"fmt"
	"math"

	"stackbox.org/f32"
)

// Metric converts Values to device-dependent pixels, px. The zero
// value represents a 1-to-1 scale from dp, sp to pixels.
type Metric struct {
	// PxPerDp is the device-dependent pixels per dp.
	PxPerDp float32
	// PxPerSp is the device-dependent pixels per sp.
	PxPerSp float32
}

type (
	// Dp represents device independent pixels. 1 dp will
	// have the same apparent size across platforms and
	// display resolutions.
	Dp float32
	// Sp is like UnitDp but for font sizes.
	Sp float32
)

// Dp converts v to pixels.
func (c Metric) Dp(v Dp) float32 {
	return float32(v) * nonZero(c.PxPerDp)
}

// Sp converts v to pixels.
func (c Metric) Sp(v Sp) float32 {
	return float32(v) * nonZero(c.PxPerSp)
}

// DpToSp converts v dp to sp.
func (c Metric) DpToSp(v Dp) Sp {
	return Sp(float32(v) * nonZero(c.PxPerDp) / nonZero(c.PxPerSp))
}

// SpToDp converts v sp to dp.
func (c Metric) SpToDp(v Sp) Dp {
	return Dp(float32(v) * nonZero(c.PxPerSp) / nonZero(c.PxPerDp))
}

// PxToSp converts v px to sp.
func (c Metric) PxToSp(v float32) Sp {
	return Sp(v / nonZero(c.PxPerSp))
}

// PxToDp converts v px to dp.
func (c Metric) PxToDp(v float32) Dp {
	return Dp(v / nonZero(c.PxPerDp))
}

// Density is the number of pixels per dp.
func (c Metric) Density() float32 {
	return nonZero(c.PxPerDp)
}

// Rect converts a rectangle in dp to whole device pixels. Edges are
// rounded independently so adjacent frames stay adjacent.
func (c Metric) Rect(r f32.Rectangle) f32.Rectangle {
	s := nonZero(c.PxPerDp)
	round := func(v float32) float32 {
		return float32(math.Round(float64(v * s)))
	}
	return f32.Rectangle{
		Min: f32.Pt(round(r.Min.X), round(r.Min.Y)),
		Max: f32.Pt(round(r.Max.X), round(r.Max.Y)),
	}
}

// RoundUp rounds v dp up to the nearest 1/density, the finest length
// a display with the given density can show.
func (c Metric) RoundUp(v float32) float32 {
	if v <= 0 {
		return 0
	}
	s := nonZero(c.PxPerDp)
	return float32(math.Ceil(float64(v*s)-1e-3)) / s
}

func nonZero(v float32) float32 {
	if v == 0. {
		return 1
	}
	return v
}

func (v Dp) String() string {
	return fmt.Sprintf("%gdp", float32(v))
}

func (v Sp) String() string {
	return fmt.Sprintf("%gsp", float32(v))
}
