// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"math"

	"stackbox.org/f32"
)

// Constraints represent the minimum and maximum size of a node. Each
// axis ranges over [0, f32.Inf].
type Constraints struct {
	Min, Max f32.Point
}

// Axis is the Horizontal or Vertical direction.
type Axis uint8

// Align is the alignment of a node along one axis of the space
// allotted to it by its parent.
type Align uint8

// Alignment is the alignment of a node on both axes.
type Alignment struct {
	Horizontal, Vertical Align
}

// Insets are the edge distances of an Inset node.
type Insets struct {
	Top, Right, Bottom, Left float32
}

// Flex is the flexibility of a node along one axis. Grow and Shrink
// are the relative weights by which a Stack distributes excess and
// removes missing space. The zero value never grows nor shrinks.
type Flex struct {
	Grow, Shrink float32
}

// Flexibility is the flexibility of a node on both axes.
type Flexibility struct {
	Horizontal, Vertical Flex
}

const (
	Horizontal Axis = iota
	Vertical
)

const (
	// Fill stretches a node to the available length.
	Fill Align = iota
	// Start aligns a node to the top or leading edge.
	Start
	// Middle centers a node.
	Middle
	// End aligns a node to the bottom or trailing edge.
	End
)

// Named alignments, vertical alignment first.
var (
	TopLeading     = Alignment{Horizontal: Start, Vertical: Start}
	TopCenter      = Alignment{Horizontal: Middle, Vertical: Start}
	TopTrailing    = Alignment{Horizontal: End, Vertical: Start}
	TopFill        = Alignment{Horizontal: Fill, Vertical: Start}
	CenterLeading  = Alignment{Horizontal: Start, Vertical: Middle}
	Center         = Alignment{Horizontal: Middle, Vertical: Middle}
	CenterTrailing = Alignment{Horizontal: End, Vertical: Middle}
	CenterFill     = Alignment{Horizontal: Fill, Vertical: Middle}
	BottomLeading  = Alignment{Horizontal: Start, Vertical: End}
	BottomCenter   = Alignment{Horizontal: Middle, Vertical: End}
	BottomTrailing = Alignment{Horizontal: End, Vertical: End}
	BottomFill     = Alignment{Horizontal: Fill, Vertical: End}
	FillLeading    = Alignment{Horizontal: Start, Vertical: Fill}
	FillCenter     = Alignment{Horizontal: Middle, Vertical: Fill}
	FillTrailing   = Alignment{Horizontal: End, Vertical: Fill}
	FillAll        = Alignment{}
)

// Exact returns the Constraints that can only be satisfied by the
// given size.
func Exact(size f32.Point) Constraints {
	return Constraints{Min: size, Max: size}
}

// Loose returns Constraints with a zero minimum and a maximum of size.
func Loose(size f32.Point) Constraints {
	return Constraints{Max: size}
}

// Unbounded returns Constraints accepting any size.
func Unbounded() Constraints {
	return Constraints{Max: f32.Pt(f32.Inf, f32.Inf)}
}

// Normalize returns c with negative or NaN lengths replaced by zero
// and every maximum raised to at least its minimum.
func (c Constraints) Normalize() Constraints {
	c.Min.X, c.Max.X = normRange(c.Min.X, c.Max.X)
	c.Min.Y, c.Max.Y = normRange(c.Min.Y, c.Max.Y)
	return c
}

func normRange(lo, hi float32) (float32, float32) {
	lo, hi = nonNeg(lo), nonNeg(hi)
	if math.IsInf(float64(lo), 1) {
		lo = 0
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

func nonNeg(v float32) float32 {
	if v > 0 {
		return v
	}
	// Covers NaN.
	return 0
}

// Constrain a size so each dimension is in the range [Min;Max].
func (c Constraints) Constrain(size f32.Point) f32.Point {
	if min := c.Min.X; size.X < min || size.X != size.X {
		size.X = min
	}
	if min := c.Min.Y; size.Y < min || size.Y != size.Y {
		size.Y = min
	}
	if max := c.Max.X; size.X > max {
		size.X = max
	}
	if max := c.Max.Y; size.Y > max {
		size.Y = max
	}
	return size
}

// Deflate returns c shrunk on each axis by amount, clamped at zero.
func (c Constraints) Deflate(amount f32.Point) Constraints {
	c.Min = f32.Pt(nonNeg(c.Min.X-amount.X), nonNeg(c.Min.Y-amount.Y))
	c.Max = f32.Pt(nonNeg(c.Max.X-amount.X), nonNeg(c.Max.Y-amount.Y))
	return c
}

// Convert a point in (x, y) coordinates to (main, cross) coordinates,
// or vice versa. Specifically, Convert((x, y)) returns (x, y) unchanged
// for the horizontal axis, or (y, x) for the vertical axis.
func (a Axis) Convert(pt f32.Point) f32.Point {
	if a == Horizontal {
		return pt
	}
	return f32.Pt(pt.Y, pt.X)
}

// mainConstraint returns the min and max main constraints for axis a.
func (a Axis) mainConstraint(cs Constraints) (float32, float32) {
	if a == Horizontal {
		return cs.Min.X, cs.Max.X
	}
	return cs.Min.Y, cs.Max.Y
}

// crossConstraint returns the min and max cross constraints for axis a.
func (a Axis) crossConstraint(cs Constraints) (float32, float32) {
	if a == Horizontal {
		return cs.Min.Y, cs.Max.Y
	}
	return cs.Min.X, cs.Max.X
}

// constraints returns the constraints for axis a.
func (a Axis) constraints(mainMin, mainMax, crossMin, crossMax float32) Constraints {
	if a == Horizontal {
		return Constraints{Min: f32.Pt(mainMin, crossMin), Max: f32.Pt(mainMax, crossMax)}
	}
	return Constraints{Min: f32.Pt(crossMin, mainMin), Max: f32.Pt(crossMax, mainMax)}
}

// flex returns the flexibility along a.
func (a Axis) flex(f Flexibility) Flex {
	if a == Horizontal {
		return f.Horizontal
	}
	return f.Vertical
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}

// align returns the offset and length of a node of the given length
// in available space. The length is clamped to the available space
// and Fill takes all of it.
func (a Align) align(length, available float32) (offset, size float32) {
	if length > available {
		length = available
	}
	switch a {
	case Start:
		return 0, length
	case Middle:
		return (available - length) / 2, length
	case End:
		return available - length, length
	default:
		return 0, available
	}
}

func (a Align) String() string {
	switch a {
	case Fill:
		return "Fill"
	case Start:
		return "Start"
	case Middle:
		return "Middle"
	case End:
		return "End"
	default:
		panic("unreachable")
	}
}

// Position returns the frame of a node measured at size inside rect.
func (a Alignment) Position(size f32.Point, rect f32.Rectangle) f32.Rectangle {
	ox, w := a.Horizontal.align(size.X, rect.Dx())
	oy, h := a.Vertical.align(size.Y, rect.Dy())
	min := rect.Min.Add(f32.Pt(ox, oy))
	return f32.Rectangle{Min: min, Max: min.Add(f32.Pt(w, h))}
}

// UniformInset returns Insets with a single inset applied to all
// edges.
func UniformInset(v float32) Insets {
	return Insets{Top: v, Right: v, Bottom: v, Left: v}
}

// Size returns the total horizontal and vertical insets.
func (in Insets) Size() f32.Point {
	return f32.Pt(in.Left+in.Right, in.Top+in.Bottom)
}

// Flexible returns a Flexibility growing and shrinking by weight on
// both axes.
func Flexible(weight float32) Flexibility {
	f := Flex{Grow: weight, Shrink: weight}
	return Flexibility{Horizontal: f, Vertical: f}
}

// Grows returns a Flexibility growing by the given weights.
func Grows(horizontal, vertical float32) Flexibility {
	return Flexibility{
		Horizontal: Flex{Grow: horizontal},
		Vertical:   Flex{Grow: vertical},
	}
}

// Shrinks returns a Flexibility shrinking by the given weights.
func Shrinks(horizontal, vertical float32) Flexibility {
	return Flexibility{
		Horizontal: Flex{Shrink: horizontal},
		Vertical:   Flex{Shrink: vertical},
	}
}
