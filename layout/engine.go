// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layout implements a box layout engine for trees of immutable
nodes.

Measure computes the size of a node within Constraints without
positioning anything. Arrange distributes a final size over the
children of a node and returns an Arrangement of frames. Both are pure:
they never fail, perform no I/O and may run on any goroutine. Invalid
constraints are normalized instead of rejected.

Lengths are in dp. Text leaves are measured by a text.Provider and
rounded up to whole device pixels.
*/
package layout

import (
	"stackbox.org/f32"
	"stackbox.org/text"
	"stackbox.org/unit"
)

// Engine measures and arranges nodes, memoizing measurements per node
// and constraints. An Engine must not be used concurrently; use one per
// layout pass. The zero value measures text with text.Default.
type Engine struct {
	// Text measures text leaves.
	Text text.Provider
	// Metric is the display metric leaf sizes are rounded to.
	Metric unit.Metric

	memo map[measureKey]f32.Point
}

type measureKey struct {
	node Node
	cs   Constraints
}

// Measure returns the size of n within cs using a fresh Engine.
func Measure(n Node, cs Constraints) f32.Point {
	return new(Engine).Measure(n, cs)
}

// Arrange returns the arrangement of n in the frame at origin of the
// given size using a fresh Engine.
func Arrange(n Node, origin, size f32.Point) Arrangement {
	return new(Engine).Arrange(n, origin, size)
}

// Layout measures n within cs and arranges it at origin using a fresh
// Engine.
func Layout(n Node, cs Constraints, origin f32.Point) Arrangement {
	return new(Engine).Layout(n, cs, origin)
}

// Reset discards memoized measurements.
func (e *Engine) Reset() {
	clear(e.memo)
}

// Measure returns the size of n within cs. The result always satisfies
// cs, after normalization. Measuring the same node and constraints
// again returns the same size.
func (e *Engine) Measure(n Node, cs Constraints) f32.Point {
	cs = cs.Normalize()
	k := measureKey{node: n, cs: cs}
	if sz, ok := e.memo[k]; ok {
		return sz
	}
	sz := cs.Constrain(e.measure(n, cs))
	if e.memo == nil {
		e.memo = make(map[measureKey]f32.Point)
	}
	e.memo[k] = sz
	return sz
}

// Arrange returns the arrangement of n. The root frame is exactly the
// frame at origin of size; the frames of descendants are relative to
// their parent.
func (e *Engine) Arrange(n Node, origin, size f32.Point) Arrangement {
	size = f32.Pt(nonNeg(size.X), nonNeg(size.Y))
	return Arrangement{
		Node:     n,
		Frame:    f32.Rectangle{Min: origin, Max: origin.Add(size)},
		Children: e.arrangeChildren(n, size),
	}
}

// Layout measures n within cs and arranges it at origin.
func (e *Engine) Layout(n Node, cs Constraints, origin f32.Point) Arrangement {
	return e.Arrange(n, origin, e.Measure(n, cs))
}

func (e *Engine) measure(n Node, cs Constraints) f32.Point {
	switch n := n.(type) {
	case *Stack:
		return e.measureStack(n, cs)
	case *Size:
		return e.measureSize(n, cs)
	case *Inset:
		return e.measureInset(n, cs)
	case *Overlay:
		if n.Primary == nil {
			return f32.Point{}
		}
		return e.Measure(n.Primary, cs)
	case *Label:
		return e.measureLabel(n, cs)
	case *Button:
		return e.measureButton(n, cs)
	case *TextView:
		return e.measureTextView(n, cs)
	default:
		panic("layout: unknown node type")
	}
}

func (e *Engine) arrangeChildren(n Node, size f32.Point) []Arrangement {
	switch n := n.(type) {
	case *Stack:
		return e.arrangeStack(n, size)
	case *Size:
		if n.Child == nil {
			return nil
		}
		return []Arrangement{e.place(n.Child, f32.Rectangle{Max: size})}
	case *Inset:
		if n.Child == nil {
			return nil
		}
		in := n.Insets
		slot := f32.Rect(in.Left, in.Top, size.X-in.Right, size.Y-in.Bottom)
		slot.Max = slot.Max.Max(slot.Min)
		return []Arrangement{e.place(n.Child, slot)}
	case *Overlay:
		return e.arrangeOverlay(n, size)
	case *Label, *Button, *TextView:
		return nil
	default:
		panic("layout: unknown node type")
	}
}

// place arranges n in the space of slot according to its alignment.
func (e *Engine) place(n Node, slot f32.Rectangle) Arrangement {
	sz := e.Measure(n, Loose(slot.Size()))
	frame := n.common().Alignment.Position(sz, slot)
	return Arrangement{
		Node:     n,
		Frame:    frame,
		Children: e.arrangeChildren(n, frame.Size()),
	}
}

func (e *Engine) measureSize(s *Size, cs Constraints) f32.Point {
	lo, hi := s.bounds()
	var sz f32.Point
	if s.Child != nil {
		sz = e.Measure(s.Child, Loose(cs.Max.Min(hi)))
	}
	return sz.Max(lo).Min(hi)
}

// bounds returns the size range of s.
func (s *Size) bounds() (lo, hi f32.Point) {
	lo = f32.Pt(nonNeg(s.MinSize.X), nonNeg(s.MinSize.Y))
	hi = f32.Pt(f32.Inf, f32.Inf)
	if s.MaxSize.X > 0 {
		hi.X = s.MaxSize.X
	}
	if s.MaxSize.Y > 0 {
		hi.Y = s.MaxSize.Y
	}
	if s.Width > 0 {
		lo.X, hi.X = s.Width, s.Width
	}
	if s.Height > 0 {
		lo.Y, hi.Y = s.Height, s.Height
	}
	return lo, hi
}

func (e *Engine) measureInset(in *Inset, cs Constraints) f32.Point {
	pad := in.Insets.Size()
	var sz f32.Point
	if in.Child != nil {
		sz = e.Measure(in.Child, cs.Deflate(pad))
	}
	return sz.Add(pad)
}

// arrangeOverlay arranges the primary child in the full frame and the
// other children against the frame of the primary, in the order
// backgrounds, primary, foregrounds.
func (e *Engine) arrangeOverlay(o *Overlay, size f32.Point) []Arrangement {
	if o.Primary == nil {
		return nil
	}
	primary := e.place(o.Primary, f32.Rectangle{Max: size})
	children := make([]Arrangement, 0, len(o.Background)+1+len(o.Foreground))
	for _, b := range o.Background {
		children = append(children, e.place(b, primary.Frame))
	}
	children = append(children, primary)
	for _, f := range o.Foreground {
		children = append(children, e.place(f, primary.Frame))
	}
	return children
}
