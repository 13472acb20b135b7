// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"golang.org/x/exp/slices"
	"stackbox.org/f32"
)

func (e *Engine) measureStack(s *Stack, cs Constraints) f32.Point {
	axis := e.stackAxis(s, cs.Max)
	mainMin, mainMax := axis.mainConstraint(cs)
	_, crossMax := axis.crossConstraint(cs)
	intrinsic := e.intrinsic(s, axis, crossMax)
	target := s.natural(intrinsic)
	if target < mainMin {
		target = mainMin
	}
	if target > mainMax {
		target = mainMax
	}
	lengths, _, _ := s.distribute(axis, intrinsic, target)
	var cross float32
	for i, c := range s.Children {
		sz := axis.Convert(e.Measure(c, axis.constraints(0, lengths[i], 0, crossMax)))
		cross = max(cross, sz.Y)
	}
	return axis.Convert(f32.Pt(sum(lengths)+s.spacing(), cross))
}

func (e *Engine) arrangeStack(s *Stack, size f32.Point) []Arrangement {
	if len(s.Children) == 0 {
		return nil
	}
	axis := e.stackAxis(s, size)
	sz := axis.Convert(size)
	intrinsic := e.intrinsic(s, axis, sz.Y)
	lengths, off, gap := s.distribute(axis, intrinsic, sz.X)
	children := make([]Arrangement, len(s.Children))
	for i, c := range s.Children {
		slot := f32.Rectangle{
			Min: axis.Convert(f32.Pt(off, 0)),
			Max: axis.Convert(f32.Pt(off+lengths[i], sz.Y)),
		}
		children[i] = e.place(c, slot)
		off += lengths[i] + gap
	}
	return children
}

// stackAxis returns the axis s lays out along within max. An
// auto-rotating horizontal stack turns vertical when its children
// don't fit the width.
func (e *Engine) stackAxis(s *Stack, max f32.Point) Axis {
	if !s.AutoRotate || s.Axis != Horizontal {
		return s.Axis
	}
	if s.natural(e.intrinsic(s, Horizontal, max.Y)) > max.X {
		return Vertical
	}
	return Horizontal
}

// intrinsic returns the main axis lengths of the children of s
// measured with an unbounded main axis.
func (e *Engine) intrinsic(s *Stack, axis Axis, crossMax float32) []float32 {
	lengths := make([]float32, len(s.Children))
	for i, c := range s.Children {
		sz := e.Measure(c, axis.constraints(0, f32.Inf, 0, crossMax))
		lengths[i] = axis.Convert(sz).X
	}
	return lengths
}

// natural returns the main axis length s needs for children of the
// given lengths.
func (s *Stack) natural(lengths []float32) float32 {
	if len(lengths) == 0 {
		return 0
	}
	if s.Distribution == FillEqualSize {
		return slices.Max(lengths)*float32(len(lengths)) + s.spacing()
	}
	return sum(lengths) + s.spacing()
}

// spacing returns the total spacing between children.
func (s *Stack) spacing() float32 {
	if len(s.Children) < 2 {
		return 0
	}
	return nonNeg(s.Spacing) * float32(len(s.Children)-1)
}

// distribute allots available main axis space to children of the
// given intrinsic lengths. It returns the length of every child, the
// offset of the first child and the gap between children.
func (s *Stack) distribute(axis Axis, intrinsic []float32, available float32) (lengths []float32, offset, gap float32) {
	gap = nonNeg(s.Spacing)
	n := len(intrinsic)
	if n == 0 {
		return nil, 0, gap
	}
	if s.Distribution == FillEqualSize {
		l := nonNeg((available - s.spacing()) / float32(n))
		lengths = make([]float32, n)
		for i := range lengths {
			lengths[i] = l
		}
		return lengths, 0, gap
	}
	lengths = slices.Clone(intrinsic)
	excess := available - s.natural(intrinsic)
	if excess < 0 {
		s.shrink(axis, lengths, -excess)
		return lengths, 0, gap
	}
	switch s.Distribution {
	case FillFlexing:
		s.grow(axis, lengths, excess)
	case FillEqualSpacing:
		if n > 1 {
			gap += excess / float32(n-1)
		}
	case PackCenter:
		offset = excess / 2
	case PackTrailing:
		offset = excess
	}
	return lengths, offset, gap
}

// grow distributes excess to lengths in proportion to the grow weights
// of the children. Without growing children the lengths are kept.
func (s *Stack) grow(axis Axis, lengths []float32, excess float32) {
	var total float32
	weights := make([]float32, len(lengths))
	for i, c := range s.Children {
		weights[i] = nonNeg(axis.flex(FlexibilityOf(c)).Grow)
		total += weights[i]
	}
	if total == 0 {
		return
	}
	for i, w := range weights {
		lengths[i] += excess * w / total
	}
}

// shrink removes deficit from lengths in proportion to the shrink
// weights of the children, never below zero. Children without shrink
// weight keep their lengths, so the result may still exceed the
// available space.
func (s *Stack) shrink(axis Axis, lengths []float32, deficit float32) {
	weights := make([]float32, len(lengths))
	for i, c := range s.Children {
		weights[i] = nonNeg(axis.flex(FlexibilityOf(c)).Shrink)
	}
	for deficit > 0 {
		var total float32
		for i, w := range weights {
			if w > 0 && lengths[i] > 0 {
				total += w
			}
		}
		if total == 0 {
			return
		}
		// Cut at most what the first child to reach zero can give.
		step, limit := deficit, -1
		for i, w := range weights {
			if w == 0 || lengths[i] <= 0 {
				continue
			}
			if c := lengths[i] * total / w; c <= step {
				step, limit = c, i
			}
		}
		for i, w := range weights {
			if w == 0 || lengths[i] <= 0 {
				continue
			}
			lengths[i] = nonNeg(lengths[i] - step*w/total)
		}
		if limit >= 0 {
			lengths[limit] = 0
		}
		deficit -= step
	}
}

func sum(vs []float32) float32 {
	var s float32
	for _, v := range vs {
		s += v
	}
	return s
}
