// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"
	"strings"

	"stackbox.org/f32"
)

// Arrangement is the result of arranging a node.
type Arrangement struct {
	Node Node
	// Frame is relative to the frame of the parent arrangement.
	Frame    f32.Rectangle
	Children []Arrangement
}

// Placement is a flattened Arrangement entry.
type Placement struct {
	// Frame is relative to the root's parent.
	Frame    f32.Rectangle
	Node     Node
	ReuseKey string
	// Parent is the index of the parent placement, or -1 for the root.
	Parent int
}

// Placements flattens a into depth-first pre-order.
func (a Arrangement) Placements() []Placement {
	var ps []Placement
	var walk func(a *Arrangement, origin f32.Point, parent int)
	walk = func(a *Arrangement, origin f32.Point, parent int) {
		frame := a.Frame.Add(origin)
		idx := len(ps)
		ps = append(ps, Placement{
			Frame:    frame,
			Node:     a.Node,
			ReuseKey: a.Node.common().ReuseKey,
			Parent:   parent,
		})
		for i := range a.Children {
			walk(&a.Children[i], frame.Min, idx)
		}
	}
	walk(&a, f32.Point{}, -1)
	return ps
}

// Mirror returns a flipped horizontally inside a parent of the given
// width, for right-to-left layouts.
func (a Arrangement) Mirror(width float32) Arrangement {
	m := Arrangement{
		Node: a.Node,
		Frame: f32.Rectangle{
			Min: f32.Pt(width-a.Frame.Max.X, a.Frame.Min.Y),
			Max: f32.Pt(width-a.Frame.Min.X, a.Frame.Max.Y),
		},
	}
	if len(a.Children) > 0 {
		m.Children = make([]Arrangement, len(a.Children))
		for i, c := range a.Children {
			m.Children[i] = c.Mirror(a.Frame.Dx())
		}
	}
	return m
}

// String returns an indented outline of the arrangement.
func (a Arrangement) String() string {
	var b strings.Builder
	var walk func(a *Arrangement, depth int)
	walk = func(a *Arrangement, depth int) {
		fmt.Fprintf(&b, "%s%T %v", strings.Repeat("  ", depth), a.Node, a.Frame)
		if k := a.Node.common().ReuseKey; k != "" {
			fmt.Fprintf(&b, " %q", k)
		}
		b.WriteByte('\n')
		for i := range a.Children {
			walk(&a.Children[i], depth+1)
		}
	}
	walk(&a, 0)
	return b.String()
}
