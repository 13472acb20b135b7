// SPDX-License-Identifier: Unlicense OR MIT

package layout_test

import (
	"fmt"

	"stackbox.org/f32"
	"stackbox.org/layout"
	"stackbox.org/text"
)

func ExampleInset() {
	e := &layout.Engine{Text: text.Cells{}}
	// Inset all edges by 10.
	n := &layout.Inset{
		Insets: layout.UniformInset(10),
		// A 50x50 sized box.
		Child: &layout.Size{Width: 50, Height: 50},
	}
	a := e.Layout(n, layout.Loose(f32.Pt(100, 100)), f32.Point{})

	fmt.Println(a.Frame.Size())
	fmt.Println(a.Children[0].Frame)

	// Output:
	// (70,70)
	// (10,10)-(60,60)
}

func ExampleStack() {
	e := &layout.Engine{Text: text.Cells{}}
	grow := func(w float32) *layout.Flexibility {
		f := layout.Grows(w, 0)
		return &f
	}
	n := &layout.Stack{
		Axis:    layout.Horizontal,
		Spacing: 10,
		Children: []layout.Node{
			// Rigid 10 wide child.
			&layout.Size{Width: 10},
			// Children sharing the excess 1:3.
			&layout.Size{Flexibility: grow(1)},
			&layout.Size{Flexibility: grow(3)},
		},
	}
	a := e.Arrange(n, f32.Point{}, f32.Pt(110, 10))
	for _, c := range a.Children {
		fmt.Println(c.Frame)
	}

	// Output:
	// (0,0)-(10,10)
	// (20,0)-(40,10)
	// (50,0)-(110,10)
}

func ExampleAlignment_Position() {
	r := f32.Rect(0, 0, 100, 40)
	fmt.Println(layout.Center.Position(f32.Pt(20, 10), r))
	fmt.Println(layout.BottomTrailing.Position(f32.Pt(20, 10), r))
	fmt.Println(layout.CenterFill.Position(f32.Pt(20, 10), r))

	// Output:
	// (40,15)-(60,25)
	// (80,30)-(100,40)
	// (0,15)-(100,25)
}
