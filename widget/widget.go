// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"errors"
	"fmt"

	"stackbox.org/f32"
)

// Widget is a live user interface element.
type Widget interface {
	// Class returns the widget class the widget was created for.
	Class() string
	// SetFrame positions the widget in pixels relative to its parent.
	SetFrame(r f32.Rectangle)
	// Links returns the parent and children links of the widget.
	// Implementations embed a Tree to satisfy it.
	Links() *Tree
}

// Factory creates widgets.
type Factory interface {
	// NewWidget returns a new widget of class. It returns an error
	// wrapping ErrUnknownClass for unsupported classes.
	NewWidget(class string) (Widget, error)
}

// FactoryFunc adapts a function to a Factory.
type FactoryFunc func(class string) (Widget, error)

// Tree holds the links of a widget in the widget tree.
type Tree struct {
	parent   Widget
	children []Widget
}

// Widget classes created for layout nodes.
const (
	ClassView     = "view"
	ClassLabel    = "label"
	ClassButton   = "button"
	ClassTextView = "textview"
)

// ErrUnknownClass is returned by factories for classes they don't
// support.
var ErrUnknownClass = errors.New("widget: unknown class")

func (f FactoryFunc) NewWidget(class string) (Widget, error) {
	return f(class)
}

// Links implements Widget.
func (t *Tree) Links() *Tree {
	return t
}

// Parent returns the widget w is mounted under, or nil.
func Parent(w Widget) Widget {
	return w.Links().parent
}

// Children returns the mounted children of w in order.
func Children(w Widget) []Widget {
	return w.Links().children
}

// AddChild mounts child as the last child of parent, unmounting it
// from its previous parent first.
func AddChild(parent, child Widget) {
	if parent == child {
		panic("widget: mounting a widget under itself")
	}
	RemoveFromParent(child)
	child.Links().parent = parent
	pt := parent.Links()
	pt.children = append(pt.children, child)
}

// RemoveFromParent unmounts w. It is a no-op for unmounted widgets.
func RemoveFromParent(w Widget) {
	t := w.Links()
	p := t.parent
	if p == nil {
		return
	}
	t.parent = nil
	pt := p.Links()
	for i, c := range pt.children {
		if c == w {
			pt.children = append(pt.children[:i], pt.children[i+1:]...)
			break
		}
	}
}

// Arrange mounts children under parent in order, ahead of the other
// children of parent. Children mounted under another parent are moved.
func Arrange(parent Widget, children []Widget) {
	pt := parent.Links()
	set := make(map[Widget]bool, len(children))
	for _, c := range children {
		if c == parent {
			panic("widget: mounting a widget under itself")
		}
		set[c] = true
	}
	kids := make([]Widget, 0, len(pt.children)+len(children))
	kids = append(kids, children...)
	for _, c := range pt.children {
		if !set[c] {
			kids = append(kids, c)
		}
	}
	for _, c := range children {
		if ct := c.Links(); ct.parent != parent {
			RemoveFromParent(c)
			ct.parent = parent
		}
	}
	pt.children = kids
}

// View is a widget that records the frames it is given. It serves
// hosts without a display.
type View struct {
	Tree
	class string
	frame f32.Rectangle
}

// NewView returns a View of class.
func NewView(class string) *View {
	return &View{class: class}
}

func (v *View) Class() string {
	return v.class
}

func (v *View) SetFrame(r f32.Rectangle) {
	v.frame = r
}

// Frame returns the last frame set.
func (v *View) Frame() f32.Rectangle {
	return v.frame
}

// Views is a Factory of Views for the layout widget classes.
var Views Factory = FactoryFunc(func(class string) (Widget, error) {
	switch class {
	case ClassView, ClassLabel, ClassButton, ClassTextView:
		return NewView(class), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownClass, class)
	}
})
