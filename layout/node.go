// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"stackbox.org/f32"
	"stackbox.org/text"
	"stackbox.org/widget"
)

// Node is an immutable description of layout intent. The set of
// nodes is closed: *Stack, *Size, *Inset, *Overlay, *Label, *Button
// and *TextView.
//
// A node tree must be acyclic and must not be modified once handed to
// an Engine. Building a tree never touches a widget.
type Node interface {
	// WidgetClass returns the class of the widget applied for the
	// node, or widget.ClassView for containers.
	WidgetClass() string
	common() *Common
}

// Common holds the fields shared by every node.
type Common struct {
	// Alignment positions the node in the space allotted by its
	// parent. The zero value fills it.
	Alignment Alignment
	// ReuseKey identifies the widget of the node across layout
	// passes. Containers without a ReuseKey, ReuseGroup nor Configure
	// are not backed by a widget.
	ReuseKey string
	// ReuseGroup lets the node take over any widget of the same class
	// and group left from the previous pass, when no widget matches
	// its ReuseKey.
	ReuseGroup string
	// Configure is called with the widget of the node when a layout
	// is applied.
	Configure func(w widget.Widget)
}

// Distribution controls how a Stack allocates space along its axis.
type Distribution uint8

const (
	// FillFlexing distributes excess space to children in proportion
	// to their grow weights.
	FillFlexing Distribution = iota
	// FillEqualSize gives every child the same length.
	FillEqualSize
	// FillEqualSpacing widens the gaps between children equally.
	FillEqualSpacing
	// PackLeading packs children at the start.
	PackLeading
	// PackCenter packs children in the middle.
	PackCenter
	// PackTrailing packs children at the end.
	PackTrailing
)

// Stack lays out children along an axis.
type Stack struct {
	Common
	Axis Axis
	// Spacing is the gap between adjacent children. FillEqualSpacing
	// treats it as a minimum.
	Spacing      float32
	Distribution Distribution
	// AutoRotate lays out a horizontal stack vertically when its
	// children don't fit the available width.
	AutoRotate bool
	// Flexibility overrides the flexibility inherited from the
	// children: the largest along the axis and the smallest across.
	Flexibility *Flexibility
	// Children must not be nil.
	Children []Node
}

// Size constrains the size of an optional child.
type Size struct {
	Common
	// Width and Height are exact lengths. Zero means unset.
	Width, Height float32
	// MinSize and MaxSize bound the size. A zero MaxSize component
	// means no limit.
	MinSize, MaxSize f32.Point
	// Flexibility overrides the default, which is inflexible on exact
	// axes and the child's flexibility elsewhere.
	Flexibility *Flexibility
	Child       Node
}

// Inset adds space around a child.
type Inset struct {
	Common
	Insets Insets
	Child  Node
}

// Overlay lays out background and foreground children over the frame
// of a primary child.
type Overlay struct {
	Common
	Primary    Node
	Background []Node
	Foreground []Node
}

// Label is a text leaf.
type Label struct {
	Common
	Text string
	Font text.Font
	// MaxLines limits the number of lines. Zero means no limit.
	MaxLines    int
	Flexibility Flexibility
}

// Button is a button leaf with a title and an optional image.
type Button struct {
	Common
	Title         string
	Font          text.Font
	ImageSize     f32.Point
	ContentInsets Insets
	Flexibility   Flexibility
}

// TextView is a multi-line text container leaf.
type TextView struct {
	Common
	Text            string
	Font            text.Font
	ContainerInsets Insets
	Flexibility     Flexibility
}

const (
	// buttonMinWidth and buttonPadding match a button without a
	// custom image or content insets.
	buttonMinWidth = 30
	buttonPadding  = 12
)

func (c *Common) common() *Common { return c }

func (*Stack) WidgetClass() string    { return widget.ClassView }
func (*Size) WidgetClass() string     { return widget.ClassView }
func (*Inset) WidgetClass() string    { return widget.ClassView }
func (*Overlay) WidgetClass() string  { return widget.ClassView }
func (*Label) WidgetClass() string    { return widget.ClassLabel }
func (*Button) WidgetClass() string   { return widget.ClassButton }
func (*TextView) WidgetClass() string { return widget.ClassTextView }

// Props returns the common fields of n.
func Props(n Node) Common {
	return *n.common()
}

// NeedsWidget reports whether n is backed by a widget when applied.
func NeedsWidget(n Node) bool {
	switch n.(type) {
	case *Label, *Button, *TextView:
		return true
	}
	c := n.common()
	return c.ReuseKey != "" || c.ReuseGroup != "" || c.Configure != nil
}

// FlexibilityOf returns the flexibility of n, resolving inherited
// container defaults.
func FlexibilityOf(n Node) Flexibility {
	switch n := n.(type) {
	case *Stack:
		if n.Flexibility != nil {
			return *n.Flexibility
		}
		return inheritFlex(n.Axis, n.Children)
	case *Size:
		if n.Flexibility != nil {
			return *n.Flexibility
		}
		var f Flexibility
		if n.Child != nil {
			f = FlexibilityOf(n.Child)
		}
		if n.Width > 0 || (n.MaxSize.X > 0 && n.MinSize.X >= n.MaxSize.X) {
			f.Horizontal = Flex{}
		}
		if n.Height > 0 || (n.MaxSize.Y > 0 && n.MinSize.Y >= n.MaxSize.Y) {
			f.Vertical = Flex{}
		}
		return f
	case *Inset:
		if n.Child == nil {
			return Flexibility{}
		}
		return FlexibilityOf(n.Child)
	case *Overlay:
		if n.Primary == nil {
			return Flexibility{}
		}
		return FlexibilityOf(n.Primary)
	case *Label:
		return n.Flexibility
	case *Button:
		return n.Flexibility
	case *TextView:
		return n.Flexibility
	default:
		panic("layout: unknown node type")
	}
}

// inheritFlex returns the largest flexibility of children along axis
// and the smallest across it.
func inheritFlex(axis Axis, children []Node) Flexibility {
	if len(children) == 0 {
		return Flexibility{}
	}
	var along, across Flex
	for i, c := range children {
		f := FlexibilityOf(c)
		a, x := axis.flex(f), axis.flex(Flexibility{Horizontal: f.Vertical, Vertical: f.Horizontal})
		along.Grow = max(along.Grow, a.Grow)
		along.Shrink = max(along.Shrink, a.Shrink)
		if i == 0 {
			across = x
			continue
		}
		across.Grow = min(across.Grow, x.Grow)
		across.Shrink = min(across.Shrink, x.Shrink)
	}
	if axis == Horizontal {
		return Flexibility{Horizontal: along, Vertical: across}
	}
	return Flexibility{Horizontal: across, Vertical: along}
}
