// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"stackbox.org/f32"
	"stackbox.org/text"
	"stackbox.org/widget"
)

// cell is a terminal widget. Frames are in cells.
type cell struct {
	widget.Tree
	class string
	frame f32.Rectangle
	text  string
	// style applies when styled is set.
	style  lipgloss.Style
	styled bool
}

func (c *cell) Class() string {
	return c.class
}

func (c *cell) SetFrame(r f32.Rectangle) {
	c.frame = r
}

// cells creates terminal widgets.
var cells = widget.FactoryFunc(func(class string) (widget.Widget, error) {
	switch class {
	case widget.ClassView, widget.ClassLabel, widget.ClassButton, widget.ClassTextView:
		return &cell{class: class}, nil
	default:
		return nil, fmt.Errorf("%w: %q", widget.ErrUnknownClass, class)
	}
})

// canvas is a grid of styled terminal cells.
type canvas struct {
	width, height int
	// runes holds a rune per cell. The cells covered by the right
	// half of a wide rune hold 0.
	runes  []rune
	styles []int
	// palette is indexed by styles. The style at index 0 is unset.
	palette []lipgloss.Style
}

func newCanvas(width, height int) *canvas {
	c := &canvas{
		width:   max(width, 0),
		height:  max(height, 0),
		palette: []lipgloss.Style{{}},
	}
	n := c.width * c.height
	c.runes = make([]rune, n)
	c.styles = make([]int, n)
	for i := range c.runes {
		c.runes[i] = ' '
	}
	return c
}

// render draws the widgets under root into a width by height grid.
func render(root widget.Widget, width, height int) string {
	c := newCanvas(width, height)
	c.drawChildren(root, 0, 0)
	return c.String()
}

func (c *canvas) drawChildren(w widget.Widget, x, y int) {
	for _, child := range widget.Children(w) {
		cw, ok := child.(*cell)
		if !ok {
			continue
		}
		r := cw.frame
		x0, y0 := x+round(r.Min.X), y+round(r.Min.Y)
		x1, y1 := x+round(r.Max.X), y+round(r.Max.Y)
		c.draw(cw, x0, y0, x1, y1)
		c.drawChildren(cw, x0, y0)
	}
}

func (c *canvas) draw(w *cell, x0, y0, x1, y1 int) {
	style := 0
	if w.styled {
		c.palette = append(c.palette, w.style)
		style = len(c.palette) - 1
	}
	if w.class == widget.ClassButton {
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				c.set(x, y, ' ', style)
			}
		}
	}
	if w.text == "" {
		return
	}
	inset := 0
	if w.class == widget.ClassButton {
		inset = 1
	}
	lines := text.Wrap(w.text, x1-x0-2*inset)
	for i, l := range lines {
		y := y0 + i
		if y >= y1 {
			break
		}
		x := x0 + inset
		for _, r := range l {
			rw := runewidth.RuneWidth(r)
			if x+rw > x1-inset {
				break
			}
			c.set(x, y, r, style)
			for j := 1; j < rw; j++ {
				c.set(x+j, y, 0, style)
			}
			x += rw
		}
	}
}

func (c *canvas) set(x, y int, r rune, style int) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	i := y*c.width + x
	c.runes[i] = r
	c.styles[i] = style
}

// String renders the grid, one line per row, styling runs of cells
// with the same style.
func (c *canvas) String() string {
	var b strings.Builder
	var run strings.Builder
	for y := 0; y < c.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		cur := 0
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if cur == 0 {
				b.WriteString(run.String())
			} else {
				b.WriteString(c.palette[cur].Render(run.String()))
			}
			run.Reset()
		}
		for x := 0; x < c.width; x++ {
			i := y*c.width + x
			if s := c.styles[i]; s != cur {
				flush()
				cur = s
			}
			if r := c.runes[i]; r != 0 {
				run.WriteRune(r)
			}
		}
		flush()
	}
	return b.String()
}

func round(v float32) int {
	return int(math.Round(float64(v)))
}
