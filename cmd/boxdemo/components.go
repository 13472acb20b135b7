// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"stackbox.org/component"
	"stackbox.org/layout"
	"stackbox.org/widget"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	buttonStyle = lipgloss.NewStyle().Reverse(true)
	bulletStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type item struct {
	ID   int
	Text string
}

type (
	// screen lays out a title, its subcomponents and a row of key
	// hints. The data is the title.
	screen = component.Stateful[struct{}, string]
	// expandable is a text collapsed to two lines unless its state is
	// set.
	expandable = component.Stateful[bool, string]
	// itemList is a bulleted list of items.
	itemList = component.Stateful[[]item, struct{}]
)

// show returns a Configure function setting the text of a terminal
// widget.
func show(s string) func(widget.Widget) {
	return func(w widget.Widget) {
		if c, ok := w.(*cell); ok {
			c.text = s
			c.styled = false
		}
	}
}

// showStyled is like show but also sets the style.
func showStyled(s string, style lipgloss.Style) func(widget.Widget) {
	return func(w widget.Widget) {
		if c, ok := w.(*cell); ok {
			c.text = s
			c.style, c.styled = style, true
		}
	}
}

func newExpandable(text string) *expandable {
	return component.New(component.Record[bool, string]{State: true, Data: text},
		func(s component.Snapshot[bool, string]) layout.Node {
			l := &layout.Label{
				Common: layout.Common{ReuseKey: "body", Configure: show(s.Data)},
				Text:   s.Data,
			}
			if !s.State {
				l.MaxLines = 2
			}
			return l
		})
}

func newItemList(items []item) *itemList {
	return component.New(component.Record[[]item, struct{}]{State: items},
		func(s component.Snapshot[[]item, struct{}]) layout.Node {
			rows := make([]layout.Node, 0, len(s.State))
			for _, it := range s.State {
				key := "item/" + strconv.Itoa(it.ID)
				rows = append(rows, &layout.Stack{
					Axis:    layout.Horizontal,
					Spacing: 1,
					Children: []layout.Node{
						&layout.Label{
							Common: layout.Common{ReuseKey: key + "/bullet", Configure: showStyled("•", bulletStyle)},
							Text:   "•",
						},
						&layout.Label{
							Common: layout.Common{ReuseKey: key, Configure: show(it.Text)},
							Text:   it.Text,
						},
					},
				})
			}
			if len(rows) == 0 {
				rows = append(rows, &layout.Label{
					Common: layout.Common{ReuseKey: "empty", Configure: showStyled("No items", mutedStyle)},
					Text:   "No items",
				})
			}
			return &layout.Stack{Axis: layout.Vertical, Children: rows}
		})
}

var hints = []struct{ key, title string }{
	{"a", "add"},
	{"d", "delete"},
	{"space", "expand"},
	{"q", "quit"},
}

func newScreen(title string, body *expandable, list *itemList) *screen {
	r := component.Record[struct{}, string]{Data: title}.WithSubcomponents(body, list)
	return component.New(r, func(s component.Snapshot[struct{}, string]) layout.Node {
		var buttons []layout.Node
		for _, h := range hints {
			label := h.key + " " + h.title
			buttons = append(buttons, &layout.Button{
				Common:        layout.Common{ReuseKey: "hint/" + h.key, Configure: showStyled(label, buttonStyle)},
				Title:         label,
				ContentInsets: layout.Insets{Left: 1, Right: 1},
			})
		}
		grow := layout.Grows(0, 1)
		children := []layout.Node{
			&layout.Label{
				Common: layout.Common{ReuseKey: "title", Configure: showStyled(s.Data, titleStyle)},
				Text:   s.Data,
			},
		}
		if len(s.Layouts) == 2 {
			children = append(children,
				s.Layouts[0],
				&layout.Size{Flexibility: &grow, Child: s.Layouts[1]},
			)
		}
		children = append(children, &layout.Stack{
			Common:     layout.Common{Alignment: layout.TopLeading},
			Axis:       layout.Horizontal,
			Spacing:    1,
			AutoRotate: true,
			Children:   buttons,
		})
		return &layout.Inset{
			Insets: layout.Insets{Left: 1, Right: 1},
			Child: &layout.Stack{
				Axis:     layout.Vertical,
				Spacing:  1,
				Children: children,
			},
		}
	})
}
