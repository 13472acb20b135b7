// SPDX-License-Identifier: Unlicense OR MIT

package widget_test

import (
	"errors"
	"testing"

	"stackbox.org/widget"
)

func TestAddChild(t *testing.T) {
	a, b := widget.NewView(widget.ClassView), widget.NewView(widget.ClassView)
	c := widget.NewView(widget.ClassLabel)
	widget.AddChild(a, c)
	if p := widget.Parent(c); p != widget.Widget(a) {
		t.Fatalf("parent: got %v, want %v", p, a)
	}
	widget.AddChild(b, c)
	if n := len(widget.Children(a)); n != 0 {
		t.Errorf("old parent has %d children, want 0", n)
	}
	if p := widget.Parent(c); p != widget.Widget(b) {
		t.Errorf("parent: got %v, want %v", p, b)
	}
	widget.RemoveFromParent(c)
	widget.RemoveFromParent(c)
	if widget.Parent(c) != nil || len(widget.Children(b)) != 0 {
		t.Error("widget still mounted after RemoveFromParent")
	}
}

func TestViewsUnknownClass(t *testing.T) {
	_, err := widget.Views.NewWidget("slider")
	if !errors.Is(err, widget.ErrUnknownClass) {
		t.Errorf("got error %v, want ErrUnknownClass", err)
	}
}

func TestRecyclerReuse(t *testing.T) {
	root := widget.NewView(widget.ClassView)
	r := widget.NewRecycler(widget.Views)
	pass := func(keys ...string) []widget.Widget {
		r.Begin()
		var ws []widget.Widget
		for _, k := range keys {
			w, err := r.Make(k, "", widget.ClassLabel)
			if err != nil {
				t.Fatal(err)
			}
			widget.AddChild(root, w)
			ws = append(ws, w)
		}
		return ws
	}
	first := pass("a", "b", "c")
	if got := r.Purge(); len(got) != 0 {
		t.Fatalf("first pass purged %d widgets", len(got))
	}
	created := r.Created()
	second := pass("a", "b", "c")
	r.Purge()
	if n := r.Created() - created; n != 0 {
		t.Errorf("identical pass created %d widgets, want 0", n)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("widget %d was not reused", i)
		}
	}
	pass("a", "c")
	removed := r.Purge()
	if len(removed) != 1 || removed[0] != second[1] {
		t.Fatalf("purged %v, want exactly the widget for key b", removed)
	}
	if widget.Parent(second[1]) != nil {
		t.Error("purged widget is still mounted")
	}
}

func TestRecyclerUnkeyed(t *testing.T) {
	r := widget.NewRecycler(widget.Views)
	r.Begin()
	a, _ := r.Make("", "", widget.ClassView)
	r.Purge()
	r.Begin()
	b, _ := r.Make("", "", widget.ClassView)
	removed := r.Purge()
	if a == b {
		t.Error("unkeyed widget was reused")
	}
	if len(removed) != 1 || removed[0] != a {
		t.Errorf("purged %v, want the previous unkeyed widget", removed)
	}
}

func TestRecyclerClassChange(t *testing.T) {
	r := widget.NewRecycler(widget.Views)
	r.Begin()
	a, _ := r.Make("k", "", widget.ClassLabel)
	r.Purge()
	r.Begin()
	b, _ := r.Make("k", "", widget.ClassButton)
	removed := r.Purge()
	if a == b || len(removed) != 1 || removed[0] != a {
		t.Errorf("class change: reused %v, purged %v", a == b, removed)
	}
}

func TestRecyclerGroup(t *testing.T) {
	r := widget.NewRecycler(widget.Views)
	r.Begin()
	a, _ := r.Make("", "row", widget.ClassLabel)
	b, _ := r.Make("", "row", widget.ClassLabel)
	r.Purge()
	created := r.Created()

	r.Begin()
	btn, _ := r.Make("", "row", widget.ClassButton)
	c, _ := r.Make("", "row", widget.ClassLabel)
	removed := r.Purge()
	if c != a {
		t.Error("grouped widget was not reused")
	}
	if btn == a || btn == b {
		t.Error("grouped widget reused for another class")
	}
	if n := r.Created() - created; n != 1 {
		t.Errorf("created %d widgets, want 1", n)
	}
	if len(removed) != 1 || removed[0] != b {
		t.Errorf("purged %v, want the unused grouped widget", removed)
	}
}

func TestRecyclerKeyBeforeGroup(t *testing.T) {
	r := widget.NewRecycler(widget.Views)
	r.Begin()
	a, _ := r.Make("a", "row", widget.ClassLabel)
	b, _ := r.Make("", "row", widget.ClassLabel)
	r.Purge()

	r.Begin()
	// The unkeyed node takes the first free widget of the group, so the
	// keyed one falls back to the group as well.
	x, _ := r.Make("", "row", widget.ClassLabel)
	y, _ := r.Make("a", "row", widget.ClassLabel)
	r.Purge()
	if x != a || y != b {
		t.Errorf("got %p, %p, want %p, %p", x, y, a, b)
	}

	r.Begin()
	y2, _ := r.Make("a", "row", widget.ClassLabel)
	r.Purge()
	if y2 != y {
		t.Error("widget of key a was not reused")
	}
}

func TestRecyclerAbort(t *testing.T) {
	fail := errors.New("boom")
	n := 0
	r := widget.NewRecycler(widget.FactoryFunc(func(class string) (widget.Widget, error) {
		n++
		if n > 3 {
			return nil, fail
		}
		return widget.NewView(class), nil
	}))
	r.Begin()
	a, _ := r.Make("a", "", widget.ClassView)
	b, _ := r.Make("b", "", widget.ClassView)
	r.Purge()
	created := r.Created()

	r.Begin()
	r.Make("a", "", widget.ClassView)
	r.Make("x", "", widget.ClassView)
	if _, err := r.Make("c", "", widget.ClassView); !errors.Is(err, fail) {
		t.Fatalf("got error %v, want %v", err, fail)
	}
	r.Abort()
	if w, _ := r.Live("a"); w != a {
		t.Error("aborted pass lost widget a")
	}
	if w, _ := r.Live("b"); w != b {
		t.Error("aborted pass lost widget b")
	}
	if _, ok := r.Live("x"); ok {
		t.Error("aborted pass kept the widget it created")
	}
	if got := r.Len(); got != 2 {
		t.Errorf("tracking %d widgets, want 2", got)
	}
	if r.Created()-created != 1 {
		t.Errorf("created %d widgets, want 1", r.Created()-created)
	}

	r.Begin()
	if w, _ := r.Make("b", "", widget.ClassView); w != b {
		t.Error("widget b was not reused after an aborted pass")
	}
}

func TestArrange(t *testing.T) {
	root := widget.NewView(widget.ClassView)
	other := widget.NewView(widget.ClassView)
	a, b, c := widget.NewView(widget.ClassLabel), widget.NewView(widget.ClassLabel), widget.NewView(widget.ClassLabel)
	widget.AddChild(root, a)
	widget.AddChild(root, b)
	widget.AddChild(other, c)

	widget.Arrange(root, []widget.Widget{c, b})
	kids := widget.Children(root)
	if len(kids) != 3 || kids[0] != widget.Widget(c) || kids[1] != widget.Widget(b) || kids[2] != widget.Widget(a) {
		t.Errorf("got children %v, want c, b, a", kids)
	}
	if widget.Parent(c) != widget.Widget(root) || len(widget.Children(other)) != 0 {
		t.Error("c was not moved under root")
	}
	widget.RemoveFromParent(a)
	if kids := widget.Children(root); len(kids) != 2 {
		t.Errorf("got %d children after removal, want 2", len(kids))
	}
}
