// SPDX-License-Identifier: Unlicense OR MIT

package component_test

import (
	"runtime"
	"strconv"
	"testing"

	"stackbox.org/component"
	"stackbox.org/internal/thread"
	"stackbox.org/layout"
)

type recorder struct {
	link     *component.Link
	notified []component.Component
}

func newRecorder() *recorder {
	r := new(recorder)
	r.link = component.NewLink(r)
	return r
}

func (r *recorder) RegisterComponent(c component.Component) {
	c.Attach(r.link)
}

func (r *recorder) RegisterComponents(cs ...component.Component) {
	for _, c := range cs {
		r.RegisterComponent(c)
	}
}

func (r *recorder) UnregisterComponent(c component.Component) {
	c.Attach(nil)
}

func (r *recorder) NotifyUpdateFromComponent(c component.Component) {
	r.notified = append(r.notified, c)
}

type counter = component.Stateful[int, string]

func newCounter(n int, subs ...component.Component) *counter {
	r := component.Record[int, string]{State: n, Data: "count"}.WithSubcomponents(subs...)
	return component.New(r, func(s component.Snapshot[int, string]) layout.Node {
		return &layout.Stack{
			Common:   layout.Common{ReuseKey: s.Data + strconv.Itoa(s.State)},
			Children: s.Layouts,
		}
	})
}

func reuseKey(n layout.Node) string {
	return layout.Props(n).ReuseKey
}

func TestSnapshotIsolation(t *testing.T) {
	c := newCounter(1)
	thunk := component.PrepareRoot(c)
	c.UpdateState(2)
	if got := reuseKey(thunk()); got != "count1" {
		t.Errorf("thunk computed %q after update, want the prepared %q", got, "count1")
	}
	if got := reuseKey(c.Prepare()()); got != "count2" {
		t.Errorf("fresh thunk computed %q, want %q", got, "count2")
	}
}

func TestSubcomponentLayouts(t *testing.T) {
	a, b := newCounter(10), newCounter(20)
	root := newCounter(0, a, b)
	thunk := root.Prepare()
	a.UpdateState(11)
	n := thunk().(*layout.Stack)
	if len(n.Children) != 2 {
		t.Fatalf("got %d child layouts, want 2", len(n.Children))
	}
	if k0, k1 := reuseKey(n.Children[0]), reuseKey(n.Children[1]); k0 != "count10" || k1 != "count20" {
		t.Errorf("child layouts %q, %q, want count10, count20", k0, k1)
	}
}

func TestUpdateRegisters(t *testing.T) {
	owner := newRecorder()
	child := newCounter(1)
	root := newCounter(0)
	owner.RegisterComponent(root)

	root.Update(root.Record().WithSubcomponent(child))
	if child.Owner() != component.Owner(root) {
		t.Fatal("added subcomponent not registered with its parent")
	}
	if len(owner.notified) != 1 || owner.notified[0] != component.Component(root) {
		t.Fatalf("owner notified %v, want root once", owner.notified)
	}

	child.UpdateState(2)
	if len(owner.notified) != 2 || owner.notified[1] != component.Component(root) {
		t.Fatalf("subcomponent update not propagated as root update: %v", owner.notified)
	}

	root.Update(root.Record().WithoutSubcomponent(child))
	if child.Owner() != nil {
		t.Fatal("removed subcomponent still has an owner")
	}
	before := len(owner.notified)
	child.UpdateState(3)
	if len(owner.notified) != before {
		t.Error("unregistered subcomponent still notifies")
	}
}

func TestInitialSubcomponentsRegistered(t *testing.T) {
	child := newCounter(1)
	root := newCounter(0, child)
	if child.Owner() != component.Owner(root) {
		t.Error("initial subcomponent not registered")
	}
}

func TestLinkClosed(t *testing.T) {
	owner := newRecorder()
	c := newCounter(0)
	owner.RegisterComponent(c)
	owner.link.Close()
	c.UpdateState(1)
	if len(owner.notified) != 0 || c.Owner() != nil {
		t.Error("closed owner still notified")
	}
}

func TestOwnerCollected(t *testing.T) {
	c := newCounter(0)
	func() {
		newRecorder().RegisterComponent(c)
	}()
	for i := 0; i < 10 && c.Owner() != nil; i++ {
		runtime.GC()
	}
	if c.Owner() != nil {
		t.Fatal("owner kept alive by its component")
	}
	// Must not fault.
	c.UpdateState(1)
}

func TestRecordCopies(t *testing.T) {
	a, b := newCounter(1), newCounter(2)
	r := component.Record[int, string]{State: 1, Subcomponents: make([]component.Component, 0, 4)}
	ra := r.WithSubcomponent(a)
	rb := r.WithSubcomponent(b)
	if ra.Subcomponents[0] != component.Component(a) || rb.Subcomponents[0] != component.Component(b) {
		t.Error("WithSubcomponent copies share storage")
	}
	rs := ra.WithState(5).WithData("x")
	if ra.State != 1 || ra.Data != "" || rs.State != 5 || rs.Data != "x" {
		t.Errorf("copies modified the original: %+v, %+v", ra, rs)
	}
	both := ra.WithSubcomponent(b)
	without := both.WithoutSubcomponent(a)
	if len(both.Subcomponents) != 2 || len(without.Subcomponents) != 1 || without.Subcomponents[0] != component.Component(b) {
		t.Errorf("WithoutSubcomponent: got %v from %v", without.Subcomponents, both.Subcomponents)
	}
}

func TestNotifyOffMainPanics(t *testing.T) {
	if !thread.Supported() {
		t.Skip("thread identity unavailable on " + runtime.GOOS)
	}
	parent := newCounter(0)
	parent.Attach(newRecorder().link)
	ready := make(chan struct{})
	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		thread.SetMain()
		close(ready)
		<-stop
		thread.ClearMain()
		close(done)
	}()
	<-ready
	defer func() {
		close(stop)
		<-done
	}()
	defer func() {
		if recover() == nil {
			t.Error("NotifyUpdateFromComponent off the main thread did not panic")
		}
	}()
	parent.NotifyUpdateFromComponent(newCounter(1))
}
