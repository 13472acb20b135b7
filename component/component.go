// SPDX-License-Identifier: Unlicense OR MIT

/*
Package component implements stateful components whose layouts are
computed off the main thread.

A component owns its current Record and replaces it on Update. Prepare
captures the records of a component tree on the main thread and returns
a Thunk computing the layout from the captured records only, so the
thunk may run on any goroutine while the main thread keeps updating the
live components.

Components report updates to their Owner, the parent component or the
host of the tree. Owner references are weak: a component never keeps
its owner alive and ignores an owner that went away.
*/
package component

import (
	"weak"

	"golang.org/x/exp/slices"
	"stackbox.org/internal/thread"
	"stackbox.org/layout"
)

// Component is a node of a component tree.
type Component interface {
	// Prepare captures the current record of the component and its
	// subcomponents. It must be called on the main thread.
	Prepare() Thunk
	// Attach sets the link to the owner of the component. A nil link
	// detaches the component.
	Attach(l *Link)
	// Owner returns the current owner, or nil.
	Owner() Owner
}

// Owner hosts components. All methods must be called on the main
// thread.
type Owner interface {
	RegisterComponent(c Component)
	RegisterComponents(cs ...Component)
	UnregisterComponent(c Component)
	// NotifyUpdateFromComponent reports that c installed a new
	// record.
	NotifyUpdateFromComponent(c Component)
}

// Thunk computes a layout from captured records. It is safe to call
// on any goroutine.
type Thunk func() layout.Node

// Link is the handle an Owner hands to the components it registers.
// The owner keeps the link alive; components only hold it weakly.
type Link struct {
	owner Owner
}

// Stateful is a component with state S and data D.
type Stateful[S, D any] struct {
	record     Record[S, D]
	makeLayout func(Snapshot[S, D]) layout.Node

	owner weak.Pointer[Link]
	link  *Link
}

// NewLink returns a link to o.
func NewLink(o Owner) *Link {
	return &Link{owner: o}
}

// Owner returns the owner of l, or nil for closed or nil links.
func (l *Link) Owner() Owner {
	if l == nil {
		return nil
	}
	return l.owner
}

// Close severs the link. Components attached to it are left without an
// owner.
func (l *Link) Close() {
	l.owner = nil
}

// PrepareRoot captures the tree rooted at c. It must be called on the
// main thread.
func PrepareRoot(c Component) Thunk {
	thread.MustMain("component: PrepareRoot")
	return c.Prepare()
}

// New returns a component with the initial record r. The makeLayout
// function computes the layout of a snapshot; it must only read the
// snapshot.
func New[S, D any](r Record[S, D], makeLayout func(Snapshot[S, D]) layout.Node) *Stateful[S, D] {
	c := &Stateful[S, D]{record: r, makeLayout: makeLayout}
	c.link = NewLink(c)
	for _, sc := range r.Subcomponents {
		sc.Attach(c.link)
	}
	return c
}

// Record returns the current record. It must be called on the main
// thread.
func (c *Stateful[S, D]) Record() Record[S, D] {
	thread.MustMain("component: Record")
	return c.record
}

// Update replaces the current record with r, registers added and
// unregisters removed subcomponents and notifies the owner. It must be
// called on the main thread.
func (c *Stateful[S, D]) Update(r Record[S, D]) {
	thread.MustMain("component: Update")
	old := c.record.Subcomponents
	c.record = r
	for _, sc := range old {
		if !slices.Contains(r.Subcomponents, sc) {
			c.UnregisterComponent(sc)
		}
	}
	for _, sc := range r.Subcomponents {
		if !slices.Contains(old, sc) {
			c.RegisterComponent(sc)
		}
	}
	if o := c.Owner(); o != nil {
		o.NotifyUpdateFromComponent(c)
	}
}

// UpdateState is shorthand for Update(Record().WithState(s)).
func (c *Stateful[S, D]) UpdateState(s S) {
	c.Update(c.record.WithState(s))
}

// UpdateData is shorthand for Update(Record().WithData(d)).
func (c *Stateful[S, D]) UpdateData(d D) {
	c.Update(c.record.WithData(d))
}

func (c *Stateful[S, D]) Prepare() Thunk {
	thread.MustMain("component: Prepare")
	r := c.record
	subs := make([]Thunk, len(r.Subcomponents))
	for i, sc := range r.Subcomponents {
		subs[i] = sc.Prepare()
	}
	makeLayout := c.makeLayout
	return func() layout.Node {
		snap := Snapshot[S, D]{State: r.State, Data: r.Data}
		if len(subs) > 0 {
			snap.Layouts = make([]layout.Node, len(subs))
			for i, t := range subs {
				snap.Layouts[i] = t()
			}
		}
		return makeLayout(snap)
	}
}

func (c *Stateful[S, D]) Attach(l *Link) {
	if l == nil {
		c.owner = weak.Pointer[Link]{}
		return
	}
	c.owner = weak.Make(l)
}

func (c *Stateful[S, D]) Owner() Owner {
	return c.owner.Value().Owner()
}

func (c *Stateful[S, D]) RegisterComponent(sc Component) {
	thread.MustMain("component: RegisterComponent")
	sc.Attach(c.link)
}

func (c *Stateful[S, D]) RegisterComponents(cs ...Component) {
	for _, sc := range cs {
		c.RegisterComponent(sc)
	}
}

func (c *Stateful[S, D]) UnregisterComponent(sc Component) {
	thread.MustMain("component: UnregisterComponent")
	if sc.Owner() == Owner(c) {
		sc.Attach(nil)
	}
}

// NotifyUpdateFromComponent forwards the update of a subcomponent to
// the owner of c.
func (c *Stateful[S, D]) NotifyUpdateFromComponent(sc Component) {
	thread.MustMain("component: NotifyUpdateFromComponent")
	if o := c.Owner(); o != nil {
		o.NotifyUpdateFromComponent(c)
	}
}
