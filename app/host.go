// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"stackbox.org/component"
	"stackbox.org/f32"
	"stackbox.org/internal/logging"
	"stackbox.org/internal/thread"
	"stackbox.org/layout"
	"stackbox.org/text"
	"stackbox.org/unit"
	"stackbox.org/widget"
)

// ErrClosed is returned for passes of a closed Host.
var ErrClosed = errors.New("app: host closed")

// Host lays out a component tree into the widgets under a root widget.
// Host implements component.Owner for the root component. Except for
// Stage, its methods must be called on the main thread.
type Host struct {
	factory    widget.Factory
	workers    *Workers
	ownWorkers bool
	metric     unit.Metric
	text       text.Provider
	log        *slog.Logger
	dir        Direction
	policy     Policy
	onError    func(error)
	onApplied  func()

	link     *component.Link
	recycler *widget.Recycler
	root     component.Component
	view     widget.Widget
	size     f32.Point
	insets   layout.Insets

	stage atomic.Uint32
	// busy is set while a scheduled pass is in flight.
	busy bool
	// pending counts the passes to run after the one in flight.
	pending int
	// gen invalidates scheduled passes overtaken by LayoutSync.
	gen    uint64
	closed bool
}

// Tasks are the phases of a layout pass. Prepare and Apply must be
// called on the main thread and Compute off it, in that order and at
// most once each.
type Tasks struct {
	Prepare func()
	Compute func()
	Apply   func()
}

// pass is the state handed from one phase to the next.
type pass struct {
	size   f32.Point
	insets layout.Insets
	gen    uint64
	start  time.Time

	thunk component.Thunk
	arr   layout.Arrangement
	// laidOut is set when arr holds the root arrangement.
	laidOut bool

	prepared, computed bool
	err                error
}

// NewHost returns a Host configured by opts.
func NewHost(opts ...Option) *Host {
	h := new(Host)
	for _, o := range opts {
		o(h)
	}
	if h.factory == nil {
		h.factory = widget.Views
	}
	if h.workers == nil {
		h.workers = NewWorkers(1)
		h.ownWorkers = true
	}
	if h.text == nil {
		h.text = text.Default()
	}
	if h.log == nil {
		h.log = logging.New("app")
	}
	h.link = component.NewLink(h)
	h.recycler = widget.NewRecycler(h.factory)
	return h
}

// HostIn sets the widget the layouts are mounted under.
func (h *Host) HostIn(root widget.Widget) {
	thread.MustMain("app: HostIn")
	h.view = root
	h.invalidate()
}

// SetComponent replaces the root component. A nil component clears
// the widgets of the previous one.
func (h *Host) SetComponent(c component.Component) {
	thread.MustMain("app: SetComponent")
	if h.root != nil {
		h.UnregisterComponent(h.root)
	}
	h.root = c
	if c != nil {
		h.RegisterComponent(c)
	}
	h.invalidate()
}

// SetInsets sets the insets applied around the root layout, such as
// safe area insets.
func (h *Host) SetInsets(in layout.Insets) {
	thread.MustMain("app: SetInsets")
	if h.insets == in {
		return
	}
	h.insets = in
	h.invalidate()
}

// SetSize sets the size available to the root layout, in dp.
func (h *Host) SetSize(size f32.Point) {
	thread.MustMain("app: SetSize")
	if h.size == size {
		return
	}
	h.size = size
	h.invalidate()
}

// Stage returns the stage of the latest pass. Stage is safe for
// concurrent use.
func (h *Host) Stage() Stage {
	return Stage(h.stage.Load())
}

// RegisterComponent implements component.Owner.
func (h *Host) RegisterComponent(c component.Component) {
	thread.MustMain("app: RegisterComponent")
	c.Attach(h.link)
}

// RegisterComponents implements component.Owner.
func (h *Host) RegisterComponents(cs ...component.Component) {
	for _, c := range cs {
		h.RegisterComponent(c)
	}
}

// UnregisterComponent implements component.Owner.
func (h *Host) UnregisterComponent(c component.Component) {
	thread.MustMain("app: UnregisterComponent")
	if c.Owner() == component.Owner(h) {
		c.Attach(nil)
	}
}

// NotifyUpdateFromComponent implements component.Owner by scheduling
// a pass.
func (h *Host) NotifyUpdateFromComponent(c component.Component) {
	thread.MustMain("app: NotifyUpdateFromComponent")
	h.invalidate()
}

// MakeTasks returns the tasks of a pass laying out the current root
// component within size. The done function is called on the main
// thread by Apply, with the error of the pass, if any.
func (h *Host) MakeTasks(size f32.Point, done func(err error)) Tasks {
	_, t := h.makeTasks(size, done)
	return t
}

func (h *Host) makeTasks(size f32.Point, done func(err error)) (*pass, Tasks) {
	p := &pass{size: size}
	t := Tasks{
		Prepare: func() {
			thread.MustMain("app: Prepare")
			if p.prepared {
				panic("app: Prepare called twice")
			}
			p.prepared = true
			h.prepare(p)
		},
		Compute: func() {
			thread.MustNotMain("app: Compute")
			if !p.prepared || p.computed {
				panic("app: Compute called out of order")
			}
			p.computed = true
			h.compute(p)
		},
		Apply: func() {
			thread.MustMain("app: Apply")
			if !p.computed {
				panic("app: Apply called before Compute")
			}
			err := h.applyPass(p)
			if done != nil {
				done(err)
			}
		},
	}
	return p, t
}

func (h *Host) prepare(p *pass) {
	h.stage.Store(uint32(StagePreparing))
	p.start = time.Now()
	p.gen = h.gen
	p.insets = h.insets
	if h.closed {
		p.err = ErrClosed
	} else if h.root != nil {
		p.thunk = component.PrepareRoot(h.root)
	}
	h.stage.Store(uint32(StageComputing))
}

func (h *Host) compute(p *pass) {
	if p.err != nil || p.thunk == nil {
		return
	}
	n := p.thunk()
	if n == nil {
		return
	}
	if p.insets != (layout.Insets{}) {
		n = &layout.Inset{Insets: p.insets, Child: n}
	}
	e := layout.Engine{Text: h.text, Metric: h.metric}
	sz := e.Measure(n, layout.Loose(p.size))
	bounds := f32.Rectangle{Max: p.size}
	if bounds.Max.X == f32.Inf {
		bounds.Max.X = sz.X
	}
	if bounds.Max.Y == f32.Inf {
		bounds.Max.Y = sz.Y
	}
	frame := layout.Props(n).Alignment.Position(sz, bounds)
	p.arr = e.Arrange(n, frame.Min, frame.Size())
	p.laidOut = true
}

func (h *Host) applyPass(p *pass) error {
	defer h.stage.Store(uint32(StageIdle))
	if p.err != nil {
		return p.err
	}
	if h.closed {
		return ErrClosed
	}
	if p.gen != h.gen {
		h.log.Debug("dropping overtaken pass")
		return nil
	}
	h.stage.Store(uint32(StageApplying))
	var arr *layout.Arrangement
	if p.laidOut {
		arr = &p.arr
		if h.dir == RTL {
			width := p.size.X
			if width == f32.Inf {
				width = arr.Frame.Max.X
			}
			m := arr.Mirror(width)
			arr = &m
		}
	}
	if err := h.apply(arr); err != nil {
		err = fmt.Errorf("app: apply: %w", err)
		h.log.Error("layout pass failed", "error", err)
		return err
	}
	h.log.Debug("layout pass applied", "size", p.size, "widgets", h.recycler.Len(), "elapsed", time.Since(p.start))
	if h.onApplied != nil {
		h.onApplied()
	}
	return nil
}

// apply mounts the widgets of arr under the hosted view. A nil arr
// removes every widget. Widgets are made for the whole arrangement
// before any is touched, so a failed apply leaves the previous pass on
// screen.
func (h *Host) apply(arr *layout.Arrangement) error {
	r := h.recycler
	r.Begin()
	m := &mounter{h: h, kids: make(map[widget.Widget][]widget.Widget)}
	if arr != nil && h.view != nil {
		if err := m.resolve(h.view, f32.Point{}, f32.Point{}, arr); err != nil {
			r.Abort()
			return err
		}
	}
	m.commit()
	if removed := r.Purge(); len(removed) > 0 {
		h.log.Debug("purged widgets", "count", len(removed))
	}
	return nil
}

// mounter collects the widgets of an arrangement in depth-first order.
type mounter struct {
	h      *Host
	mounts []mount
	// parents lists every parent once, ancestors first.
	parents []widget.Widget
	kids    map[widget.Widget][]widget.Widget
}

type mount struct {
	w         widget.Widget
	frame     f32.Rectangle
	configure func(widget.Widget)
}

// resolve makes the widgets of a and its descendants. The origin is
// the absolute position of the parent arrangement, base the absolute
// position of parent.
func (m *mounter) resolve(parent widget.Widget, base, origin f32.Point, a *layout.Arrangement) error {
	frame := a.Frame.Add(origin)
	if layout.NeedsWidget(a.Node) {
		props := layout.Props(a.Node)
		w, err := m.h.recycler.Make(props.ReuseKey, props.ReuseGroup, a.Node.WidgetClass())
		if err != nil {
			return err
		}
		m.mounts = append(m.mounts, mount{
			w:         w,
			frame:     m.h.metric.Rect(frame.Sub(base)),
			configure: props.Configure,
		})
		if _, ok := m.kids[parent]; !ok {
			m.parents = append(m.parents, parent)
		}
		m.kids[parent] = append(m.kids[parent], w)
		parent, base = w, frame.Min
	}
	for i := range a.Children {
		if err := m.resolve(parent, base, frame.Min, &a.Children[i]); err != nil {
			return err
		}
	}
	return nil
}

// commit configures the widgets and mounts them in arrangement order.
func (m *mounter) commit() {
	for _, mt := range m.mounts {
		mt.w.SetFrame(mt.frame)
		if mt.configure != nil {
			mt.configure(mt.w)
		}
	}
	for _, p := range m.parents {
		widget.Arrange(p, m.kids[p])
	}
}

// LayoutSync runs a pass within size and waits for it, superseding
// any scheduled pass in flight. It returns the root arrangement, in
// dp.
func (h *Host) LayoutSync(size f32.Point) (layout.Arrangement, error) {
	thread.MustMain("app: LayoutSync")
	if h.closed {
		return layout.Arrangement{}, ErrClosed
	}
	h.gen++
	h.pending = 0
	var err error
	p, t := h.makeTasks(size, func(e error) { err = e })
	t.Prepare()
	computed := make(chan struct{})
	h.workers.Go(func() error {
		defer close(computed)
		t.Compute()
		return nil
	})
	<-computed
	t.Apply()
	return p.arr, err
}

// invalidate schedules a pass for the current state.
func (h *Host) invalidate() {
	if h.closed {
		return
	}
	if h.busy {
		switch h.policy {
		case Queue:
			h.pending++
		default:
			h.pending = 1
		}
		h.log.Debug("pass in flight, scheduling another", "pending", h.pending)
		return
	}
	h.schedule()
}

func (h *Host) schedule() {
	h.busy = true
	t := h.MakeTasks(h.size, h.finish)
	t.Prepare()
	h.workers.Submit(func() error {
		t.Compute()
		Run(t.Apply)
		return nil
	})
}

func (h *Host) finish(err error) {
	h.busy = false
	if err != nil && !errors.Is(err, ErrClosed) && h.onError != nil {
		h.onError(err)
	}
	if h.closed || h.pending == 0 {
		return
	}
	h.pending--
	h.schedule()
}

// Close detaches the root component and waits for the passes being
// computed. Passes applied after Close fail with ErrClosed. Close
// returns ErrClosed if the Host was already closed.
func (h *Host) Close() error {
	thread.MustMain("app: Close")
	if h.closed {
		return ErrClosed
	}
	h.closed = true
	h.pending = 0
	h.link.Close()
	h.root = nil
	if h.ownWorkers {
		return h.workers.Close()
	}
	return nil
}
