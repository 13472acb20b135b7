// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"runtime"
	"testing"

	"stackbox.org/component"
	"stackbox.org/f32"
	"stackbox.org/internal/thread"
	"stackbox.org/layout"
	"stackbox.org/widget"
)

type phase struct {
	name   string
	thread uint64
}

func TestPipelineThreads(t *testing.T) {
	if !thread.Supported() {
		t.Skip("thread identity unavailable on " + runtime.GOOS)
	}
	var mainID uint64
	Call(func() { mainID = thread.ID() })

	// phases is only appended to by one phase at a time.
	var phases []phase
	c := component.New(component.Record[int, struct{}]{},
		func(s component.Snapshot[int, struct{}]) layout.Node {
			phases = append(phases, phase{"compute", thread.ID()})
			return &layout.Label{
				Common: layout.Common{
					ReuseKey: "label",
					Configure: func(widget.Widget) {
						phases = append(phases, phase{"apply", thread.ID()})
					},
				},
				Text: "x",
			}
		})
	var h *Host
	Call(func() {
		h = newTestHost()
		h.view = widget.NewView(widget.ClassView)
		h.root = c
		h.RegisterComponent(c)
	})
	defer Call(func() { h.Close() })

	for i := 0; i < 100; i++ {
		phases = phases[:0]
		done := make(chan error, 1)
		var tasks Tasks
		Call(func() {
			tasks = h.MakeTasks(f32.Pt(100, 50), func(err error) { done <- err })
			tasks.Prepare()
			phases = append(phases, phase{"prepare", thread.ID()})
		})
		h.workers.Go(func() error {
			tasks.Compute()
			Run(tasks.Apply)
			return nil
		})
		if err := <-done; err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		if len(phases) != 3 {
			t.Fatalf("run %d: got phases %v, want prepare, compute, apply", i, phases)
		}
		for j, name := range []string{"prepare", "compute", "apply"} {
			p := phases[j]
			if p.name != name {
				t.Fatalf("run %d: phase %d is %s, want %s", i, j, p.name, name)
			}
			if onMain := p.thread == mainID; onMain != (name != "compute") {
				t.Errorf("run %d: %s ran on main thread: %v", i, name, onMain)
			}
		}
	}
}
