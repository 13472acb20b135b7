// SPDX-License-Identifier: Unlicense OR MIT

package component

import (
	"golang.org/x/exp/slices"
	"stackbox.org/layout"
)

// Record is an immutable snapshot of the state, data and
// subcomponents of a component. Records are replaced, never modified:
// the With methods return modified copies and leave the receiver
// untouched. State and Data must be treated as values; a record may be
// read on a worker while the main thread installs its successor.
type Record[S, D any] struct {
	State         S
	Data          D
	Subcomponents []Component
}

// Snapshot is what a layout function sees of a record: its state and
// data, and the layouts of its subcomponents computed for the same
// pass, in subcomponent order.
type Snapshot[S, D any] struct {
	State   S
	Data    D
	Layouts []layout.Node
}

// WithState returns a copy of r with state s.
func (r Record[S, D]) WithState(s S) Record[S, D] {
	r.State = s
	return r
}

// WithData returns a copy of r with data d.
func (r Record[S, D]) WithData(d D) Record[S, D] {
	r.Data = d
	return r
}

// WithSubcomponents returns a copy of r with the given subcomponents.
func (r Record[S, D]) WithSubcomponents(cs ...Component) Record[S, D] {
	r.Subcomponents = slices.Clone(cs)
	return r
}

// WithSubcomponent returns a copy of r with c appended to its
// subcomponents.
func (r Record[S, D]) WithSubcomponent(c Component) Record[S, D] {
	r.Subcomponents = append(slices.Clip(r.Subcomponents), c)
	return r
}

// WithoutSubcomponent returns a copy of r without c.
func (r Record[S, D]) WithoutSubcomponent(c Component) Record[S, D] {
	r.Subcomponents = slices.DeleteFunc(slices.Clone(r.Subcomponents), func(sc Component) bool {
		return sc == c
	})
	return r
}
