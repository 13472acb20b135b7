// SPDX-License-Identifier: Unlicense OR MIT

package widget

// Recycler reuses widgets across layout passes.
//
// A pass starts with Begin. Make returns a widget kept from the
// previous pass, or creates one. A widget is reused for the same reuse
// key and class. Failing that, any widget of the same reuse group and
// class not yet reused in the pass is taken. Widgets with neither a key
// nor a group are never reused. Purge ends the pass and unmounts every
// widget of the previous pass that was not reused. Abort ends the pass
// and restores the widgets of the previous pass.
//
// Make never mounts nor unmounts widgets.
//
// A Recycler must only be used on the main thread.
type Recycler struct {
	factory Factory

	// live holds the widgets of the last completed pass, or of the
	// pass in progress.
	live []entry
	prev []entry

	// Indexes of prev, valid during a pass.
	byKey   map[string]Widget
	byGroup map[string][]Widget
	used    map[Widget]bool

	created int
}

type entry struct {
	w          Widget
	key, group string
}

// NewRecycler returns a Recycler creating widgets with f.
func NewRecycler(f Factory) *Recycler {
	return &Recycler{
		factory: f,
		byKey:   make(map[string]Widget),
		byGroup: make(map[string][]Widget),
		used:    make(map[Widget]bool),
	}
}

// Begin starts a pass.
func (r *Recycler) Begin() {
	r.prev, r.live = r.live, nil
	clear(r.byKey)
	clear(r.byGroup)
	clear(r.used)
	for _, e := range r.prev {
		if e.key != "" {
			if _, dup := r.byKey[e.key]; !dup {
				r.byKey[e.key] = e.w
			}
		}
		if e.group != "" {
			r.byGroup[e.group] = append(r.byGroup[e.group], e.w)
		}
	}
}

// Make returns a widget of class for a node with the given reuse key
// and group, either of which may be empty. A key used more than once
// in a pass behaves as if it were empty after its first use.
func (r *Recycler) Make(key, group, class string) (Widget, error) {
	if w := r.reuse(key, group, class); w != nil {
		r.used[w] = true
		r.live = append(r.live, entry{w: w, key: key, group: group})
		return w, nil
	}
	w, err := r.factory.NewWidget(class)
	if err != nil {
		return nil, err
	}
	r.created++
	r.live = append(r.live, entry{w: w, key: key, group: group})
	return w, nil
}

func (r *Recycler) reuse(key, group, class string) Widget {
	if key != "" {
		if w, ok := r.byKey[key]; ok {
			delete(r.byKey, key)
			if !r.used[w] && w.Class() == class {
				return w
			}
		}
	}
	if group == "" {
		return nil
	}
	pool := r.byGroup[group]
	for i, w := range pool {
		if !r.used[w] && w.Class() == class {
			r.byGroup[group] = append(pool[:i:i], pool[i+1:]...)
			return w
		}
	}
	return nil
}

// Purge ends a pass, unmounting and returning the widgets of the
// previous pass that were not reused, in the order they were made.
func (r *Recycler) Purge() []Widget {
	var removed []Widget
	for _, e := range r.prev {
		if !r.used[e.w] {
			RemoveFromParent(e.w)
			removed = append(removed, e.w)
		}
	}
	r.endPass()
	return removed
}

// Abort ends a pass as if it never started. Widgets created by the
// pass are dropped.
func (r *Recycler) Abort() {
	r.live = r.prev
	r.endPass()
}

func (r *Recycler) endPass() {
	r.prev = nil
	clear(r.byKey)
	clear(r.byGroup)
	clear(r.used)
}

// Live returns the widget made for key by the last pass.
func (r *Recycler) Live(key string) (Widget, bool) {
	for _, e := range r.live {
		if e.key == key {
			return e.w, true
		}
	}
	return nil, false
}

// Len returns the number of widgets tracked.
func (r *Recycler) Len() int {
	return len(r.live) + len(r.prev) - len(r.used)
}

// Created returns the number of widgets created so far.
func (r *Recycler) Created() int {
	return r.created
}
