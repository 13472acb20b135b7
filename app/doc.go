// SPDX-License-Identifier: Unlicense OR MIT

/*
Package app runs component trees and applies their layouts to widgets.

# Main Thread

Components, widgets and the Prepare and Apply phases of a layout pass
belong to the main thread: a goroutine locked to an OS thread, started
on first use of Run or Call. Until then, any goroutine counts as the
main thread.

	app.Call(func() {
		h := app.NewHost(app.WithSize(f32.Pt(320, 480)))
		h.HostIn(root)
		h.SetComponent(c)
	})

# Layout Passes

A Host computes a pass in three phases. Prepare captures the records
of the component tree on the main thread. Compute turns them into a
layout and arranges it on a worker. Apply sets the frames of the
widgets on the main thread, creating and reusing widgets by reuse key.

Updates arriving while a pass is in flight never alter it; the pass
finishes against the records it captured and a fresh pass follows.
*/
package app
