// SPDX-License-Identifier: Unlicense OR MIT

// Package widget defines the live elements layouts are applied to.
// Widgets are created by a Factory, recycled across layout passes by a
// Recycler and must only be touched on the main thread.
package widget
