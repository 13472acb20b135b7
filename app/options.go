// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"log/slog"

	"stackbox.org/f32"
	"stackbox.org/text"
	"stackbox.org/unit"
	"stackbox.org/widget"
)

// Option configures a Host.
type Option func(*Host)

// Stage of a Host in a layout pass.
type Stage uint32

const (
	// StageIdle is the Stage of a Host without a pass in flight.
	StageIdle Stage = iota
	// StagePreparing is the Stage while records are captured.
	StagePreparing
	// StageComputing is the Stage between Prepare and Apply, while
	// the layout is computed on a worker.
	StageComputing
	// StageApplying is the Stage while frames are applied to
	// widgets.
	StageApplying
)

// Direction is the layout direction of a Host.
type Direction uint8

const (
	// LTR is the default, left to right, direction.
	LTR Direction = iota
	// RTL mirrors arrangements horizontally.
	RTL
)

// Policy controls the passes scheduled by updates arriving while a
// pass is in flight.
type Policy uint8

const (
	// Coalesce runs a single fresh pass for any number of updates.
	Coalesce Policy = iota
	// Queue runs a fresh pass per update.
	Queue
)

// WithFactory sets the factory creating widgets. The default creates
// widget.Views.
func WithFactory(f widget.Factory) Option {
	return func(h *Host) {
		h.factory = f
	}
}

// WithWorkers sets the workers computing layouts. The Host doesn't
// close them. By default a Host owns a single worker.
func WithWorkers(w *Workers) Option {
	return func(h *Host) {
		h.workers = w
	}
}

// WithMetric sets the metric converting frames to pixels.
func WithMetric(m unit.Metric) Option {
	return func(h *Host) {
		h.metric = m
	}
}

// WithText sets the provider measuring text. The default is
// text.Default.
func WithText(p text.Provider) Option {
	return func(h *Host) {
		h.text = p
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(h *Host) {
		h.log = l
	}
}

// WithDirection sets the layout direction.
func WithDirection(d Direction) Option {
	return func(h *Host) {
		h.dir = d
	}
}

// WithPolicy sets the scheduling policy.
func WithPolicy(p Policy) Option {
	return func(h *Host) {
		h.policy = p
	}
}

// WithErrorHandler sets a function receiving the errors of scheduled
// passes on the main thread.
func WithErrorHandler(f func(error)) Option {
	return func(h *Host) {
		h.onError = f
	}
}

// WithApplied sets a function called on the main thread after every
// pass applied to the widgets.
func WithApplied(f func()) Option {
	return func(h *Host) {
		h.onApplied = f
	}
}

// WithSize sets the initial available size, in dp.
func WithSize(size f32.Point) Option {
	return func(h *Host) {
		h.size = size
	}
}

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "StageIdle"
	case StagePreparing:
		return "StagePreparing"
	case StageComputing:
		return "StageComputing"
	case StageApplying:
		return "StageApplying"
	default:
		panic("unexpected Stage value")
	}
}

func (d Direction) String() string {
	switch d {
	case LTR:
		return "LTR"
	case RTL:
		return "RTL"
	default:
		panic("unexpected Direction value")
	}
}
