// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"stackbox.org/f32"
	"stackbox.org/unit"
)

// Shaper measures text with a set of sfnt faces.
//
// If a font matches no registered face, Shaper falls back to the face
// with the closest style and weight of the default typeface, which is
// the typeface of the first registered face.
//
// Measurements are cached and re-used if possible.
type Shaper struct {
	// Metric converts font sizes from sp to dp.
	Metric unit.Metric

	mu    sync.Mutex
	def   Typeface
	faces []FontFace
	buf   sfnt.Buffer
	cache measureCache
}

var (
	defaultOnce   sync.Once
	defaultShaper *Shaper
)

// NewShaper returns a Shaper for the given faces.
func NewShaper(faces []FontFace) *Shaper {
	s := &Shaper{}
	for _, f := range faces {
		s.Register(f)
	}
	return s
}

// Default returns a shared Shaper of the Go fonts.
func Default() *Shaper {
	defaultOnce.Do(func() {
		defaultShaper = NewShaper(GoFonts())
	})
	return defaultShaper
}

// Register adds a face.
func (s *Shaper) Register(f FontFace) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.faces) == 0 {
		s.def = f.Font.Typeface
	}
	f.Font.Size = 0
	s.faces = append(s.faces, f)
}

// Measure implements Provider.
func (s *Shaper) Measure(p Params) f32.Point {
	if p.Text == "" {
		return f32.Point{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	face := s.faceFor(p.Font)
	if face == nil {
		return f32.Point{}
	}
	ppem := fixed.Int26_6(float32(s.Metric.SpToDp(p.Font.size())) * 64)
	key := measureKey{
		face:     face,
		ppem:     ppem,
		maxWidth: toFixed(p.MaxWidth),
		maxLines: p.MaxLines,
		str:      p.Text,
	}
	if sz, ok := s.cache.Get(key); ok {
		return sz
	}
	otf := &opentype{Font: face, Hinting: font.HintingFull, buf: &s.buf}
	widths := breakLines(ppem, p.Text, otf, key.maxWidth)
	if p.MaxLines > 0 && len(widths) > p.MaxLines {
		widths = widths[:p.MaxLines]
	}
	var w fixed.Int26_6
	for _, lw := range widths {
		if lw > w {
			w = lw
		}
	}
	m := otf.Metrics(ppem)
	sz := f32.Point{
		X: float32(w.Ceil()),
		Y: float32(m.Height.Ceil() * len(widths)),
	}
	s.cache.Put(key, sz)
	return sz
}

// faceFor returns the closest face for fnt. It must be called with
// s.mu held.
func (s *Shaper) faceFor(fnt Font) *sfnt.Font {
	tf := fnt.Typeface
	if !s.hasTypeface(tf) {
		tf = s.def
	}
	var (
		best    *sfnt.Font
		bestDst = math.MaxInt
	)
	for _, f := range s.faces {
		if f.Font.Typeface != tf {
			continue
		}
		dst := abs(int(f.Font.Weight - fnt.Weight))
		if f.Font.Style != fnt.Style {
			dst += 1000
		}
		if dst < bestDst {
			best, bestDst = f.Face, dst
		}
	}
	if best == nil && len(s.faces) > 0 {
		best = s.faces[0].Face
	}
	return best
}

func (s *Shaper) hasTypeface(tf Typeface) bool {
	for _, f := range s.faces {
		if f.Font.Typeface == tf {
			return true
		}
	}
	return false
}

// toFixed converts a width in dp, possibly infinite, to fixed point.
func toFixed(v float32) fixed.Int26_6 {
	if v >= float32(math.MaxInt32/64) || math.IsInf(float64(v), 1) {
		return fixed.Int26_6(math.MaxInt32)
	}
	if v <= 0 {
		return 0
	}
	return fixed.Int26_6(v * 64)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
