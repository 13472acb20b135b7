// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"reflect"
	"testing"

	"stackbox.org/f32"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  []string
	}{
		{"hello world", 0, []string{"hello world"}},
		{"hello world", 11, []string{"hello world"}},
		{"hello world", 7, []string{"hello", "world"}},
		{"a b c", 3, []string{"a b", "c"}},
		{"abcdef", 4, []string{"abcd", "ef"}},
		{"one\n\ntwo", 10, []string{"one", "", "two"}},
		{"日本語", 4, []string{"日本", "語"}},
	}
	for _, tt := range tests {
		if got := Wrap(tt.in, tt.width); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Wrap(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestCellsMeasure(t *testing.T) {
	var c Cells
	tests := []struct {
		p    Params
		want f32.Point
	}{
		{Params{Text: ""}, f32.Pt(0, 0)},
		{Params{Text: "hello world", MaxWidth: f32.Inf}, f32.Pt(11, 1)},
		{Params{Text: "hello world", MaxWidth: 7}, f32.Pt(5, 2)},
		{Params{Text: "hello world", MaxWidth: 7, MaxLines: 1}, f32.Pt(5, 1)},
		{Params{Text: "日本語", MaxWidth: f32.Inf}, f32.Pt(6, 1)},
	}
	for _, tt := range tests {
		if got := c.Measure(tt.p); got != tt.want {
			t.Errorf("Measure(%+v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}
