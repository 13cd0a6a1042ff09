// seehuhn.de/go/handfont - turn hand-drawn strokes into installable fonts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package sketch

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/handfont/stroke"
)

const sample = `
# the letter A, drawn with three strokes
glyph "A" {
  stroke normal width 8 { 100,500 300,80 500,500 }
  stroke normal { 180,300 420,300 }
}

glyph "é" {
  stroke calligraphy width 12.5 { -1.5,2 3,.5 }
  stroke eraser { 5,5 6,6 }
}

glyph "?" {}
`

func TestParse(t *testing.T) {
	got, err := Parse("sample.glyphs", strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	want := stroke.GlyphData{
		'A': {
			{Points: []stroke.Point{{X: 100, Y: 500}, {X: 300, Y: 80}, {X: 500, Y: 500}}, Pen: stroke.Normal, Width: 8},
			{Points: []stroke.Point{{X: 180, Y: 300}, {X: 420, Y: 300}}, Pen: stroke.Normal},
		},
		'é': {
			{Points: []stroke.Point{{X: -1.5, Y: 2}, {X: 3, Y: 0.5}}, Pen: stroke.Calligraphy, Width: 12.5},
			{Points: []stroke.Point{{X: 5, Y: 5}, {X: 6, Y: 6}}, Pen: stroke.Eraser},
		},
		'?': {},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("parse result mismatch (-want +got):\n%s", d)
	}
}

func TestRoundTrip(t *testing.T) {
	in, err := Parse("in", strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := Write(buf, in); err != nil {
		t.Fatal(err)
	}
	out, err := Parse("out", buf)
	if err != nil {
		t.Fatalf("cannot parse written data: %v\n%s", err, buf.String())
	}
	if d := cmp.Diff(in, out); d != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", d)
	}
}

func TestErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"pen", `glyph "A" { stroke spray { 1,2 } }`, stroke.ErrUnknownPen},
		{"key", `glyph "AB" { }`, stroke.ErrBadCharacter},
		{"duplicate", `glyph "A" { } glyph "A" { }`, ErrDuplicateGlyph},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse(c.name, strings.NewReader(c.in))
			if !errors.Is(err, c.want) {
				t.Errorf("got %v, want %v", err, c.want)
			}
		})
	}

	syntax := []string{
		`glyph A { }`,
		`glyph "A" { stroke normal { 1 2 } }`,
		`glyph "A" { stroke normal width { 1,2 } }`,
		`glyph "A" {`,
	}
	for _, in := range syntax {
		if _, err := Parse("bad", strings.NewReader(in)); err == nil {
			t.Errorf("%q: no error", in)
		}
	}

	if _, err := Parse("w", strings.NewReader(`glyph "A" { stroke normal width 0 { 1,2 } }`)); err == nil {
		t.Error("zero width accepted")
	}
}
