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

package stroke

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEffectiveWidth(t *testing.T) {
	cases := []struct {
		s    Stroke
		want float64
	}{
		{Stroke{Pen: Normal}, DefaultNormalWidth},
		{Stroke{Pen: Calligraphy}, DefaultCalligraphyWidth},
		{Stroke{Pen: Normal, Width: 3}, 3},
		{Stroke{Pen: Calligraphy, Width: 20}, 20},
	}
	for _, c := range cases {
		if got := c.s.EffectiveWidth(); got != c.want {
			t.Errorf("%s/%g: got %g, want %g", c.s.Pen, c.s.Width, got, c.want)
		}
	}
}

func TestContributes(t *testing.T) {
	two := []Point{{0, 0}, {1, 1}}
	cases := []struct {
		s    Stroke
		want bool
	}{
		{Stroke{Points: two, Pen: Normal}, true},
		{Stroke{Points: two, Pen: Calligraphy}, true},
		{Stroke{Points: two, Pen: Eraser}, false},
		{Stroke{Points: two[:1], Pen: Normal}, false},
		{Stroke{Pen: Normal}, false},
	}
	for i, c := range cases {
		if got := c.s.Contributes(); got != c.want {
			t.Errorf("%d: got %t, want %t", i, got, c.want)
		}
	}
}

func TestRunes(t *testing.T) {
	d := GlyphData{
		'b': {{Points: []Point{{0, 0}, {1, 1}}}},
		'A': {{Points: []Point{{0, 0}, {1, 1}}}},
		'z': nil,
		'!': {{Points: []Point{{0, 0}}, Pen: Eraser}},
	}
	got := d.Runes()
	want := []rune{'!', 'A', 'b'}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("Runes mismatch (-want +got):\n%s", d)
	}
	if n := len(d.Inked('!')); n != 0 {
		t.Errorf("eraser-only character has %d inked strokes", n)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	in := `{
		"A": [{"points": [{"x": 10, "y": 20}, {"x": 30, "y": 40}], "type": "normal", "width": 8}],
		"é": [{"points": [{"x": 1, "y": 2}], "type": "calligraphy"}],
		"x": [{"points": [{"x": 5, "y": 5}, {"x": 6, "y": 6}], "type": "eraser"}]
	}`
	d, err := DecodeJSON(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := GlyphData{
		'A': {{Points: []Point{{10, 20}, {30, 40}}, Pen: Normal, Width: 8}},
		'é': {{Points: []Point{{1, 2}}, Pen: Calligraphy}},
		'x': {{Points: []Point{{5, 5}, {6, 6}}, Pen: Eraser}},
	}
	if diff := cmp.Diff(want, d); diff != "" {
		t.Fatalf("decoded data mismatch (-want +got):\n%s", diff)
	}

	buf := &bytes.Buffer{}
	if err := d.EncodeJSON(buf); err != nil {
		t.Fatal(err)
	}
	d2, err := DecodeJSON(buf)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(d, d2); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONErrors(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{`{"AB": []}`, ErrBadCharacter},
		{`{"": []}`, ErrBadCharacter},
		{`{"A": [{"points": [], "type": "spray"}]}`, ErrUnknownPen},
	}
	for _, c := range cases {
		_, err := DecodeJSON(strings.NewReader(c.in))
		if !errors.Is(err, c.want) {
			t.Errorf("%s: got error %v, want %v", c.in, err, c.want)
		}
	}
}
