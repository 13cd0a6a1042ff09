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

package geometry

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// square returns a counter-clockwise square.
func square(x0, y0, size float64) Loop {
	return Polygon(
		vec.Vec2{X: x0, Y: y0},
		vec.Vec2{X: x0 + size, Y: y0},
		vec.Vec2{X: x0 + size, Y: y0 + size},
		vec.Vec2{X: x0, Y: y0 + size},
	)
}

func TestSignedArea(t *testing.T) {
	l := square(0, 0, 10)
	if a := l.SignedArea(); a != 100 {
		t.Errorf("area = %g, want 100", a)
	}
	if l.IsClockwise() {
		t.Error("counter-clockwise square reported as clockwise")
	}
	r := l.Reverse()
	if a := r.SignedArea(); a != -100 {
		t.Errorf("reversed area = %g, want -100", a)
	}
	if !r.IsClockwise() {
		t.Error("reversed square not clockwise")
	}
	if a := Polygon(vec.Vec2{}, vec.Vec2{X: 1}).SignedArea(); a != 0 {
		t.Errorf("two-point loop has area %g", a)
	}
}

func TestReverseSwapsHandles(t *testing.T) {
	l := Loop{
		{P: vec.Vec2{X: 0, Y: 0}, Out: vec.Vec2{X: 1}},
		{P: vec.Vec2{X: 10, Y: 0}, In: vec.Vec2{X: -1}},
		{P: vec.Vec2{X: 5, Y: 5}},
	}
	r := l.Reverse()
	want := Loop{
		{P: vec.Vec2{X: 5, Y: 5}},
		{P: vec.Vec2{X: 10, Y: 0}, Out: vec.Vec2{X: -1}},
		{P: vec.Vec2{X: 0, Y: 0}, In: vec.Vec2{X: 1}},
	}
	if d := cmp.Diff(want, r); d != "" {
		t.Errorf("Reverse mismatch (-want +got):\n%s", d)
	}
	if d := cmp.Diff(l, r.Reverse()); d != "" {
		t.Errorf("double Reverse mismatch (-want +got):\n%s", d)
	}
}

func TestContains(t *testing.T) {
	l := square(0, 0, 10)
	cases := []struct {
		p    vec.Vec2
		want bool
	}{
		{vec.Vec2{X: 5, Y: 5}, true},
		{vec.Vec2{X: -1, Y: 5}, false},
		{vec.Vec2{X: 5, Y: 11}, false},
		{vec.Vec2{X: 9.9, Y: 0.1}, true},
	}
	for _, c := range cases {
		if got := l.Contains(c.p); got != c.want {
			t.Errorf("Contains(%v) = %t, want %t", c.p, got, c.want)
		}
	}
}

func TestBBox(t *testing.T) {
	s := Shape{square(0, 0, 10), square(20, -5, 3)}
	box, ok := s.BBox()
	if !ok {
		t.Fatal("no bounding box")
	}
	want := rect.Rect{LLx: 0, LLy: -5, URx: 23, URy: 10}
	if box != want {
		t.Errorf("BBox = %v, want %v", box, want)
	}

	if _, ok := (Shape{}).BBox(); ok {
		t.Error("empty shape has a bounding box")
	}
}

func TestReorient(t *testing.T) {
	// All squares are counter-clockwise, except for "other".
	// The island lies inside the hole, which lies inside outer.
	outer := square(0, 0, 100)
	hole := square(25, 25, 50)
	island := square(40, 40, 10)
	other := square(200, 0, 10).Reverse()

	s := Shape{outer, hole, island, other}
	res := Reorient(s, true, true)
	if len(res) != len(s) {
		t.Fatalf("got %d loops, want %d", len(res), len(s))
	}
	wantCW := []bool{true, false, true, true}
	for i, l := range res {
		if l.IsClockwise() != wantCW[i] {
			t.Errorf("loop %d: clockwise=%t, want %t", i, l.IsClockwise(), wantCW[i])
		}
	}

	// the input must not be modified
	if outer.IsClockwise() || !other.IsClockwise() {
		t.Error("input shape was modified")
	}

	same := Reorient(s, false, false)
	for i, l := range same {
		if l.IsClockwise() {
			t.Errorf("loop %d: clockwise, want counter-clockwise", i)
		}
	}
}
