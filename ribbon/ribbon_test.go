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

package ribbon

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/handfont/geometry"
	"seehuhn.de/go/handfont/geometry/canvasgeom"
	"seehuhn.de/go/handfont/internal/geomtest"
	"seehuhn.de/go/handfont/normalize"
	"seehuhn.de/go/handfont/stroke"
)

var identity = normalize.Transform{M: matrix.Identity, Scale: 1}

func TestOutlineNormal(t *testing.T) {
	pts := []vec.Vec2{{X: 0, Y: 0}, {X: 100, Y: 0}}
	got := Outline(pts, stroke.Normal, 10)
	want := geometry.Polygon(
		vec.Vec2{X: 0, Y: 5},
		vec.Vec2{X: 100, Y: 5},
		vec.Vec2{X: 100, Y: -5},
		vec.Vec2{X: 0, Y: -5},
	)
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("Outline mismatch (-want +got):\n%s", d)
	}
}

func TestOutlineCalligraphy(t *testing.T) {
	// The nib offset does not depend on the stroke direction.
	c := 5 / math.Sqrt2
	for _, pts := range [][]vec.Vec2{
		{{X: 0, Y: 0}, {X: 100, Y: 0}},
		{{X: 0, Y: 0}, {X: 0, Y: 100}},
	} {
		got := Outline(pts, stroke.Calligraphy, 10)
		end := pts[1]
		want := geometry.Polygon(
			vec.Vec2{X: -c, Y: c},
			vec.Vec2{X: end.X - c, Y: end.Y + c},
			vec.Vec2{X: end.X + c, Y: end.Y - c},
			vec.Vec2{X: c, Y: -c},
		)
		if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); d != "" {
			t.Errorf("Outline mismatch (-want +got):\n%s", d)
		}
	}
}

func TestOutlineSkipsRepeatedPoints(t *testing.T) {
	pts := []vec.Vec2{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 50, Y: 0}}
	got := Outline(pts, stroke.Normal, 4)
	if len(got) != 4 {
		t.Errorf("got %d nodes, want 4", len(got))
	}

	got = Outline([]vec.Vec2{{X: 3, Y: 3}, {X: 3, Y: 3}}, stroke.Normal, 4)
	if len(got) != 0 {
		t.Errorf("zero-length stroke gave %d nodes", len(got))
	}
}

func TestWidth(t *testing.T) {
	s := stroke.Stroke{Pen: stroke.Normal}
	tr := normalize.Transform{Scale: 2}

	normal := Params{}.Width(s, tr)
	if want := stroke.DefaultNormalWidth * 2 * DefaultBaseWeight; math.Abs(normal-want) > 1e-9 {
		t.Errorf("width = %g, want %g", normal, want)
	}
	bold := Params{WeightMultiplier: 2.5}.Width(s, tr)
	if math.Abs(bold-2.5*normal) > 1e-9 {
		t.Errorf("bold width = %g, want %g", bold, 2.5*normal)
	}
}

func TestBuildSkips(t *testing.T) {
	g := &geomtest.Fake{}
	cases := []stroke.Stroke{
		{Points: []stroke.Point{{X: 1, Y: 1}, {X: 9, Y: 9}}, Pen: stroke.Eraser},
		{Points: []stroke.Point{{X: 1, Y: 1}}, Pen: stroke.Normal},
		{Pen: stroke.Calligraphy},
		{Points: []stroke.Point{{X: 1, Y: 1}, {X: 1, Y: 1}}, Pen: stroke.Normal},
	}
	for i, s := range cases {
		if _, ok := Build(g, s, identity, Params{}); ok {
			t.Errorf("%d: stroke produced a ribbon", i)
		}
	}
	if g.SelfUnions != 0 {
		t.Errorf("SelfUnion called %d times", g.SelfUnions)
	}
}

func TestBuildSelfUnionFailure(t *testing.T) {
	g := &geomtest.Fake{FailSelfUnion: true}
	s := stroke.Stroke{Points: []stroke.Point{{X: 0, Y: 0}, {X: 100, Y: 0}}}
	res, ok := Build(g, s, identity, Params{})
	if !ok {
		t.Fatal("no ribbon")
	}
	if res.Resolved {
		t.Error("ribbon marked as resolved")
	}
	if !errors.Is(res.Err, geomtest.ErrInjected) {
		t.Errorf("Err = %v", res.Err)
	}
	if len(res.Shape) != 1 || len(res.Shape[0]) != 4 {
		t.Errorf("raw ribbon not kept: %v", res.Shape)
	}
}

// crossings counts pairs of edges which properly cross each other.  Edges
// which only touch, or which are adjacent in the same loop, do not count.
func crossings(s geometry.Shape) int {
	type seg struct {
		a, b vec.Vec2
		loop int
		idx  int
	}
	var segs []seg
	for i, l := range s {
		for j := range l {
			segs = append(segs, seg{l[j].P, l[(j+1)%len(l)].P, i, j})
		}
	}
	orient := func(p, q, r vec.Vec2) float64 {
		return (q.X-p.X)*(r.Y-p.Y) - (q.Y-p.Y)*(r.X-p.X)
	}
	n := 0
	for i := range segs {
		for j := i + 1; j < len(segs); j++ {
			u, v := segs[i], segs[j]
			if u.loop == v.loop {
				m := len(s[u.loop])
				if v.idx == u.idx+1 || (u.idx == 0 && v.idx == m-1) {
					continue
				}
			}
			d1 := orient(u.a, u.b, v.a)
			d2 := orient(u.a, u.b, v.b)
			d3 := orient(v.a, v.b, u.a)
			d4 := orient(v.a, v.b, u.b)
			if d1*d2 < 0 && d3*d4 < 0 {
				n++
			}
		}
	}
	return n
}

func TestBuildSimpleOutline(t *testing.T) {
	shapes := map[string][]stroke.Point{
		"v": {{X: 0, Y: 100}, {X: 50, Y: 0}, {X: 100, Y: 100}},
		"e": {
			{X: 10, Y: 50}, {X: 90, Y: 50}, {X: 88, Y: 70}, {X: 75, Y: 88},
			{X: 50, Y: 95}, {X: 25, Y: 88}, {X: 12, Y: 70}, {X: 10, Y: 50},
			{X: 12, Y: 30}, {X: 25, Y: 12}, {X: 50, Y: 5}, {X: 75, Y: 10},
			{X: 90, Y: 25},
		},
	}
	g := canvasgeom.New()
	for name, pts := range shapes {
		for _, pen := range []stroke.PenType{stroke.Normal, stroke.Calligraphy} {
			s := stroke.Stroke{Points: pts, Pen: pen}
			res, ok := Build(g, s, identity, Params{})
			if !ok {
				t.Fatalf("%s/%s: no ribbon", name, pen)
			}
			if !res.Resolved || res.Err != nil {
				t.Fatalf("%s/%s: self-union failed: %v", name, pen, res.Err)
			}
			if len(res.Shape) == 0 {
				t.Fatalf("%s/%s: empty ribbon", name, pen)
			}
			for i, l := range res.Shape {
				if len(l) < 3 {
					t.Errorf("%s/%s: loop %d has %d nodes", name, pen, i, len(l))
				}
			}
			if n := crossings(res.Shape); n != 0 {
				t.Errorf("%s/%s: %d crossing edges", name, pen, n)
			}
		}
	}
}
