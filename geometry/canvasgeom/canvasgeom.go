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

// Package canvasgeom implements the geometry operations needed for glyph
// synthesis on top of the path boolean operations of
// github.com/tdewolff/canvas.
package canvasgeom

import (
	"fmt"

	"github.com/tdewolff/canvas"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/handfont/geometry"
)

// Geometry is a [geometry.Geometry] backed by tdewolff/canvas.
// The zero value is not usable, use [New] to create an instance.
type Geometry struct {
	ready bool
}

var (
	_ geometry.Geometry   = (*Geometry)(nil)
	_ geometry.Reorienter = (*Geometry)(nil)
)

// New returns a ready-to-use geometry provider.
func New() *Geometry {
	return &Geometry{ready: true}
}

// Disabled returns a provider whose Ready method always fails.
func Disabled() *Geometry {
	return &Geometry{}
}

// Ready implements the [geometry.Geometry] interface.
func (g *Geometry) Ready() error {
	if g == nil || !g.ready {
		return fmt.Errorf("canvasgeom: %w", geometry.ErrUnavailable)
	}
	return nil
}

// SelfUnion implements the [geometry.Geometry] interface.
func (g *Geometry) SelfUnion(s geometry.Shape) (res geometry.Shape, err error) {
	if err := g.Ready(); err != nil {
		return nil, err
	}
	defer catch(&err)

	p := toPath(s)
	if p.Empty() {
		return nil, geometry.ErrDegenerate
	}
	return fromPath(p.Settle(canvas.NonZero))
}

// Union implements the [geometry.Geometry] interface.
func (g *Geometry) Union(a, b geometry.Shape) (res geometry.Shape, err error) {
	if err := g.Ready(); err != nil {
		return nil, err
	}
	defer catch(&err)

	p := toPath(a)
	q := toPath(b)
	if p.Empty() && q.Empty() {
		return nil, geometry.ErrDegenerate
	}
	return fromPath(p.Or(q))
}

// IsClockwise implements the [geometry.Geometry] interface.
func (g *Geometry) IsClockwise(l geometry.Loop) bool {
	return l.IsClockwise()
}

// Reverse implements the [geometry.Geometry] interface.
func (g *Geometry) Reverse(l geometry.Loop) geometry.Loop {
	return l.Reverse()
}

// BBox implements the [geometry.Geometry] interface.
func (g *Geometry) BBox(s geometry.Shape) rect.Rect {
	box, _ := s.BBox()
	return box
}

// Reorient implements the [geometry.Reorienter] interface.
func (g *Geometry) Reorient(s geometry.Shape, outerClockwise, holesOpposite bool) geometry.Shape {
	return geometry.Reorient(s, outerClockwise, holesOpposite)
}

// catch converts a panic inside the canvas library into an error.
func catch(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("canvasgeom: %v", r)
	}
}

func toPath(s geometry.Shape) *canvas.Path {
	p := &canvas.Path{}
	for _, l := range s {
		if !usable(l) {
			continue
		}
		p.MoveTo(l[0].P.X, l[0].P.Y)
		for i := range l {
			a := l[i]
			b := l[(i+1)%len(l)]
			if a.Out == (vec.Vec2{}) && b.In == (vec.Vec2{}) {
				if i < len(l)-1 {
					p.LineTo(b.P.X, b.P.Y)
				}
				continue
			}
			c1 := a.P.Add(a.Out)
			c2 := b.P.Add(b.In)
			p.CubeTo(c1.X, c1.Y, c2.X, c2.Y, b.P.X, b.P.Y)
		}
		p.Close()
	}
	return p
}

// fromPath converts a canvas path into a shape.  Every sub-path becomes one
// loop, open sub-paths are closed implicitly.
func fromPath(p *canvas.Path) (geometry.Shape, error) {
	var res geometry.Shape
	var cur geometry.Loop
	var last vec.Vec2

	flush := func() {
		cur = closeLoop(cur)
		if usable(cur) {
			res = append(res, cur)
		}
		cur = nil
	}

	sc := p.Scanner()
	for sc.Scan() {
		end := toVec(sc.End())
		switch sc.Cmd() {
		case canvas.MoveToCmd:
			flush()
			cur = geometry.Loop{{P: end}}
		case canvas.LineToCmd:
			cur = appendNode(cur, geometry.Node{P: end})
		case canvas.QuadToCmd:
			// degree elevation
			cp := toVec(sc.CP1())
			c1 := last.Add(cp.Sub(last).Mul(2.0 / 3.0))
			c2 := end.Add(cp.Sub(end).Mul(2.0 / 3.0))
			cur = appendCurve(cur, last, c1, c2, end)
		case canvas.CubeToCmd:
			cur = appendCurve(cur, last, toVec(sc.CP1()), toVec(sc.CP2()), end)
		case canvas.ArcToCmd:
			// Boolean operations on polygons never create arcs.
			cur = appendNode(cur, geometry.Node{P: end})
		case canvas.CloseCmd:
			// A curve may already have arrived at the start point.
			if n := len(cur); n == 0 || cur[n-1].P != end {
				cur = appendNode(cur, geometry.Node{P: end})
			}
			flush()
		}
		last = end
	}
	flush()

	if len(res) == 0 {
		return nil, geometry.ErrDegenerate
	}
	return res, nil
}

func appendNode(l geometry.Loop, node geometry.Node) geometry.Loop {
	if n := len(l); n > 0 && l[n-1].P == node.P {
		return l
	}
	return append(l, node)
}

// usable reports whether a loop encloses area.  Two nodes suffice if one of
// the two edges is curved.
func usable(l geometry.Loop) bool {
	switch {
	case len(l) >= 3:
		return true
	case len(l) == 2:
		for _, node := range l {
			if node.In != (vec.Vec2{}) || node.Out != (vec.Vec2{}) {
				return true
			}
		}
	}
	return false
}

func appendCurve(l geometry.Loop, start, c1, c2, end vec.Vec2) geometry.Loop {
	if len(l) == 0 {
		l = geometry.Loop{{P: start}}
	}
	l[len(l)-1].Out = c1.Sub(start)
	return append(l, geometry.Node{P: end, In: c2.Sub(end)})
}

// closeLoop removes a final node which duplicates the first node.
func closeLoop(l geometry.Loop) geometry.Loop {
	n := len(l)
	if n > 1 && l[n-1].P == l[0].P {
		l[0].In = l[n-1].In
		l = l[:n-1]
	}
	return l
}

func toVec(p canvas.Point) vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}
