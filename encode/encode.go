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

// Package encode converts glyph outlines into path commands in integer
// design units.
package encode

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/handfont/geometry"
)

// Loops converts the loops of an outline into a path with one closed
// sub-path per loop.
//
// An edge becomes a straight line if both the outgoing handle at its start
// and the incoming handle at its end are zero, and a cubic Bézier curve
// otherwise.  All coordinates are rounded to integers.  Empty loops are
// skipped.
func Loops(loops []geometry.Loop) *path.Data {
	d := &path.Data{}
	for _, l := range loops {
		if len(l) == 0 {
			continue
		}
		d.Cmds = append(d.Cmds, path.CmdMoveTo)
		d.Coords = append(d.Coords, round(l[0].P))
		for i, start := range l {
			end := l[(i+1)%len(l)]
			if start.Out == (vec.Vec2{}) && end.In == (vec.Vec2{}) {
				d.Cmds = append(d.Cmds, path.CmdLineTo)
				d.Coords = append(d.Coords, round(end.P))
				continue
			}
			d.Cmds = append(d.Cmds, path.CmdCubeTo)
			d.Coords = append(d.Coords,
				round(start.P.Add(start.Out)),
				round(end.P.Add(end.In)),
				round(end.P))
		}
		d.Cmds = append(d.Cmds, path.CmdClose)
	}
	return d
}

// round rounds halves towards positive infinity.
func round(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: math.Floor(p.X + 0.5), Y: math.Floor(p.Y + 0.5)}
}

// BBox returns the bounding box of all points of the path, including
// control points.  The second return value is false if the path is empty.
func BBox(d *path.Data) (rect.Rect, bool) {
	if d == nil || len(d.Coords) == 0 {
		return rect.Rect{}, false
	}
	box := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for _, p := range d.Coords {
		box.LLx = min(box.LLx, p.X)
		box.LLy = min(box.LLy, p.Y)
		box.URx = max(box.URx, p.X)
		box.URy = max(box.URy, p.Y)
	}
	return box, true
}

// NumContours returns the number of closed sub-paths.
func NumContours(d *path.Data) int {
	n := 0
	for _, c := range d.Cmds {
		if c == path.CmdClose {
			n++
		}
	}
	return n
}

// Walk holds callbacks for the commands of a path.  Nil callbacks are
// skipped.
type Walk struct {
	MoveTo func(p vec.Vec2)
	LineTo func(p vec.Vec2)
	QuadTo func(c, p vec.Vec2)
	CubeTo func(c1, c2, p vec.Vec2)
	Close  func()
}

// Run calls the callbacks for the commands of d, in order.
func (w *Walk) Run(d *path.Data) {
	pos := 0
	next := func(n int) []vec.Vec2 {
		pts := d.Coords[pos : pos+n]
		pos += n
		return pts
	}
	for _, c := range d.Cmds {
		switch c {
		case path.CmdMoveTo:
			pts := next(1)
			if w.MoveTo != nil {
				w.MoveTo(pts[0])
			}
		case path.CmdLineTo:
			pts := next(1)
			if w.LineTo != nil {
				w.LineTo(pts[0])
			}
		case path.CmdQuadTo:
			pts := next(2)
			if w.QuadTo != nil {
				w.QuadTo(pts[0], pts[1])
			}
		case path.CmdCubeTo:
			pts := next(3)
			if w.CubeTo != nil {
				w.CubeTo(pts[0], pts[1], pts[2])
			}
		case path.CmdClose:
			if w.Close != nil {
				w.Close()
			}
		}
	}
}
