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
	"math"
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Node is a vertex of a closed loop, together with the control handles of
// the adjacent edges.  The handles are offsets relative to P.  If both
// handles of an edge are zero, the edge is a straight line.
type Node struct {
	P   vec.Vec2
	In  vec.Vec2 // handle of the edge arriving at P
	Out vec.Vec2 // handle of the edge leaving P
}

// Loop is a closed boundary.  The edge from the last node back to the first
// node is implied.
type Loop []Node

// Shape is a region of the plane, described by one or more loops.
// Loops may describe holes.
type Shape []Loop

// Polygon returns a loop with straight edges through the given points.
func Polygon(pts ...vec.Vec2) Loop {
	res := make(Loop, len(pts))
	for i, p := range pts {
		res[i].P = p
	}
	return res
}

// SignedArea returns the area enclosed by the loop, using straight edges
// between the nodes.  The area is positive for counter-clockwise loops in a
// coordinate system where y grows upwards.
func (l Loop) SignedArea() float64 {
	n := len(l)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := range l {
		a := l[i].P
		b := l[(i+1)%n].P
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// IsClockwise reports whether the loop runs clockwise in a coordinate system
// where y grows upwards, as used in font design space.
func (l Loop) IsClockwise() bool {
	return l.SignedArea() < 0
}

// Reverse returns a copy of the loop with the opposite orientation.
func (l Loop) Reverse() Loop {
	res := make(Loop, len(l))
	for i, node := range l {
		res[len(l)-1-i] = Node{P: node.P, In: node.Out, Out: node.In}
	}
	return res
}

// Contains reports whether p lies inside the polygon spanned by the nodes
// of the loop, using the even-odd rule.
func (l Loop) Contains(p vec.Vec2) bool {
	inside := false
	n := len(l)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a := l[i].P
		b := l[j].P
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	res := make(Shape, len(s))
	for i, l := range s {
		res[i] = slices.Clone(l)
	}
	return res
}

// NumNodes returns the total number of nodes in all loops.
func (s Shape) NumNodes() int {
	n := 0
	for _, l := range s {
		n += len(l)
	}
	return n
}

// BBox returns the bounding box of all nodes in the shape.
// The second return value is false, if the shape has no nodes.
// Control handles are not included.
func (s Shape) BBox() (rect.Rect, bool) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, l := range s {
		for _, node := range l {
			minX = min(minX, node.P.X)
			minY = min(minY, node.P.Y)
			maxX = max(maxX, node.P.X)
			maxY = max(maxY, node.P.Y)
		}
	}
	if minX > maxX {
		return rect.Rect{}, false
	}
	return rect.Rect{LLx: minX, LLy: minY, URx: maxX, URy: maxY}, true
}
