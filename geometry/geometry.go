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

// Package geometry defines the polygon operations needed for glyph
// synthesis.
//
// The operations themselves are provided by an implementation of the
// [Geometry] interface, for example the one in the canvasgeom
// sub-package.  This package only contains the data types and a few
// helpers which do not require boolean operations.
package geometry

import (
	"errors"
	"slices"

	"seehuhn.de/go/geom/rect"
)

// Geometry is a provider of boolean operations on shapes.
type Geometry interface {
	// Ready returns ErrUnavailable (possibly wrapped) if the provider
	// cannot be used.
	Ready() error

	// SelfUnion removes self-intersections from a shape, using the
	// non-zero winding rule.
	SelfUnion(s Shape) (Shape, error)

	// Union returns the union of two shapes.
	Union(a, b Shape) (Shape, error)

	IsClockwise(l Loop) bool
	Reverse(l Loop) Loop
	BBox(s Shape) rect.Rect
}

// Reorienter is implemented by providers which can fix the orientation of
// all loops of a shape in one step.
type Reorienter interface {
	// Reorient returns a copy of s where outer loops are clockwise if
	// outerClockwise is true, and counter-clockwise otherwise.  If
	// holesOpposite is true, holes get the opposite orientation of the
	// outer loops.
	Reorient(s Shape, outerClockwise, holesOpposite bool) Shape
}

var (
	// ErrUnavailable indicates that a geometry provider cannot be used.
	ErrUnavailable = errors.New("geometry: provider not available")

	// ErrDegenerate is returned when an operation produces no area.
	ErrDegenerate = errors.New("geometry: degenerate shape")
)

// Reorient implements the [Reorienter] interface for shapes whose loops do
// not cross each other.  A loop counts as a hole, if its first node lies
// inside an odd number of the other loops.
func Reorient(s Shape, outerClockwise, holesOpposite bool) Shape {
	res := make(Shape, len(s))
	for i, l := range s {
		if len(l) == 0 {
			continue
		}
		depth := 0
		for j, other := range s {
			if j != i && other.Contains(l[0].P) {
				depth++
			}
		}

		wantCW := outerClockwise
		if depth%2 == 1 && holesOpposite {
			wantCW = !wantCW
		}
		if l.IsClockwise() != wantCW {
			res[i] = l.Reverse()
		} else {
			res[i] = slices.Clone(l)
		}
	}
	return res
}
