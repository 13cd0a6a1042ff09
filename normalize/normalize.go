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

// Package normalize maps drawing-surface coordinates into font design
// space.
//
// The drawing surface is 600x600 units with y growing downwards.  Design
// space uses 1000 units per em with y growing upwards and the baseline at
// y=0.
package normalize

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/handfont/stroke"
)

// Layout constants, in design units unless noted otherwise.
const (
	SurfaceSize = 600 // drawing surface size, in surface units
	UnitsPerEm  = 1000

	// ManualScale is the scale used in manual mode.
	ManualScale = float64(UnitsPerEm) / SurfaceSize

	// ManualBaseline is the baseline position in manual mode, in surface
	// units.
	ManualBaseline = 0.75 * SurfaceSize

	LeftPad        = 5
	MaxWidth       = 800
	DescenderTop   = 500
	MinExtent      = 10  // lower bound for the bounding box size, in surface units
	DefaultMaxGain = 1.5 // scale cap for Default characters, relative to ManualScale
)

// Transform maps surface coordinates to design space.
type Transform struct {
	// M is the affine map, in the component order used by PDF.
	M matrix.Matrix

	// Scale is the uniform scale factor of M.  This is used to convert
	// stroke widths.
	Scale float64
}

// Apply maps a point from the drawing surface into design space.
func (t Transform) Apply(p stroke.Point) vec.Vec2 {
	M := t.M
	return vec.Vec2{
		X: M[0]*p.X + M[2]*p.Y + M[4],
		Y: M[1]*p.X + M[3]*p.Y + M[5],
	}
}

// ApplyAll maps all points of a stroke into design space.
func (t Transform) ApplyAll(pts []stroke.Point) []vec.Vec2 {
	res := make([]vec.Vec2, len(pts))
	for i, p := range pts {
		res[i] = t.Apply(p)
	}
	return res
}

// New computes the transformation for the strokes of character r.
// Eraser strokes do not take part in the computation.
//
// In manual mode, a fixed scale is used and the baseline is at 75% of the
// drawing surface height.  In auto-scale mode the character is scaled to the
// target height of its class, see [Class.Target].
func New(strokes []stroke.Stroke, r rune, autoScale bool) Transform {
	box, ok := inkBBox(strokes)
	if !ok {
		box = rect.Rect{}
	}

	if !autoScale {
		s := float64(ManualScale)
		return Transform{
			M:     matrix.Matrix{s, 0, 0, -s, LeftPad - s*box.LLx, s * ManualBaseline},
			Scale: s,
		}
	}

	class := ClassOf(r)
	w := max(box.Dx(), MinExtent)
	h := max(box.Dy(), MinExtent)

	s := class.Target() / h
	if class == Default {
		s = min(s, DefaultMaxGain*ManualScale)
	}
	if w*s > MaxWidth {
		s = MaxWidth / w
	}

	// In surface coordinates, URy is the lowest point of the drawing and
	// LLy is the highest one.
	var dy float64
	if class == Descender {
		dy = DescenderTop + s*box.LLy
	} else {
		dy = s * box.URy
	}
	return Transform{
		M:     matrix.Matrix{s, 0, 0, -s, LeftPad - s*box.LLx, dy},
		Scale: s,
	}
}

// inkBBox returns the bounding box of all points of all non-eraser strokes.
func inkBBox(strokes []stroke.Stroke) (rect.Rect, bool) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, s := range strokes {
		if s.Pen == stroke.Eraser {
			continue
		}
		for _, p := range s.Points {
			if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
				continue
			}
			minX = min(minX, p.X)
			minY = min(minY, p.Y)
			maxX = max(maxX, p.X)
			maxY = max(maxY, p.Y)
		}
	}
	if minX > maxX {
		return rect.Rect{}, false
	}
	return rect.Rect{LLx: minX, LLy: minY, URx: maxX, URy: maxY}, true
}
