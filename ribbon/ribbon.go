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

// Package ribbon turns the centre line of a pen stroke into a closed
// outline approximating the ink of the stroke.
package ribbon

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/handfont/geometry"
	"seehuhn.de/go/handfont/normalize"
	"seehuhn.de/go/handfont/stroke"
)

// DefaultBaseWeight is the factor by which ribbons are wider than the
// nominal pen width.
const DefaultBaseWeight = 1.6

// NibAngle is the angle of the calligraphy nib, in degrees.
const NibAngle = -45

// minStep is the shortest segment which determines a direction.
const minStep = 0.001

// Params control the width of generated ribbons.
type Params struct {
	// WeightMultiplier scales all ribbon widths.  This is 1 for regular
	// fonts and larger for simulated bold fonts.  Zero means 1.
	WeightMultiplier float64

	// BaseWeight is the factor between nominal pen width and ribbon width.
	// Zero means DefaultBaseWeight.
	BaseWeight float64
}

func (p Params) withDefaults() Params {
	if p.WeightMultiplier <= 0 {
		p.WeightMultiplier = 1
	}
	if p.BaseWeight <= 0 {
		p.BaseWeight = DefaultBaseWeight
	}
	return p
}

// Width returns the width in design units of a ribbon for stroke s.
func (p Params) Width(s stroke.Stroke, t normalize.Transform) float64 {
	p = p.withDefaults()
	return s.EffectiveWidth() * t.Scale * p.BaseWeight * p.WeightMultiplier
}

// Result is the ribbon for one stroke.
type Result struct {
	Shape geometry.Shape

	// Resolved is true if self-intersections have been removed from Shape.
	// If the self-union failed, Shape is the raw ribbon and Err gives the
	// reason.
	Resolved bool
	Err      error
}

// Outline returns the raw ribbon around the polyline pts.  The result can
// be self-intersecting.
//
// For the normal pen, the two sides of the ribbon are offset by width/2
// along the local normal.  For the calligraphy pen, all points are offset
// by a fixed nib vector, so that the visible width depends on the stroke
// direction.
func Outline(pts []vec.Vec2, pen stroke.PenType, width float64) geometry.Loop {
	half := width / 2

	phi := NibAngle * math.Pi / 180
	nib := vec.Vec2{X: math.Cos(phi) * half, Y: math.Sin(phi) * half}

	left := make([]vec.Vec2, 0, len(pts))
	right := make([]vec.Vec2, 0, len(pts))
	for i, p := range pts {
		d := vec.Vec2{X: 1}
		if i < len(pts)-1 {
			d = pts[i+1].Sub(p)
		} else if i > 0 {
			d = p.Sub(pts[i-1])
		}
		l := d.Length()
		if l < minStep {
			continue
		}

		if pen == stroke.Calligraphy {
			left = append(left, p.Sub(nib))
			right = append(right, p.Add(nib))
		} else {
			n := vec.Vec2{X: -d.Y / l, Y: d.X / l}.Mul(half)
			left = append(left, p.Add(n))
			right = append(right, p.Sub(n))
		}
	}

	slices.Reverse(right)
	return geometry.Polygon(append(left, right...)...)
}

// Build constructs the ribbon for a single stroke, given in surface
// coordinates.  The second return value is false if the stroke adds no ink,
// either because it is an eraser stroke or because it is too short.
func Build(g geometry.Geometry, s stroke.Stroke, t normalize.Transform, p Params) (Result, bool) {
	if !s.Contributes() {
		return Result{}, false
	}

	pts := t.ApplyAll(s.Points)
	loop := Outline(pts, s.Pen, p.Width(s, t))
	if len(loop) < 3 {
		return Result{}, false
	}

	raw := geometry.Shape{loop}
	resolved, err := g.SelfUnion(raw)
	if err != nil {
		return Result{Shape: raw, Err: err}, true
	}
	return Result{Shape: resolved, Resolved: true}, true
}
