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

// Package merge combines the ribbons of all strokes of a character into a
// single outline.
package merge

import (
	"slices"

	"seehuhn.de/go/handfont/geometry"
)

// Result is the outcome of merging the ribbons of one character.
//
// Exactly one of the following holds: the Result is empty (there were no
// ribbons), Outline holds the merged outline, or Fallback holds the
// unmerged ribbons and Err gives the reason why merging failed.
type Result struct {
	Outline  geometry.Shape
	Fallback []geometry.Shape
	Err      error
}

// IsEmpty reports whether there was nothing to merge.
func (r Result) IsEmpty() bool {
	return r.Outline == nil && r.Fallback == nil
}

// Merged reports whether all ribbons have been combined into one outline.
func (r Result) Merged() bool {
	return r.Outline != nil
}

// Loops returns all loops which make up the glyph.  In the fallback case,
// these are the loops of all ribbons, in drawing order.
func (r Result) Loops() []geometry.Loop {
	if r.Outline != nil {
		return r.Outline
	}
	var res []geometry.Loop
	for _, s := range r.Fallback {
		res = append(res, s...)
	}
	return res
}

// BoundsSource returns the shape whose bounding box determines the advance
// width of the glyph.  This is the merged outline if available, and the
// first ribbon otherwise.
func (r Result) BoundsSource() geometry.Shape {
	if r.Outline != nil {
		return r.Outline
	}
	if len(r.Fallback) > 0 {
		return r.Fallback[0]
	}
	return nil
}

// Merge folds the ribbons together with pairwise unions, in drawing order.
// If any union fails, the unmerged ribbons are returned as a fallback.
//
// After a successful merge, outer loops are made clockwise and holes
// counter-clockwise.  If g does not implement [geometry.Reorienter], only
// the orientation of the first loop is checked.
func Merge(g geometry.Geometry, ribbons []geometry.Shape) Result {
	if len(ribbons) == 0 {
		return Result{}
	}
	fallback := func(err error) Result {
		return Result{Fallback: slices.Clone(ribbons), Err: err}
	}

	merged := ribbons[0]
	if len(ribbons) == 1 {
		resolved, err := g.SelfUnion(merged)
		if err != nil {
			return fallback(err)
		}
		merged = resolved
	}
	for _, r := range ribbons[1:] {
		next, err := g.Union(merged, r)
		if err != nil {
			return fallback(err)
		}
		merged = next
	}
	if len(merged) == 0 {
		return fallback(geometry.ErrDegenerate)
	}

	if ro, ok := g.(geometry.Reorienter); ok {
		merged = ro.Reorient(merged, true, true)
	} else if !g.IsClockwise(merged[0]) {
		merged = slices.Clone(merged)
		merged[0] = g.Reverse(merged[0])
	}
	return Result{Outline: merged}
}
