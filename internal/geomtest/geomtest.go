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

// Package geomtest provides a scriptable geometry provider for tests.
package geomtest

import (
	"errors"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/handfont/geometry"
)

// ErrInjected is returned by failing operations of [Fake].
var ErrInjected = errors.New("geomtest: injected failure")

// Fake is a geometry provider which does not compute real boolean
// operations.  Union concatenates the loops of its arguments and SelfUnion
// returns a copy of its argument.  Individual operations can be made to
// fail.
type Fake struct {
	Unavailable bool

	// FailSelfUnion makes every call to SelfUnion fail.
	FailSelfUnion bool

	// FailUnion makes the n-th call to Union fail (counting from 1).
	// Zero disables the failure.
	FailUnion int

	SelfUnions int
	Unions     int
	BBoxes     int
}

var _ geometry.Geometry = (*Fake)(nil)

func (f *Fake) Ready() error {
	if f.Unavailable {
		return geometry.ErrUnavailable
	}
	return nil
}

func (f *Fake) SelfUnion(s geometry.Shape) (geometry.Shape, error) {
	f.SelfUnions++
	if f.FailSelfUnion {
		return nil, ErrInjected
	}
	return s.Clone(), nil
}

func (f *Fake) Union(a, b geometry.Shape) (geometry.Shape, error) {
	f.Unions++
	if f.FailUnion == f.Unions {
		return nil, ErrInjected
	}
	res := a.Clone()
	return append(res, b.Clone()...), nil
}

func (f *Fake) IsClockwise(l geometry.Loop) bool {
	return l.IsClockwise()
}

func (f *Fake) Reverse(l geometry.Loop) geometry.Loop {
	return l.Reverse()
}

func (f *Fake) BBox(s geometry.Shape) rect.Rect {
	f.BBoxes++
	box, _ := s.BBox()
	return box
}
