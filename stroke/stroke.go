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

// Package stroke describes the pen strokes recorded by the drawing editor.
//
// All coordinates are in drawing-surface units: the origin is the top-left
// corner of the 600x600 drawing area and y grows downwards.
package stroke

import (
	"errors"
	"fmt"
	"slices"
)

// PenType determines how the centre line of a stroke is turned into ink.
type PenType uint8

// These are the supported pen types.
const (
	Normal PenType = iota
	Calligraphy

	// Eraser strokes only change the live drawing surface.  They are
	// ignored during font synthesis; in particular the erased ink is
	// not subtracted from the glyph outline.
	Eraser
)

var penNames = [...]string{
	Normal:      "normal",
	Calligraphy: "calligraphy",
	Eraser:      "eraser",
}

func (p PenType) String() string {
	if int(p) < len(penNames) {
		return penNames[p]
	}
	return fmt.Sprintf("PenType(%d)", p)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (p PenType) MarshalText() ([]byte, error) {
	if int(p) >= len(penNames) {
		return nil, fmt.Errorf("stroke: invalid pen type %d", p)
	}
	return []byte(penNames[p]), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (p *PenType) UnmarshalText(text []byte) error {
	pen, err := ParsePenType(string(text))
	if err != nil {
		return err
	}
	*p = pen
	return nil
}

// ParsePenType converts the name of a pen type into a PenType.
func ParsePenType(name string) (PenType, error) {
	for i, n := range penNames {
		if n == name {
			return PenType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPen, name)
}

// ErrUnknownPen is returned when a pen type name is not recognised.
var ErrUnknownPen = errors.New("stroke: unknown pen type")

// Default stroke widths of the editor tools, in drawing-surface units.
const (
	DefaultNormalWidth      = 8
	DefaultCalligraphyWidth = 15
)

// Point is a location on the drawing surface.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Stroke is one continuous pen movement.
type Stroke struct {
	Points []Point `json:"points"`
	Pen    PenType `json:"type"`

	// Width is the nominal pen width.  Zero means that the default width
	// of the tool is used.
	Width float64 `json:"width,omitempty"`
}

// EffectiveWidth returns the stroke width, falling back to the tool
// default if no width was recorded.
func (s Stroke) EffectiveWidth() float64 {
	if s.Width > 0 {
		return s.Width
	}
	if s.Pen == Normal {
		return DefaultNormalWidth
	}
	return DefaultCalligraphyWidth
}

// Contributes reports whether the stroke can add ink to a glyph outline.
// Eraser strokes and strokes with fewer than two points never do.
func (s Stroke) Contributes() bool {
	return s.Pen != Eraser && len(s.Points) >= 2
}

// GlyphData maps characters to the strokes drawn for them, in drawing
// order.
type GlyphData map[rune][]Stroke

// Runes returns the characters which have at least one stroke, in
// increasing order of code point.
func (d GlyphData) Runes() []rune {
	res := make([]rune, 0, len(d))
	for r, strokes := range d {
		if len(strokes) > 0 {
			res = append(res, r)
		}
	}
	slices.Sort(res)
	return res
}

// Inked returns the strokes for r which contribute ink.
func (d GlyphData) Inked(r rune) []Stroke {
	var res []Stroke
	for _, s := range d[r] {
		if s.Contributes() {
			res = append(res, s)
		}
	}
	return res
}
