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

package fontbuild

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/postscript/type1/names"

	"seehuhn.de/go/handfont/encode"
	"seehuhn.de/go/handfont/geometry"
)

// Glyph metrics, in design units.
const (
	NotdefWidth       = 600
	SpaceWidth        = 250
	FallbackWidth     = 600
	SideBearingsTotal = 10
)

// Glyph is one glyph of the generated font.
type Glyph struct {
	Name    string
	Rune    rune
	Advance float64
	Path    *path.Data
}

// Notdef returns the glyph shown for characters missing from the font.
// This is a 400x700 box.
func Notdef() Glyph {
	box := geometry.Polygon(
		vec.Vec2{X: 100, Y: 0},
		vec.Vec2{X: 100, Y: 700},
		vec.Vec2{X: 500, Y: 700},
		vec.Vec2{X: 500, Y: 0},
	)
	return Glyph{
		Name:    ".notdef",
		Rune:    0,
		Advance: NotdefWidth,
		Path:    encode.Loops([]geometry.Loop{box}),
	}
}

// Space returns the glyph for the space character.
func Space() Glyph {
	return Glyph{
		Name:    "space",
		Rune:    ' ',
		Advance: SpaceWidth,
		Path:    &path.Data{},
	}
}

// AdvanceWidth computes the advance width of a glyph from the bounding box
// of its outline.  If ok is false or no finite, positive width can be
// computed, FallbackWidth is returned.
func AdvanceWidth(bbox rect.Rect, ok bool) float64 {
	if !ok {
		return FallbackWidth
	}
	w := bbox.URx - bbox.LLx
	if !(w > 0) || math.IsInf(w, 0) {
		return FallbackWidth
	}
	adv := math.Floor(w + SideBearingsTotal + 0.5)
	if math.IsInf(adv, 0) || adv <= 0 {
		return FallbackWidth
	}
	return adv
}

// GlyphName returns the PostScript glyph name for a character.
func GlyphName(r rune) string {
	return names.FromUnicode(string(r))
}
