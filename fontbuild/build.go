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

// Package fontbuild assembles glyph outlines into an OpenType font.
//
// The generated fonts use CFF outlines, so that the cubic Bézier curves of
// the glyph outlines can be stored without conversion.  Every font contains
// the glyphs ".notdef" and "space", followed by the drawn glyphs in order of
// increasing code point.
package fontbuild

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/postscript/type1"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cff"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/os2"

	"seehuhn.de/go/handfont/encode"
)

// Vertical font metrics, in design units.
const (
	UnitsPerEm = 1000
	Ascent     = 800
	Descent    = -200
	CapHeight  = 700
	XHeight    = 500
)

// Epoch is the creation time recorded in generated fonts, unless
// a different time is set in BuildOptions.
var Epoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

var (
	// ErrInvalidMetrics indicates a glyph with a non-finite advance width
	// or outline coordinate.
	ErrInvalidMetrics = errors.New("fontbuild: invalid glyph metrics")

	// ErrDuplicateGlyph indicates that two glyphs map to the same
	// character.
	ErrDuplicateGlyph = errors.New("fontbuild: duplicate glyph")

	// ErrUnsupportedRune indicates a character outside the Basic
	// Multilingual Plane.
	ErrUnsupportedRune = errors.New("fontbuild: character outside the BMP")
)

// BuildOptions control details of font generation.
type BuildOptions struct {
	// Bold marks the font as bold, independent of the style name.
	Bold bool

	// Time is recorded as the creation and modification time of the font.
	// The zero value means Epoch.
	Time time.Time
}

// Build assembles a font from the drawn glyphs.  The glyphs ".notdef" and
// "space" are added automatically; drawn glyphs for U+0000 or U+0020 must
// not be included in glyphs.  The result does not depend on the order of
// glyphs.
func Build(glyphs []Glyph, meta Metadata, opt *BuildOptions) (*sfnt.Font, error) {
	if opt == nil {
		opt = &BuildOptions{}
	}
	meta = meta.WithDefaults()

	version, err := ParseVersion(meta.Version)
	if err != nil {
		return nil, err
	}

	glyphs = slices.Clone(glyphs)
	slices.SortStableFunc(glyphs, func(a, b Glyph) int { return cmp.Compare(a.Rune, b.Rune) })
	all := append([]Glyph{Notdef(), Space()}, glyphs...)

	cmapSub := cmap.Format4{}
	encoding := make([]glyph.ID, 256)
	outlines := &cff.Outlines{
		Private: []*type1.PrivateDict{
			{
				BlueScale: 0.039625,
				BlueShift: 7,
				BlueFuzz:  1,
			},
		},
		FDSelect: func(glyph.ID) int { return 0 },
	}
	for i, g := range all {
		gid := glyph.ID(i)
		if i >= 2 {
			switch {
			case g.Rune > 0xFFFF || (g.Rune >= 0xD800 && g.Rune < 0xE000) || g.Rune < 0:
				return nil, fmt.Errorf("%w: U+%04X", ErrUnsupportedRune, g.Rune)
			case g.Rune == 0 || g.Rune == ' ':
				return nil, fmt.Errorf("%w: U+%04X", ErrDuplicateGlyph, g.Rune)
			}
			if _, seen := cmapSub[uint16(g.Rune)]; seen {
				return nil, fmt.Errorf("%w: U+%04X", ErrDuplicateGlyph, g.Rune)
			}
		}
		if g.Rune > 0 {
			cmapSub[uint16(g.Rune)] = gid
			if g.Rune < 256 {
				encoding[g.Rune] = gid
			}
		}

		cffGlyph, err := toCFF(g)
		if err != nil {
			return nil, err
		}
		outlines.Glyphs = append(outlines.Glyphs, cffGlyph)
	}
	outlines.Encoding = encoding

	style := parseStyle(meta.StyleName, opt.Bold)
	created := opt.Time
	if created.IsZero() {
		created = Epoch
	}

	subtable := cmapSub.Encode(0)
	f := &sfnt.Font{
		FamilyName: meta.FamilyName,
		Width:      os2.WidthNormal,
		Weight:     style.Weight,
		IsBold:     style.IsBold,
		IsItalic:   style.IsItalic,
		IsRegular:  !style.IsBold && !style.IsItalic,
		IsScript:   true,

		Version:          version,
		CreationTime:     created,
		ModificationTime: created,

		Copyright: "Designed by " + meta.Author,
		PermUse:   os2.PermInstall,

		UnitsPerEm: UnitsPerEm,
		FontMatrix: matrix.Matrix{1.0 / UnitsPerEm, 0, 0, 1.0 / UnitsPerEm, 0, 0},

		Ascent:    Ascent,
		Descent:   Descent,
		CapHeight: CapHeight,
		XHeight:   XHeight,

		UnderlinePosition:  -100,
		UnderlineThickness: 50,

		Outlines: outlines,
		CMapTable: cmap.Table{
			{PlatformID: 0, EncodingID: 3}: subtable,
			{PlatformID: 3, EncodingID: 1}: subtable,
		},
	}
	return f, nil
}

// toCFF converts a glyph into CFF format.
func toCFF(g Glyph) (*cff.Glyph, error) {
	if !isFinite(g.Advance) || g.Advance < 0 {
		return nil, fmt.Errorf("%w: glyph %q has advance width %g",
			ErrInvalidMetrics, g.Name, g.Advance)
	}
	res := cff.NewGlyph(g.Name, math.Round(g.Advance))
	if g.Path == nil {
		return res, nil
	}
	for _, p := range g.Path.Coords {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return nil, fmt.Errorf("%w: glyph %q has coordinate %v",
				ErrInvalidMetrics, g.Name, p)
		}
	}

	var cur vec.Vec2
	w := &encode.Walk{
		MoveTo: func(p vec.Vec2) {
			res.MoveTo(p.X, p.Y)
			cur = p
		},
		LineTo: func(p vec.Vec2) {
			res.LineTo(p.X, p.Y)
			cur = p
		},
		QuadTo: func(c, p vec.Vec2) {
			c1 := cur.Add(c.Sub(cur).Mul(2.0 / 3.0))
			c2 := p.Add(c.Sub(p).Mul(2.0 / 3.0))
			res.CurveTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
			cur = p
		},
		CubeTo: func(c1, c2, p vec.Vec2) {
			res.CurveTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
			cur = p
		},
		// CFF glyphs close their sub-paths implicitly.
	}
	w.Run(g.Path)
	return res, nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Encode serializes a font into the binary OpenType format.
func Encode(f *sfnt.Font) ([]byte, error) {
	buf := &bytes.Buffer{}
	_, err := f.Write(buf)
	if err != nil {
		return nil, fmt.Errorf("fontbuild: %w", err)
	}
	return buf.Bytes(), nil
}
