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

// Package sketch reads and writes stroke data in a small text format.
//
// A sketch file lists the strokes of one or more characters:
//
//	# the letter A
//	glyph "A" {
//	  stroke normal width 8 { 100,500 300,80 500,500 }
//	  stroke normal { 180,300 420,300 }
//	}
//
// Coordinates are drawing-surface units.  The width is optional, and
// defaults to the width of the pen type.
package sketch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"seehuhn.de/go/handfont/internal/float"
	"seehuhn.de/go/handfont/stroke"
)

var (
	sketchLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "Comment", Pattern: `#[^\n]*`},
		{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
		{Name: "Number", Pattern: `[-+]?(?:\d+\.?\d*|\.\d+)`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
		{Name: "Punct", Pattern: `[{},]`},
	})

	fileParser = participle.MustBuild[File](
		participle.Lexer(sketchLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.Unquote("String"),
	)
)

// File is the syntax tree of a sketch file.
type File struct {
	Glyphs []*Glyph `parser:"@@*"`
}

// Glyph lists the strokes of one character.
type Glyph struct {
	Pos     lexer.Position `parser:""`
	Char    string         `parser:"'glyph' @String"`
	Strokes []*Stroke      `parser:"'{' @@* '}'"`
}

// Stroke is one pen stroke.
type Stroke struct {
	Pos    lexer.Position `parser:""`
	Pen    string         `parser:"'stroke' @Ident"`
	Width  *float64       `parser:"( 'width' @Number )?"`
	Points []*Point       `parser:"'{' @@* '}'"`
}

// Point is a coordinate pair "x,y".
type Point struct {
	X float64 `parser:"@Number ','"`
	Y float64 `parser:"@Number"`
}

// ErrDuplicateGlyph is returned if a character is listed more than once.
var ErrDuplicateGlyph = errors.New("sketch: duplicate glyph")

// ParseFile parses a sketch file into its syntax tree.
// The name is only used in error messages.
func ParseFile(name string, r io.Reader) (*File, error) {
	return fileParser.Parse(name, r)
}

// Parse reads a sketch file and converts it into stroke data.
func Parse(name string, r io.Reader) (stroke.GlyphData, error) {
	f, err := ParseFile(name, r)
	if err != nil {
		return nil, err
	}
	return f.GlyphData()
}

// GlyphData converts the syntax tree into stroke data.
func (f *File) GlyphData() (stroke.GlyphData, error) {
	res := make(stroke.GlyphData, len(f.Glyphs))
	for _, g := range f.Glyphs {
		c, err := stroke.CharKey(g.Char)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", g.Pos, err)
		}
		if _, dup := res[c]; dup {
			return nil, fmt.Errorf("%s: %w %q", g.Pos, ErrDuplicateGlyph, c)
		}

		strokes := make([]stroke.Stroke, 0, len(g.Strokes))
		for _, s := range g.Strokes {
			pen, err := stroke.ParsePenType(s.Pen)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", s.Pos, err)
			}
			st := stroke.Stroke{Pen: pen}
			if s.Width != nil {
				if *s.Width <= 0 {
					return nil, fmt.Errorf("%s: invalid stroke width %g", s.Pos, *s.Width)
				}
				st.Width = *s.Width
			}
			for _, p := range s.Points {
				st.Points = append(st.Points, stroke.Point{X: p.X, Y: p.Y})
			}
			strokes = append(strokes, st)
		}
		res[c] = strokes
	}
	return res, nil
}

// Write writes stroke data in sketch format.  Characters are written in
// order of increasing code point.
func Write(w io.Writer, d stroke.GlyphData) error {
	bw := bufio.NewWriter(w)

	keys := make([]rune, 0, len(d))
	for c := range d {
		keys = append(keys, c)
	}
	slices.Sort(keys)

	for i, c := range keys {
		if i > 0 {
			bw.WriteString("\n")
		}
		fmt.Fprintf(bw, "glyph %s {\n", strconv.Quote(string(c)))
		for _, s := range d[c] {
			fmt.Fprintf(bw, "  stroke %s", s.Pen)
			if s.Width > 0 {
				fmt.Fprintf(bw, " width %s", formatNum(s.Width))
			}
			bw.WriteString(" {")
			for _, p := range s.Points {
				fmt.Fprintf(bw, " %s,%s", formatNum(p.X), formatNum(p.Y))
			}
			bw.WriteString(" }\n")
		}
		bw.WriteString("}\n")
	}
	return bw.Flush()
}

// formatNum formats a coordinate with the precision of the editor.
func formatNum(x float64) string {
	return float.Format(x, 3)
}
