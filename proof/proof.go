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

// Package proof renders glyph outlines into a raster image, so that a
// generated font can be checked visually.
package proof

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/handfont/encode"
	"seehuhn.de/go/handfont/fontbuild"
)

// Options control the layout of a proof sheet.
type Options struct {
	// CellSize is the width and height of the cell for one glyph, in
	// pixels.  Zero means 96.
	CellSize int

	// Columns is the number of glyph cells per row.  Zero means 8.
	Columns int
}

func (opt *Options) withDefaults() Options {
	res := Options{}
	if opt != nil {
		res = *opt
	}
	if res.CellSize <= 0 {
		res.CellSize = 96
	}
	if res.Columns <= 0 {
		res.Columns = 8
	}
	return res
}

// Vertical extent of a cell, in design units.
const (
	cellTop    = fontbuild.Ascent + 100
	cellBottom = fontbuild.Descent - 100
)

var (
	guideColor   = color.Gray{Y: 0xC0}
	advanceColor = color.Gray{Y: 0xE0}
)

// Render draws the glyphs into a grid of cells, in the given order.  Each
// cell shows the glyph outline in black, the baseline in grey and the
// advance width as a light grey bar.
func Render(glyphs []fontbuild.Glyph, opt *Options) *image.Gray {
	o := opt.withDefaults()
	rows := (len(glyphs) + o.Columns - 1) / o.Columns
	width := o.Columns * o.CellSize
	height := max(rows, 1) * o.CellSize

	img := image.NewGray(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	sheet := &sheet{
		img:    img,
		raster: vector.NewRasterizer(width, height),
		scale:  float64(o.CellSize) / (cellTop - cellBottom),
	}
	for i, g := range glyphs {
		x0 := (i % o.Columns) * o.CellSize
		y0 := (i / o.Columns) * o.CellSize
		sheet.drawCell(g, x0, y0, o.CellSize)
	}
	return img
}

type sheet struct {
	img    *image.Gray
	raster *vector.Rasterizer
	scale  float64
}

func (s *sheet) drawCell(g fontbuild.Glyph, x0, y0, size int) {
	dev := func(p vec.Vec2) (float32, float32) {
		x := float64(x0) + p.X*s.scale
		y := float64(y0) + (cellTop-p.Y)*s.scale
		return float32(x), float32(y)
	}

	baseline := y0 + int(cellTop*s.scale)
	advance := x0 + int(g.Advance*s.scale)
	for x := x0; x < x0+size && x < advance; x++ {
		s.img.SetGray(x, baseline+1, advanceColor)
	}
	for x := x0; x < x0+size; x++ {
		s.img.SetGray(x, baseline, guideColor)
	}

	if g.Path == nil || len(g.Path.Cmds) == 0 {
		return
	}
	b := s.img.Bounds()
	s.raster.Reset(b.Dx(), b.Dy())
	w := &encode.Walk{
		MoveTo: func(p vec.Vec2) {
			s.raster.MoveTo(dev(p))
		},
		LineTo: func(p vec.Vec2) {
			s.raster.LineTo(dev(p))
		},
		QuadTo: func(c, p vec.Vec2) {
			cx, cy := dev(c)
			px, py := dev(p)
			s.raster.QuadTo(cx, cy, px, py)
		},
		CubeTo: func(c1, c2, p vec.Vec2) {
			x1, y1 := dev(c1)
			x2, y2 := dev(c2)
			x3, y3 := dev(p)
			s.raster.CubeTo(x1, y1, x2, y2, x3, y3)
		},
		Close: func() {
			s.raster.ClosePath()
		},
	}
	w.Run(g.Path)
	s.raster.Draw(s.img, b, image.Black, image.Point{})
}
