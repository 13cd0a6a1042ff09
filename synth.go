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

package handfont

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/handfont/encode"
	"seehuhn.de/go/handfont/fontbuild"
	"seehuhn.de/go/handfont/geometry"
	"seehuhn.de/go/handfont/geometry/canvasgeom"
	"seehuhn.de/go/handfont/internal/logging"
	"seehuhn.de/go/handfont/merge"
	"seehuhn.de/go/handfont/normalize"
	"seehuhn.de/go/handfont/ribbon"
	"seehuhn.de/go/handfont/stroke"
)

// BoldMultiplier is the weight multiplier used by [Synthesizer.Bold].
const BoldMultiplier = 2.5

// Options control font synthesis.
type Options struct {
	// AutoScale selects per-character scaling to the target height of the
	// character class.  If false, all characters use the same fixed scale.
	AutoScale bool

	// WeightMultiplier scales the width of all strokes.  Zero means 1.
	WeightMultiplier float64

	// Bold marks the generated font as bold.
	Bold bool

	Metadata fontbuild.Metadata

	// Workers is the number of characters processed concurrently.
	// Values below 2 disable concurrency.
	Workers int
}

func (opt *Options) params() ribbon.Params {
	return ribbon.Params{WeightMultiplier: opt.WeightMultiplier}
}

// Synthesizer turns stroke data into fonts.
type Synthesizer struct {
	Geometry geometry.Geometry

	// Logger receives diagnostics.  If nil, the logger installed with
	// [SetLogger] is used.
	Logger *slog.Logger
}

// New returns a synthesizer which uses the given geometry provider.
// If g is nil, the provider from the canvasgeom package is used.
func New(g geometry.Geometry) *Synthesizer {
	if g == nil {
		g = canvasgeom.New()
	}
	return &Synthesizer{Geometry: g}
}

func (s *Synthesizer) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return logging.Logger()
}

func (s *Synthesizer) ready() error {
	if s.Geometry == nil {
		return ErrGeometryUnavailable
	}
	if err := s.Geometry.Ready(); err != nil {
		return fmt.Errorf("%w: %w", ErrGeometryUnavailable, err)
	}
	return nil
}

// GlyphResult holds the intermediate and final results for one character.
type GlyphResult struct {
	Rune      rune
	Class     normalize.Class
	Transform normalize.Transform
	Ribbons   []ribbon.Result
	Merge     merge.Result
	Path      *path.Data
	Advance   float64
}

// Glyph synthesizes the outline of a single character.  If none of the
// strokes adds ink, the result is nil.
func (s *Synthesizer) Glyph(r rune, strokes []stroke.Stroke, opt *Options) (*GlyphResult, error) {
	if opt == nil {
		opt = &Options{}
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.glyph(r, strokes, opt), nil
}

func (s *Synthesizer) glyph(r rune, strokes []stroke.Stroke, opt *Options) *GlyphResult {
	log := s.logger()
	g := s.Geometry

	res := &GlyphResult{
		Rune:      r,
		Class:     normalize.ClassOf(r),
		Transform: normalize.New(strokes, r, opt.AutoScale),
	}

	params := opt.params()
	var shapes []geometry.Shape
	for i, st := range strokes {
		rb, ok := ribbon.Build(g, st, res.Transform, params)
		if !ok {
			continue
		}
		if rb.Err != nil {
			log.Warn("self-union failed, keeping raw ribbon",
				"char", string(r), "stroke", i, "err", rb.Err)
		}
		res.Ribbons = append(res.Ribbons, rb)
		shapes = append(shapes, rb.Shape)
	}
	if len(shapes) == 0 {
		return nil
	}

	res.Merge = merge.Merge(g, shapes)
	if res.Merge.Err != nil {
		log.Warn("union failed, using unmerged ribbons",
			"char", string(r), "ribbons", len(shapes), "err", res.Merge.Err)
	}
	res.Path = encode.Loops(res.Merge.Loops())

	src := res.Merge.BoundsSource()
	ok := src.NumNodes() > 0
	var box rect.Rect
	if ok {
		box = g.BBox(src)
	}
	res.Advance = fontbuild.AdvanceWidth(box, ok)
	if !ok || !(box.URx-box.LLx > 0) {
		log.Warn("no usable outline width, using fallback advance",
			"char", string(r), "advance", res.Advance)
	}

	log.Debug("glyph",
		"char", string(r),
		"class", res.Class,
		"strokes", len(strokes),
		"ribbons", len(shapes),
		"merged", res.Merge.Merged(),
		"contours", encode.NumContours(res.Path),
		"advance", res.Advance)
	return res
}

// Glyphs synthesizes the outlines of all drawn characters, in order of
// increasing code point.  Characters without ink, and characters which
// cannot be represented in the font, are omitted.
func (s *Synthesizer) Glyphs(data stroke.GlyphData, opt *Options) ([]fontbuild.Glyph, error) {
	if opt == nil {
		opt = &Options{}
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	log := s.logger()

	var runes []rune
	for _, r := range data.Runes() {
		switch {
		case len(data.Inked(r)) == 0:
			log.Debug("no ink", "char", string(r))
		case r == 0 || r == ' ':
			log.Warn("drawing replaced by built-in glyph", "char", fmt.Sprintf("U+%04X", r))
		case r > 0xFFFF:
			log.Warn("character outside the BMP skipped", "char", string(r))
		default:
			runes = append(runes, r)
		}
	}

	results := make([]*GlyphResult, len(runes))
	work := func(i int) {
		results[i] = s.glyph(runes[i], data[runes[i]], opt)
	}
	if opt.Workers > 1 && len(runes) > 1 {
		jobs := make(chan int)
		var wg sync.WaitGroup
		wg.Add(opt.Workers)
		for range opt.Workers {
			go func() {
				defer wg.Done()
				for i := range jobs {
					work(i)
				}
			}()
		}
		for i := range runes {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
	} else {
		for i := range runes {
			work(i)
		}
	}

	var glyphs []fontbuild.Glyph
	for _, res := range results {
		if res == nil {
			continue
		}
		glyphs = append(glyphs, fontbuild.Glyph{
			Name:    fontbuild.GlyphName(res.Rune),
			Rune:    res.Rune,
			Advance: res.Advance,
			Path:    res.Path,
		})
	}
	return glyphs, nil
}

// Assemble builds and serializes a font from synthesized glyphs.
func (s *Synthesizer) Assemble(glyphs []fontbuild.Glyph, opt *Options) ([]byte, error) {
	if opt == nil {
		opt = &Options{}
	}
	f, err := fontbuild.Build(glyphs, opt.Metadata, &fontbuild.BuildOptions{Bold: opt.Bold})
	if err != nil {
		return nil, &SynthesisError{Stage: "assemble", Err: err}
	}
	buf, err := fontbuild.Encode(f)
	if err != nil {
		return nil, &SynthesisError{Stage: "encode", Err: err}
	}
	return buf, nil
}

// Font runs the complete pipeline and returns the binary font file.
// The output only depends on data and opt.
func (s *Synthesizer) Font(data stroke.GlyphData, opt *Options) ([]byte, error) {
	glyphs, err := s.Glyphs(data, opt)
	if err != nil {
		return nil, err
	}
	return s.Assemble(glyphs, opt)
}

// WithBold returns a copy of o set up for a simulated bold font.  An unset
// WeightMultiplier becomes BoldMultiplier, and a style name which is unset
// or "Regular" becomes "Bold".
func (o Options) WithBold() Options {
	o.Bold = true
	if o.WeightMultiplier == 0 {
		o.WeightMultiplier = BoldMultiplier
	}
	style := strings.TrimSpace(o.Metadata.StyleName)
	if style == "" || strings.EqualFold(style, fontbuild.DefaultStyleName) {
		o.Metadata.StyleName = "Bold"
	}
	return o
}

// Bold generates a simulated bold font, see [Options.WithBold].
func (s *Synthesizer) Bold(data stroke.GlyphData, opt *Options) ([]byte, error) {
	o := Options{}
	if opt != nil {
		o = *opt
	}
	o = o.WithBold()
	return s.Font(data, &o)
}
