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

// Package handfont turns hand-drawn pen strokes into an installable font.
//
// For every drawn character, the strokes are mapped into font design space
// (see package normalize), each stroke is widened into a closed ribbon
// (package ribbon), the ribbons are merged into one outline (package merge),
// and the outline is converted into path commands (package encode).  The
// glyphs are then assembled into an OpenType font (package fontbuild).
//
// A typical use looks like this:
//
//	data, err := stroke.DecodeJSON(r)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	s := handfont.New(nil)
//	ttf, err := s.Font(data, &handfont.Options{AutoScale: true})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The library does not produce log output by default.  Use [SetLogger] to
// see warnings about glyphs which could not be fully merged.
package handfont
