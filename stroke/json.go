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

package stroke

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// ErrBadCharacter indicates a glyph key which is not a single character.
var ErrBadCharacter = errors.New("stroke: key is not a single character")

// CharKey converts a character key of the editor snapshot into a rune.
// The key is NFC normalised first, so that a decomposed "e" plus combining
// accent is accepted as the single character "é".
func CharKey(key string) (rune, error) {
	s := norm.NFC.String(key)
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrBadCharacter, key)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return 0, fmt.Errorf("%w: %q", ErrBadCharacter, key)
	}
	return r, nil
}

// DecodeJSON reads an editor snapshot of the form
//
//	{"A": [{"points": [{"x": 1, "y": 2}, ...], "type": "normal", "width": 8}]}
func DecodeJSON(r io.Reader) (GlyphData, error) {
	var raw map[string][]Stroke
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("stroke: %w", err)
	}

	res := make(GlyphData, len(raw))
	for key, strokes := range raw {
		c, err := CharKey(key)
		if err != nil {
			return nil, err
		}
		if _, dup := res[c]; dup {
			return nil, fmt.Errorf("stroke: duplicate character %q", c)
		}
		res[c] = strokes
	}
	return res, nil
}

// EncodeJSON writes the glyph data in the format read by [DecodeJSON].
func (d GlyphData) EncodeJSON(w io.Writer) error {
	raw := make(map[string][]Stroke, len(d))
	for c, strokes := range d {
		raw[string(c)] = strokes
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(raw)
}
