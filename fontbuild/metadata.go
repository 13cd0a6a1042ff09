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
	"fmt"
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/sfnt/head"
	"seehuhn.de/go/sfnt/os2"
)

// Default values for the font metadata.
const (
	DefaultFamilyName = "MyCustomFont"
	DefaultStyleName  = "Regular"
	DefaultAuthor     = "Font Maker"
	DefaultVersion    = "1.000"
)

// Metadata describes a font as a whole.
type Metadata struct {
	FamilyName string
	StyleName  string
	Author     string
	Version    string
}

// WithDefaults returns a copy of m where empty fields are replaced by their
// default values.  Fields consisting only of white space count as empty.
func (m Metadata) WithDefaults() Metadata {
	m.FamilyName = orDefault(m.FamilyName, DefaultFamilyName)
	m.StyleName = orDefault(m.StyleName, DefaultStyleName)
	m.Author = orDefault(m.Author, DefaultAuthor)
	m.Version = orDefault(m.Version, DefaultVersion)
	return m
}

func orDefault(s, def string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	return s
}

// Filename returns the name under which a font with the given metadata is
// saved, in the form "<Family>-<Style>.ttf".  All white space is removed.
func Filename(m Metadata) string {
	m = m.WithDefaults()
	return stripSpace(m.FamilyName) + "-" + stripSpace(m.StyleName) + ".ttf"
}

func stripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// ParseVersion converts a version string like "1.000" into the 16.16 fixed
// point format used in the font header.
func ParseVersion(s string) (head.Version, error) {
	x, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || x < 0 || x >= 65536 || math.IsNaN(x) {
		return 0, fmt.Errorf("fontbuild: invalid font version %q", s)
	}
	return head.Version(math.Round(x * 65536)), nil
}

// styleFlags derives weight and style flags from a style name like
// "Bold Italic".
type styleFlags struct {
	Weight   os2.Weight
	IsBold   bool
	IsItalic bool
}

func parseStyle(style string, bold bool) styleFlags {
	var res styleFlags
	for _, word := range strings.Fields(strings.ToLower(style)) {
		switch word {
		case "italic", "oblique":
			res.IsItalic = true
		case "bold":
			res.IsBold = true
		}
	}
	if bold {
		res.IsBold = true
	}

	res.Weight = os2.WeightFromString(style)
	if res.IsBold && res.Weight < os2.WeightBold {
		res.Weight = os2.WeightBold
	}
	if res.Weight == 0 {
		res.Weight = os2.WeightNormal
	}
	return res
}
