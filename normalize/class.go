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

package normalize

// Class is a bucket of characters which share a target height and a
// vertical anchor in auto-scale mode.
type Class uint8

// These are the supported character classes.
const (
	Default Class = iota
	Tall
	Short
	Descender
)

func (c Class) String() string {
	switch c {
	case Tall:
		return "tall"
	case Short:
		return "short"
	case Descender:
		return "descender"
	default:
		return "default"
	}
}

// Target returns the height, in design units, which a character of this
// class is scaled to in auto-scale mode.
func (c Class) Target() float64 {
	switch c {
	case Tall:
		return 700
	case Short:
		return 500
	case Descender:
		return 750
	default:
		return 600
	}
}

type classRange struct {
	lo, hi rune
	class  Class
}

// classTable must be sorted by lo, and ranges must not overlap.
var classTable = []classRange{
	{'0', '9', Tall},
	{'A', 'Z', Tall},
	{'a', 'a', Short},
	{'b', 'b', Tall},
	{'c', 'c', Short},
	{'d', 'd', Tall},
	{'e', 'e', Short},
	{'f', 'f', Tall},
	{'g', 'g', Descender},
	{'h', 'i', Tall},
	{'j', 'j', Descender},
	{'k', 'l', Tall},
	{'m', 'o', Short},
	{'p', 'q', Descender},
	{'r', 's', Short},
	{'t', 't', Tall},
	{'u', 'x', Short},
	{'y', 'y', Descender},
	{'z', 'z', Short},
}

// ClassOf returns the class of a character.  Characters not listed in the
// class table are in class Default.
func ClassOf(r rune) Class {
	lo, hi := 0, len(classTable)
	for lo < hi {
		mid := (lo + hi) / 2
		e := classTable[mid]
		switch {
		case r < e.lo:
			hi = mid
		case r > e.hi:
			lo = mid + 1
		default:
			return e.class
		}
	}
	return Default
}
