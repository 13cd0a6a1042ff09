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
	"errors"
	"fmt"
)

// ErrGeometryUnavailable is returned when the geometry provider cannot be
// used.  No partial font is produced in this case.
var ErrGeometryUnavailable = errors.New("handfont: geometry provider unavailable")

// SynthesisError reports a failure in one stage of font synthesis.
type SynthesisError struct {
	Stage string // "assemble" or "encode"
	Rune  rune   // the affected character, or 0 for font-level failures
	Err   error
}

func (err *SynthesisError) Error() string {
	where := ""
	if err.Rune != 0 {
		where = fmt.Sprintf(" for U+%04X", err.Rune)
	}
	return "handfont: " + err.Stage + " failed" + where + ": " + err.Err.Error()
}

func (err *SynthesisError) Unwrap() error {
	return err.Err
}
