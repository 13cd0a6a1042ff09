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
	"log/slog"

	"seehuhn.de/go/handfont/internal/logging"
)

// SetLogger configures the logger for handfont and all its sub-packages.
// By default, no log output is produced.  Pass nil to restore the default.
//
// Log levels used:
//   - [slog.LevelDebug]: per-character statistics
//   - [slog.LevelWarn]: recoverable problems, like a failed union which
//     leaves a glyph with overlapping contours
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}
