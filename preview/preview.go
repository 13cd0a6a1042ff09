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

// Package preview hands generated fonts to their consumers: either as a
// revocable in-memory reference for live preview, or as a file download.
package preview

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"seehuhn.de/go/handfont/fontbuild"
	"seehuhn.de/go/handfont/internal/logging"
)

// ContentType is the media type of generated fonts.
const ContentType = "font/ttf"

// ErrReleased is returned when a released handle is used.
var ErrReleased = errors.New("preview: handle has been released")

// Registry issues references to font buffers.  At most one reference is
// live at any time: issuing a new reference releases the previous one.
//
// A Registry is safe for concurrent use.  The zero value is ready to use.
type Registry struct {
	mu      sync.Mutex
	current *Handle
	serial  uint64
}

// Handle is a revocable reference to a font buffer.
type Handle struct {
	url string

	mu   sync.Mutex
	buf  []byte
	done bool
}

// Issue returns a new handle for buf, after releasing the previously issued
// handle.  The registry keeps a reference to buf until the handle is
// released.
func (r *Registry) Issue(buf []byte) *Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current != nil {
		r.current.Release()
	}
	r.serial++
	h := &Handle{
		url: fmt.Sprintf("handfont:preview/%d", r.serial),
		buf: buf,
	}
	r.current = h
	logging.Logger().Debug("preview issued", "url", h.url, "size", len(buf))
	return h
}

// Live returns the number of handles which have not been released.
func (r *Registry) Live() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current == nil || r.current.released() {
		return 0
	}
	return 1
}

// Close releases the current handle, if any.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current != nil {
		r.current.Release()
		r.current = nil
	}
}

// URL returns the identifier of the handle.  The identifier stays valid
// after the handle has been released, but can no longer be resolved.
func (h *Handle) URL() string {
	return h.url
}

// Bytes returns the font data referenced by the handle.
func (h *Handle) Bytes() ([]byte, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.done {
		return nil, ErrReleased
	}
	return h.buf, nil
}

// Release revokes the handle.  Calling Release more than once is allowed.
func (h *Handle) Release() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.done {
		logging.Logger().Debug("preview released", "url", h.url)
	}
	h.buf = nil
	h.done = true
}

func (h *Handle) released() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.done
}

// Download writes the font to dir, using the file name derived from meta
// by [fontbuild.Filename].  The file is replaced atomically.  The full path
// of the written file is returned.
func Download(dir string, meta fontbuild.Metadata, buf []byte) (string, error) {
	name := filepath.Join(dir, fontbuild.Filename(meta))

	tmp, err := os.CreateTemp(dir, ".handfont-*.tmp")
	if err != nil {
		return "", err
	}
	tmpName := tmp.Name()
	_, err = tmp.Write(buf)
	if err == nil {
		err = tmp.Chmod(0o644)
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmpName, name)
	}
	if err != nil {
		os.Remove(tmpName)
		return "", err
	}
	return name, nil
}
