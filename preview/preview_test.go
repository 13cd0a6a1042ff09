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

package preview

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"seehuhn.de/go/handfont/fontbuild"
)

func TestIssueReleasesPrevious(t *testing.T) {
	r := &Registry{}
	if r.Live() != 0 {
		t.Fatal("new registry has live handles")
	}

	h1 := r.Issue([]byte("first"))
	if r.Live() != 1 {
		t.Errorf("Live() = %d, want 1", r.Live())
	}
	h2 := r.Issue([]byte("second"))
	if r.Live() != 1 {
		t.Errorf("Live() = %d, want 1", r.Live())
	}
	if h1.URL() == h2.URL() {
		t.Error("handles share a URL")
	}

	if _, err := h1.Bytes(); !errors.Is(err, ErrReleased) {
		t.Errorf("old handle: got error %v", err)
	}
	buf, err := h2.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if string(buf) != "second" {
		t.Errorf("got %q", buf)
	}

	h2.Release()
	h2.Release()
	if r.Live() != 0 {
		t.Errorf("Live() = %d after release", r.Live())
	}
	if _, err := h2.Bytes(); !errors.Is(err, ErrReleased) {
		t.Errorf("released handle: got error %v", err)
	}
}

func TestConcurrentIssue(t *testing.T) {
	r := &Registry{}
	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h := r.Issue([]byte{byte(i)})
			h.Bytes()
		}()
	}
	wg.Wait()
	if n := r.Live(); n != 1 {
		t.Errorf("Live() = %d, want 1", n)
	}
	r.Close()
	if n := r.Live(); n != 0 {
		t.Errorf("Live() = %d after Close, want 0", n)
	}
}

func TestDownload(t *testing.T) {
	dir := t.TempDir()
	meta := fontbuild.Metadata{FamilyName: "My Hand", StyleName: "Bold Italic"}
	data := []byte("OTTO font data")

	name, err := Download(dir, meta, data)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "MyHand-BoldItalic.ttf"); name != want {
		t.Errorf("name = %q, want %q", name, want)
	}
	got, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, data) {
		t.Error("file contents differ")
	}

	// overwrite an existing file
	if _, err := Download(dir, meta, []byte("new")); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("got %d files, want 1", len(entries))
	}

	if _, err := Download(filepath.Join(dir, "missing"), meta, data); err == nil {
		t.Error("download into missing directory succeeded")
	}
}
