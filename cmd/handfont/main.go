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

// Handfont converts hand-drawn strokes into an OpenType font.
//
// Usage:
//
//	handfont [options] input.json|input.glyphs
//
// The input is either an editor snapshot in JSON format, or a sketch file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/term"
	"golang.org/x/text/unicode/runenames"

	"seehuhn.de/go/handfont"
	"seehuhn.de/go/handfont/fontbuild"
	"seehuhn.de/go/handfont/preview"
	"seehuhn.de/go/handfont/proof"
	"seehuhn.de/go/handfont/sketch"
	"seehuhn.de/go/handfont/stroke"
)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "handfont: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout *os.File, stderr io.Writer) error {
	flags := flag.NewFlagSet("handfont", flag.ContinueOnError)
	flags.SetOutput(stderr)
	auto := flags.Bool("auto", false, "scale every character to the height of its class")
	bold := flags.Bool("bold", false, "generate a simulated bold font")
	weight := flags.Float64("weight", 0, "stroke width multiplier (default 1, or 2.5 with -bold)")
	family := flags.String("family", fontbuild.DefaultFamilyName, "font family name")
	style := flags.String("style", fontbuild.DefaultStyleName, "font style name")
	author := flags.String("author", fontbuild.DefaultAuthor, "designer name")
	version := flags.String("version", fontbuild.DefaultVersion, "font version")
	outDir := flags.String("o", ".", "output directory, or \"-\" for standard output")
	proofFile := flags.String("proof", "", "write a PNG proof sheet to this file")
	workers := flags.Int("workers", runtime.NumCPU(), "number of characters processed in parallel")
	verbose := flags.Bool("v", false, "list the generated glyphs")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: handfont [options] input.json|input.glyphs\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return flag.ErrHelp
	}
	inputFile := flags.Arg(0)

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	handfont.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer handfont.SetLogger(nil)

	if *outDir == "-" && term.IsTerminal(int(stdout.Fd())) {
		return errors.New("refusing to write font data to a terminal")
	}
	if _, err := fontbuild.ParseVersion(*version); err != nil {
		return err
	}

	data, err := readInput(inputFile)
	if err != nil {
		return err
	}

	opt := &handfont.Options{
		AutoScale:        *auto,
		WeightMultiplier: *weight,
		Metadata: fontbuild.Metadata{
			FamilyName: *family,
			StyleName:  *style,
			Author:     *author,
			Version:    *version,
		},
		Workers: *workers,
	}
	if *bold {
		*opt = opt.WithBold()
	}

	s := handfont.New(nil)
	glyphs, err := s.Glyphs(data, opt)
	if err != nil {
		return err
	}
	if *verbose {
		for _, g := range glyphs {
			fmt.Fprintf(stderr, "U+%04X %-12s %5.0f  %s\n",
				g.Rune, g.Name, g.Advance, runenames.Name(g.Rune))
		}
	}

	buf, err := s.Assemble(glyphs, opt)
	if err != nil {
		return err
	}

	if *proofFile != "" {
		all := append([]fontbuild.Glyph{fontbuild.Notdef(), fontbuild.Space()}, glyphs...)
		if err := writeProof(*proofFile, all); err != nil {
			return err
		}
	}

	if *outDir == "-" {
		_, err = stdout.Write(buf)
		return err
	}
	name, err := preview.Download(*outDir, opt.Metadata, buf)
	if err != nil {
		return err
	}
	fmt.Fprintf(stderr, "wrote %d glyphs to %s\n", len(glyphs)+2, name)
	return nil
}

func readInput(fname string) (stroke.GlyphData, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	switch strings.ToLower(filepath.Ext(fname)) {
	case ".json":
		return stroke.DecodeJSON(fd)
	case ".glyphs", ".sketch":
		return sketch.Parse(fname, fd)
	default:
		return nil, fmt.Errorf("%s: unknown input format", fname)
	}
}

func writeProof(fname string, glyphs []fontbuild.Glyph) error {
	img := proof.Render(glyphs, nil)
	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = png.Encode(out, img)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}
