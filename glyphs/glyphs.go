// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package glyphs provides fixed 8×16 monochrome glyph tables.
//
// A table is a flat byte slice. Glyph c starts at offset c*16 and holds
// sixteen rows of one byte each, most significant bit leftmost. Codepoints
// whose glyph would start past the end of the table render blank.
//
// Basic builds a table from the 7×13 face in golang.org/x/image/font/basicfont.
// Load reads a raw table in the same layout, such as a unifont dump.
package glyphs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Glyph cell dimensions.
const (
	Width  = 8
	Height = 16
)

// Count is the number of codepoints in the table returned by Basic.
const Count = 256

// basicBaseline places the 13 pixel basicfont glyphs in the middle of the
// 16 pixel cell: two blank rows above the ascent, one below the descent.
const basicBaseline = 13

// ErrTruncated is returned by Load when the data does not hold a whole
// number of glyphs.
var ErrTruncated = errors.New("glyphs: table length is not a multiple of 16")

var basic = sync.OnceValue(func() []byte {
	return FromFace(basicfont.Face7x13, Count, basicBaseline)
})

// Basic returns the built-in table covering codepoints 0-255.
// The slice is shared and must not be modified.
func Basic() []byte {
	return basic()
}

// FromFace rasterizes the first count codepoints of face into a table.
// baseline is the row of the glyph cell the face's baseline sits on.
// Non-printable codepoints and glyphs the face lacks are left blank; mask
// pixels with at least half coverage become set bits.
func FromFace(face font.Face, count, baseline int) []byte {
	table := make([]byte, count*Height)
	dot := fixed.P(0, baseline)

	for c := range count {
		r := rune(c)
		if !unicode.IsPrint(r) {
			continue
		}
		dr, mask, mp, _, ok := face.Glyph(dot, r)
		if !ok {
			continue
		}
		rows := table[c*Height : (c+1)*Height]
		for y := max(dr.Min.Y, 0); y < min(dr.Max.Y, Height); y++ {
			for x := max(dr.Min.X, 0); x < min(dr.Max.X, Width); x++ {
				_, _, _, a := mask.At(mp.X+x-dr.Min.X, mp.Y+y-dr.Min.Y).RGBA()
				if a >= 0x8000 {
					rows[y] |= 0x80 >> x
				}
			}
		}
	}
	return table
}

// Rows returns the sixteen row bytes of glyph r, or nil when the table
// has no entry for it.
func Rows(table []byte, r rune) []byte {
	if r < 0 {
		return nil
	}
	off := int(r) * Height
	if off < 0 || off+Height > len(table) {
		return nil
	}
	return table[off : off+Height]
}

// Load reads a raw glyph table.
func Load(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("glyphs: read table: %w", err)
	}
	if len(data)%Height != 0 {
		return nil, ErrTruncated
	}
	return data, nil
}

// LoadFile reads a raw glyph table from disk.
func LoadFile(path string) ([]byte, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return Load(f)
}
