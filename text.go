package px

import (
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/px/glyphs"
)

// Char draws the 8×16 glyph for r with its top-left corner at (x, y).
// Set bits are composited with c; clear bits leave the surface alone.
// Codepoints outside the font table draw nothing.
func (r *Renderer) Char(x, y int, ch rune, c Color) {
	rows := glyphs.Rows(r.fontTable(), ch)
	for row, bits := range rows {
		if bits == 0 {
			continue
		}
		for col := range glyphs.Width {
			if bits&(0x80>>col) != 0 {
				r.Pixel(x+col, y+row, c)
			}
		}
	}
}

// Text draws s starting at (x, y), one glyph cell per rune. The string is
// normalized to NFC first so that combining sequences with a precomposed
// form map to a single glyph. A newline moves to the start of the next
// 16 pixel line.
func (r *Renderer) Text(x, y int, s string, c Color) {
	cx, cy := x, y
	for _, ch := range norm.NFC.String(s) {
		if ch == '\n' {
			cx = x
			cy += glyphs.Height
			continue
		}
		r.Char(cx, cy, ch, c)
		cx += glyphs.Width
	}
}
