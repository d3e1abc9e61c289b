package px

import (
	"github.com/gogpu/px/glyphs"
	"github.com/gogpu/px/internal/parallel"
)

// Renderer rasterizes primitives into a Surface.
//
// Every drawing method clips against the surface bounds and composites
// through Blend. Nothing returns an error: coordinates outside the surface
// are skipped, so callers never need their own bounds checks.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	s    Surface
	font []byte
	pool *parallel.WorkerPool
}

// NewRenderer creates a renderer drawing into s.
func NewRenderer(s Surface, opts ...RendererOption) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{
		s:    s,
		font: o.font,
		pool: o.pool,
	}
}

// Surface returns the destination surface.
func (r *Renderer) Surface() Surface {
	return r.s
}

// Width returns the destination width in pixels.
func (r *Renderer) Width() int {
	return r.s.Width()
}

// Height returns the destination height in pixels.
func (r *Renderer) Height() int {
	return r.s.Height()
}

// Present forwards to the surface.
func (r *Renderer) Present() bool {
	return r.s.Present()
}

// buffer returns the pixel slice together with dimensions that are safe to
// index with: h is reduced if the surface hands out a short buffer.
func (r *Renderer) buffer() (pix []Color, w, h int) {
	pix = r.s.Pixels()
	w, h = r.s.Width(), r.s.Height()
	if w <= 0 || h <= 0 {
		return pix, 0, 0
	}
	if len(pix) < w*h {
		h = len(pix) / w
	}
	return pix, w, h
}

// Pixel composites c onto the pixel at (x, y). Coordinates outside the
// surface are ignored.
func (r *Renderer) Pixel(x, y int, c Color) {
	if c.A() == 0 {
		return
	}
	pix, w, h := r.buffer()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	i := y*w + x
	pix[i] = Blend(pix[i], c)
}

// GetPixel returns the color at (x, y), or the zero color outside the
// surface.
func (r *Renderer) GetPixel(x, y int) Color {
	pix, w, h := r.buffer()
	if x < 0 || y < 0 || x >= w || y >= h {
		return 0
	}
	return pix[y*w+x]
}

// Set overwrites every pixel with c. No blending takes place.
func (r *Renderer) Set(c Color) {
	pix, w, h := r.buffer()
	fillSpan(pix[:w*h], c)
}

// Clear sets the whole surface to opaque black.
func (r *Renderer) Clear() {
	r.Set(Black)
}

// Rect fills the rectangle with top-left corner (x, y) and size w×h.
//
// The rectangle is clipped to the surface; a rectangle with no visible
// area, or a fully transparent color, leaves the surface untouched. Opaque
// colors are written row by row in bulk, translucent ones are blended per
// pixel.
func (r *Renderer) Rect(x, y, w, h int, c Color) {
	a := c.A()
	if a == 0 || w <= 0 || h <= 0 {
		return
	}
	pix, sw, sh := r.buffer()

	x0, x1 := clipSpan(x, w, sw)
	y0, y1 := clipSpan(y, h, sh)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	for row := y0; row < y1; row++ {
		span := pix[row*sw+x0 : row*sw+x1]
		if a == 255 {
			fillSpan(span, c)
			continue
		}
		for i := range span {
			span[i] = Blend(span[i], c)
		}
	}
}

// fontTable returns the configured glyph table, falling back to the
// built-in one.
func (r *Renderer) fontTable() []byte {
	if r.font == nil {
		r.font = glyphs.Basic()
	}
	return r.font
}
