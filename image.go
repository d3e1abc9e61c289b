package px

// parallelBlitMin is the smallest blit, in pixels, that is split across the
// worker pool.
const parallelBlitMin = 64 * 1024

// Image composites a w×h block of row-major colors with its top-left corner
// at (x, y). Pixels that fall outside the surface, or whose index lies past
// the end of data, are skipped individually.
//
// When the block is fully visible and data is long enough, rows are copied
// without per-pixel bounds checks, and large blocks are split into disjoint
// row bands on the renderer's worker pool. Every path composites through
// Blend in the same order per pixel, so the output does not depend on the
// path taken.
func (r *Renderer) Image(x, y, w, h int, data []Color) {
	if w <= 0 || h <= 0 || len(data) == 0 {
		return
	}
	pix, sw, sh := r.buffer()

	inside := x >= 0 && y >= 0 && w <= sw-x && h <= sh-y && len(data)/w >= h
	if !inside {
		Logger().Debug("px: image blit", "path", "clipped", "w", w, "h", h)
		r.imageClipped(pix, sw, sh, x, y, w, h, data)
		return
	}

	blit := func(y0, y1 int) {
		for row := y0; row < y1; row++ {
			off := (y+row)*sw + x
			dst := pix[off : off+w]
			src := data[row*w : row*w+w]
			for i, c := range src {
				dst[i] = Blend(dst[i], c)
			}
		}
	}

	if r.pool != nil && w*h >= parallelBlitMin && h > 1 {
		Logger().Debug("px: image blit", "path", "parallel", "w", w, "h", h, "workers", r.pool.Workers())
		r.pool.Rows(h, r.pool.Workers(), blit)
		return
	}

	Logger().Debug("px: image blit", "path", "direct", "w", w, "h", h)
	blit(0, h)
}

func (r *Renderer) imageClipped(pix []Color, sw, sh, x, y, w, h int, data []Color) {
	y0, y1 := clipSpan(y, h, sh)
	x0, x1 := clipSpan(x, w, sw)
	last := (len(data) - 1) / w // last row with any data
	for py := y0; py < y1; py++ {
		row := py - y
		if row > last {
			return
		}
		base := row * w
		for cx := x0; cx < x1; cx++ {
			col := cx - x
			if col >= len(data)-base {
				return
			}
			d := py*sw + cx
			pix[d] = Blend(pix[d], data[base+col])
		}
	}
}
