package px

// LinearGradient fills the rectangle (rx, ry, rw, rh) with a gradient that
// runs from start at (sx, sy) to end at (ex, ey).
//
// Each pixel is projected onto the start→end vector and the scalar
// projection, clamped to [0, 1], selects the color via Interpolate. When
// the two points coincide the rectangle is filled with start. Vertical and
// horizontal gradients are constant along one axis and are drawn as rows or
// columns of a single color.
func (r *Renderer) LinearGradient(rx, ry, rw, rh, sx, sy, ex, ey int, start, end Color) {
	if sx == ex && sy == ey {
		r.Rect(rx, ry, rw, rh, start)
		return
	}

	// Rows and columns outside the surface cannot change anything.
	x0, x1 := clipSpan(rx, rw, r.Width())
	y0, y1 := clipSpan(ry, rh, r.Height())
	gx := float64(ex) - float64(sx)
	gy := float64(ey) - float64(sy)

	switch {
	case sx == ex:
		for y := y0; y < y1; y++ {
			t := clamp01((float64(y) - float64(sy)) / gy)
			r.Rect(x0, y, x1-x0, 1, Interpolate(start, end, t))
		}

	case sy == ey:
		for x := x0; x < x1; x++ {
			t := clamp01((float64(x) - float64(sx)) / gx)
			r.Rect(x, y0, 1, y1-y0, Interpolate(start, end, t))
		}

	default:
		lenSq := gx*gx + gy*gy
		for y := y0; y < y1; y++ {
			dy := float64(y) - float64(sy)
			for x := x0; x < x1; x++ {
				dx := float64(x) - float64(sx)
				t := clamp01((dx*gx + dy*gy) / lenSq)
				r.Pixel(x, y, Interpolate(start, end, t))
			}
		}
	}
}

func clamp01(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	}
	return t
}
