package px

import "math"

// WuLine draws an antialiased line from (x0, y0) to (x1, y1) with Xiaolin
// Wu's algorithm. Along the minor axis every step covers a pair of pixels
// whose alphas are split by the fractional position of the ideal line, so
// the pair sums to the alpha of c.
func (r *Renderer) WuLine(x0, y0, x1, y1 int, c Color) {
	fx0, fy0 := float64(x0), float64(y0)
	fx1, fy1 := float64(x1), float64(y1)

	steep := math.Abs(fy1-fy0) > math.Abs(fx1-fx0)
	if steep {
		fx0, fy0 = fy0, fx0
		fx1, fy1 = fy1, fx1
	}
	if fx0 > fx1 {
		fx0, fx1 = fx1, fx0
		fy0, fy1 = fy1, fy0
	}

	plot := func(x, y int, coverage float64) {
		if steep {
			x, y = y, x
		}
		r.Pixel(x, y, scaleAlpha(c, coverage))
	}

	dx := fx1 - fx0
	dy := fy1 - fy0
	gradient := 1.0
	if dx != 0 {
		gradient = dy / dx
	}

	// first endpoint
	xend := math.Round(fx0)
	yend := fy0 + gradient*(xend-fx0)
	xgap := rfpart(fx0 + 0.5)
	xpx1 := int(xend)
	ypx1 := int(math.Floor(yend))
	plot(xpx1, ypx1, rfpart(yend)*xgap)
	plot(xpx1, ypx1+1, fpart(yend)*xgap)
	intery := yend + gradient

	// second endpoint
	xend = math.Round(fx1)
	yend = fy1 + gradient*(xend-fx1)
	xgap = fpart(fx1 + 0.5)
	xpx2 := int(xend)
	ypx2 := int(math.Floor(yend))
	plot(xpx2, ypx2, rfpart(yend)*xgap)
	plot(xpx2, ypx2+1, fpart(yend)*xgap)

	for x := xpx1 + 1; x < xpx2; x++ {
		y := int(math.Floor(intery))
		plot(x, y, rfpart(intery))
		plot(x, y+1, fpart(intery))
		intery += gradient
	}
}

// WuCircle draws an antialiased circle outline. Each step of the walk
// splits the alpha of c between the pixel on the ideal circle and its
// inward neighbour according to the distance to the exact radius.
func (r *Renderer) WuCircle(x0, y0, radius int, c Color) {
	radius = abs(radius)
	if radius == 0 {
		r.Pixel(x0, y0, c)
		return
	}

	x, y := radius, 0
	r.Pixel(x0+x, y0, c)
	r.Pixel(x0-x, y0, c)
	r.Pixel(x0, y0+x, c)
	r.Pixel(x0, y0-x, c)

	prev := 0.0
	for y = 1; x > y; y++ {
		d := wuDistance(radius, y)
		if d < prev {
			x--
		}
		prev = d

		outer := scaleAlpha(c, 1-d)
		inner := scaleAlpha(c, d)

		r.Pixel(x0+x, y0+y, outer)
		r.Pixel(x0+x-1, y0+y, inner)
		r.Pixel(x0-x, y0+y, outer)
		r.Pixel(x0-x+1, y0+y, inner)
		r.Pixel(x0+x, y0-y, outer)
		r.Pixel(x0+x-1, y0-y, inner)
		r.Pixel(x0-x, y0-y, outer)
		r.Pixel(x0-x+1, y0-y, inner)

		if x == y {
			// The diagonal pixel is shared by both octant halves.
			continue
		}
		r.Pixel(x0+y, y0+x, outer)
		r.Pixel(x0+y, y0+x-1, inner)
		r.Pixel(x0-y, y0+x, outer)
		r.Pixel(x0-y, y0+x-1, inner)
		r.Pixel(x0+y, y0-x, outer)
		r.Pixel(x0+y, y0-x+1, inner)
		r.Pixel(x0-y, y0-x, outer)
		r.Pixel(x0-y, y0-x+1, inner)
	}
}

// wuDistance returns how far the exact circle point at row y lies inside
// the next integer column: ceil(x) - x for x = sqrt(r²-y²).
func wuDistance(radius, y int) float64 {
	x := math.Sqrt(float64(radius*radius - y*y))
	return math.Ceil(x) - x
}

// scaleAlpha returns c with its alpha multiplied by coverage in [0, 1].
func scaleAlpha(c Color, coverage float64) Color {
	coverage = min(max(coverage, 0), 1)
	return c.WithAlpha(uint8(float64(c.A()) * coverage))
}

func fpart(v float64) float64 {
	return v - math.Floor(v)
}

func rfpart(v float64) float64 {
	return 1 - fpart(v)
}
