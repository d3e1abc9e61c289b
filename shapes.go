package px

// Octant bits for Arc. Each selects one of the eight reflections of the
// first-octant midpoint walk; (dx, dy) is the offset from the center.
const (
	OctantBottomLeftLow   uint8 = 1 << 0 // (-x, +y)
	OctantBottomRightLow  uint8 = 1 << 1 // (+x, +y)
	OctantBottomLeftHigh  uint8 = 1 << 2 // (-y, +x)
	OctantBottomRightHigh uint8 = 1 << 3 // (+y, +x)
	OctantTopLeftLow      uint8 = 1 << 4 // (-x, -y)
	OctantTopRightLow     uint8 = 1 << 5 // (+x, -y)
	OctantTopLeftHigh     uint8 = 1 << 6 // (-y, -x)
	OctantTopRightHigh    uint8 = 1 << 7 // (+y, -x)

	QuadrantBottomLeft  = OctantBottomLeftLow | OctantBottomLeftHigh
	QuadrantBottomRight = OctantBottomRightLow | OctantBottomRightHigh
	QuadrantTopLeft     = OctantTopLeftLow | OctantTopLeftHigh
	QuadrantTopRight    = OctantTopRightLow | OctantTopRightHigh
	AllOctants          = uint8(0xFF)
)

// Line draws a one pixel wide line from (x1, y1) to (x2, y2) inclusive
// using Bresenham's algorithm. Swapping the endpoints paints the same
// pixels.
//
// A line whose bounding box misses the surface draws nothing. Endpoints
// more than a million pixels outside the surface are first cut to its
// margin, which may move the visible pixels by one.
func (r *Renderer) Line(x1, y1, x2, y2 int, c Color) {
	_, sw, sh := r.buffer()
	if max(x1, x2) < 0 || max(y1, y2) < 0 || min(x1, x2) >= sw || min(y1, y2) >= sh {
		return
	}

	// Walk from the lexicographically smaller endpoint so that the error
	// term breaks ties identically in both directions.
	if x2 < x1 || (x2 == x1 && y2 < y1) {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	if farOutside(x1, sw) || farOutside(x2, sw) || farOutside(y1, sh) || farOutside(y2, sh) {
		var ok bool
		if x1, y1, x2, y2, ok = clipLine(x1, y1, x2, y2, sw, sh); !ok {
			return
		}
		if x2 < x1 || (x2 == x1 && y2 < y1) {
			x1, y1, x2, y2 = x2, y2, x1, y1
		}
	}

	dx := x2 - x1
	dy := abs(y2 - y1)
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	x, y := x1, y1
	for {
		r.Pixel(x, y, c)
		if x == x2 && y == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x++
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// Lines draws a polyline through points. A single point is drawn as a
// pixel; an empty slice draws nothing.
func (r *Renderer) Lines(points [][2]int, c Color) {
	switch len(points) {
	case 0:
		return
	case 1:
		r.Pixel(points[0][0], points[0][1], c)
		return
	}
	for i := 0; i+1 < len(points); i++ {
		p, q := points[i], points[i+1]
		r.Line(p[0], p[1], q[0], q[1], c)
	}
}

// Circle draws a circle centered at (x0, y0) with the midpoint algorithm.
// A positive radius draws the outline, a negative radius fills the disc
// with horizontal spans and a zero radius draws a single pixel.
func (r *Renderer) Circle(x0, y0, radius int, c Color) {
	midpoint(radius, func(x, y int) {
		switch {
		case radius < 0:
			r.Rect(x0-x, y0+y, 2*x+1, 1, c)
			r.Rect(x0-y, y0+x, 2*y+1, 1, c)
			r.Rect(x0-x, y0-y, 2*x+1, 1, c)
			r.Rect(x0-y, y0-x, 2*y+1, 1, c)
		case radius == 0:
			r.Pixel(x0, y0, c)
		default:
			r.Pixel(x0-x, y0+y, c)
			r.Pixel(x0+x, y0+y, c)
			r.Pixel(x0-y, y0+x, c)
			r.Pixel(x0+y, y0+x, c)
			r.Pixel(x0-x, y0-y, c)
			r.Pixel(x0+x, y0-y, c)
			r.Pixel(x0-y, y0-x, c)
			r.Pixel(x0+y, y0-x, c)
		}
	})
}

// Arc draws the octants of a circle selected by parts (see the Octant
// constants). Radius follows Circle: negative fills, zero is a pixel.
// When filling, left-hand octants stop short of the center column and
// right-hand octants include it, so complementary masks tile exactly.
func (r *Renderer) Arc(x0, y0, radius int, parts uint8, c Color) {
	midpoint(radius, func(x, y int) {
		switch {
		case radius < 0:
			if parts&OctantBottomLeftLow != 0 {
				r.Rect(x0-x, y0+y, x, 1, c)
			}
			if parts&OctantBottomRightLow != 0 {
				r.Rect(x0, y0+y, x+1, 1, c)
			}
			if parts&OctantBottomLeftHigh != 0 {
				r.Rect(x0-y, y0+x, y, 1, c)
			}
			if parts&OctantBottomRightHigh != 0 {
				r.Rect(x0, y0+x, y+1, 1, c)
			}
			if parts&OctantTopLeftLow != 0 {
				r.Rect(x0-x, y0-y, x, 1, c)
			}
			if parts&OctantTopRightLow != 0 {
				r.Rect(x0, y0-y, x+1, 1, c)
			}
			if parts&OctantTopLeftHigh != 0 {
				r.Rect(x0-y, y0-x, y, 1, c)
			}
			if parts&OctantTopRightHigh != 0 {
				r.Rect(x0, y0-x, y+1, 1, c)
			}
		case radius == 0:
			r.Pixel(x0, y0, c)
		default:
			for bit, off := range octantOffsets(x, y) {
				if parts&(1<<bit) != 0 {
					r.Pixel(x0+off[0], y0+off[1], c)
				}
			}
		}
	})
}

func octantOffsets(x, y int) [8][2]int {
	return [8][2]int{
		{-x, +y}, {+x, +y}, {-y, +x}, {+y, +x},
		{-x, -y}, {+x, -y}, {-y, -x}, {+y, -x},
	}
}

// midpoint walks the first octant of a circle of |radius|, calling plot
// with x >= y for every step. A zero radius yields a single (0, 0) step.
func midpoint(radius int, plot func(x, y int)) {
	x := abs(radius)
	y := 0
	err := 0
	for x >= y {
		plot(x, y)
		y++
		err += 1 + 2*y
		if 2*(err-x)+1 > 0 {
			x--
			err += 1 - 2*x
		}
	}
}

// RoundedRect draws a rectangle with rounded corners, either filled or as
// a one pixel outline. The radius must not exceed half of min(w, h); that
// is left to the caller.
func (r *Renderer) RoundedRect(x, y, w, h, radius int, filled bool, c Color) {
	rd := radius
	left, top := x+rd, y+rd
	right, bottom := x+w-1-rd, y+h-1-rd

	if filled {
		r.Arc(left, top, -rd, QuadrantTopLeft, c)
		r.Arc(right, top, -rd, QuadrantTopRight, c)
		r.Arc(left, bottom, -rd, QuadrantBottomLeft, c)
		r.Arc(right, bottom, -rd, QuadrantBottomRight, c)

		r.Rect(left, y, w-1-2*rd, rd+1, c)
		r.Rect(left, bottom, w-1-2*rd, rd+1, c)
		r.Rect(x, top+1, w, h-2-2*rd, c)
		return
	}

	r.Arc(left, top, rd, QuadrantTopLeft, c)
	r.Arc(right, top, rd, QuadrantTopRight, c)
	r.Arc(left, bottom, rd, QuadrantBottomLeft, c)
	r.Arc(right, bottom, rd, QuadrantBottomRight, c)

	r.Rect(left+1, y, w-2-2*rd, 1, c)
	r.Rect(left+1, y+h-1, w-2-2*rd, 1, c)
	r.Rect(x, top+1, 1, h-2-2*rd, c)
	r.Rect(x+w-1, top+1, 1, h-2-2*rd, c)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
