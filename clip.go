package px

import (
	"math/bits"

	"github.com/chewxy/math32"
)

// clipSpan returns the part of [p, p+n) that lies in [0, limit). The
// result is empty (lo >= hi) when nothing is visible. p+n is never
// formed when it could overflow.
func clipSpan(p, n, limit int) (lo, hi int) {
	if n <= 0 || p >= limit {
		return 0, 0
	}
	lo = max(p, 0)
	switch {
	case p < 0:
		// p < 0 < n, so the sum cannot overflow.
		return lo, min(p+n, limit)
	case n < limit-p:
		return lo, p + n
	}
	return lo, limit
}

// lineMargin is how far outside the surface a clipped line may still
// start, so that its first visible step is taken as Bresenham would.
const lineMargin = 2

// lineGuard bounds the endpoints Line walks unclipped. Inside it the walk
// is exact; beyond it the segment is cut at the surface margin first.
const lineGuard = 1 << 20

func farOutside(v, limit int) bool {
	return v < -lineGuard || v > limit+lineGuard
}

// clipLine cuts the segment (x1, y1)-(x2, y2), x1 <= x2, to the surface
// w×h grown by lineMargin on each side. Cut points are rounded to the
// nearest pixel on the exact line. ok is false when nothing is left.
func clipLine(x1, y1, x2, y2, w, h int) (ax, ay, bx, by int, ok bool) {
	xmin, xmax := -lineMargin, w-1+lineMargin
	ymin, ymax := -lineMargin, h-1+lineMargin

	if x2 < xmin || x1 > xmax {
		return 0, 0, 0, 0, false
	}
	if x1 < xmin {
		y1, x1 = lerpAt(x1, y1, x2, y2, xmin), xmin
	}
	if x2 > xmax {
		y2, x2 = lerpAt(x1, y1, x2, y2, xmax), xmax
	}

	if y1 > y2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	if y2 < ymin || y1 > ymax {
		return 0, 0, 0, 0, false
	}
	if y1 < ymin {
		x1, y1 = lerpAt(y1, x1, y2, x2, ymin), ymin
	}
	if y2 > ymax {
		x2, y2 = lerpAt(y1, x1, y2, x2, ymax), ymax
	}
	return x1, y1, x2, y2, true
}

// lerpAt returns b at a = at on the line through (a0, b0) and (a1, b1),
// rounded half away from b0. It needs a0 <= at <= a1 and a0 < a1, and is
// exact for the whole int range.
func lerpAt(a0, b0, a1, b1, at int) int {
	da := uint64(a1) - uint64(a0)
	num := uint64(at) - uint64(a0)
	db := uint64(b1) - uint64(b0)
	if b1 < b0 {
		db = uint64(b0) - uint64(b1)
	}

	// num <= da, so num*db/da <= db fits and Div64 cannot overflow.
	hi, lo := bits.Mul64(num, db)
	q, rem := bits.Div64(hi, lo, da)
	if rem >= da-rem {
		q++
	}
	if b1 < b0 {
		return int(uint64(b0) - q)
	}
	return int(uint64(b0) + q)
}

// strokeLimit bounds device coordinates before they are converted to int
// for Line.
const strokeLimit = 1 << 40

func finite(p Point) bool {
	return !math32.IsNaN(p.X) && !math32.IsNaN(p.Y) && !math32.IsInf(p.X, 0) && !math32.IsInf(p.Y, 0)
}

// limitEdge clips e to [-strokeLimit, strokeLimit]² so its coordinates
// convert to int. Edges already inside come back unchanged. Cut points are
// interpolated from the nearer endpoint; t runs from Start and s = 1-t
// from End, both computed directly so neither suffers cancellation.
func limitEdge(e Edge) (a, b [2]float64, ok bool) {
	p0 := [2]float64{float64(e.Start.X), float64(e.Start.Y)}
	p1 := [2]float64{float64(e.End.X), float64(e.End.Y)}

	t0, s0 := 0.0, 1.0
	t1, s1 := 1.0, 0.0
	for axis := range 2 {
		d := p1[axis] - p0[axis]
		if d == 0 {
			if p0[axis] < -strokeLimit || p0[axis] > strokeLimit {
				return a, b, false
			}
			continue
		}
		tIn, sIn := (-strokeLimit-p0[axis])/d, (p1[axis]+strokeLimit)/d
		tOut, sOut := (strokeLimit-p0[axis])/d, (p1[axis]-strokeLimit)/d
		if d < 0 {
			tIn, sIn, tOut, sOut = tOut, sOut, tIn, sIn
		}
		if tIn > t0 {
			t0, s0 = tIn, sIn
		}
		if tOut < t1 {
			t1, s1 = tOut, sOut
		}
	}
	if t0 > t1 {
		return a, b, false
	}
	return pointAt(p0, p1, t0, s0), pointAt(p0, p1, t1, s1), true
}

func pointAt(p0, p1 [2]float64, t, s float64) [2]float64 {
	var p [2]float64
	for i := range p {
		d := p1[i] - p0[i]
		if t <= s {
			p[i] = p0[i] + t*d
		} else {
			p[i] = p1[i] - s*d
		}
	}
	return p
}
