package px

import (
	"maps"
	"math"
	"testing"
)

func TestLineEndpointsSymmetric(t *testing.T) {
	const n = 7
	for a := range n * n {
		for b := range n * n {
			x1, y1 := a%n, a/n
			x2, y2 := b%n, b/n

			fwd, rf := newTestRenderer(n, n)
			rf.Line(x1, y1, x2, y2, White)
			rev, rr := newTestRenderer(n, n)
			rr.Line(x2, y2, x1, y1, White)

			if !maps.Equal(paintedSet(fwd, 0), paintedSet(rev, 0)) {
				t.Fatalf("Line(%d,%d,%d,%d) differs from its reverse", x1, y1, x2, y2)
			}
		}
	}
}

func TestLineShapes(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 int
		want           [][2]int
	}{
		{"point", 3, 3, 3, 3, [][2]int{{3, 3}}},
		{"horizontal", 1, 2, 4, 2, [][2]int{{1, 2}, {2, 2}, {3, 2}, {4, 2}}},
		{"vertical", 5, 4, 5, 1, [][2]int{{5, 1}, {5, 2}, {5, 3}, {5, 4}}},
		{"diagonal", 0, 0, 3, 3, [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"anti diagonal", 0, 3, 3, 0, [][2]int{{0, 3}, {1, 2}, {2, 1}, {3, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm, r := newTestRenderer(8, 8)
			r.Line(tt.x1, tt.y1, tt.x2, tt.y2, Red)
			got := paintedSet(pm, 0)
			want := make(map[[2]int]bool)
			for _, p := range tt.want {
				want[p] = true
			}
			if !maps.Equal(got, want) {
				t.Errorf("painted %v, want %v", got, want)
			}
		})
	}
}

func TestLineIsConnected(t *testing.T) {
	pm, r := newTestRenderer(40, 40)
	r.Line(2, 3, 37, 20, White)
	got := paintedSet(pm, 0)
	if len(got) != 36 {
		t.Errorf("shallow line painted %d pixels, want one per column (36)", len(got))
	}
	for x := 2; x <= 37; x++ {
		found := false
		for y := range 40 {
			if got[[2]int{x, y}] {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("column %d has no pixel", x)
		}
	}
}

func TestLineExtremeInputs(t *testing.T) {
	row := func(y, x0, x1 int) [][2]int {
		var out [][2]int
		for x := x0; x < x1; x++ {
			out = append(out, [2]int{x, y})
		}
		return out
	}
	diag := [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}, {5, 5}, {6, 6}, {7, 7}}
	column := [][2]int{{3, 0}, {3, 1}, {3, 2}, {3, 3}, {3, 4}, {3, 5}, {3, 6}, {3, 7}}

	tests := []struct {
		name           string
		x1, y1, x2, y2 int
		want           [][2]int
	}{
		{"from MinInt", math.MinInt, 0, 0, 0, [][2]int{{0, 0}}},
		{"to MaxInt", 1, 0, math.MaxInt, 0, row(0, 1, 8)},
		{"across the int range", math.MinInt, 4, math.MaxInt, 4, row(4, 0, 8)},
		{"column across the int range", 3, math.MinInt, 3, math.MaxInt, column},
		{"huge diagonal", 0, 0, 1 << 40, 1 << 40, diag},
		{"huge diagonal reversed", 1 << 40, 1 << 40, 0, 0, diag},
		{"far diagonal through the surface", -(1 << 40), -(1 << 40), 1 << 40, 1 << 40, diag},
		{"above", 0, -1, math.MaxInt, -1, nil},
		{"right of", 8, math.MinInt, math.MaxInt, math.MaxInt, nil},
		{"misses the corner", -(1 << 30), 0, 0, -(1 << 30), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm, r := newTestRenderer(8, 8)
			mustReturn(t, func() { r.Line(tt.x1, tt.y1, tt.x2, tt.y2, White) })

			want := make(map[[2]int]bool)
			for _, p := range tt.want {
				want[p] = true
			}
			if got := paintedSet(pm, 0); !maps.Equal(got, want) {
				t.Errorf("painted %v, want %v", got, want)
			}
		})
	}
}

func TestLineBeyondGuardStaysOnLine(t *testing.T) {
	pm, r := newTestRenderer(16, 16)
	r.Line(-3, -1, 3*(1<<40), 1<<40, White)

	set := paintedSet(pm, 0)
	if len(set) != 16 {
		t.Errorf("painted %d pixels, want one per column", len(set))
	}
	for p := range set {
		exact := float64(p[0]+3)/3 - 1
		if d := float64(p[1]) - exact; d < -1 || d > 1 {
			t.Errorf("%v is %.2f rows off the line", p, d)
		}
	}
}

func TestClipSpan(t *testing.T) {
	tests := []struct {
		p, n, limit int
		lo, hi      int // hi <= lo means empty
	}{
		{2, 3, 8, 2, 5},
		{-2, 4, 8, 0, 2},
		{6, 5, 8, 6, 8},
		{1, math.MaxInt, 8, 1, 8},
		{-1, math.MaxInt, 8, 0, 8},
		{math.MinInt, math.MaxInt, 8, 0, 0},
		{math.MinInt, 4, 8, 0, 0},
		{math.MaxInt, math.MaxInt, 8, 0, 0},
		{8, 1, 8, 0, 0},
		{0, 0, 8, 0, 0},
		{0, -5, 8, 0, 0},
	}
	for _, tt := range tests {
		lo, hi := clipSpan(tt.p, tt.n, tt.limit)
		empty := hi <= lo
		if tt.hi <= tt.lo {
			if !empty {
				t.Errorf("clipSpan(%d, %d, %d) = [%d, %d), want empty", tt.p, tt.n, tt.limit, lo, hi)
			}
			continue
		}
		if lo != tt.lo || hi != tt.hi {
			t.Errorf("clipSpan(%d, %d, %d) = [%d, %d), want [%d, %d)", tt.p, tt.n, tt.limit, lo, hi, tt.lo, tt.hi)
		}
	}
}

func TestLerpAt(t *testing.T) {
	tests := []struct {
		a0, b0, a1, b1, at int
		want               int
	}{
		{0, 0, 10, 10, 5, 5},
		{0, 0, 10, 5, 3, 2},
		{0, 10, 10, 0, 5, 5},
		{0, 10, 10, 5, 3, 8},
		{0, 7, 100, 7, 40, 7},
		{math.MinInt, math.MinInt, math.MaxInt, math.MaxInt, 0, 0},
		{math.MinInt, math.MaxInt, math.MaxInt, math.MinInt, -1, 0},
		{math.MinInt, 3, math.MaxInt, 3, -2, 3},
		{-(1 << 40), 0, 0, 1 << 40, -2, 1<<40 - 2},
	}
	for _, tt := range tests {
		if got := lerpAt(tt.a0, tt.b0, tt.a1, tt.b1, tt.at); got != tt.want {
			t.Errorf("lerpAt(%d, %d, %d, %d, %d) = %d, want %d", tt.a0, tt.b0, tt.a1, tt.b1, tt.at, got, tt.want)
		}
	}
}

func TestLines(t *testing.T) {
	pm, r := newTestRenderer(10, 10)
	r.Lines(nil, White)
	if len(paintedSet(pm, 0)) != 0 {
		t.Fatal("empty polyline painted pixels")
	}

	r.Lines([][2]int{{4, 4}}, White)
	if got := paintedSet(pm, 0); len(got) != 1 || !got[[2]int{4, 4}] {
		t.Fatalf("single point polyline painted %v", got)
	}

	pm, r = newTestRenderer(10, 10)
	r.Lines([][2]int{{0, 0}, {5, 0}, {5, 5}}, White)
	if got := len(paintedSet(pm, 0)); got != 11 {
		t.Errorf("L-shaped polyline painted %d pixels, want 11", got)
	}
}

func TestZeroRadiusIsCenterPixel(t *testing.T) {
	draws := map[string]func(r *Renderer){
		"circle":    func(r *Renderer) { r.Circle(4, 4, 0, White) },
		"arc":       func(r *Renderer) { r.Arc(4, 4, 0, OctantTopLeftLow, White) },
		"wu circle": func(r *Renderer) { r.WuCircle(4, 4, 0, White) },
	}
	for name, draw := range draws {
		t.Run(name, func(t *testing.T) {
			pm, r := newTestRenderer(9, 9)
			draw(r)
			got := paintedSet(pm, 0)
			if len(got) != 1 || !got[[2]int{4, 4}] {
				t.Errorf("painted %v, want only the center", got)
			}
		})
	}
}

// rowExtents returns min and max painted x per row.
func rowExtents(set map[[2]int]bool) map[int][2]int {
	out := make(map[int][2]int)
	for p := range set {
		e, ok := out[p[1]]
		if !ok {
			out[p[1]] = [2]int{p[0], p[0]}
			continue
		}
		out[p[1]] = [2]int{min(e[0], p[0]), max(e[1], p[0])}
	}
	return out
}

func TestFilledCircleMatchesOutline(t *testing.T) {
	for radius := 1; radius <= 12; radius++ {
		outline, ro := newTestRenderer(32, 32)
		ro.Circle(16, 16, radius, White)
		filled, rf := newTestRenderer(32, 32)
		rf.Circle(16, 16, -radius, White)

		oe := rowExtents(paintedSet(outline, 0))
		fset := paintedSet(filled, 0)
		fe := rowExtents(fset)

		if !maps.Equal(oe, fe) {
			t.Errorf("radius %d: filled row extents %v, outline %v", radius, fe, oe)
			continue
		}
		for y, e := range fe {
			for x := e[0]; x <= e[1]; x++ {
				if !fset[[2]int{x, y}] {
					t.Errorf("radius %d: gap at (%d,%d) in filled row", radius, x, y)
				}
			}
		}
	}
}

func TestCircleEightWaySymmetry(t *testing.T) {
	for radius := 1; radius <= 12; radius++ {
		pm, r := newTestRenderer(32, 32)
		r.Circle(16, 16, radius, White)
		set := paintedSet(pm, 0)
		for p := range set {
			dx, dy := p[0]-16, p[1]-16
			for _, q := range [][2]int{{-dx, dy}, {dx, -dy}, {dy, dx}} {
				if !set[[2]int{16 + q[0], 16 + q[1]}] {
					t.Errorf("radius %d: (%d,%d) painted but mirror (%d,%d) not", radius, dx, dy, q[0], q[1])
				}
			}
		}
	}
}

func TestArcAllOctantsIsCircle(t *testing.T) {
	for _, radius := range []int{-9, -4, -1, 1, 4, 9} {
		circle, rc := newTestRenderer(24, 24)
		rc.Circle(12, 12, radius, White)
		arc, ra := newTestRenderer(24, 24)
		ra.Arc(12, 12, radius, AllOctants, White)

		if !maps.Equal(paintedSet(circle, 0), paintedSet(arc, 0)) {
			t.Errorf("radius %d: Arc(AllOctants) differs from Circle", radius)
		}
	}
}

func TestArcQuadrantsTile(t *testing.T) {
	c := White
	full, rf := newTestRenderer(24, 24)
	rf.Circle(12, 12, -8, c)

	parts, rp := newTestRenderer(24, 24)
	for _, q := range []uint8{QuadrantTopLeft, QuadrantTopRight, QuadrantBottomLeft, QuadrantBottomRight} {
		rp.Arc(12, 12, -8, q, c)
	}
	if !maps.Equal(paintedSet(full, 0), paintedSet(parts, 0)) {
		t.Error("filled quadrants do not cover the same pixels as the disc")
	}
}

func TestArcSingleOctant(t *testing.T) {
	pm, r := newTestRenderer(24, 24)
	r.Arc(12, 12, 8, OctantBottomRightLow, White)
	for p := range paintedSet(pm, 0) {
		dx, dy := p[0]-12, p[1]-12
		if dx < 0 || dy < 0 || dy > dx {
			t.Errorf("(%d,%d) outside the bottom right low octant", dx, dy)
		}
	}
}

func TestRoundedRectFilled(t *testing.T) {
	pm, r := newTestRenderer(60, 50)
	r.RoundedRect(10, 10, 40, 30, 5, true, White)
	set := paintedSet(pm, 0)

	for x := 10; x <= 49; x++ {
		if !set[[2]int{x, 25}] {
			t.Errorf("middle row missing (%d,25)", x)
		}
	}
	for _, p := range [][2]int{{9, 25}, {50, 25}, {30, 9}, {30, 40}} {
		if set[p] {
			t.Errorf("%v painted outside the box", p)
		}
	}
	for _, p := range [][2]int{{10, 10}, {49, 10}, {10, 39}, {49, 39}} {
		if set[p] {
			t.Errorf("corner %v painted", p)
		}
	}
	for _, p := range [][2]int{{30, 10}, {30, 39}, {15, 15}} {
		if !set[p] {
			t.Errorf("%v not painted", p)
		}
	}

	for p := range set {
		if !set[[2]int{59 - p[0], p[1]}] || !set[[2]int{p[0], 49 - p[1]}] {
			t.Errorf("%v has no mirror image", p)
		}
	}
}

func TestRoundedRectOutline(t *testing.T) {
	pm, r := newTestRenderer(60, 50)
	r.RoundedRect(10, 10, 40, 30, 5, false, White)
	set := paintedSet(pm, 0)

	var row []int
	for x := range 60 {
		if set[[2]int{x, 25}] {
			row = append(row, x)
		}
	}
	if len(row) != 2 || row[0] != 10 || row[1] != 49 {
		t.Errorf("middle row painted at %v, want [10 49]", row)
	}
	for x := 16; x <= 43; x++ {
		if !set[[2]int{x, 10}] || !set[[2]int{x, 39}] {
			t.Errorf("top or bottom edge missing column %d", x)
		}
	}
	if set[[2]int{10, 10}] {
		t.Error("outline reaches the square corner")
	}
}
