package px

import (
	"image/color"
	"testing"
)

func TestBoxShadowEmptyBox(t *testing.T) {
	pm, r := newTestRenderer(20, 20)
	r.BoxShadow(5, 5, 0, 10, 2, 2, 3, 0, false, Black)
	r.BoxShadow(5, 5, 10, -1, 2, 2, 3, 0, false, Black)
	if n := len(paintedSet(pm, 0)); n != 0 {
		t.Errorf("empty box cast %d shadow pixels", n)
	}
}

func TestBoxShadowHardOffset(t *testing.T) {
	pm, r := newTestRenderer(40, 40)
	r.BoxShadow(10, 10, 10, 10, 5, 5, 0, 0, false, Black)

	set := paintedSet(pm, 0)
	if len(set) != 75 {
		t.Errorf("painted %d pixels, want the 10x10 offset box minus its 5x5 overlap", len(set))
	}
	for p := range set {
		inBox := p[0] >= 10 && p[0] < 20 && p[1] >= 10 && p[1] < 20
		inShadow := p[0] >= 15 && p[0] < 25 && p[1] >= 15 && p[1] < 25
		if inBox || !inShadow {
			t.Errorf("%v painted outside the visible shadow", p)
		}
		if got := r.GetPixel(p[0], p[1]); got != Black {
			t.Errorf("%v = %v, want opaque black", p, got)
		}
	}
}

func TestBoxShadowNoOffsetNoBlur(t *testing.T) {
	pm, r := newTestRenderer(30, 30)
	r.BoxShadow(10, 10, 10, 10, 0, 0, 0, 3, false, Black)
	if n := len(paintedSet(pm, 0)); n != 0 {
		t.Errorf("hidden shadow painted %d pixels", n)
	}
}

func TestBoxShadowBlurred(t *testing.T) {
	const blur = 4
	c := RGBA(0, 0, 0, 128)
	pm, r := newTestRenderer(40, 40)
	r.BoxShadow(12, 12, 12, 12, 2, 2, blur, 0, false, c)

	set := paintedSet(pm, 0)
	if len(set) == 0 {
		t.Fatal("blurred shadow painted nothing")
	}
	for p := range set {
		x, y := p[0], p[1]
		if x >= 12 && x < 24 && y >= 12 && y < 24 {
			t.Errorf("%v painted under the box", p)
		}
		if x < 12-blur+2 || y < 12-blur+2 || x >= 24+blur+2 || y >= 24+blur+2 {
			t.Errorf("%v painted beyond the blur margin", p)
		}
		if a := r.GetPixel(x, y).A(); a > c.A() {
			t.Errorf("%v alpha %d exceeds the shadow color", p, a)
		}
	}
}

func TestBoxShadowInset(t *testing.T) {
	pm, r := newTestRenderer(40, 40)
	r.BoxShadow(10, 10, 16, 16, 0, 0, 4, 0, true, Black)

	set := paintedSet(pm, 0)
	if len(set) == 0 {
		t.Fatal("inset shadow painted nothing")
	}
	for p := range set {
		if p[0] < 10 || p[0] >= 26 || p[1] < 10 || p[1] >= 26 {
			t.Errorf("inset shadow painted %v outside the box", p)
		}
	}
	if r.GetPixel(10, 18).A() <= r.GetPixel(18, 18).A() {
		t.Error("inset shadow should be darker at the edge than at the center")
	}
}

func TestBoxShadowFalloffFitsMargin(t *testing.T) {
	const blur = 6
	_, r := newTestRenderer(40, 40)
	r.BoxShadow(10, 10, 12, 12, 0, 0, blur, 0, false, Black)

	// Walk left from the box edge along its middle row. A gaussian with
	// sigma = blur/3 leaves about 40% coverage next to the box, about 10%
	// halfway out and practically nothing at the end of the margin.
	tests := []struct {
		x      int
		lo, hi uint8
	}{
		{9, 85, 120},
		{7, 10, 40},
		{4, 0, 3},
		{3, 0, 0},
	}
	for _, tt := range tests {
		if a := r.GetPixel(tt.x, 15).A(); a < tt.lo || a > tt.hi {
			t.Errorf("alpha at x=%d is %d, want %d..%d", tt.x, a, tt.lo, tt.hi)
		}
	}

	prev := uint8(255)
	for x := 10 - blur; x < 10; x++ {
		a := r.GetPixel(x, 15).A()
		if x > 10-blur && a < prev {
			t.Errorf("alpha drops from %d to %d moving towards the box at x=%d", prev, a, x)
		}
		prev = a
	}
}

func TestShadowBlurZeroRadiusCopies(t *testing.T) {
	pm := NewPixmap(3, 3)
	pm.Pixels()[4] = White
	out := shadowBlur(pm.ToImage(), 0)

	if got := out.RGBAAt(1, 1); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("center = %v, want white", got)
	}
	if got := out.RGBAAt(0, 0); got != (color.RGBA{}) {
		t.Errorf("corner = %v, want transparent", got)
	}
}
