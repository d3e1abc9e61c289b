package px

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/convolution"
)

// BoxShadow draws the blurred shadow of a rounded box at (x, y, w, h)
// displaced by (offX, offY).
//
// A white mask with the box drawn in black is blurred with a gaussian whose
// standard deviation is a third of blurRadius, so the falloff fits the
// blurRadius margin around the box; the darkness of the blurred mask becomes the shadow's
// alpha, capped by the alpha of c. Pixels covered by the box itself are
// left alone so a box drawn afterwards shows no halo through translucent
// fills. With invert set only the inside of the box is shaded, giving an
// inset shadow.
func (r *Renderer) BoxShadow(x, y, w, h, offX, offY, blurRadius, boxRadius int, invert bool, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	blurRadius = max(blurRadius, 0)

	mw, mh := w+2*blurRadius, h+2*blurRadius
	mask := NewPixmap(mw, mh)
	mr := NewRenderer(mask)
	mr.Set(White)
	mr.RoundedRect(blurRadius, blurRadius, w, h, boxRadius, true, Black)

	blurred := shadowBlur(mask.ToImage(), blurRadius)
	shape := mask.Pixels()

	sx := x - blurRadius + offX
	sy := y - blurRadius + offY
	for yb := sy; yb < sy+mh; yb++ {
		for xb := sx; xb < sx+mw; xb++ {
			mx, my := xb-sx, yb-sy

			draw := true
			if xb >= x && yb >= y && xb < x+w && yb < y+h {
				// Look the box up in its own, unshifted, frame.
				i := (my+offY)*mw + mx + offX
				if i >= 0 && i < len(shape) && shape[i].R() == 0 {
					draw = false
				}
			}
			if invert {
				draw = !draw
			}
			if !draw {
				continue
			}

			v := blurred.RGBAAt(mx, my).R
			a := min(c.A(), 255-v)
			if invert {
				a = min(c.A(), v)
			}
			r.Pixel(xb, yb, c.WithAlpha(a))
		}
	}
}

// shadowBlur applies a separable gaussian with sigma = radius/3, cut at
// three sigma. A radius of zero returns a copy of src.
func shadowBlur(src image.Image, radius int) *image.RGBA {
	if radius <= 0 {
		return clone.AsRGBA(src)
	}

	sigma := float64(radius) / 3
	k := convolution.NewKernel(2*radius+1, 1)
	for i := range k.Matrix {
		x := float64(i - radius)
		k.Matrix[i] = math.Exp(-x * x / (2 * sigma * sigma))
	}
	norm := k.Normalized()

	opts := convolution.Options{}
	out := convolution.Convolve(src, norm, &opts)
	return convolution.Convolve(out, norm.Transposed(), &opts)
}
