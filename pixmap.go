package px

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

// Pixmap is an in-memory Surface backed by a slice of packed colors.
type Pixmap struct {
	width  int
	height int
	data   []Color
}

var _ Surface = (*Pixmap)(nil)

// NewPixmap creates a transparent pixmap with the given dimensions.
// Negative dimensions are treated as zero.
func NewPixmap(width, height int) *Pixmap {
	width = max(width, 0)
	height = max(height, 0)
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]Color, width*height),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Pixels returns the pixel buffer. Writes go straight to the pixmap.
func (p *Pixmap) Pixels() []Color {
	return p.data
}

// Present is a no-op for in-memory pixmaps and always succeeds.
func (p *Pixmap) Present() bool {
	return true
}

// ToImage converts the pixmap to an *image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	for i, c := range p.data {
		o := i * 4
		img.Pix[o+0] = c.R()
		img.Pix[o+1] = c.G()
		img.Pix[o+2] = c.B()
		img.Pix[o+3] = c.A()
	}
	return img
}

// PixmapFromImage creates a pixmap holding a copy of img.
func PixmapFromImage(img image.Image) *Pixmap {
	b := img.Bounds()
	pm := NewPixmap(b.Dx(), b.Dy())
	copy(pm.data, ImageData(img, b.Dx(), b.Dy()))
	return pm
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	if err := png.Encode(f, p.ToImage()); err != nil {
		return fmt.Errorf("px: encode %s: %w", path, err)
	}
	return nil
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return color.NRGBA{}
	}
	return p.data[y*p.width+x].NRGBA()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}

// ImageData converts img into a row-major color slice of width*height
// entries suitable for Renderer.Image. The image is scaled bilinearly when
// its size differs from the requested one.
func ImageData(img image.Image, width, height int) []Color {
	if width <= 0 || height <= 0 {
		return nil
	}

	src := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	if src.Dx() == width && src.Dy() == height {
		xdraw.Copy(dst, image.Point{}, img, src, xdraw.Src, nil)
	} else {
		xdraw.BiLinear.Scale(dst, dst.Bounds(), img, src, xdraw.Src, nil)
	}

	out := make([]Color, width*height)
	for i := range out {
		o := i * 4
		out[i] = RGBA(dst.Pix[o+0], dst.Pix[o+1], dst.Pix[o+2], dst.Pix[o+3])
	}
	return out
}
