package px

import (
	"errors"
	"fmt"
	"image/color"
)

// Color is a packed 32-bit ARGB value laid out as 0xAARRGGBB.
//
// The channels are straight (non-premultiplied). Two colors compare equal
// with Equal when their red, green and blue channels match; alpha is
// ignored.
type Color uint32

// Predefined colors.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 255, 0)
	Blue        = RGB(0, 0, 255)
	Transparent = RGBA(0, 0, 0, 0)
)

// ErrInvalidColorSpec is returned (wrapped in a *ColorError) when a color
// string is not of the form "#AARRGGBB".
var ErrInvalidColorSpec = errors.New("px: invalid color spec")

// ColorError describes a color string that could not be parsed.
type ColorError struct {
	Input  string
	Reason string
}

func (e *ColorError) Error() string {
	return fmt.Sprintf("px: invalid color spec %q: %s", e.Input, e.Reason)
}

// Unwrap returns ErrInvalidColorSpec so callers can use errors.Is.
func (e *ColorError) Unwrap() error {
	return ErrInvalidColorSpec
}

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 255)
}

// RGBA creates a color from all four channels.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// WithAlpha returns c with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	return c&0x00FFFFFF | Color(a)<<24
}

// Equal reports whether c and o have the same red, green and blue channels.
// Alpha does not take part in the comparison.
func (c Color) Equal(o Color) bool {
	return c&0x00FFFFFF == o&0x00FFFFFF
}

// String returns the color as "#AARRGGBB".
func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// NRGBA converts the color to the standard library representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// FromColor converts any color.Color into a packed Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA(n.R, n.G, n.B, n.A)
}

// Interpolate linearly interpolates every channel (alpha included) from
// start to end. The result is truncated towards zero, so t=0 yields start
// and t=1 yields end exactly.
func Interpolate(start, end Color, t float64) Color {
	return RGBA(
		lerp8(start.R(), end.R(), t),
		lerp8(start.G(), end.G(), t),
		lerp8(start.B(), end.B(), t),
		lerp8(start.A(), end.A(), t),
	)
}

func lerp8(s, e uint8, t float64) uint8 {
	return uint8((float64(e)-float64(s))*t + float64(s))
}

// ParseColor parses a color in the "#AARRGGBB" text format. The string must
// be exactly nine characters long and every digit must be hexadecimal.
func ParseColor(s string) (Color, error) {
	if len(s) != 9 {
		return 0, &ColorError{Input: s, Reason: "want 9 characters"}
	}
	if s[0] != '#' {
		return 0, &ColorError{Input: s, Reason: "missing leading '#'"}
	}

	var v uint32
	for i := 1; i < len(s); i++ {
		d, ok := hexDigit(s[i])
		if !ok {
			return 0, &ColorError{Input: s, Reason: fmt.Sprintf("bad hex digit %q", s[i])}
		}
		v = v<<4 | uint32(d)
	}
	return Color(v), nil
}

// MustParseColor is like ParseColor but panics on malformed input.
// It is meant for package-level constants in tests and examples.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	v, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case '0' <= b && b <= '9':
		return b - '0', true
	case 'a' <= b && b <= 'f':
		return b - 'a' + 10, true
	case 'A' <= b && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
