package px

// Blend composites src over dst and returns the new destination value.
//
// A fully transparent source leaves dst untouched and a fully opaque one
// replaces it. Otherwise every channel becomes
//
//	dst*(255-a)>>8 + src*a>>8
//
// and alpha is combined as dst.A*(255-a)>>8 + a. All primitives go through
// this rule so that translucent drawing is consistent across them.
func Blend(dst, src Color) Color {
	a := uint32(src >> 24)
	switch a {
	case 0:
		return dst
	case 255:
		return src
	}

	na := 255 - a
	d := uint32(dst)
	s := uint32(src)

	oa := ((d >> 24) * na) >> 8
	or := (((d >> 16) & 0xFF) * na) >> 8
	og := (((d >> 8) & 0xFF) * na) >> 8
	ob := ((d & 0xFF) * na) >> 8

	sr := (((s >> 16) & 0xFF) * a) >> 8
	sg := (((s >> 8) & 0xFF) * a) >> 8
	sb := ((s & 0xFF) * a) >> 8

	return Color((oa+a)<<24 | (or+sr)<<16 | (og+sg)<<8 | (ob + sb))
}

// fillSpan writes c into every element of span without blending.
// It is the bulk path for opaque rectangles and Set.
func fillSpan(span []Color, c Color) {
	if len(span) == 0 {
		return
	}
	span[0] = c
	// Doubling copy keeps the loop count logarithmic in len(span).
	for n := 1; n < len(span); n *= 2 {
		copy(span[n:], span[:n])
	}
}
