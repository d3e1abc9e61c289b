package px

// PaintState is the part of a Canvas that Save and Restore preserve.
// It is a plain value; saving copies it.
type PaintState struct {
	FillStyle   Color
	StrokeStyle Color

	// LineWidth is recorded for callers but strokes are always one
	// pixel wide.
	LineWidth float32

	Transform Matrix
}

// DefaultPaintState returns transparent fill and stroke styles, a line
// width of 1 and the identity transform.
func DefaultPaintState() PaintState {
	return PaintState{
		FillStyle:   Transparent,
		StrokeStyle: Transparent,
		LineWidth:   1,
		Transform:   Identity(),
	}
}
