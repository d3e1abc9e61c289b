package px

import (
	"slices"

	"github.com/chewxy/math32"
)

// Canvas is an HTML canvas style drawing context over its own pixel buffer.
//
// Paths are built in local coordinates and only transformed when they are
// filled or stroked, so changing the transform between building and
// painting affects the result. Save and Restore cover the PaintState
// (styles, line width, transform) but not the path.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	width  int
	height int
	pixmap *Pixmap
	r      *Renderer

	path  *PathBuilder
	state PaintState
	saved []PaintState
}

// NewCanvas creates a canvas with a transparent width×height buffer.
func NewCanvas(width, height int, opts ...RendererOption) *Canvas {
	pm := NewPixmap(width, height)
	return &Canvas{
		width:  pm.Width(),
		height: pm.Height(),
		pixmap: pm,
		r:      NewRenderer(pm, opts...),
		path:   NewPathBuilder(),
		state:  DefaultPaintState(),
	}
}

// Width returns the canvas width in pixels.
func (cv *Canvas) Width() int {
	return cv.width
}

// Height returns the canvas height in pixels.
func (cv *Canvas) Height() int {
	return cv.height
}

// Pixmap returns the buffer the canvas draws into.
func (cv *Canvas) Pixmap() *Pixmap {
	return cv.pixmap
}

// Data returns the row-major pixel data, ready to be passed to
// Renderer.Image.
func (cv *Canvas) Data() []Color {
	return cv.pixmap.Pixels()
}

// Renderer returns a primitive renderer bound to the canvas buffer.
func (cv *Canvas) Renderer() *Renderer {
	return cv.r
}

// State returns a copy of the current paint state.
func (cv *Canvas) State() PaintState {
	return cv.state
}

// Path returns the current path builder.
func (cv *Canvas) Path() *PathBuilder {
	return cv.path
}

// --- paint state ---

// Save pushes a copy of the current paint state.
func (cv *Canvas) Save() {
	cv.saved = append(cv.saved, cv.state)
}

// Restore pops the most recently saved paint state. It does nothing when
// no state is saved.
func (cv *Canvas) Restore() {
	n := len(cv.saved)
	if n == 0 {
		return
	}
	cv.state = cv.saved[n-1]
	cv.saved = cv.saved[:n-1]
}

// SetFillStyle sets the color used by Fill.
func (cv *Canvas) SetFillStyle(c Color) {
	cv.state.FillStyle = c
}

// SetStrokeStyle sets the color used by Stroke.
func (cv *Canvas) SetStrokeStyle(c Color) {
	cv.state.StrokeStyle = c
}

// SetLineWidth records the line width in the paint state.
func (cv *Canvas) SetLineWidth(w float32) {
	cv.state.LineWidth = w
}

// Transform multiplies the current matrix on the right by (a..f), so the
// new transform is applied to path coordinates before the existing one.
func (cv *Canvas) Transform(a, b, c, d, e, f float32) {
	cv.state.Transform = cv.state.Transform.Multiply(Matrix{A: a, B: b, C: c, D: d, E: e, F: f})
}

// SetTransform replaces the current matrix with (a..f).
func (cv *Canvas) SetTransform(a, b, c, d, e, f float32) {
	cv.state.Transform = Matrix{A: a, B: b, C: c, D: d, E: e, F: f}
}

// Translate composes a translation onto the current transform.
func (cv *Canvas) Translate(x, y float32) {
	cv.applyMatrix(Translate(x, y))
}

// Scale composes a scale onto the current transform.
func (cv *Canvas) Scale(x, y float32) {
	cv.applyMatrix(Scale(x, y))
}

// Rotate composes a rotation (radians) onto the current transform.
func (cv *Canvas) Rotate(angle float32) {
	cv.applyMatrix(Rotate(angle))
}

func (cv *Canvas) applyMatrix(m Matrix) {
	cv.Transform(m.A, m.B, m.C, m.D, m.E, m.F)
}

// --- path construction ---

// BeginPath discards the current path.
func (cv *Canvas) BeginPath() {
	cv.path = NewPathBuilder()
}

// MoveTo starts a new subpath at (x, y).
func (cv *Canvas) MoveTo(x, y float32) {
	cv.path.MoveTo(x, y)
}

// LineTo adds a straight edge to (x, y).
func (cv *Canvas) LineTo(x, y float32) {
	cv.path.LineTo(x, y)
}

// QuadraticCurveTo adds a flattened quadratic Bézier.
func (cv *Canvas) QuadraticCurveTo(cpx, cpy, x, y float32) {
	cv.path.QuadraticCurveTo(cpx, cpy, x, y)
}

// BezierCurveTo adds a flattened cubic Bézier.
func (cv *Canvas) BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float32) {
	cv.path.BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y)
}

// ClosePath adds an edge back to the start of the current subpath.
func (cv *Canvas) ClosePath() {
	cv.path.ClosePath()
}

// Rect adds a rectangle subpath.
func (cv *Canvas) Rect(x, y, w, h float32) {
	cv.path.Rect(x, y, w, h)
}

// --- painting ---

// Fill paints the current path with the fill style using the even-odd
// rule.
//
// For every row the transformed edges whose vertical extent straddles the
// row contribute one crossing each (horizontal edges never do). Crossings
// are sorted and the half-open spans between pairs 0-1, 2-3, ... are
// filled. An odd crossing left over at the end of a row is ignored, as are
// edges the transform sends to infinity or NaN.
func (cv *Canvas) Fill() {
	c := cv.state.FillStyle
	if c.A() == 0 {
		return
	}

	edges := cv.deviceEdges()
	Logger().Debug("px: canvas fill", "edges", len(edges), "rows", cv.height)

	var xs []int
	for y := range cv.height {
		xs = scanline(xs[:0], edges, float32(y), cv.width)
		for j := 0; j+1 < len(xs); j += 2 {
			cv.r.Rect(xs[j], y, xs[j+1]-xs[j], 1, c)
		}
	}
}

// Stroke draws every edge of the current path, transformed, as a one
// pixel line in the stroke style. Edges with a non-finite end are skipped.
func (cv *Canvas) Stroke() {
	c := cv.state.StrokeStyle
	if c.A() == 0 {
		return
	}
	for _, e := range cv.deviceEdges() {
		a, b, ok := limitEdge(e)
		if !ok {
			continue
		}
		cv.r.Line(int(a[0]), int(a[1]), int(b[0]), int(b[1]), c)
	}
}

// deviceEdges returns the path edges mapped through the current transform,
// leaving out those that did not map to finite points.
func (cv *Canvas) deviceEdges() []Edge {
	m := cv.state.Transform
	src := cv.path.Edges()
	out := make([]Edge, 0, len(src))
	for _, e := range src {
		d := Edge{Start: m.Apply(e.Start), End: m.Apply(e.End)}
		if finite(d.Start) && finite(d.End) {
			out = append(out, d)
		}
	}
	return out
}

// scanline appends to dst the sorted x crossings of edges with row y.
// Crossings are truncated towards zero and clamped to [-1, width] so that
// far off-canvas geometry cannot overflow; spans are clipped to the canvas
// afterwards either way.
func scanline(dst []int, edges []Edge, y float32, width int) []int {
	for _, e := range edges {
		s, t := e.Start, e.End
		if (s.Y > y) == (t.Y > y) {
			continue
		}
		x := (t.X-s.X)*(y-s.Y)/(t.Y-s.Y) + s.X
		if math32.IsNaN(x) {
			continue
		}
		x = min(max(x, -1), float32(width))
		dst = append(dst, int(x))
	}
	slices.Sort(dst)
	return dst
}
