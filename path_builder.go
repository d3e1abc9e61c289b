package px

// curveStep is the parameter increment used to flatten curves.
const curveStep = 0.01

// PathBuilder accumulates the edges of a path in local (untransformed)
// coordinates. Edges are kept in insertion order.
//
// The zero value is an empty path starting at the origin.
type PathBuilder struct {
	last   Point // current point
	anchor Point // start of the current subpath
	edges  []Edge
}

// NewPathBuilder creates an empty path builder.
func NewPathBuilder() *PathBuilder {
	return &PathBuilder{}
}

// MoveTo starts a new subpath at (x, y) without emitting an edge.
func (b *PathBuilder) MoveTo(x, y float32) {
	b.last = Pt(x, y)
	b.anchor = b.last
}

// LineTo adds an edge from the current point to (x, y).
func (b *PathBuilder) LineTo(x, y float32) {
	p := Pt(x, y)
	b.edges = append(b.edges, Edge{Start: b.last, End: p})
	b.last = p
}

// QuadraticCurveTo flattens a quadratic Bézier with control point (cpx, cpy)
// ending at (x, y). The curve is sampled at t = 0, 0.01, 0.02, ... while
// t < 1 and one edge is emitted per sample; the current point is then set
// exactly to (x, y).
func (b *PathBuilder) QuadraticCurveTo(cpx, cpy, x, y float32) {
	p0 := b.last
	prev := p0
	for t := float32(0); t < 1; t += curveStep {
		u := 1 - t
		pt := Point{
			X: u*u*p0.X + 2*u*t*cpx + t*t*x,
			Y: u*u*p0.Y + 2*u*t*cpy + t*t*y,
		}
		b.edges = append(b.edges, Edge{Start: prev, End: pt})
		prev = pt
	}
	b.last = Pt(x, y)
}

// BezierCurveTo flattens a cubic Bézier with control points (cp1x, cp1y)
// and (cp2x, cp2y) ending at (x, y), sampling it like QuadraticCurveTo.
func (b *PathBuilder) BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float32) {
	p0 := b.last
	prev := p0
	for t := float32(0); t < 1; t += curveStep {
		u := 1 - t
		uu, tt := u*u, t*t
		pt := Point{
			X: uu*u*p0.X + 3*uu*t*cp1x + 3*u*tt*cp2x + tt*t*x,
			Y: uu*u*p0.Y + 3*uu*t*cp1y + 3*u*tt*cp2y + tt*t*y,
		}
		b.edges = append(b.edges, Edge{Start: prev, End: pt})
		prev = pt
	}
	b.last = Pt(x, y)
}

// ClosePath adds an edge from the current point back to the start of the
// subpath.
func (b *PathBuilder) ClosePath() {
	b.edges = append(b.edges, Edge{Start: b.last, End: b.anchor})
}

// Rect adds a rectangle as a move followed by four edges returning to the
// starting corner.
func (b *PathBuilder) Rect(x, y, w, h float32) {
	b.MoveTo(x, y)
	b.LineTo(x+w, y)
	b.LineTo(x+w, y+h)
	b.LineTo(x, y+h)
	b.LineTo(x, y)
}

// Edges returns the edges in insertion order. The slice is owned by the
// builder.
func (b *PathBuilder) Edges() []Edge {
	return b.edges
}

// Len returns the number of edges.
func (b *PathBuilder) Len() int {
	return len(b.edges)
}

// CurrentPoint returns the end of the last segment.
func (b *PathBuilder) CurrentPoint() Point {
	return b.last
}
