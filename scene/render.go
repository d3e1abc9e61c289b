// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import "github.com/gogpu/px"

// Render validates s and replays its operations on r in order. A
// background with non-zero alpha overwrites the surface first. Nothing is
// drawn when validation fails.
func (s *Scene) Render(r *px.Renderer) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.Background.A() != 0 {
		r.Set(s.Background)
	}
	px.Logger().Debug("scene: render", "ops", len(s.Ops), "width", r.Width(), "height", r.Height())

	var mask *px.Canvas
	for i := range s.Ops {
		op := &s.Ops[i]
		if op.Kind == KindPath {
			if mask == nil {
				mask = px.NewCanvas(r.Width(), r.Height())
			}
			drawPath(r, mask, op)
			continue
		}
		drawOp(r, op)
	}
	return nil
}

// Draw renders s into a new pixmap of the scene size.
func Draw(s *Scene, opts ...px.RendererOption) (*px.Pixmap, error) {
	pm := px.NewPixmap(s.Width, s.Height)
	if err := s.Render(px.NewRenderer(pm, opts...)); err != nil {
		return nil, err
	}
	return pm, nil
}

func drawOp(r *px.Renderer, op *Op) {
	switch op.Kind {
	case KindPixel:
		r.Pixel(op.X, op.Y, op.Color)
	case KindLine:
		if len(op.Points) > 0 {
			r.Lines(op.Points, op.Color)
			return
		}
		r.Line(op.X, op.Y, op.X2, op.Y2, op.Color)
	case KindWuLine:
		r.WuLine(op.X, op.Y, op.X2, op.Y2, op.Color)
	case KindCircle:
		r.Circle(op.X, op.Y, op.radius(), op.Color)
	case KindWuCircle:
		r.WuCircle(op.X, op.Y, op.Radius, op.Color)
	case KindArc:
		parts := op.Octants
		if parts == 0 {
			parts = px.AllOctants
		}
		r.Arc(op.X, op.Y, op.radius(), parts, op.Color)
	case KindRect:
		r.Rect(op.X, op.Y, op.W, op.H, op.Color)
	case KindRoundedRect:
		r.RoundedRect(op.X, op.Y, op.W, op.H, op.Radius, op.Filled, op.Color)
	case KindGradient:
		r.LinearGradient(op.X, op.Y, op.W, op.H, op.Start[0], op.Start[1], op.Stop[0], op.Stop[1], op.Color, op.End)
	case KindText:
		r.Text(op.X, op.Y, op.Text, op.Color)
	case KindShadow:
		r.BoxShadow(op.X, op.Y, op.W, op.H, op.OffsetX, op.OffsetY, op.Blur, op.BoxRadius, op.Inset, op.Color)
	}
}

// radius returns the signed radius for the midpoint primitives, where a
// negative value fills.
func (op *Op) radius() int {
	if op.Filled && op.Radius > 0 {
		return -op.Radius
	}
	return op.Radius
}

// drawPath builds the op's path on the mask canvas, paints it in opaque
// white and then plots every covered pixel on r in the op's color. The
// mask keeps translucent fills from being blended twice.
func drawPath(r *px.Renderer, mask *px.Canvas, op *Op) {
	mask.BeginPath()
	t := []float32{1, 0, 0, 1, 0, 0}
	if len(op.Transform) == 6 {
		t = op.Transform
	}
	mask.SetTransform(t[0], t[1], t[2], t[3], t[4], t[5])
	for _, pc := range op.Path {
		a := pc.Args
		switch pc.Cmd {
		case "move":
			mask.MoveTo(a[0], a[1])
		case "line":
			mask.LineTo(a[0], a[1])
		case "quad":
			mask.QuadraticCurveTo(a[0], a[1], a[2], a[3])
		case "bezier":
			mask.BezierCurveTo(a[0], a[1], a[2], a[3], a[4], a[5])
		case "close":
			mask.ClosePath()
		case "rect":
			mask.Rect(a[0], a[1], a[2], a[3])
		}
	}

	if op.Fill.A() != 0 {
		mask.Renderer().Set(0)
		mask.SetFillStyle(px.White)
		mask.Fill()
		plotMask(r, mask, op.Fill)
	}
	if op.Stroke.A() != 0 {
		mask.Renderer().Set(0)
		if op.LineWidth > 0 {
			mask.SetLineWidth(op.LineWidth)
		}
		mask.SetStrokeStyle(px.White)
		mask.Stroke()
		plotMask(r, mask, op.Stroke)
	}
}

func plotMask(r *px.Renderer, mask *px.Canvas, c px.Color) {
	w := mask.Width()
	for i, m := range mask.Data() {
		if m.A() != 0 {
			r.Pixel(i%w, i/w, c)
		}
	}
}
