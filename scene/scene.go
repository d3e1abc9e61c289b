// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package scene describes drawings as data and replays them on a
// px.Renderer.
//
// A Scene is a canvas size, a background and an ordered list of drawing
// operations. Scenes are usually loaded from YAML or TOML files:
//
//	width: 320
//	height: 240
//	background: "#FF000000"
//	ops:
//	  - kind: circle
//	    x: 160
//	    y: 120
//	    radius: -40
//	    color: "#FFFF0000"
//	  - kind: path
//	    path:
//	      - {cmd: move, args: [10, 10]}
//	      - {cmd: line, args: [60, 10]}
//	      - {cmd: line, args: [35, 50]}
//	      - {cmd: close}
//	    fill: "#FF00FF00"
//
// Colors use the "#AARRGGBB" form and must be quoted in YAML, where a bare
// '#' starts a comment.
package scene

import (
	"errors"
	"fmt"

	"github.com/gogpu/px"
)

// Kind names a drawing operation.
type Kind string

// Operation kinds. Each maps onto one px.Renderer primitive, except
// KindPath which replays a canvas path.
const (
	// KindPixel plots Color at (X, Y).
	KindPixel Kind = "pixel"

	// KindLine draws from (X, Y) to (X2, Y2), or a polyline through Points
	// when it is not empty.
	KindLine Kind = "line"

	// KindWuLine draws an antialiased line from (X, Y) to (X2, Y2).
	KindWuLine Kind = "wu_line"

	// KindCircle draws a circle of Radius at (X, Y). Filled, or a negative
	// radius, fills the disc.
	KindCircle Kind = "circle"

	// KindWuCircle draws an antialiased circle outline.
	KindWuCircle Kind = "wu_circle"

	// KindArc draws the octants selected by Octants (all when zero).
	KindArc Kind = "arc"

	// KindRect fills the W×H rectangle at (X, Y).
	KindRect Kind = "rect"

	// KindRoundedRect draws a rectangle with corners of Radius.
	KindRoundedRect Kind = "rounded_rect"

	// KindGradient fills the rectangle with a gradient from Color at Start
	// to End at Stop.
	KindGradient Kind = "gradient"

	// KindText draws Text with the bitmap font.
	KindText Kind = "text"

	// KindShadow draws a box shadow for the rectangle.
	KindShadow Kind = "shadow"

	// KindPath builds Path on a canvas and fills and/or strokes it.
	KindPath Kind = "path"
)

var knownKinds = map[Kind]bool{
	KindPixel: true, KindLine: true, KindWuLine: true,
	KindCircle: true, KindWuCircle: true, KindArc: true,
	KindRect: true, KindRoundedRect: true, KindGradient: true,
	KindText: true, KindShadow: true, KindPath: true,
}

// Scene is a serializable drawing.
type Scene struct {
	Width      int      `yaml:"width" toml:"width"`
	Height     int      `yaml:"height" toml:"height"`
	Background px.Color `yaml:"background" toml:"background"`
	Ops        []Op     `yaml:"ops" toml:"ops"`
}

// Op is one drawing operation. Only the fields used by its Kind are read.
type Op struct {
	Kind Kind `yaml:"kind" toml:"kind"`

	X      int      `yaml:"x" toml:"x"`
	Y      int      `yaml:"y" toml:"y"`
	X2     int      `yaml:"x2" toml:"x2"`
	Y2     int      `yaml:"y2" toml:"y2"`
	W      int      `yaml:"w" toml:"w"`
	H      int      `yaml:"h" toml:"h"`
	Points [][2]int `yaml:"points" toml:"points"`

	Radius  int   `yaml:"radius" toml:"radius"`
	Octants uint8 `yaml:"octants" toml:"octants"`
	Filled  bool  `yaml:"filled" toml:"filled"`

	Color px.Color `yaml:"color" toml:"color"`
	End   px.Color `yaml:"end" toml:"end"`
	Start [2]int   `yaml:"start" toml:"start"`
	Stop  [2]int   `yaml:"stop" toml:"stop"`

	Text string `yaml:"text" toml:"text"`

	OffsetX   int  `yaml:"offset_x" toml:"offset_x"`
	OffsetY   int  `yaml:"offset_y" toml:"offset_y"`
	Blur      int  `yaml:"blur" toml:"blur"`
	BoxRadius int  `yaml:"box_radius" toml:"box_radius"`
	Inset     bool `yaml:"inset" toml:"inset"`

	Path      []PathCmd `yaml:"path" toml:"path"`
	Fill      px.Color  `yaml:"fill" toml:"fill"`
	Stroke    px.Color  `yaml:"stroke" toml:"stroke"`
	LineWidth float32   `yaml:"line_width" toml:"line_width"`
	Transform []float32 `yaml:"transform" toml:"transform"`
}

// PathCmd is one path building step of a KindPath op.
//
//	move   x y
//	line   x y
//	quad   cpx cpy x y
//	bezier cp1x cp1y cp2x cp2y x y
//	close
//	rect   x y w h
type PathCmd struct {
	Cmd  string    `yaml:"cmd" toml:"cmd"`
	Args []float32 `yaml:"args" toml:"args"`
}

var pathArity = map[string]int{
	"move":   2,
	"line":   2,
	"quad":   4,
	"bezier": 6,
	"close":  0,
	"rect":   4,
}

var (
	// ErrUnknownOp is wrapped by an *OpError whose kind is not recognized.
	ErrUnknownOp = errors.New("scene: unknown op")

	// ErrBadPath is wrapped by an *OpError whose path has an unknown
	// command, a wrong argument count or a malformed transform.
	ErrBadPath = errors.New("scene: bad path")

	// ErrBadSize is returned for a scene without a positive size.
	ErrBadSize = errors.New("scene: width and height must be positive")
)

// OpError reports the operation that made a scene invalid.
type OpError struct {
	Index int
	Kind  Kind
	Err   error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("scene: op %d (%s): %v", e.Index, e.Kind, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// Validate checks the scene size and every operation.
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w (got %dx%d)", ErrBadSize, s.Width, s.Height)
	}
	for i := range s.Ops {
		if err := s.Ops[i].validate(); err != nil {
			return &OpError{Index: i, Kind: s.Ops[i].Kind, Err: err}
		}
	}
	return nil
}

func (op *Op) validate() error {
	if !knownKinds[op.Kind] {
		return ErrUnknownOp
	}
	if op.Kind != KindPath {
		return nil
	}
	if n := len(op.Transform); n != 0 && n != 6 {
		return fmt.Errorf("%w: transform needs 6 values, got %d", ErrBadPath, n)
	}
	for _, pc := range op.Path {
		want, ok := pathArity[pc.Cmd]
		if !ok {
			return fmt.Errorf("%w: unknown command %q", ErrBadPath, pc.Cmd)
		}
		if len(pc.Args) != want {
			return fmt.Errorf("%w: %s takes %d args, got %d", ErrBadPath, pc.Cmd, want, len(pc.Args))
		}
	}
	return nil
}
