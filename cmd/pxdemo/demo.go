// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/gogpu/px"
	"github.com/gogpu/px/scene"
)

var (
	coral  = px.RGB(255, 111, 97)
	teal   = px.RGB(0, 150, 136)
	amber  = px.RGB(255, 193, 7)
	violet = px.RGBA(103, 58, 183, 200)
	slate  = px.RGB(38, 50, 56)
)

// demoScene lays out one panel per primitive on a 640x480 canvas.
func demoScene() *scene.Scene {
	ops := []scene.Op{
		{Kind: scene.KindGradient, X: 0, Y: 0, W: 640, H: 480, Start: [2]int{0, 0}, Stop: [2]int{0, 479}, Color: slate, End: px.Black},

		// Lines.
		{Kind: scene.KindLine, X: 20, Y: 20, X2: 180, Y2: 100, Color: coral},
		{Kind: scene.KindLine, Points: [][2]int{{20, 110}, {60, 60}, {100, 110}, {140, 60}, {180, 110}}, Color: amber},
		{Kind: scene.KindWuLine, X: 20, Y: 130, X2: 180, Y2: 150, Color: px.White},
		{Kind: scene.KindWuLine, X: 20, Y: 150, X2: 180, Y2: 130, Color: teal},

		// Circles and arcs.
		{Kind: scene.KindCircle, X: 260, Y: 70, Radius: 45, Filled: true, Color: violet},
		{Kind: scene.KindCircle, X: 260, Y: 70, Radius: 50, Color: px.White},
		{Kind: scene.KindWuCircle, X: 380, Y: 70, Radius: 45, Color: amber},
		{Kind: scene.KindArc, X: 500, Y: 70, Radius: 45, Filled: true, Octants: px.QuadrantTopLeft | px.QuadrantBottomRight, Color: coral},
		{Kind: scene.KindArc, X: 500, Y: 70, Radius: 45, Octants: px.QuadrantTopRight | px.QuadrantBottomLeft, Color: teal},

		// Boxes.
		{Kind: scene.KindShadow, X: 30, Y: 200, W: 140, H: 80, OffsetX: 6, OffsetY: 6, Blur: 6, BoxRadius: 10, Color: px.RGBA(0, 0, 0, 160)},
		{Kind: scene.KindRoundedRect, X: 30, Y: 200, W: 140, H: 80, Radius: 10, Filled: true, Color: teal},
		{Kind: scene.KindRoundedRect, X: 200, Y: 200, W: 140, H: 80, Radius: 20, Color: px.White},
		{Kind: scene.KindRect, X: 370, Y: 200, W: 100, H: 80, Color: coral},
		{Kind: scene.KindRect, X: 420, Y: 230, W: 100, H: 80, Color: px.RGBA(0, 150, 136, 128)},
		{Kind: scene.KindShadow, X: 540, Y: 200, W: 80, H: 80, Blur: 8, Inset: true, Color: px.RGBA(0, 0, 0, 200)},

		// Paths.
		{
			Kind: scene.KindPath,
			Path: []scene.PathCmd{
				{Cmd: "move", Args: []float32{0, -50}},
				{Cmd: "line", Args: []float32{47, 15}},
				{Cmd: "line", Args: []float32{-29, -40}},
				{Cmd: "line", Args: []float32{29, -40}},
				{Cmd: "line", Args: []float32{-47, 15}},
				{Cmd: "close"},
			},
			Fill:      amber,
			Stroke:    px.White,
			Transform: []float32{1, 0, 0, 1, 90, 390},
		},
		{
			Kind: scene.KindPath,
			Path: []scene.PathCmd{
				{Cmd: "move", Args: []float32{-60, 0}},
				{Cmd: "quad", Args: []float32{0, -90, 60, 0}},
				{Cmd: "bezier", Args: []float32{30, 60, -30, 60, -60, 0}},
				{Cmd: "close"},
			},
			Fill: violet,
			// Rotated by 30 degrees around the origin, then moved.
			Transform: []float32{0.866, 0.5, -0.5, 0.866, 260, 390},
		},
		{
			Kind: scene.KindPath,
			Path: []scene.PathCmd{
				{Cmd: "rect", Args: []float32{0, 0, 60, 60}},
				{Cmd: "rect", Args: []float32{15, 15, 30, 30}},
			},
			Fill:      coral,
			Transform: []float32{1.5, 0, 0, 1.5, 360, 340},
		},

		{Kind: scene.KindText, X: 20, Y: 450, Text: "px: lines, circles, arcs, boxes, shadows, paths", Color: px.White},
	}
	return &scene.Scene{Width: 640, Height: 480, Background: px.Black, Ops: ops}
}

// drawSprites blits a checkered sprite and its translucent copy to show
// Image compositing.
func drawSprites(r *px.Renderer) {
	const n = 48
	sprite := make([]px.Color, n*n)
	for y := range n {
		for x := range n {
			c := px.White
			if (x/8+y/8)%2 == 1 {
				c = teal
			}
			sprite[y*n+x] = c
		}
	}
	r.Image(500, 340, n, n, sprite)

	for i, c := range sprite {
		sprite[i] = c.WithAlpha(96)
	}
	r.Image(524, 364, n, n, sprite)
	r.Image(610, 400, n, n, sprite) // clipped at the right edge
}
