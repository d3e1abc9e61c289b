// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface opens the destinations a px.Renderer draws into.
//
// The core px package never creates windows. A backend hands out a Handle,
// which is a px.Surface the caller owns and must Close. Backends register
// themselves by name and priority:
//
//   - memory: an in-process px.Pixmap, always available (priority 10)
//   - sdl: an SDL2 window, registered by importing surface/sdl in a build
//     with the sdl tag (priority 100)
//
// # Usage
//
//	h, err := surface.Open(surface.Options{Width: 800, Height: 600})
//	if err != nil {
//	    return err
//	}
//	defer h.Close()
//
//	r := px.NewRenderer(h)
//	r.Clear()
//	r.Circle(400, 300, -100, px.White)
//	r.Present()
//
// Open picks the highest priority available backend and falls back to the
// next one when a factory fails. OpenByName selects a backend explicitly.
package surface
