// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build sdl

// Package sdl is a window backend for px built on SDL2.
//
// Importing the package registers an "sdl" backend with priority 100 in the
// surface registry. It is only compiled with the sdl build tag because it
// needs cgo and the SDL2 development libraries:
//
//	go build -tags sdl ./cmd/pxdemo
//
// Drawing goes into an in-memory back buffer. Present uploads the buffer to
// a streaming texture, shows it and pumps the event queue; it returns false
// once the window has been closed by the user.
package sdl

import (
	"encoding/binary"
	"fmt"
	"sync"

	sdl2 "github.com/veandco/go-sdl2/sdl"

	"github.com/gogpu/px"
	"github.com/gogpu/px/surface"
)

var (
	initOnce sync.Once
	initErr  error
)

func initVideo() error {
	initOnce.Do(func() {
		initErr = sdl2.Init(sdl2.INIT_VIDEO)
		if initErr != nil {
			px.Logger().Warn("sdl: video init failed", "err", initErr)
		}
	})
	return initErr
}

// Window is a px.Surface shown in an SDL window.
type Window struct {
	*px.Pixmap

	window   *sdl2.Window
	renderer *sdl2.Renderer
	texture  *sdl2.Texture
	open     bool
}

var _ surface.Handle = (*Window)(nil)

// Open creates a window of the requested size.
func Open(opts surface.Options) (*Window, error) {
	if err := initVideo(); err != nil {
		return nil, fmt.Errorf("sdl: init: %w", err)
	}

	window, renderer, err := sdl2.CreateWindowAndRenderer(int32(opts.Width), int32(opts.Height), sdl2.WINDOW_SHOWN)
	if err != nil {
		return nil, fmt.Errorf("sdl: create window: %w", err)
	}
	if opts.Title != "" {
		window.SetTitle(opts.Title)
	}

	texture, err := renderer.CreateTexture(sdl2.PIXELFORMAT_ARGB8888, sdl2.TEXTUREACCESS_STREAMING,
		int32(opts.Width), int32(opts.Height))
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		return nil, fmt.Errorf("sdl: create texture: %w", err)
	}

	return &Window{
		Pixmap:   px.NewPixmap(opts.Width, opts.Height),
		window:   window,
		renderer: renderer,
		texture:  texture,
		open:     true,
	}, nil
}

// Present copies the back buffer to the window. It returns false when the
// window is closed or the upload fails.
func (w *Window) Present() bool {
	if !w.open {
		return false
	}
	w.pumpEvents()
	if !w.open {
		return false
	}

	texPixels, pitch, err := w.texture.Lock(nil)
	if err != nil {
		px.Logger().Warn("sdl: lock texture", "err", err)
		return false
	}
	pix, width := w.Pixels(), w.Width()
	for y := range w.Height() {
		row := pix[y*width : (y+1)*width]
		dst := texPixels[y*pitch : y*pitch+width*4]
		for x, c := range row {
			binary.NativeEndian.PutUint32(dst[x*4:], uint32(c))
		}
	}
	w.texture.Unlock()

	if err := w.renderer.Copy(w.texture, nil, nil); err != nil {
		px.Logger().Warn("sdl: copy texture", "err", err)
		return false
	}
	w.renderer.Present()
	return true
}

// pumpEvents drains the SDL event queue and notes a quit request.
func (w *Window) pumpEvents() {
	for ev := sdl2.PollEvent(); ev != nil; ev = sdl2.PollEvent() {
		if _, ok := ev.(*sdl2.QuitEvent); ok {
			px.Logger().Debug("sdl: quit requested")
			w.open = false
		}
	}
}

// IsOpen reports whether the window is still shown.
func (w *Window) IsOpen() bool {
	return w.open
}

// Close destroys the window. It is safe to call more than once.
func (w *Window) Close() error {
	if w.window == nil {
		return nil
	}
	w.open = false
	w.texture.Destroy()
	w.renderer.Destroy()
	w.window.Destroy()
	w.texture, w.renderer, w.window = nil, nil, nil
	return nil
}

func init() {
	surface.Register("sdl", 100, func(opts surface.Options) (surface.Handle, error) {
		w, err := Open(opts)
		if err != nil {
			return nil, err
		}
		return w, nil
	}, func() bool {
		return initVideo() == nil
	})
}
