// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"io"

	"github.com/gogpu/px"
)

// Handle is a surface owned by the caller. Close releases the backend
// resources; what a handle does after Close is up to the backend.
type Handle interface {
	px.Surface
	io.Closer
}

// Options configures a new surface.
type Options struct {
	// Width and Height are the surface size in pixels.
	Width  int
	Height int

	// Title is used by windowed backends.
	Title string
}

// Factory creates a surface with the given options.
// Implementations should validate options and return descriptive errors.
type Factory func(opts Options) (Handle, error)
