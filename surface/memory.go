// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import "github.com/gogpu/px"

// Memory is an in-process surface backed by a px.Pixmap. Present reports
// success until the surface is closed.
type Memory struct {
	*px.Pixmap
	closed bool
}

// NewMemory creates a transparent in-memory surface.
func NewMemory(width, height int) *Memory {
	return &Memory{Pixmap: px.NewPixmap(width, height)}
}

// Present reports whether the surface is still open.
func (m *Memory) Present() bool {
	return !m.closed
}

// Close marks the surface closed. The pixels stay readable. Close is
// idempotent.
func (m *Memory) Close() error {
	m.closed = true
	return nil
}

func init() {
	Register("memory", 10, func(opts Options) (Handle, error) {
		return NewMemory(opts.Width, opts.Height), nil
	}, nil)
}
