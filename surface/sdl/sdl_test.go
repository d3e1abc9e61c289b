// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build sdl

package sdl

import (
	"slices"
	"testing"

	"github.com/gogpu/px"
	"github.com/gogpu/px/surface"
)

func TestRegistered(t *testing.T) {
	if !slices.Contains(surface.List(), "sdl") {
		t.Fatalf("surface.List() = %v, want sdl", surface.List())
	}
}

func TestWindowPresent(t *testing.T) {
	if err := initVideo(); err != nil {
		t.Skipf("no video device: %v", err)
	}

	w, err := Open(surface.Options{Width: 64, Height: 32, Title: "px test"})
	if err != nil {
		t.Skipf("cannot open window: %v", err)
	}
	defer w.Close()

	r := px.NewRenderer(w)
	r.Clear()
	r.Circle(32, 16, -10, px.Red)
	if !r.Present() {
		t.Error("Present failed on an open window")
	}

	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if w.Present() || w.IsOpen() {
		t.Error("closed window still presents")
	}
}
