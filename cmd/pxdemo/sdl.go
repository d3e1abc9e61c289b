// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build sdl

package main

import _ "github.com/gogpu/px/surface/sdl"
