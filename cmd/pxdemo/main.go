// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command pxdemo renders a scene file, or a built-in demo of every px
// primitive, onto a surface backend and optionally saves it as PNG.
//
//	pxdemo -o demo.png
//	pxdemo -s scene.yaml -W 640 -H 480 -o out.png
//	pxdemo -b sdl              # needs a build with -tags sdl
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/gogpu/px"
	"github.com/gogpu/px/scene"
	"github.com/gogpu/px/surface"
)

type options struct {
	Scene   string `short:"s" long:"scene" description:"Scene file (.yaml, .yml or .toml); the built-in demo when empty"`
	Output  string `short:"o" long:"output" description:"Write the rendered frame to this PNG file"`
	Width   int    `short:"W" long:"width" description:"Override the scene width"`
	Height  int    `short:"H" long:"height" description:"Override the scene height"`
	Backend string `short:"b" long:"backend" default:"memory" description:"Surface backend"`
	List    bool   `short:"l" long:"list" description:"List the registered backends and exit"`
	Verbose bool   `short:"v" long:"verbose" description:"Log debug output to stderr"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, "pxdemo:", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	if opts.Verbose {
		px.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if opts.List {
		listBackends()
		return nil
	}

	s, err := loadScene(opts)
	if err != nil {
		return err
	}

	h, err := surface.OpenByName(opts.Backend, surface.Options{Width: s.Width, Height: s.Height, Title: "pxdemo"})
	if err != nil {
		return err
	}
	defer h.Close()

	pool := px.NewWorkerPool(0)
	defer pool.Close()

	r := px.NewRenderer(h, px.WithWorkerPool(pool))
	if err := s.Render(r); err != nil {
		return err
	}
	if opts.Scene == "" {
		drawSprites(r)
	}
	r.Present()

	if opts.Output != "" {
		if err := savePNG(h, opts.Output); err != nil {
			return err
		}
		slog.Info("pxdemo: saved", "path", opts.Output, "width", s.Width, "height", s.Height)
	}

	if opts.Backend != "memory" {
		for r.Present() {
			time.Sleep(16 * time.Millisecond)
		}
	}
	return nil
}

func loadScene(opts options) (*scene.Scene, error) {
	s := demoScene()
	if opts.Scene != "" {
		var err error
		if s, err = scene.Load(opts.Scene); err != nil {
			return nil, err
		}
	}
	if opts.Width > 0 {
		s.Width = opts.Width
	}
	if opts.Height > 0 {
		s.Height = opts.Height
	}
	return s, nil
}

// savePNG copies the surface pixels into a pixmap so that any backend can
// be saved.
func savePNG(s px.Surface, path string) error {
	pm := px.NewPixmap(s.Width(), s.Height())
	copy(pm.Pixels(), s.Pixels())
	if err := pm.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func listBackends() {
	for _, b := range surface.Backends() {
		status := "unavailable"
		if b.Available() {
			status = "available"
		}
		fmt.Printf("%-10s priority %-4d %s\n", b.Name, b.Priority, status)
	}
}
