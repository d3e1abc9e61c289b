// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/px"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned by Load for a file extension other than
// .yaml, .yml or .toml.
var ErrUnknownFormat = errors.New("scene: unknown file format")

// LoadYAML parses and validates a YAML scene.
func LoadYAML(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scene: parse yaml: %w", err)
	}
	return loaded(&s, "yaml")
}

// LoadTOML parses and validates a TOML scene. Ops are an array of tables:
//
//	width = 64
//	height = 64
//
//	[[ops]]
//	kind = "rect"
//	x = 8
//	y = 8
//	w = 16
//	h = 16
//	color = "#FFFFFFFF"
func LoadTOML(data []byte) (*Scene, error) {
	var s Scene
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scene: parse toml: %w", err)
	}
	return loaded(&s, "toml")
}

// Load reads a scene file, choosing the format by extension.
func Load(path string) (*Scene, error) {
	var parse func([]byte) (*Scene, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parse = LoadYAML
	case ".toml":
		parse = LoadTOML
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	return parse(data)
}

func loaded(s *Scene, format string) (*Scene, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	px.Logger().Debug("scene: loaded", "format", format, "size", fmt.Sprintf("%dx%d", s.Width, s.Height), "ops", len(s.Ops))
	return s, nil
}
