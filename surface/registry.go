// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/gogpu/px"
)

// Backend describes a registered surface backend.
type Backend struct {
	Name string

	// Priority orders backends for Open, highest first. Window backends
	// use 100, in-memory ones 10.
	Priority int

	factory   Factory
	available func() bool
}

// Available reports whether the backend can open surfaces on this system.
func (b Backend) Available() bool {
	return b.available == nil || b.available()
}

// Registry holds backends in Open order. The zero value is empty and ready
// to use.
//
// Backends register from init functions, so linking a backend package is
// enough to make it selectable:
//
//	func init() {
//	    surface.Register("sdl", 100, open, hasDisplay)
//	}
type Registry struct {
	mu       sync.RWMutex
	backends []Backend // sorted by priority, then name
}

var defaultRegistry Registry

// Register adds a backend to the default registry. A nil available func
// means always available. Registering a name again replaces it.
func Register(name string, priority int, factory Factory, available func() bool) {
	defaultRegistry.Register(name, priority, factory, available)
}

// Backends returns the backends of the default registry in Open order.
func Backends() []Backend {
	return defaultRegistry.Backends()
}

// List returns the names of all registered backends in Open order.
func List() []string {
	return defaultRegistry.List()
}

// Available returns the names of the backends usable on this system, in
// Open order.
func Available() []string {
	return defaultRegistry.Available()
}

// Open opens a surface on the best available backend.
func Open(opts Options) (Handle, error) {
	return defaultRegistry.Open(opts)
}

// OpenByName opens a surface on the named backend.
func OpenByName(name string, opts Options) (Handle, error) {
	return defaultRegistry.OpenByName(name, opts)
}

func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.backends = slices.DeleteFunc(r.backends, func(b Backend) bool { return b.Name == name })
	r.backends = append(r.backends, Backend{Name: name, Priority: priority, factory: factory, available: available})
	slices.SortFunc(r.backends, func(a, b Backend) int {
		if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
}

// Backends returns a copy of the registered backends in Open order.
func (r *Registry) Backends() []Backend {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.backends)
}

func (r *Registry) List() []string {
	var names []string
	for _, b := range r.Backends() {
		names = append(names, b.Name)
	}
	return names
}

func (r *Registry) Available() []string {
	var names []string
	for _, b := range r.Backends() {
		if b.Available() {
			names = append(names, b.Name)
		}
	}
	return names
}

func (r *Registry) lookup(name string) (Backend, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := slices.IndexFunc(r.backends, func(b Backend) bool { return b.Name == name })
	if i < 0 {
		return Backend{}, false
	}
	return r.backends[i], true
}

// Open tries the available backends in order and returns the first
// surface that opens. If every factory fails the last error is returned.
func (r *Registry) Open(opts Options) (Handle, error) {
	names := r.Available()
	if len(names) == 0 {
		return nil, ErrNoBackendAvailable
	}

	var lastErr error
	for _, name := range names {
		h, err := r.OpenByName(name, opts)
		if err == nil {
			return h, nil
		}
		px.Logger().Warn("surface: backend failed, trying next", "backend", name, "err", err)
		lastErr = err
	}
	return nil, lastErr
}

func (r *Registry) OpenByName(name string, opts Options) (Handle, error) {
	b, ok := r.lookup(name)
	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}
	if !b.Available() {
		return nil, &BackendUnavailableError{Name: name}
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("surface: %s: invalid size %dx%d", name, opts.Width, opts.Height)
	}

	h, err := b.factory(opts)
	if err != nil {
		return nil, fmt.Errorf("surface: open %s: %w", name, err)
	}
	px.Logger().Info("surface: opened", "backend", name, "width", opts.Width, "height", opts.Height)
	return h, nil
}

// ErrNoBackendAvailable is returned by Open when no registered backend is
// usable.
var ErrNoBackendAvailable = errors.New("surface: no backend available")

// BackendNotFoundError reports a name nothing was registered under.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

// BackendUnavailableError reports a registered backend that cannot run
// here, such as a window backend without a display.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "surface: backend unavailable: " + e.Name
}
