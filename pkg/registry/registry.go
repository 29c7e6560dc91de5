// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/samber/lo"
	"icompile.org/x/ice/pkg/library"
)

var ErrRegistryFrozen = fmt.Errorf("library registry is frozen")

// DuplicateLibraryError is returned when two libraries share a canonical name.
type DuplicateLibraryError struct {
	Name string
}

func (e *DuplicateLibraryError) Error() string {
	return fmt.Sprintf("library %q defined twice", e.Name)
}

var _ error = (*DuplicateLibraryError)(nil)

// Registry is the catalogue of libraries plus the header and symbol trigger indices.
// It is populated once, frozen, and read-only afterwards; the read-only phase is
// safe to share between goroutines.
type Registry struct {
	libraries         map[string]*library.Library
	headerToLibraries map[string][]string
	symbolToLibraries map[string][]string
	frozen            bool
}

func NewEmpty() *Registry {
	return &Registry{
		libraries:         make(map[string]*library.Library),
		headerToLibraries: make(map[string][]string),
		symbolToLibraries: make(map[string][]string),
	}
}

// New registers libs in order and freezes the result.
func New(libs ...*library.Library) (*Registry, error) {
	r := NewEmpty()
	for _, l := range libs {
		if err := r.Register(l); err != nil {
			return nil, err
		}
	}
	r.Freeze()
	return r, nil
}

func (r *Registry) Register(lib *library.Library) error {
	if r.frozen {
		return fmt.Errorf("%w: cannot add %q", ErrRegistryFrozen, lib.Name)
	}
	if _, ok := r.libraries[lib.Name]; ok {
		return &DuplicateLibraryError{Name: lib.Name}
	}

	slog.Debug("adding library to registry", "library", lib.Name)
	r.libraries[lib.Name] = lib

	for _, header := range lib.HeaderTriggers {
		r.headerToLibraries[header] = append(r.headerToLibraries[header], lib.Name)
	}
	for _, symbol := range lib.SymbolTriggers {
		r.symbolToLibraries[symbol] = append(r.symbolToLibraries[symbol], lib.Name)
	}
	return nil
}

func (r *Registry) Freeze() {
	r.frozen = true
}

func (r *Registry) Frozen() bool {
	return r.frozen
}

func (r *Registry) Get(name string) (*library.Library, bool) {
	l, ok := r.libraries[name]
	return l, ok
}

func (r *Registry) Contains(name string) bool {
	_, ok := r.libraries[name]
	return ok
}

func (r *Registry) Len() int {
	return len(r.libraries)
}

// Names returns all canonical names, sorted
func (r *Registry) Names() []string {
	names := lo.Keys(r.libraries)
	slices.Sort(names)
	return names
}

// Libraries returns all records sorted by name
func (r *Registry) Libraries() []*library.Library {
	return lo.Map(r.Names(), func(n string, _ int) *library.Library {
		return r.libraries[n]
	})
}

// LibrariesForHeader returns every library triggered by header, in registration order.
func (r *Registry) LibrariesForHeader(header string) []string {
	return slices.Clone(r.headerToLibraries[header])
}

// LibrariesForSymbol returns every library triggered by an unbound symbol, in registration order.
func (r *Registry) LibrariesForSymbol(symbol string) []string {
	return slices.Clone(r.symbolToLibraries[symbol])
}

// LibrariesForTriggers is the deduplicated union of the header and symbol lookups,
// in first-seen order.
func (r *Registry) LibrariesForTriggers(headers, symbols []string) []string {
	var names []string
	for _, h := range headers {
		names = append(names, r.headerToLibraries[h]...)
	}
	for _, s := range symbols {
		names = append(names, r.symbolToLibraries[s]...)
	}
	return lo.Uniq(names)
}
