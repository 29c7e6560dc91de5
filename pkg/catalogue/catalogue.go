// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package catalogue

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/Masterminds/semver/v3"
	"github.com/goccy/go-yaml"
	"github.com/samber/lo"
	"icompile.org/x/ice/pkg/depgraph"
	"icompile.org/x/ice/pkg/library"
	"icompile.org/x/ice/pkg/platform"
	"icompile.org/x/ice/pkg/registry"
	"icompile.org/x/ice/pkg/schema"
)

var ErrInvalidCatalogue = fmt.Errorf("invalid library catalogue")
var ErrMissingCatalogueField = fmt.Errorf("%w: a required field is missing", ErrInvalidCatalogue)

const (
	CatalogueKind          = "LibraryCatalogue"
	CatalogueSchemaVersion = "v1"
	CatalogueAPIVersion    = schema.APIGroup + "/" + CatalogueSchemaVersion

	// BuiltinSource is the Source of the catalogue compiled into ice
	BuiltinSource = "builtin"
)

// Platform fact keys accepted under platform-depends-on
const (
	FactDarwin  = "darwin"
	FactUnix    = "unix"
	FactWindows = "windows"
	FactARM     = "arm"
	FactNonARM  = "non-arm"
)

var platformFacts = []string{FactDarwin, FactUnix, FactWindows, FactARM, FactNonARM}

// Catalogue is the static configuration the registry and link order are built from.
type Catalogue struct {
	Source    string
	Version   *semver.Version
	Mode      depgraph.Mode
	Platform  platform.Descriptor
	Libraries []*library.Library
	LinkOrder []depgraph.Edge
}

type manifest struct {
	schema.ManifestMeta `yaml:",inline"`
	Spec                *manifestSpec `yaml:"spec"`
}

type manifestSpec struct {
	Version       string          `yaml:"version"`
	LinkOrderMode string          `yaml:"link-order-mode"`
	Libraries     []*entry        `yaml:"libraries"`
	LinkOrder     []depgraph.Edge `yaml:"link-order"`
}

type entry struct {
	Name              string              `yaml:"name"`
	Type              library.Type        `yaml:"type"`
	Release           string              `yaml:"release"`
	Debug             string              `yaml:"debug"`
	ReleaseFramework  string              `yaml:"release-framework"`
	DebugFramework    string              `yaml:"debug-framework"`
	Headers           []string            `yaml:"headers"`
	Symbols           []string            `yaml:"symbols"`
	DependsOn         []string            `yaml:"depends-on"`
	PlatformDependsOn map[string][]string `yaml:"platform-depends-on"`
	Deploy            *bool               `yaml:"deploy"`
}

// Builtin returns the compiled-in catalogue for p.
func Builtin(p platform.Descriptor) *Catalogue {
	return &Catalogue{
		Source:    BuiltinSource,
		Version:   semver.MustParse("10.1.0"),
		Mode:      DefaultMode,
		Platform:  p,
		Libraries: Default(p),
		LinkOrder: DefaultLinkOrder(),
	}
}

// Load reads the catalogue at path, or returns the built-in one when path is empty.
func Load(p platform.Descriptor, path string) (*Catalogue, error) {
	if path == "" {
		return Builtin(p), nil
	}
	return Read(path, p)
}

func Read(filePath string, p platform.Descriptor) (*Catalogue, error) {
	bytes, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	c, err := ReadContents(bytes, p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	c.Source = filePath
	return c, nil
}

func ReadContents(contents []byte, p platform.Descriptor) (*Catalogue, error) {
	var m manifest
	if err := yaml.UnmarshalWithOptions(contents, &m, yaml.Strict()); err != nil {
		return nil, errors.Join(ErrInvalidCatalogue, err)
	}

	if err := schema.New(CatalogueKind, CatalogueSchemaVersion).ValidateSchema(m.ManifestMeta); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCatalogue, err.Error())
	}

	if m.Spec == nil {
		return nil, fmt.Errorf("%w: 'spec'", ErrMissingCatalogueField)
	}
	if m.Spec.Version == "" {
		return nil, fmt.Errorf("%w: 'spec.version'", ErrMissingCatalogueField)
	}
	version, err := semver.NewVersion(m.Spec.Version)
	if err != nil {
		return nil, fmt.Errorf("%w: version %q: %s", ErrInvalidCatalogue, m.Spec.Version, err.Error())
	}
	mode, err := depgraph.ParseMode(m.Spec.LinkOrderMode)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCatalogue, err.Error())
	}

	libs := make([]*library.Library, 0, len(m.Spec.Libraries))
	for _, e := range m.Spec.Libraries {
		l, err := e.toLibrary(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidCatalogue, err.Error())
		}
		libs = append(libs, l)
	}

	for _, edge := range m.Spec.LinkOrder {
		if edge.Parent == "" || edge.Child == "" {
			return nil, fmt.Errorf("%w: link-order entries need both 'parent' and 'child'", ErrMissingCatalogueField)
		}
	}

	return &Catalogue{
		Version:   version,
		Mode:      mode,
		Platform:  p,
		Libraries: libs,
		LinkOrder: m.Spec.LinkOrder,
	}, nil
}

func (e *entry) toLibrary(p platform.Descriptor) (*library.Library, error) {
	// deploy defaults to true, except for static libraries
	l := library.New(e.Name, e.Type, e.Release, lo.CoalesceOrEmpty(e.Debug, e.Release),
		e.ReleaseFramework, lo.CoalesceOrEmpty(e.DebugFramework, e.ReleaseFramework),
		e.Headers, e.Symbols, slices.Clone(e.DependsOn), e.Deploy == nil || *e.Deploy)
	if err := l.Validate(); err != nil {
		return nil, err
	}

	for _, fact := range slices.Sorted(maps.Keys(e.PlatformDependsOn)) {
		if !lo.Contains(platformFacts, fact) {
			return nil, fmt.Errorf("library %q: unknown platform fact %q. Must be one of %q", l.Name, fact, platformFacts)
		}
		if factHolds(fact, p) {
			l.DependsOn = append(l.DependsOn, e.PlatformDependsOn[fact]...)
		}
	}
	return l, nil
}

func factHolds(fact string, p platform.Descriptor) bool {
	switch fact {
	case FactDarwin:
		return p.Family() == platform.Darwin
	case FactUnix:
		return p.Family() == platform.Unix
	case FactWindows:
		return p.Family() == platform.Windows
	case FactARM:
		return p.IsARM()
	case FactNonARM:
		return !p.IsARM()
	}
	return false
}

// Registry registers every library, failing on the first duplicate name.
func (c *Catalogue) Registry() (*registry.Registry, error) {
	return registry.New(c.Libraries...)
}

// Graph builds the dependency graph for reg using the catalogue's link order and mode.
func (c *Catalogue) Graph(reg *registry.Registry) (*depgraph.Graph, error) {
	return depgraph.BuildWithMode(reg, c.LinkOrder, c.Mode)
}
