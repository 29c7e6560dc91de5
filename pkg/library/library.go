// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package library

import (
	"encoding"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/samber/lo"
	"icompile.org/x/ice/pkg/platform"
)

// Type selects artifact naming rules and the default deployability of a library.
type Type int

const (
	Static    Type = iota + 1 // .a
	Dynamic                   // .so or .dylib
	Framework                 // .dylib in a framework bundle
)

var typeNames = map[Type]string{
	Static:    "static",
	Dynamic:   "dynamic",
	Framework: "framework",
}

func ParseType(s string) (Type, error) {
	t, ok := lo.FindKey(typeNames, strings.ToLower(s))
	if !ok {
		return 0, fmt.Errorf("unknown library type %q. Must be one of %q", s, lo.Values(typeNames))
	}
	return t, nil
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

func (t Type) MarshalYAML() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalYAML(bytes []byte) error {
	var s string
	if err := yaml.Unmarshal(bytes, &s); err != nil {
		return err
	}
	parsed, err := ParseType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Library is one linkable unit, identified by its canonical name.
type Library struct {
	Name string `yaml:"name" json:"name"`
	Type Type   `yaml:"type" json:"type"`

	// Platform independent base names for the static/dynamic forms
	ReleaseArtifact string `yaml:"release,omitempty" json:"release,omitempty"`
	DebugArtifact   string `yaml:"debug,omitempty" json:"debug,omitempty"`

	// Bundle names, preferred over the plain artifact where frameworks are supported
	ReleaseFramework string `yaml:"release-framework,omitempty" json:"releaseFramework,omitempty"`
	DebugFramework   string `yaml:"debug-framework,omitempty" json:"debugFramework,omitempty"`

	// Headers that, when included by a compiled source, trigger a link to this library
	HeaderTriggers []string `yaml:"headers,omitempty" json:"headers,omitempty"`

	// Unbound symbols that trigger a link. This finds dependencies of static
	// libraries, which headers alone do not reveal.
	SymbolTriggers []string `yaml:"symbols,omitempty" json:"symbols,omitempty"`

	// Canonical names of libraries this one requires, linked after it
	DependsOn []string `yaml:"depends-on,omitempty" json:"dependsOn,omitempty"`

	// Whether the artifact is copied alongside an end-user build
	Deploy bool `yaml:"deploy" json:"deploy"`
}

// New builds a Library with the deploy flag normalized for its type.
func New(name string, t Type, release, debug, releaseFramework, debugFramework string,
	headers, symbols, dependsOn []string, deploy bool) *Library {
	l := &Library{
		Name:             name,
		Type:             t,
		ReleaseArtifact:  release,
		DebugArtifact:    debug,
		ReleaseFramework: releaseFramework,
		DebugFramework:   debugFramework,
		HeaderTriggers:   headers,
		SymbolTriggers:   symbols,
		DependsOn:        dependsOn,
		Deploy:           deploy,
	}
	l.Normalize()
	return l
}

// Normalize enforces that static libraries are never deployed,
// since they are absorbed into the final binary.
func (l *Library) Normalize() {
	if l.Type == Static {
		l.Deploy = false
	}
}

func (l *Library) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("library is missing a name")
	}
	if _, ok := typeNames[l.Type]; !ok {
		return fmt.Errorf("library %q has an invalid type", l.Name)
	}
	if l.ReleaseArtifact == "" && l.ReleaseFramework == "" {
		return fmt.Errorf("library %q has neither a release artifact nor a release framework", l.Name)
	}
	return nil
}

// ArtifactFor picks the file or bundle name to link on the given platform.
// ok is false when the library cannot be linked there at all (a framework-only
// library on a platform without frameworks).
func (l *Library) ArtifactFor(debug bool, p platform.Descriptor) (name string, linkType Type, ok bool) {
	framework, artifact := l.ReleaseFramework, l.ReleaseArtifact
	if debug {
		framework, artifact = lo.CoalesceOrEmpty(l.DebugFramework, framework), lo.CoalesceOrEmpty(l.DebugArtifact, artifact)
	}

	if framework != "" && p.SupportsFrameworks() {
		return framework, Framework, true
	}
	if artifact == "" {
		return "", 0, false
	}

	linkType = l.Type
	if linkType == Framework {
		linkType = Dynamic
	}
	return artifact, linkType, true
}

func (l *Library) String() string {
	return "$" + l.Name + "$"
}

var _ yaml.BytesMarshaler = Type(0)
var _ yaml.BytesUnmarshaler = (*Type)(nil)
var _ encoding.TextMarshaler = Type(0)
