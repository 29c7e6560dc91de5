// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"errors"
	"fmt"
	"strings"
)

const (
	APIGroup = "icompile.org"
)

var (
	ErrMissingField          = errors.New("missing required field")
	ErrUnsupportedKind       = errors.New("unsupported kind")
	ErrUnsupportedAPIVersion = errors.New("unsupported apiVersion")
)

// ManifestMeta is the apiVersion/kind header shared by catalogue and plan documents.
type ManifestMeta struct {
	APIVersion string `yaml:"apiVersion" json:"apiVersion"`
	Kind       string `yaml:"kind" json:"kind"`
}

// New returns the header for kind at the given schema version of APIGroup, e.g. New("LinkPlan", "v1")
func New(kind, version string) ManifestMeta {
	return ManifestMeta{APIVersion: APIGroup + "/" + version, Kind: kind}
}

// GroupVersion splits apiVersion at its last slash. version is empty when there is none.
func (m ManifestMeta) GroupVersion() (group, version string) {
	i := strings.LastIndex(m.APIVersion, "/")
	if i < 0 {
		return m.APIVersion, ""
	}
	return m.APIVersion[:i], m.APIVersion[i+1:]
}

// ValidateSchema checks that target is a document of m's kind and apiVersion.
func (m ManifestMeta) ValidateSchema(target ManifestMeta) error {
	if target.Kind == "" {
		return fmt.Errorf("%w 'kind'", ErrMissingField)
	} else if target.Kind != m.Kind {
		return fmt.Errorf("%w %q. expected %q", ErrUnsupportedKind, target.Kind, m.Kind)
	}

	if target.APIVersion == "" {
		return fmt.Errorf("%w 'apiVersion'", ErrMissingField)
	}
	if target.APIVersion == m.APIVersion {
		return nil
	}

	group, version := target.GroupVersion()
	wantGroup, wantVersion := m.GroupVersion()
	if group != wantGroup {
		return fmt.Errorf("%w %q: unknown API group %q. expected %q", ErrUnsupportedAPIVersion, target.APIVersion, group, wantGroup)
	}
	return fmt.Errorf("%w %q: %s %s is not supported by this version of ice. expected %s",
		ErrUnsupportedAPIVersion, target.APIVersion, target.Kind, version, wantVersion)
}
