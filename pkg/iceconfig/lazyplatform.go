// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package iceconfig

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"icompile.org/x/ice/pkg/platform"
)

// LazyPlatform holds a platform override whose parse error is reported only
// when a command needs the platform, so `ice version` still works with a bad ICE_PLATFORM.
type LazyPlatform struct {
	raw   string
	value *platform.Descriptor
	err   error
}

func NewLazyPlatform(raw string) *LazyPlatform {
	l := &LazyPlatform{raw: raw}
	p, err := platform.Parse(raw)
	if err != nil {
		l.err = fmt.Errorf("invalid target platform: %w", err)
	} else {
		l.value = &p
	}
	return l
}

func (l *LazyPlatform) MarshalYAML() ([]byte, error) {
	return []byte(l.raw), nil
}

func (l *LazyPlatform) UnmarshalYAML(data []byte) error {
	var raw string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}
	*l = *NewLazyPlatform(raw)
	return nil
}

// Get returns the override, or the host platform when none is set.
func (l *LazyPlatform) Get() (platform.Descriptor, error) {
	if l == nil {
		return platform.Current(), nil
	}
	if l.err != nil {
		return platform.Descriptor{}, l.err
	}
	return *l.value, nil
}

var _ yaml.BytesUnmarshaler = (*LazyPlatform)(nil)
var _ yaml.BytesMarshaler = (*LazyPlatform)(nil)
