// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package platform

import (
	"encoding"
	"fmt"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
)

type Family string

const (
	Darwin  Family = "darwin"
	Windows Family = "windows"
	Unix    Family = "unix"
)

const (
	staticExt        = ".a"
	sharedObjectExt  = ".so"
	darwinDynamicExt = ".dylib"
)

// Descriptor is the OS/CPU pair a library catalogue is built for.
// It is a plain value so catalogues for other hosts can be constructed in tests.
type Descriptor struct {
	// OS specifies the operating system, for example `linux` or `darwin`.
	OS string

	// Architecture field specifies the CPU architecture, for example
	// `amd64` or `arm64`.
	Architecture string
}

func Parse(platformStr string) (Descriptor, error) {
	parts := strings.Split(platformStr, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Descriptor{}, fmt.Errorf("failed to parse platform %q: expected format os/arch", platformStr)
	}

	return Descriptor{
		OS:           parts[0],
		Architecture: parts[1],
	}, nil
}

func Current() Descriptor {
	return Descriptor{OS: runtime.GOOS, Architecture: runtime.GOARCH}
}

func (d Descriptor) Family() Family {
	switch d.OS {
	case "darwin":
		return Darwin
	case "windows":
		return Windows
	default:
		return Unix
	}
}

// SupportsFrameworks reports whether OS bundles (frameworks) can be linked
func (d Descriptor) SupportsFrameworks() bool {
	return d.Family() == Darwin
}

// IsARM covers both GOARCH spellings and the uname spellings (armv7l, aarch64)
func (d Descriptor) IsARM() bool {
	return strings.HasPrefix(d.Architecture, "arm") || d.Architecture == "aarch64"
}

func (d Descriptor) StaticExt() string {
	return staticExt
}

func (d Descriptor) DynamicExt() string {
	if d.Family() == Darwin {
		return darwinDynamicExt
	}
	return sharedObjectExt
}

// DynamicFallbackExt is the secondary shared library extension, or "" when the platform has only one.
func (d Descriptor) DynamicFallbackExt() string {
	if d.Family() == Darwin {
		return sharedObjectExt
	}
	return ""
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%s/%s", d.OS, d.Architecture)
}

func (d Descriptor) Equal(other Descriptor) bool {
	return d.OS == other.OS && d.Architecture == other.Architecture
}

func (d Descriptor) MarshalYAML() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d Descriptor) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Descriptor) UnmarshalYAML(bytes []byte) error {
	var unmarshalled string
	if err := yaml.Unmarshal(bytes, &unmarshalled); err != nil {
		return fmt.Errorf("failed to unmarshal platform: %w", err)
	}
	parsed, err := Parse(unmarshalled)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

var _ yaml.BytesMarshaler = Descriptor{}
var _ yaml.BytesUnmarshaler = (*Descriptor)(nil)
var _ encoding.TextMarshaler = Descriptor{}
