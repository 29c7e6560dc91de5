// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package platform

import (
	"runtime"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	p, err := Parse("darwin/arm64")
	require.NoError(t, err)
	assert.Equal(t, Descriptor{OS: "darwin", Architecture: "arm64"}, p)

	for _, bad := range []string{"", "linux", "linux/", "/amd64", "a/b/c"} {
		_, err := Parse(bad)
		assert.Error(t, err, bad)
	}
}

func TestCurrent(t *testing.T) {
	p := Current()
	assert.Equal(t, runtime.GOOS, p.OS)
	assert.Equal(t, runtime.GOARCH, p.Architecture)
}

func TestFacts(t *testing.T) {
	tests := []struct {
		platform   string
		family     Family
		frameworks bool
		arm        bool
		dynamic    string
		fallback   string
	}{
		{"darwin/amd64", Darwin, true, false, ".dylib", ".so"},
		{"darwin/arm64", Darwin, true, true, ".dylib", ".so"},
		{"linux/amd64", Unix, false, false, ".so", ""},
		{"linux/arm", Unix, false, true, ".so", ""},
		{"linux/aarch64", Unix, false, true, ".so", ""},
		{"freebsd/386", Unix, false, false, ".so", ""},
		{"windows/amd64", Windows, false, false, ".so", ""},
	}

	for _, tt := range tests {
		t.Run(tt.platform, func(t *testing.T) {
			p, err := Parse(tt.platform)
			require.NoError(t, err)
			assert.Equal(t, tt.family, p.Family())
			assert.Equal(t, tt.frameworks, p.SupportsFrameworks())
			assert.Equal(t, tt.arm, p.IsARM())
			assert.Equal(t, ".a", p.StaticExt())
			assert.Equal(t, tt.dynamic, p.DynamicExt())
			assert.Equal(t, tt.fallback, p.DynamicFallbackExt())
		})
	}
}

func TestYAML(t *testing.T) {
	type wrapper struct {
		Platform Descriptor `yaml:"platform"`
	}

	var w wrapper
	require.NoError(t, yaml.Unmarshal([]byte("platform: linux/arm64\n"), &w))
	assert.Equal(t, Descriptor{OS: "linux", Architecture: "arm64"}, w.Platform)

	out, err := yaml.Marshal(w)
	require.NoError(t, err)
	assert.Contains(t, string(out), "linux/arm64")

	assert.Error(t, yaml.Unmarshal([]byte("platform: generic\n"), &w))
}
