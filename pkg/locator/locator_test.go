// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package locator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"icompile.org/x/ice/pkg/library"
	"icompile.org/x/ice/pkg/platform"
)

var (
	darwin = platform.Descriptor{OS: "darwin", Architecture: "arm64"}
	linux  = platform.Descriptor{OS: "linux", Architecture: "amd64"}
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), nil, 0o644))
	}
}

func TestFindHighestVersion(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "libfoo-2.3.dylib", "libfoo-1.0.dylib")

	got := New(darwin).Find("foo", library.Dynamic, []string{dir})
	assert.True(t, got.Found)
	assert.True(t, got.Versioned)
	assert.Equal(t, filepath.Join(dir, "libfoo-2.3.dylib"), got.Path)
	assert.Equal(t, 2.3, got.Version)
}

func TestFindNotFound(t *testing.T) {
	got := New(darwin).Find("foo", library.Dynamic, []string{t.TempDir(), t.TempDir()})
	assert.False(t, got.Found)
	assert.Equal(t, "libfoo.dylib", got.Path)
	assert.Equal(t, "libfoo.dylib (not found)", got.String())

	assert.Equal(t, "libfoo.a", New(linux).Find("foo", library.Static, nil).Path)
	assert.Equal(t, "libfoo.so", New(linux).Find("foo", library.Dynamic, nil).Path)
}

func TestFindExact(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	touch(t, first, "libfoo-9.0.dylib")
	touch(t, second, "libfoo.so")

	// an exact name anywhere on the path beats a versioned one
	got := New(darwin).Find("foo", library.Dynamic, []string{first, second})
	assert.True(t, got.Found)
	assert.False(t, got.Versioned)
	assert.Equal(t, filepath.Join(second, "libfoo.so"), got.Path)

	// primary extension before fallback within a directory
	touch(t, second, "libfoo.dylib")
	got = New(darwin).Find("foo", library.Dynamic, []string{first, second})
	assert.Equal(t, filepath.Join(second, "libfoo.dylib"), got.Path)

	// first directory wins
	touch(t, first, "libfoo.so")
	got = New(darwin).Find("foo", library.Dynamic, []string{first, second})
	assert.Equal(t, filepath.Join(first, "libfoo.so"), got.Path)
}

func TestFindStatic(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "libglfw.so", "libglfw.a")

	got := New(linux).Find("glfw", library.Static, []string{dir})
	assert.Equal(t, filepath.Join(dir, "libglfw.a"), got.Path)

	// static never falls back to shared objects
	dir2 := t.TempDir()
	touch(t, dir2, "libglew.so")
	assert.False(t, New(linux).Find("glew", library.Static, []string{dir2}).Found)
}

func TestVersionAcrossDirsAndFallback(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	touch(t, first, "libfoo-1.5.dylib", "libfoo-beta.dylib", "libfoo-bar-2.0.dylib")
	touch(t, second, "libfoo-10.so")

	got := New(darwin).Find("foo", library.Dynamic, []string{first, second})
	assert.Equal(t, filepath.Join(second, "libfoo-10.so"), got.Path)
	assert.Equal(t, 10.0, got.Version)

	candidates := New(darwin).Candidates("foo", library.Dynamic, []string{first, second})
	assert.Equal(t, []Candidate{
		{Path: filepath.Join(second, "libfoo-10.so"), Version: 10},
		{Path: filepath.Join(first, "libfoo-1.5.dylib"), Version: 1.5},
	}, candidates)
}

func TestUnparsableOnly(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "libfoo-nightly.so", "libfoo-inf.so", "libfoo-NaN.so")

	got := New(linux).Find("foo", library.Dynamic, []string{dir})
	assert.False(t, got.Found)
	assert.Equal(t, "libfoo.so", got.Path)
}

func TestFramework(t *testing.T) {
	got := New(darwin).Find("Cocoa", library.Framework, []string{t.TempDir()})
	assert.Equal(t, Result{Path: "Cocoa"}, got)
}

type fakeProbe struct {
	files map[string]bool
	globs map[string][]string
}

func (f fakeProbe) Exists(path string) bool { return f.files[path] }
func (f fakeProbe) Glob(pattern string) ([]string, error) {
	if pattern == filepath.Join("bad", "libfoo-*.so") {
		return nil, filepath.ErrBadPattern
	}
	return f.globs[pattern], nil
}

func TestProbeInjection(t *testing.T) {
	probe := fakeProbe{
		globs: map[string][]string{
			filepath.Join("lib", "libfoo-*.so"): {filepath.Join("lib", "libfoo-3.1.so"), filepath.Join("lib", "libfoo-3.10.so")},
		},
	}
	l := &Locator{Platform: linux, Probe: probe}

	got := l.Find("foo", library.Dynamic, []string{"bad", "lib"})
	assert.True(t, got.Found)
	assert.Equal(t, 3.1, got.Version)
	assert.True(t, filepath.IsAbs(got.Path))
	assert.Equal(t, "libfoo-3.1.so", filepath.Base(got.Path))
}
