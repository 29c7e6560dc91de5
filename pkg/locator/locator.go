// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package locator

import (
	"cmp"
	"fmt"
	"log/slog"
	"math"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"icompile.org/x/ice/pkg/library"
	"icompile.org/x/ice/pkg/platform"
)

// Result is where a library artifact was found. When Found is false, Path is
// the bare file name and the linker is left to report whether it exists.
type Result struct {
	Path      string  `yaml:"path" json:"path"`
	Found     bool    `yaml:"found" json:"found"`
	Versioned bool    `yaml:"versioned,omitempty" json:"versioned,omitempty"`
	Version   float64 `yaml:"version,omitempty" json:"version,omitempty"`
}

// Candidate is a version-suffixed artifact, e.g. libfoo-2.3.dylib
type Candidate struct {
	Path    string  `yaml:"path" json:"path"`
	Version float64 `yaml:"version" json:"version"`
}

type Locator struct {
	Platform platform.Descriptor
	Probe    Probe
}

func New(p platform.Descriptor) *Locator {
	return &Locator{Platform: p, Probe: OSProbe{}}
}

// extensions returns the primary and fallback extension; fallback may be "".
func (l *Locator) extensions(linkType library.Type) (string, string) {
	if linkType == library.Static {
		return l.Platform.StaticExt(), ""
	}
	return l.Platform.DynamicExt(), l.Platform.DynamicFallbackExt()
}

// Find looks for lib<name> in searchDirs. An exact file name wins over a
// version-suffixed one; among version-suffixed files the numerically highest
// version across all directories wins.
func (l *Locator) Find(name string, linkType library.Type, searchDirs []string) Result {
	if linkType == library.Framework {
		return Result{Path: name}
	}

	ext, fallbackExt := l.extensions(linkType)
	stem := "lib" + name

	for _, dir := range searchDirs {
		for _, e := range lo.Compact([]string{ext, fallbackExt}) {
			p := filepath.Join(dir, stem+e)
			if l.Probe.Exists(p) {
				return Result{Path: absolute(p), Found: true}
			}
		}
	}

	candidates := l.candidates(name, linkType, searchDirs)
	if len(candidates) > 0 {
		best := candidates[0]
		for _, c := range candidates[1:] {
			if c.Version > best.Version {
				best = c
			}
		}
		return Result{Path: absolute(best.Path), Found: true, Versioned: true, Version: best.Version}
	}

	slog.Debug("library artifact not found, deferring to the linker", "library", name, "file", stem+ext)
	return Result{Path: stem + ext}
}

// Candidates lists every version-suffixed artifact for name, highest version first.
func (l *Locator) Candidates(name string, linkType library.Type, searchDirs []string) []Candidate {
	candidates := l.candidates(name, linkType, searchDirs)
	slices.SortStableFunc(candidates, func(a, b Candidate) int {
		return cmp.Compare(b.Version, a.Version)
	})
	return candidates
}

// candidates returns parsable version-suffixed files in search order.
func (l *Locator) candidates(name string, linkType library.Type, searchDirs []string) []Candidate {
	if linkType == library.Framework {
		return nil
	}
	ext, fallbackExt := l.extensions(linkType)
	prefix := "lib" + name + "-"

	var found []Candidate
	for _, dir := range searchDirs {
		for _, e := range lo.Compact([]string{ext, fallbackExt}) {
			matches, err := l.Probe.Glob(filepath.Join(dir, prefix+"*"+e))
			if err != nil {
				slog.Debug("bad library glob", "library", name, "dir", dir, "err", err.Error())
				continue
			}
			for _, m := range matches {
				v, ok := parseVersion(filepath.Base(m), prefix, e)
				if !ok {
					continue
				}
				found = append(found, Candidate{Path: m, Version: v})
			}
		}
	}
	return found
}

// parseVersion extracts the float in <prefix><version><ext>. Suffixes that are
// not plain numbers belong to unrelated files that matched the glob.
func parseVersion(fileName, prefix, ext string) (float64, bool) {
	if !strings.HasPrefix(fileName, prefix) || !strings.HasSuffix(fileName, ext) {
		return 0, false
	}
	raw := strings.TrimSuffix(strings.TrimPrefix(fileName, prefix), ext)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

func absolute(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return abs
}

func (r Result) String() string {
	if !r.Found {
		return fmt.Sprintf("%s (not found)", r.Path)
	}
	return r.Path
}
