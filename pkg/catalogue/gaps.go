// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package catalogue

import (
	"log/slog"

	"github.com/samber/lo"
	"icompile.org/x/ice/pkg/depgraph"
	"icompile.org/x/ice/pkg/registry"
)

// Gap is a library whose declared dependencies appear in none of the curated
// link order edges, so its link order rests on depends-on alone.
type Gap struct {
	Library   string   `yaml:"library" json:"library"`
	DependsOn []string `yaml:"depends-on" json:"dependsOn"`
}

// Gaps lists, by library name, the configuration gaps to confirm with the
// catalogue's maintainer.
func Gaps(reg *registry.Registry, curated []depgraph.Edge) []Gap {
	edges := lo.SliceToMap(curated, func(e depgraph.Edge) (depgraph.Edge, struct{}) {
		return e, struct{}{}
	})

	var gaps []Gap
	for _, l := range reg.Libraries() {
		if len(l.DependsOn) == 0 {
			continue
		}
		covered := lo.ContainsBy(l.DependsOn, func(dep string) bool {
			_, ok := edges[depgraph.Edge{Parent: l.Name, Child: dep}]
			return ok
		})
		if !covered {
			slog.Debug("library depends-on not covered by link order", "library", l.Name, "depends-on", l.DependsOn)
			gaps = append(gaps, Gap{Library: l.Name, DependsOn: lo.Uniq(l.DependsOn)})
		}
	}
	return gaps
}

// Unregistered lists, by library name, the depends-on entries that name no
// registered library. They are linked by name only.
func Unregistered(reg *registry.Registry) []Gap {
	var gaps []Gap
	for _, l := range reg.Libraries() {
		missing := lo.Uniq(lo.Reject(l.DependsOn, func(dep string, _ int) bool {
			return reg.Contains(dep)
		}))
		if len(missing) > 0 {
			gaps = append(gaps, Gap{Library: l.Name, DependsOn: missing})
		}
	}
	return gaps
}
