// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package linkplan

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/samber/lo"
	"icompile.org/x/ice/pkg/catalogue"
	"icompile.org/x/ice/pkg/depgraph"
	"icompile.org/x/ice/pkg/library"
	"icompile.org/x/ice/pkg/linkorder"
	"icompile.org/x/ice/pkg/linkplan/planerrors"
	"icompile.org/x/ice/pkg/locator"
	"icompile.org/x/ice/pkg/platform"
	"icompile.org/x/ice/pkg/registry"
	"icompile.org/x/ice/pkg/schema"
	"icompile.org/x/ice/pkg/utils/stringset"
)

const (
	PlanKind          = "LinkPlan"
	PlanSchemaVersion = "v1"
	PlanAPIVersion    = schema.APIGroup + "/" + PlanSchemaVersion
)

// Planner holds the frozen registry and rank table for one catalogue. It is
// read-only after New and may be shared.
type Planner struct {
	Catalogue *catalogue.Catalogue
	Registry  *registry.Registry
	Graph     *depgraph.Graph
	Ranks     depgraph.RankTable
	Locator   *locator.Locator
}

// Loader builds a Planner on first use; commands that never plan skip loading the catalogue.
type Loader func() (*Planner, error)

// Request names what a build needs linked. Headers and Symbols are looked up
// in the trigger indices; Libraries are canonical names added directly.
type Request struct {
	Headers    []string
	Symbols    []string
	Libraries  []string
	SearchDirs []string
	Debug      bool
}

type Plan struct {
	schema.ManifestMeta `yaml:",inline"`
	Platform            platform.Descriptor     `yaml:"platform" json:"platform"`
	Debug               bool                    `yaml:"debug" json:"debug"`
	SearchDirs          []string                `yaml:"search-dirs,omitempty" json:"searchDirs,omitempty"`
	Libraries           []*Entry                `yaml:"libraries" json:"libraries"`
	Issues              []*planerrors.PlanError `yaml:"issues,omitempty" json:"issues,omitempty"`
}

// Entry is one library in link order. Known is false for names absent from
// the catalogue; those are passed to the linker by name.
type Entry struct {
	Name     string         `yaml:"name" json:"name"`
	Known    bool           `yaml:"known" json:"known"`
	Type     library.Type   `yaml:"type,omitempty" json:"type,omitempty"`
	Artifact string         `yaml:"artifact" json:"artifact"`
	Location locator.Result `yaml:"location" json:"location"`
	Deploy   bool           `yaml:"deploy" json:"deploy"`
}

// New registers the catalogue's libraries and ranks its dependency graph.
// Duplicate names and dependency cycles are returned as errors.
func New(cat *catalogue.Catalogue) (*Planner, error) {
	reg, err := cat.Registry()
	if err != nil {
		return nil, err
	}
	g, err := cat.Graph(reg)
	if err != nil {
		return nil, err
	}

	slog.Debug("link planner ready", "catalogue", cat.Source, "platform", cat.Platform.String(),
		"libraries", reg.Len(), "ranked", len(g.Vertices()))
	return &Planner{
		Catalogue: cat,
		Registry:  reg,
		Graph:     g,
		Ranks:     g.Rank(),
		Locator:   locator.New(cat.Platform),
	}, nil
}

// Order sorts names into link order, dropping duplicates.
func (p *Planner) Order(names []string) []string {
	return linkorder.Unique(p.Ranks, names)
}

// Closure returns the requested names plus everything they transitively
// depend on, in discovery order.
func (p *Planner) Closure(names []string) []string {
	seen := stringset.New()
	var result []string
	queue := slices.Clone(names)
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		if seen.Contains(name) {
			continue
		}
		seen.Add(name)
		result = append(result, name)

		if lib, ok := p.Registry.Get(name); ok {
			if _, _, available := lib.ArtifactFor(false, p.Catalogue.Platform); available {
				queue = append(queue, lib.DependsOn...)
			}
		}
	}
	return result
}

func (p *Planner) Plan(req Request) *Plan {
	plat := p.Catalogue.Platform
	plan := &Plan{
		ManifestMeta: schema.New(PlanKind, PlanSchemaVersion),
		Platform:     plat,
		Debug:        req.Debug,
		SearchDirs:   req.SearchDirs,
	}

	requested := append(p.Registry.LibrariesForTriggers(req.Headers, req.Symbols), req.Libraries...)
	names := p.Closure(requested)

	var linkable []string
	for _, name := range names {
		lib, ok := p.Registry.Get(name)
		if !ok {
			plan.Issues = append(plan.Issues, planerrors.NewUnknownLibraryError(name))
			linkable = append(linkable, name)
			continue
		}
		if _, _, ok := lib.ArtifactFor(req.Debug, plat); !ok {
			slog.Debug("skipping library unavailable on platform", "library", name, "platform", plat.String())
			plan.Issues = append(plan.Issues, planerrors.NewUnavailableOnPlatformError(name,
				fmt.Errorf("%s has no artifact linkable on %s", lib.Type, plat)))
			continue
		}
		linkable = append(linkable, name)
	}

	for _, name := range p.Order(linkable) {
		entry := p.entry(name, req)
		if entry.Known && entry.Type != library.Framework && !entry.Location.Found && len(req.SearchDirs) > 0 {
			plan.Issues = append(plan.Issues, planerrors.NewArtifactNotFoundError(name,
				fmt.Errorf("%s not in %q", entry.Location.Path, req.SearchDirs)))
		}
		plan.Libraries = append(plan.Libraries, entry)
	}

	slog.Debug("planned link", "libraries", len(plan.Libraries), "issues", len(plan.Issues))
	return plan
}

func (p *Planner) entry(name string, req Request) *Entry {
	lib, ok := p.Registry.Get(name)
	if !ok {
		return &Entry{Name: name, Artifact: name, Location: locator.Result{Path: name}}
	}

	artifact, linkType, _ := lib.ArtifactFor(req.Debug, p.Catalogue.Platform)
	return &Entry{
		Name:     name,
		Known:    true,
		Type:     linkType,
		Artifact: artifact,
		Location: p.Locator.Find(artifact, linkType, req.SearchDirs),
		Deploy:   lib.Deploy && linkType != library.Static,
	}
}

// Names returns the libraries in link order.
func (p *Plan) Names() []string {
	return lo.Map(p.Libraries, func(e *Entry, _ int) string { return e.Name })
}

// Deployable returns the entries whose artifacts ship with the built program.
func (p *Plan) Deployable() []*Entry {
	return lo.Filter(p.Libraries, func(e *Entry, _ int) bool { return e.Deploy })
}

// LinkerArgs renders the plan as linker arguments: search directories first,
// then one argument group per library in link order. Located artifacts are
// passed by path, everything else by name.
func (p *Plan) LinkerArgs() []string {
	args := lo.Map(p.SearchDirs, func(d string, _ int) string { return "-L" + d })
	for _, e := range p.Libraries {
		switch {
		case e.Type == library.Framework:
			args = append(args, "-framework", e.Artifact)
		case e.Location.Found:
			args = append(args, e.Location.Path)
		default:
			args = append(args, "-l"+e.Artifact)
		}
	}
	return args
}
