// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package depgraph

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/samber/lo"
	"icompile.org/x/ice/pkg/registry"
)

// Edge means Parent requires Child, and Child is linked after Parent.
type Edge struct {
	Parent string `yaml:"parent" json:"parent"`
	Child  string `yaml:"child" json:"child"`
}

func (e Edge) String() string {
	return e.Parent + " -> " + e.Child
}

// Mode selects which edge sources make up the graph.
type Mode string

const (
	// Union takes every library's depends-on pairs plus the curated pairs.
	Union Mode = "union"
	// CuratedOnly takes the curated pairs alone. Libraries that appear in no
	// curated pair are left out of the graph, and so stay unranked.
	CuratedOnly Mode = "curated"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", Union:
		return Union, nil
	case CuratedOnly:
		return CuratedOnly, nil
	default:
		return "", fmt.Errorf("unknown link order mode %q. Must be one of %q", s, []Mode{Union, CuratedOnly})
	}
}

// CyclicDependencyError is returned when the edges do not form a DAG.
// Cycle starts and ends with the same library.
type CyclicDependencyError struct {
	Cycle []string
}

func (e *CyclicDependencyError) Error() string {
	return fmt.Sprintf("dependency cycle: %s", strings.Join(e.Cycle, " -> "))
}

var _ error = (*CyclicDependencyError)(nil)

// Graph is an acyclic dependency graph over canonical library names.
// Names that are not registered libraries are opaque leaves.
type Graph struct {
	vertices []string
	children map[string][]string
	order    []string
}

// Build unions the registry's depends-on lists with the curated edges.
func Build(reg *registry.Registry, curated []Edge) (*Graph, error) {
	return BuildWithMode(reg, curated, Union)
}

func BuildWithMode(reg *registry.Registry, curated []Edge, mode Mode) (*Graph, error) {
	var edges []Edge
	var vertices []string

	if mode != CuratedOnly {
		for _, l := range reg.Libraries() {
			vertices = append(vertices, l.Name)
			for _, child := range l.DependsOn {
				edges = append(edges, Edge{Parent: l.Name, Child: child})
			}
		}
	}
	edges = append(edges, curated...)
	return New(vertices, edges)
}

// New builds a graph from explicit vertices and edges. Edge endpoints are added
// as vertices and duplicate edges are dropped.
func New(vertices []string, edges []Edge) (*Graph, error) {
	g := &Graph{children: make(map[string][]string)}

	all := slices.Clone(vertices)
	for _, e := range lo.Uniq(edges) {
		all = append(all, e.Parent, e.Child)
		g.children[e.Parent] = append(g.children[e.Parent], e.Child)
	}

	g.vertices = lo.Uniq(all)
	slices.Sort(g.vertices)
	for parent := range g.children {
		slices.Sort(g.children[parent])
	}

	order, err := g.topologicalOrder()
	if err != nil {
		return nil, err
	}
	g.order = order

	slog.Debug("built dependency graph", "vertices", len(g.vertices), "edges", len(g.Edges()))
	return g, nil
}

// Vertices returns all names in the graph, sorted
func (g *Graph) Vertices() []string {
	return slices.Clone(g.vertices)
}

func (g *Graph) Children(name string) []string {
	return slices.Clone(g.children[name])
}

// Edges returns the deduplicated edge set sorted by parent then child
func (g *Graph) Edges() []Edge {
	var edges []Edge
	for _, parent := range g.vertices {
		for _, child := range g.children[parent] {
			edges = append(edges, Edge{Parent: parent, Child: child})
		}
	}
	return edges
}

func (g *Graph) HasEdge(parent, child string) bool {
	_, found := slices.BinarySearch(g.children[parent], child)
	return found
}

// Order is the computed linear extension, parents before children.
func (g *Graph) Order() []string {
	return slices.Clone(g.order)
}

// topologicalOrder is Kahn's algorithm with the ready set kept sorted, so that
// mutually unconstrained names come out lexicographically.
func (g *Graph) topologicalOrder() ([]string, error) {
	inDegree := lo.SliceToMap(g.vertices, func(v string) (string, int) { return v, 0 })
	for _, children := range g.children {
		for _, c := range children {
			inDegree[c]++
		}
	}

	ready := lo.Filter(g.vertices, func(v string, _ int) bool { return inDegree[v] == 0 })
	order := make([]string, 0, len(g.vertices))
	for len(ready) > 0 {
		next := ready[0]
		ready = ready[1:]
		order = append(order, next)

		for _, c := range g.children[next] {
			inDegree[c]--
			if inDegree[c] == 0 {
				i, _ := slices.BinarySearch(ready, c)
				ready = slices.Insert(ready, i, c)
			}
		}
	}

	if len(order) != len(g.vertices) {
		return nil, &CyclicDependencyError{Cycle: g.findCycle()}
	}
	return order, nil
}

type visitState int

const (
	notVisited visitState = iota
	visiting
	done
)

// findCycle returns the first cycle reachable in lexicographic DFS order.
func (g *Graph) findCycle() []string {
	state := make(map[string]visitState, len(g.vertices))
	var stack []string

	var visit func(v string) []string
	visit = func(v string) []string {
		state[v] = visiting
		stack = append(stack, v)
		for _, c := range g.children[v] {
			switch state[c] {
			case visiting:
				i := slices.Index(stack, c)
				return append(slices.Clone(stack[i:]), c)
			case notVisited:
				if cycle := visit(c); cycle != nil {
					return cycle
				}
			}
		}
		stack = stack[:len(stack)-1]
		state[v] = done
		return nil
	}

	for _, v := range g.vertices {
		if state[v] != notVisited {
			continue
		}
		if cycle := visit(v); cycle != nil {
			return cycle
		}
	}
	return nil
}

// SortEdges orders edges by parent then child
func SortEdges(edges []Edge) {
	slices.SortFunc(edges, func(a, b Edge) int {
		return cmp.Or(cmp.Compare(a.Parent, b.Parent), cmp.Compare(a.Child, b.Child))
	})
}
