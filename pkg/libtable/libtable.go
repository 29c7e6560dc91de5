// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package libtable

import (
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"
	"icompile.org/x/ice/pkg/depgraph"
	"icompile.org/x/ice/pkg/library"
	"icompile.org/x/ice/pkg/platform"
)

// Row is one catalogue library as seen from a target platform.
type Row struct {
	Name      string   `json:"name" yaml:"name"`
	Type      string   `json:"type" yaml:"type"`
	Artifact  string   `json:"artifact,omitempty" yaml:"artifact,omitempty"`
	Rank      *int     `json:"rank,omitempty" yaml:"rank,omitempty"`
	Deploy    bool     `json:"deploy" yaml:"deploy"`
	DependsOn []string `json:"dependsOn,omitempty" yaml:"depends-on,omitempty"`
	Linkable  bool     `json:"linkable" yaml:"linkable"`
}

type Rows []*Row

func New(libs []*library.Library, p platform.Descriptor, ranks depgraph.RankTable, debug bool) Rows {
	rows := lo.Map(libs, func(l *library.Library, _ int) *Row {
		r := &Row{
			Name:      l.Name,
			Type:      l.Type.String(),
			Deploy:    l.Deploy,
			DependsOn: l.DependsOn,
		}
		if artifact, linkType, ok := l.ArtifactFor(debug, p); ok {
			r.Artifact = artifact
			r.Type = linkType.String()
			r.Linkable = true
		}
		if rank, ok := ranks.Lookup(l.Name); ok {
			r.Rank = &rank
		}
		return r
	})
	rows.Sort()
	return rows
}

// Sort by rank, unranked first, then by name
func (r Rows) Sort() {
	slices.SortFunc(r, func(a, b *Row) int {
		switch {
		case a.Rank == nil && b.Rank != nil:
			return -1
		case a.Rank != nil && b.Rank == nil:
			return 1
		case a.Rank != nil && *a.Rank != *b.Rank:
			return *a.Rank - *b.Rank
		}
		return strings.Compare(a.Name, b.Name)
	})
}

func (r Rows) Table() string {
	return table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		Headers("RANK", "NAME", "TYPE", "ARTIFACT", "DEPLOY", "DEPENDS ON").
		Rows(lo.Map(r, func(row *Row, _ int) []string {
			rank := "-"
			if row.Rank != nil {
				rank = strconv.Itoa(*row.Rank)
			}

			name := row.Name
			if !row.Linkable {
				name = lipgloss.NewStyle().
					Faint(true).
					Italic(true).
					Render(name)
			}

			return []string{
				rank,
				name,
				row.Type,
				row.Artifact,
				lo.Ternary(row.Deploy, "yes", ""),
				strings.Join(row.DependsOn, ", "),
			}
		})...).
		String()
}
