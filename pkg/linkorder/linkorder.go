// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package linkorder sorts library names into the order they are given to a linker.
//
// Names known to the rank table sort by rank. Names it does not know sort before
// all ranked names, alphabetically: nothing ranked can be shown to depend on them,
// so they are placed first. The result is a total order, so any permutation of the
// same input sorts to identical output.
package linkorder

import (
	"cmp"
	"slices"

	"github.com/samber/lo"
	"icompile.org/x/ice/pkg/depgraph"
)

const (
	unranked = 0
	ranked   = 1
)

// SortKey is the (isRanked, rank or name) tuple a name sorts by.
type SortKey struct {
	Ranked int
	Rank   int
	Name   string
}

func Key(ranks depgraph.RankTable, name string) SortKey {
	if rank, ok := ranks[name]; ok {
		return SortKey{Ranked: ranked, Rank: rank, Name: name}
	}
	return SortKey{Ranked: unranked, Name: name}
}

func (k SortKey) Compare(other SortKey) int {
	return cmp.Or(
		cmp.Compare(k.Ranked, other.Ranked),
		cmp.Compare(k.Rank, other.Rank),
		cmp.Compare(k.Name, other.Name),
	)
}

// Resolve returns names sorted into link order. Duplicates are kept and the
// input slice is not modified.
func Resolve(ranks depgraph.RankTable, names []string) []string {
	keyed := lo.Map(names, func(n string, _ int) SortKey {
		return Key(ranks, n)
	})
	slices.SortStableFunc(keyed, SortKey.Compare)
	return lo.Map(keyed, func(k SortKey, _ int) string {
		return k.Name
	})
}

// Unique is Resolve with duplicate names removed.
func Unique(ranks depgraph.RankTable, names []string) []string {
	return Resolve(ranks, lo.Uniq(names))
}
