// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package depgraph

// RankTable maps a library name to its 0-based position in the link order.
// Ranks are dense and unique.
type RankTable map[string]int

// Rank returns the rank of every vertex. For every edge, rank(parent) < rank(child).
func (g *Graph) Rank() RankTable {
	ranks := make(RankTable, len(g.order))
	for i, name := range g.order {
		ranks[name] = i
	}
	return ranks
}

func (r RankTable) Lookup(name string) (int, bool) {
	rank, ok := r[name]
	return rank, ok
}
