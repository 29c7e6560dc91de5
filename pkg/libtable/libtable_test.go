// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package libtable

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"icompile.org/x/ice/pkg/depgraph"
	"icompile.org/x/ice/pkg/library"
	"icompile.org/x/ice/pkg/platform"
)

func TestRows(t *testing.T) {
	libs := []*library.Library{
		library.New("zlib", library.Dynamic, "z", "z", "", "", nil, nil, nil, false),
		library.New("Cocoa", library.Framework, "", "", "Cocoa", "Cocoa", nil, nil, nil, false),
		library.New("gfx", library.Dynamic, "gfx", "gfxd", "", "", nil, nil, []string{"zlib"}, true),
		library.New("curses", library.Dynamic, "curses", "curses", "", "", nil, nil, nil, false),
	}
	ranks := depgraph.RankTable{"gfx": 0, "zlib": 1}

	rows := New(libs, platform.Descriptor{OS: "linux", Architecture: "amd64"}, ranks, true)
	assert.Equal(t, []string{"Cocoa", "curses", "gfx", "zlib"}, lo.Map(rows, func(r *Row, _ int) string { return r.Name }))

	assert.False(t, rows[0].Linkable)
	assert.Equal(t, "framework", rows[0].Type)
	assert.Nil(t, rows[0].Rank)

	gfx := rows[2]
	assert.True(t, gfx.Linkable)
	assert.Equal(t, "gfxd", gfx.Artifact)
	assert.Equal(t, 0, *gfx.Rank)

	out := rows.Table()
	assert.Contains(t, out, "DEPENDS ON")
	assert.Contains(t, out, "gfxd")
	assert.Contains(t, out, "curses")
}
