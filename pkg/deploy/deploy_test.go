// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package deploy

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"icompile.org/x/ice/pkg/library"
	"icompile.org/x/ice/pkg/linkplan"
	"icompile.org/x/ice/pkg/locator"
)

func testPlan(t *testing.T) (*linkplan.Plan, string) {
	src := t.TempDir()
	lib := filepath.Join(src, "libgfx.so")
	require.NoError(t, os.WriteFile(lib, []byte("gfx"), 0o755))

	return &linkplan.Plan{
		Libraries: []*linkplan.Entry{
			{Name: "gfx", Known: true, Type: library.Dynamic, Artifact: "gfx", Location: locator.Result{Path: lib, Found: true}, Deploy: true},
			{Name: "base", Known: true, Type: library.Static, Artifact: "base", Location: locator.Result{Path: "libbase.a"}},
			{Name: "audio", Known: true, Type: library.Dynamic, Artifact: "audio", Location: locator.Result{Path: "libaudio.so"}, Deploy: true},
		},
	}, lib
}

func TestCheck(t *testing.T) {
	plan, lib := testPlan(t)
	dest := filepath.Join(t.TempDir(), "bin")

	actions, err := Check(plan, dest)
	require.NoError(t, err)
	assert.Equal(t, []Action{
		{Library: "gfx", Source: lib, Destination: filepath.Join(dest, "libgfx.so"), Status: Copy},
		{Library: "audio", Source: "libaudio.so", Status: Missing},
	}, actions)
	assert.Len(t, Stale(actions), 1)
	assert.NoDirExists(t, dest)

	// an older copy is stale
	require.NoError(t, os.MkdirAll(dest, 0o755))
	deployed := filepath.Join(dest, "libgfx.so")
	require.NoError(t, os.WriteFile(deployed, []byte("old"), 0o755))
	old := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(deployed, old, old))

	actions, err = Check(plan, dest)
	require.NoError(t, err)
	assert.Equal(t, Copy, actions[0].Status)

	// a copy at least as new as the source is up to date
	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(deployed, future, future))
	actions, err = Check(plan, dest)
	require.NoError(t, err)
	assert.Equal(t, UpToDate, actions[0].Status)
	assert.Empty(t, Stale(actions))
}

func TestCheckNoDestination(t *testing.T) {
	plan, _ := testPlan(t)
	_, err := Check(plan, "")
	assert.Error(t, err)
}
