// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"icompile.org/x/ice/pkg/iceconfig"
)

// TestdataPath gives absolute path within the common 'testdata'
func TestdataPath(t *testing.T, path ...string) string {
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)

	p := []string{filepath.Dir(file), "testdata"}
	p = append(p, path...)
	return filepath.Join(p...)
}

// TouchLibraries creates empty artifact files in dir
func TouchLibraries(t *testing.T, dir string, fileNames ...string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, n := range fileNames {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), nil, 0o755))
	}
}

type CommonSetupSuite struct {
	suite.Suite
	IceHome string
}

func (suite *CommonSetupSuite) SetupTest() {
	// point ICE_HOME at a fresh temp dir before every test, and clear the other
	// overrides, so the developer's own ~/.ice and environment never leak in
	suite.IceHome = suite.T().TempDir()
	suite.T().Setenv(iceconfig.IceHomeEnvVar, suite.IceHome)
	for _, v := range []string{
		iceconfig.LogLevelEnvVar,
		iceconfig.LogFormatEnvVar,
		iceconfig.CatalogueEnvVar,
		iceconfig.LibraryPathEnvVar,
		iceconfig.PlatformEnvVar,
		iceconfig.DebugEnvVar,
	} {
		suite.T().Setenv(v, "")
		require.NoError(suite.T(), os.Unsetenv(v))
	}
}

func Context(t *testing.T) context.Context {
	ctx, stopFn := context.WithCancel(context.Background())
	t.Cleanup(stopFn)
	return ctx
}
