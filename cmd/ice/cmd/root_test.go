// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"icompile.org/x/ice/cmd/ice/cmd/check"
	"icompile.org/x/ice/pkg/builtincommand"
	cataloguetestdata "icompile.org/x/ice/pkg/catalogue/testdata"
	"icompile.org/x/ice/pkg/iceconfig"
	"icompile.org/x/ice/pkg/libtable"
	"icompile.org/x/ice/pkg/linkplan"
	"icompile.org/x/ice/pkg/testutil"
	"icompile.org/x/ice/pkg/utils"
)

type MainSuite struct {
	testutil.CommonSetupSuite
	libDir string
}

func TestSuite(t *testing.T) {
	suite.Run(t, &MainSuite{})
}

func (suite *MainSuite) SetupTest() {
	suite.CommonSetupSuite.SetupTest()
	t := suite.T()
	color.NoColor = true

	t.Setenv(iceconfig.CatalogueEnvVar, testutil.TestdataPath(t, "ice-catalogue.yaml"))
	t.Setenv(iceconfig.PlatformEnvVar, "linux/amd64")

	suite.libDir = filepath.Join(t.TempDir(), "lib")
	testutil.TouchLibraries(t, suite.libDir, "libgfx.so", "libbase.a", "libfoo-1.0.so", "libfoo-2.5.so")
}

func runIce(t *testing.T, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	ice := &Ice{
		Stdout: &stdout,
		Stderr: &stderr,
		Stdin:  strings.NewReader(""),
		OsArgs: append([]string{IceName}, args...),
	}
	cmd, err := RootCmd(ice)
	if err != nil {
		return "", err
	}
	err = cmd.ExecuteContext(testutil.Context(t))
	return stdout.String(), err
}

func (suite *MainSuite) TestCommandsRegistered() {
	t := suite.T()
	cmd, err := RootCmd(&Ice{OsArgs: []string{IceName}})
	require.NoError(t, err)

	names := lo.Map(cmd.Commands(), func(c *cobra.Command, _ int) string { return c.Name() })
	for _, b := range builtincommand.BuiltinCommands {
		assert.Contains(t, names, string(b))
	}

	out, err := runIce(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Link Commands")
	assert.Contains(t, out, "Meta Commands")
}

func (suite *MainSuite) TestOrder() {
	t := suite.T()

	out, err := runIce(t, "order", "z", "gfx", "app", "orphan", "gfx")
	require.NoError(t, err)
	assert.Equal(t, "orphan\napp\ngfx\nz\n", out)

	out, err = runIce(t, "order", "--with-deps", "app", "-o", "json")
	require.NoError(t, err)
	var names []string
	require.NoError(t, json.Unmarshal([]byte(out), &names))
	assert.Equal(t, []string{"app", "gfx", "base", "z"}, names)

	_, err = runIce(t, "order", "app", "-o", "xml")
	assert.Error(t, err)
	_, err = runIce(t, "order")
	assert.Error(t, err)
}

func (suite *MainSuite) TestPlanFlags() {
	t := suite.T()

	out, err := runIce(t, "plan", "-H", "app.h", "-L", suite.libDir, "-o", "flags")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"-L" + suite.libDir,
		"-lapp",
		filepath.Join(suite.libDir, "libgfx.so"),
		filepath.Join(suite.libDir, "libbase.a"),
		"-lz",
	}, " ")+"\n", out)

	t.Setenv(iceconfig.DebugEnvVar, "true")
	t.Setenv(iceconfig.LibraryPathEnvVar, suite.libDir)
	out, err = runIce(t, "plan", "--symbol", "gfx_init", "-o", "flags")
	require.NoError(t, err)
	assert.Equal(t, "-L"+suite.libDir+" -lgfxd "+filepath.Join(suite.libDir, "libbase.a")+" -lz\n", out)
}

func (suite *MainSuite) TestPlanYaml() {
	t := suite.T()

	out, err := runIce(t, "plan", "--lib", "app", "--lib", "Cocoa", "--lib", "pthread")
	require.NoError(t, err)

	var p linkplan.Plan
	require.NoError(t, yaml.Unmarshal([]byte(out), &p))
	assert.Equal(t, linkplan.PlanKind, p.Kind)
	assert.Equal(t, linkplan.PlanAPIVersion, p.APIVersion)
	assert.Equal(t, "linux/amd64", p.Platform.String())
	assert.Equal(t, []string{"pthread", "app", "gfx", "base", "z"}, p.Names())
	require.Len(t, p.Issues, 2)
	assert.Equal(t, "Cocoa", p.Issues[0].Library)
	assert.Equal(t, "pthread", p.Issues[1].Library)
}

func (suite *MainSuite) TestPlanOutputFile() {
	t := suite.T()
	outDir := filepath.Join(t.TempDir(), "build")
	require.NoError(t, os.MkdirAll(outDir, 0o755))
	outFile := filepath.Join(outDir, "link.json")

	out, err := runIce(t, "plan", "-H", "gfx.h", "-o", "json", "--output", outFile)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"kind": "LinkPlan"`)
	assert.FileExists(t, filepath.Join(outDir, utils.LockFileName))
}

func (suite *MainSuite) TestLocate() {
	t := suite.T()

	out, err := runIce(t, "locate", "gfx", "-L", suite.libDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(suite.libDir, "libgfx.so")+"\n", out)

	out, err = runIce(t, "locate", "foo", "-L", suite.libDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(suite.libDir, "libfoo-2.5.so")+"\n", out)

	out, err = runIce(t, "locate", "foo", "--all", "-L", suite.libDir)
	require.NoError(t, err)
	assert.Equal(t, "2.5\t"+filepath.Join(suite.libDir, "libfoo-2.5.so")+"\n1\t"+filepath.Join(suite.libDir, "libfoo-1.0.so")+"\n", out)

	out, err = runIce(t, "locate", "gfx", "--static")
	require.NoError(t, err)
	assert.Equal(t, "libgfx.a (not found)\n", out)

	_, err = runIce(t, "locate", "Cocoa")
	assert.Error(t, err)
	_, err = runIce(t, "locate", "gfx", "--static", "--dynamic")
	assert.Error(t, err)
}

func (suite *MainSuite) TestLibs() {
	t := suite.T()

	out, err := runIce(t, "libs", "-o", "json")
	require.NoError(t, err)
	var rows []*libtable.Row
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	assert.Equal(t, []string{"Cocoa", "orphan", "app", "gfx", "base", "z"}, lo.Map(rows, func(r *libtable.Row, _ int) string { return r.Name }))
	assert.False(t, rows[0].Linkable)

	out, err = runIce(t, "libs")
	require.NoError(t, err)
	assert.Contains(t, out, "DEPENDS ON")
	assert.Contains(t, out, "orphan")
}

func (suite *MainSuite) TestCheck() {
	t := suite.T()

	out, err := runIce(t, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "warning: orphan depends on [z] but no link order edge covers it")
	assert.Contains(t, out, "6 libraries, 3 link order edges, 1 warnings")

	_, err = runIce(t, "check", "--strict")
	assert.ErrorIs(t, err, check.ErrCheckFailed)

	t.Setenv(iceconfig.CatalogueEnvVar, "")
	t.Chdir(t.TempDir())
	out, err = runIce(t, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "catalogue builtin")
}

func (suite *MainSuite) TestCheckBrokenCatalogue() {
	t := suite.T()
	dir := t.TempDir()

	cyclic := filepath.Join(dir, "cyclic.yaml")
	require.NoError(t, os.WriteFile(cyclic, cataloguetestdata.Cyclic, 0o644))
	t.Setenv(iceconfig.CatalogueEnvVar, cyclic)

	out, err := runIce(t, "check")
	assert.ErrorIs(t, err, check.ErrCheckFailed)
	assert.Contains(t, out, "error: dependency cycle: Cocoa -> SDL -> Cocoa")
	assert.Contains(t, out, "consider link-order-mode: curated")

	_, err = runIce(t, "order", "SDL")
	assert.ErrorContains(t, err, "dependency cycle")

	duplicate := filepath.Join(dir, "duplicate.yaml")
	require.NoError(t, os.WriteFile(duplicate, cataloguetestdata.Duplicate, 0o644))
	t.Setenv(iceconfig.CatalogueEnvVar, duplicate)

	out, err = runIce(t, "check")
	assert.ErrorIs(t, err, check.ErrCheckFailed)
	assert.Contains(t, out, "zlib")
}

func (suite *MainSuite) TestDeploy() {
	t := suite.T()
	dest := filepath.Join(t.TempDir(), "bin")

	out, err := runIce(t, "deploy", dest, "-H", "gfx.h", "-L", suite.libDir)
	require.NoError(t, err)
	assert.Contains(t, out, "copy "+filepath.Join(suite.libDir, "libgfx.so")+" -> "+filepath.Join(dest, "libgfx.so"))
	assert.NotContains(t, out, "libz")
	assert.NoDirExists(t, dest)

	testutil.TouchLibraries(t, dest, "libgfx.so")
	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dest, "libgfx.so"), future, future))

	out, err = runIce(t, "deploy", dest, "-H", "gfx.h", "-L", suite.libDir)
	require.NoError(t, err)
	assert.Contains(t, out, "up-to-date")

	out, err = runIce(t, "deploy", dest, "-H", "gfx.h", "-L", suite.libDir, "--stale", "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func (suite *MainSuite) TestVersion() {
	t := suite.T()

	out, err := runIce(t, "version", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"version": "unknown"`)

	out, err = runIce(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "version: unknown")
}

func (suite *MainSuite) TestBrokenConfiguration() {
	t := suite.T()

	t.Setenv(iceconfig.CatalogueEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := runIce(t, "libs")
	assert.ErrorIs(t, err, os.ErrNotExist)

	t.Setenv(iceconfig.PlatformEnvVar, "not-a-platform")
	_, err = runIce(t, "version")
	assert.NoError(t, err)
	_, err = runIce(t, "plan", "--lib", "app")
	assert.Error(t, err)
}
