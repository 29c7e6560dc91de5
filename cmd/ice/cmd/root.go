// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"io"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"icompile.org/x/ice/cmd/ice/cmd/check"
	"icompile.org/x/ice/cmd/ice/cmd/deploycmd"
	"icompile.org/x/ice/cmd/ice/cmd/libs"
	"icompile.org/x/ice/cmd/ice/cmd/locate"
	"icompile.org/x/ice/cmd/ice/cmd/order"
	"icompile.org/x/ice/cmd/ice/cmd/plan"
	"icompile.org/x/ice/cmd/ice/cmd/version"
	"icompile.org/x/ice/pkg/builtincommand"
	"icompile.org/x/ice/pkg/iceconfig"
	"icompile.org/x/ice/pkg/iceversion"
	"icompile.org/x/ice/pkg/logging"
)

const (
	metaGroupId = "meta"
	linkGroupId = "link"
	IceName     = "ice"
)

// Ice is one invocation of the CLI
type Ice struct {
	Stdout, Stderr io.Writer
	Stdin          io.Reader
	// must contain at least one argument, namely the ice binary name, similar to os.Args
	OsArgs []string
}

func (ice *Ice) SetOutputStreams(cmd *cobra.Command) {
	cmd.SetOut(ice.Stdout)
	cmd.SetErr(ice.Stderr)
	cmd.SetIn(ice.Stdin)

	lo.ForEach(cmd.Commands(), func(sub *cobra.Command, _ int) {
		ice.SetOutputStreams(sub)
	})
}

func RootCmd(ice *Ice) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:          IceName,
		Short:        "plan the native libraries a C/C++ build links, and their order",
		SilenceUsage: true,
	}

	defer ice.SetOutputStreams(cmd)

	if len(ice.OsArgs) == 0 {
		return nil, fmt.Errorf("Ice.OsArgs must contain at least one entry similar to os.Args")
	}

	cmd.SetArgs(ice.OsArgs[1:])
	cmd.AddGroup(&cobra.Group{
		ID:    metaGroupId,
		Title: "Meta Commands",
	})
	cmd.AddGroup(&cobra.Group{
		ID:    linkGroupId,
		Title: "Link Commands",
	})

	if err := logging.InitLogging(); err != nil {
		return nil, err
	}

	config, err := iceconfig.Get()
	if err != nil {
		return nil, err
	}

	load := sync.OnceValues(config.Planner)
	if builtincommand.NeedsCatalogue(ice.OsArgs) {
		// surface catalogue errors before flag parsing
		if _, err := load(); err != nil {
			return nil, err
		}
	}

	cmd.AddCommand(
		setCmdGroup(libs.Cmd(config, load), linkGroupId),
		setCmdGroup(order.Cmd(load), linkGroupId),
		setCmdGroup(plan.Cmd(config, load), linkGroupId),
		setCmdGroup(locate.Cmd(config, load), linkGroupId),
		setCmdGroup(deploycmd.Cmd(config, load), linkGroupId),
		setCmdGroup(check.Cmd(config), metaGroupId),
		setCmdGroup(version.Cmd(), metaGroupId),
	)

	v, err := yaml.Marshal(iceversion.Get())
	if err != nil {
		return nil, err
	}
	cmd.Version = string(v)
	cmd.SetVersionTemplate("{{.Version}}")

	return cmd, nil
}

func setCmdGroup(cmd *cobra.Command, groupId string) *cobra.Command {
	cmd.GroupID = groupId
	return cmd
}
