// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package deploycmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"icompile.org/x/ice/cmd/ice/cmd/output"
	"icompile.org/x/ice/cmd/ice/cmd/plan"
	"icompile.org/x/ice/pkg/builtincommand"
	"icompile.org/x/ice/pkg/deploy"
	"icompile.org/x/ice/pkg/iceconfig"
	"icompile.org/x/ice/pkg/linkplan"
)

func Cmd(config *iceconfig.Config, load linkplan.Loader) *cobra.Command {
	var flags plan.RequestFlags
	var format string
	var staleOnly bool

	cmd := &cobra.Command{
		Use:   string(builtincommand.Deploy) + " <dest dir>",
		Short: "report the shared libraries a program needs next to it",
		Long: `report the shared libraries a program needs next to it

	plans the link like 'ice plan', then compares every located, deployable
	dynamic library against <dest dir>. A library needs copying when the copy
	there is missing or older. Nothing is written.
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			planner, err := load()
			if err != nil {
				return err
			}

			actions, err := deploy.Check(planner.Plan(flags.Request(config)), args[0])
			if err != nil {
				return err
			}
			if staleOnly {
				actions = deploy.Stale(actions)
			}
			return output.Print(cmd, format, actions, func() string {
				return strings.Join(lo.Map(actions, func(a deploy.Action, _ int) string {
					return describe(a)
				}), "\n")
			})
		},
	}

	flags.Register(cmd, config)
	cmd.Flags().BoolVar(&staleOnly, "stale", false, "only list libraries that need copying")
	output.Flag(cmd, &format, output.Text, output.Text, output.JSON, output.YAML)
	return cmd
}

func describe(a deploy.Action) string {
	switch a.Status {
	case deploy.Copy:
		return fmt.Sprintf("%s %s -> %s", color.CyanString("%s", a.Status), a.Source, a.Destination)
	case deploy.UpToDate:
		return fmt.Sprintf("%s %s", color.GreenString("%s", a.Status), a.Destination)
	case deploy.Missing:
		return fmt.Sprintf("%s %s (%s)", color.YellowString("%s", a.Status), a.Library, a.Source)
	default:
		return fmt.Sprintf("%s %s", a.Status, a.Library)
	}
}
