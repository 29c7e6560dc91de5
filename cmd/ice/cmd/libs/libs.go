// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package libs

import (
	"github.com/spf13/cobra"
	"icompile.org/x/ice/cmd/ice/cmd/output"
	"icompile.org/x/ice/pkg/builtincommand"
	"icompile.org/x/ice/pkg/iceconfig"
	"icompile.org/x/ice/pkg/libtable"
	"icompile.org/x/ice/pkg/linkplan"
)

func Cmd(config *iceconfig.Config, load linkplan.Loader) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   string(builtincommand.Libs),
		Short: "list the library catalogue",
		Long: `list the library catalogue for the target platform, in link order

	libraries that cannot be linked on the target platform are shown faint.
	unranked libraries are not constrained by the link order and come first.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			planner, err := load()
			if err != nil {
				return err
			}

			rows := libtable.New(planner.Catalogue.Libraries, planner.Catalogue.Platform, planner.Ranks, config.Debug)
			return output.Print(cmd, format, rows, rows.Table)
		},
	}

	output.Flag(cmd, &format, output.Table, output.Table, output.JSON, output.YAML)
	return cmd
}
