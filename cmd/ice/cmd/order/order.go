// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package order

import (
	"strings"

	"github.com/spf13/cobra"
	"icompile.org/x/ice/cmd/ice/cmd/output"
	"icompile.org/x/ice/pkg/builtincommand"
	"icompile.org/x/ice/pkg/linkplan"
)

func Cmd(load linkplan.Loader) *cobra.Command {
	var format string
	var withDeps bool

	cmd := &cobra.Command{
		Use:   string(builtincommand.Order) + " <library>...",
		Short: "sort libraries into link order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			planner, err := load()
			if err != nil {
				return err
			}

			names := args
			if withDeps {
				names = planner.Closure(args)
			}
			ordered := planner.Order(names)
			return output.Print(cmd, format, ordered, func() string {
				return strings.Join(ordered, "\n")
			})
		},
	}

	cmd.Flags().BoolVarP(&withDeps, "with-deps", "d", false, "include everything the libraries transitively depend on")
	output.Flag(cmd, &format, output.Text, output.Text, output.JSON, output.YAML)
	return cmd
}
