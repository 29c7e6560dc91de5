// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"github.com/spf13/cobra"
	"icompile.org/x/ice/cmd/ice/cmd/output"
	"icompile.org/x/ice/pkg/builtincommand"
	"icompile.org/x/ice/pkg/iceversion"
)

func Cmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   string(builtincommand.Version),
		Short: "show the ice version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return output.Print(cmd, format, iceversion.Get(), iceversion.GetIceVersion)
		},
	}

	output.Flag(cmd, &format, output.YAML, output.Text, output.JSON, output.YAML)
	return cmd
}
