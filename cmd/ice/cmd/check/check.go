// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package check

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"icompile.org/x/ice/pkg/builtincommand"
	"icompile.org/x/ice/pkg/catalogue"
	"icompile.org/x/ice/pkg/depgraph"
	"icompile.org/x/ice/pkg/iceconfig"
)

var ErrCheckFailed = errors.New("catalogue check failed")

func Cmd(config *iceconfig.Config) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   string(builtincommand.Check),
		Short: "validate the library catalogue",
		Long: `validate the library catalogue for the target platform

	errors: duplicate library names and dependency cycles.
	warnings: libraries whose depends-on is covered by no link order edge, and
	depends-on entries naming no catalogue library.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := config.Catalogue()
			if err != nil {
				return err
			}
			cmd.Printf("catalogue %s (version %s, %s link order) for %s\n",
				cat.Source, cat.Version, cat.Mode, cat.Platform)

			reg, err := cat.Registry()
			if err != nil {
				cmd.Println(color.RedString("error: %s", err.Error()))
				return ErrCheckFailed
			}
			if _, err := cat.Graph(reg); err != nil {
				var cycle *depgraph.CyclicDependencyError
				if errors.As(err, &cycle) && cat.Mode == depgraph.Union {
					err = fmt.Errorf("%w (libraries' depends-on and the curated link order disagree; consider link-order-mode: %s)",
						err, depgraph.CuratedOnly)
				}
				cmd.Println(color.RedString("error: %s", err.Error()))
				return ErrCheckFailed
			}

			warnings := 0
			for _, g := range catalogue.Gaps(reg, cat.LinkOrder) {
				warnings++
				cmd.Println(color.YellowString("warning: %s depends on [%s] but no link order edge covers it",
					g.Library, strings.Join(g.DependsOn, ", ")))
			}
			for _, g := range catalogue.Unregistered(reg) {
				warnings++
				cmd.Println(color.YellowString("warning: %s depends on unknown [%s], linked by name only",
					g.Library, strings.Join(g.DependsOn, ", ")))
			}

			summary := fmt.Sprintf("%d libraries, %d link order edges, %d warnings", reg.Len(), len(cat.LinkOrder), warnings)
			if warnings > 0 && strict {
				cmd.Println(color.RedString("%s", summary))
				return ErrCheckFailed
			}
			cmd.Println(color.GreenString("%s", summary))
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail on warnings")
	return cmd
}
