// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package locate

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"icompile.org/x/ice/cmd/ice/cmd/output"
	"icompile.org/x/ice/pkg/builtincommand"
	"icompile.org/x/ice/pkg/iceconfig"
	"icompile.org/x/ice/pkg/library"
	"icompile.org/x/ice/pkg/linkplan"
	"icompile.org/x/ice/pkg/locator"
)

func Cmd(config *iceconfig.Config, load linkplan.Loader) *cobra.Command {
	var static, dynamic, all, debug bool
	var dirs []string
	var format string

	cmd := &cobra.Command{
		Use:   string(builtincommand.Locate) + " <name>",
		Short: "find the artifact for a library",
		Long: `find the artifact for a library in the search directories

	<name> is a catalogue library, or otherwise a bare artifact name such as "z"
	for libz. An exact file name wins over a version-suffixed one, and among
	version-suffixed files the highest version wins.
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			planner, err := load()
			if err != nil {
				return err
			}

			artifact, linkType := args[0], library.Dynamic
			if lib, ok := planner.Registry.Get(args[0]); ok {
				var linkable bool
				artifact, linkType, linkable = lib.ArtifactFor(debug, planner.Catalogue.Platform)
				if !linkable {
					return fmt.Errorf("library %q cannot be linked on %s", lib.Name, planner.Catalogue.Platform)
				}
			}
			switch {
			case static:
				linkType = library.Static
			case dynamic:
				linkType = library.Dynamic
			}

			searchDirs := append(append([]string{}, dirs...), config.LibraryPath...)
			if all {
				candidates := planner.Locator.Candidates(artifact, linkType, searchDirs)
				return output.Print(cmd, format, candidates, func() string {
					return strings.Join(lo.Map(candidates, func(c locator.Candidate, _ int) string {
						return fmt.Sprintf("%g\t%s", c.Version, c.Path)
					}), "\n")
				})
			}

			result := planner.Locator.Find(artifact, linkType, searchDirs)
			return output.Print(cmd, format, result, result.String)
		},
	}

	cmd.Flags().BoolVar(&static, "static", false, "look for the static archive")
	cmd.Flags().BoolVar(&dynamic, "dynamic", false, "look for the shared library")
	cmd.MarkFlagsMutuallyExclusive("static", "dynamic")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "list every version-suffixed candidate, highest first")
	cmd.Flags().BoolVar(&debug, "debug", config.Debug, "use the debug artifact name")
	cmd.Flags().StringSliceVarP(&dirs, "library-dir", "L", nil, "directory searched before ICE_LIBRARY_PATH (repeatable)")
	output.Flag(cmd, &format, output.Text, output.Text, output.JSON, output.YAML)
	return cmd
}
