// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package plan

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"icompile.org/x/ice/cmd/ice/cmd/output"
	"icompile.org/x/ice/pkg/builtincommand"
	"icompile.org/x/ice/pkg/iceconfig"
	"icompile.org/x/ice/pkg/linkplan"
	"icompile.org/x/ice/pkg/utils"
)

// RequestFlags are the flags shared by every command that plans a link
type RequestFlags struct {
	Headers    []string
	Symbols    []string
	Libraries  []string
	SearchDirs []string
	Debug      bool
}

func (f *RequestFlags) Register(cmd *cobra.Command, config *iceconfig.Config) {
	cmd.Flags().StringSliceVarP(&f.Headers, "header", "H", nil, "header included by the sources being linked (repeatable)")
	cmd.Flags().StringSliceVarP(&f.Symbols, "symbol", "s", nil, "unbound symbol reported by the linker (repeatable)")
	cmd.Flags().StringSliceVarP(&f.Libraries, "lib", "l", nil, "library to link by canonical name (repeatable)")
	cmd.Flags().StringSliceVarP(&f.SearchDirs, "library-dir", "L", nil, "directory searched for artifacts before ICE_LIBRARY_PATH (repeatable)")
	cmd.Flags().BoolVar(&f.Debug, "debug", config.Debug, "link debug artifacts")
}

// Request combines the flags with the configured library path
func (f *RequestFlags) Request(config *iceconfig.Config) linkplan.Request {
	return linkplan.Request{
		Headers:    f.Headers,
		Symbols:    f.Symbols,
		Libraries:  f.Libraries,
		SearchDirs: append(append([]string{}, f.SearchDirs...), config.LibraryPath...),
		Debug:      f.Debug,
	}
}

func Cmd(config *iceconfig.Config, load linkplan.Loader) *cobra.Command {
	var flags RequestFlags
	var format, outputPath string

	cmd := &cobra.Command{
		Use:   string(builtincommand.Plan),
		Short: "compute the libraries to link, in order",
		Long: `compute the libraries to link, in order

	libraries are selected by the headers and unbound symbols of the build,
	plus any named with --lib, and everything they depend on.

	with -o flags the plan is printed as linker arguments.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			planner, err := load()
			if err != nil {
				return err
			}

			p := planner.Plan(flags.Request(config))
			for _, issue := range p.Issues {
				slog.Debug("link plan issue", "code", issue.Code, "library", issue.Library)
			}

			var rendered string
			if format == output.Flags {
				rendered = strings.Join(p.LinkerArgs(), " ")
			} else if rendered, err = output.Marshal(format, p); err != nil {
				return err
			}

			if outputPath == "" {
				cmd.Println(rendered)
				return nil
			}
			return writeOutput(cmd, outputPath, rendered)
		},
	}

	flags.Register(cmd, config)
	output.Flag(cmd, &format, output.YAML, output.YAML, output.JSON, output.Flags)
	cmd.Flags().StringVar(&outputPath, "output", "", "write the plan to this file instead of stdout")
	return cmd
}

// writeOutput holds the lock file in the output's directory so concurrent
// builds never interleave writes to the same plan.
func writeOutput(cmd *cobra.Command, outputPath, rendered string) error {
	lockPath := filepath.Join(filepath.Dir(outputPath), utils.LockFileName)
	return utils.WithFileLock(cmd.Context(), lockPath, func() error {
		if err := os.WriteFile(outputPath, []byte(rendered+"\n"), 0o644); err != nil {
			return fmt.Errorf("failed to write link plan: %w", err)
		}
		slog.Debug("link plan written", "path", outputPath)
		return nil
	})
}
