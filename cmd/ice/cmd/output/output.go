// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

const (
	Table = "table"
	Text  = "text"
	JSON  = "json"
	YAML  = "yaml"
	Flags = "flags"
)

// Marshal renders v as json or yaml
func Marshal(format string, v any) (string, error) {
	switch format {
	case JSON:
		data, err := json.MarshalIndent(v, "", "    ")
		if err != nil {
			return "", err
		}
		return string(data), nil
	case YAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return "", err
		}
		return strings.TrimSuffix(string(data), "\n"), nil
	default:
		return "", fmt.Errorf("output format not supported: %s", format)
	}
}

// Print writes v in format. human renders the table/text formats.
func Print(cmd *cobra.Command, format string, v any, human func() string) error {
	if format == Table || format == Text {
		cmd.Println(human())
		return nil
	}
	s, err := Marshal(format, v)
	if err != nil {
		return err
	}
	cmd.Println(s)
	return nil
}

// Flag registers the -o/--output-format flag
func Flag(cmd *cobra.Command, target *string, def string, formats ...string) {
	cmd.Flags().StringVarP(target, "output-format", "o", def, "output format: "+strings.Join(formats, ", "))
}
