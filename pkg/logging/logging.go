// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/samber/lo"
	"icompile.org/x/ice/pkg/iceconfig"
	"icompile.org/x/ice/pkg/utils"
)

const (
	TextFormat = "text"
	JSONFormat = "json"
)

// InitLogging installs the default logger on stderr, configured by ICE_LOG_LEVEL and ICE_LOG_FORMAT
func InitLogging() error {
	level, _ := utils.LookupEnv(iceconfig.LogLevelEnvVar)
	format, _ := utils.LookupEnv(iceconfig.LogFormatEnvVar)
	return initLogging(os.Stderr, lo.CoalesceOrEmpty(level, "info"), lo.CoalesceOrEmpty(format, TextFormat))
}

func initLogging(w io.Writer, level, format string) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid %s: %w", iceconfig.LogLevelEnvVar, err)
	}

	opts := &slog.HandlerOptions{Level: l}
	var h slog.Handler
	switch format {
	case TextFormat:
		h = slog.NewTextHandler(w, opts)
	case JSONFormat:
		h = slog.NewJSONHandler(w, opts)
	default:
		return fmt.Errorf("invalid %s %q. Must be one of %q", iceconfig.LogFormatEnvVar, format, []string{TextFormat, JSONFormat})
	}
	slog.SetDefault(slog.New(h))
	return nil
}
