// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package deploy reports which of a link plan's deployable shared libraries
// are stale next to the built program. A destination is stale when it is
// missing or older than the located artifact. Copying is left to the caller.
package deploy

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/samber/lo"
	"icompile.org/x/ice/pkg/linkplan"
	"icompile.org/x/ice/pkg/utils"
	"icompile.org/x/ice/pkg/utils/fileinfo"
)

type Status string

const (
	Copy     Status = "copy"
	UpToDate Status = "up-to-date"
	// Missing means the plan did not locate the artifact, so there is nothing to copy
	Missing Status = "missing"
)

type Action struct {
	Library     string `yaml:"library" json:"library"`
	Source      string `yaml:"source" json:"source"`
	Destination string `yaml:"destination,omitempty" json:"destination,omitempty"`
	Status      Status `yaml:"status" json:"status"`
}

// Check compares every deployable entry of plan against destDir, in link order.
func Check(plan *linkplan.Plan, destDir string) ([]Action, error) {
	if destDir == "" {
		return nil, fmt.Errorf("deploy: no destination directory")
	}
	destExists, err := utils.DirExists(destDir)
	if err != nil {
		return nil, err
	}

	var actions []Action
	for _, e := range plan.Deployable() {
		a, err := checkOne(e, destDir, destExists)
		if err != nil {
			return nil, fmt.Errorf("deploy %s: %w", e.Name, err)
		}
		actions = append(actions, a)
	}
	return actions, nil
}

func checkOne(e *linkplan.Entry, destDir string, destExists bool) (Action, error) {
	a := Action{Library: e.Name, Source: e.Location.Path}
	if !e.Location.Found {
		slog.Warn("deployable library was not located, skipping", "library", e.Name, "artifact", e.Location.Path)
		a.Status = Missing
		return a, nil
	}

	a.Destination = filepath.Join(destDir, filepath.Base(e.Location.Path))
	if !destExists {
		a.Status = Copy
		return a, nil
	}

	src, err := fileinfo.Stat(e.Location.Path)
	if err != nil {
		return a, err
	}
	newer, err := src.NewerThan(a.Destination)
	if err != nil {
		return a, err
	}
	a.Status = lo.Ternary(newer, Copy, UpToDate)
	slog.Debug("checked deployed library", "library", e.Name, "destination", a.Destination, "status", a.Status)
	return a, nil
}

// Stale returns the actions whose destination needs copying
func Stale(actions []Action) []Action {
	return lo.Filter(actions, func(a Action, _ int) bool { return a.Status == Copy })
}
