// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package locator

import (
	"os"
	"path/filepath"
)

// Probe is the read-only filesystem access the locator needs.
type Probe interface {
	Exists(path string) bool
	Glob(pattern string) ([]string, error)
}

// OSProbe probes the local filesystem.
type OSProbe struct{}

func (OSProbe) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (OSProbe) Glob(pattern string) ([]string, error) {
	return filepath.Glob(pattern)
}

var _ Probe = OSProbe{}
