// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package iceversion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	assert.Equal(t, VersionInfo{Version: "unknown", Build: "unknown", BuildDate: "unknown"}, Get())

	IceVersion, BuildDate = "1.2.3", "2026-10-17"
	t.Cleanup(func() { IceVersion, BuildDate = "", "" })
	assert.Equal(t, VersionInfo{Version: "1.2.3", Build: "unknown", BuildDate: "2026-10-17"}, Get())
	assert.Equal(t, "1.2.3", GetIceVersion())
}
