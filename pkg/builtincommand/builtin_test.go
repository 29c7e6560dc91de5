// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package builtincommand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeedsCatalogue(t *testing.T) {
	assert.True(t, NeedsCatalogue([]string{"ice", "plan", "--header", "gl.h"}))
	assert.True(t, NeedsCatalogue([]string{"ice", "libs"}))
	assert.True(t, NeedsCatalogue([]string{"ice", "deploy", "bin"}))
	assert.False(t, NeedsCatalogue([]string{"ice", "version"}))
	assert.False(t, NeedsCatalogue([]string{"ice", "check"}))
	assert.False(t, NeedsCatalogue([]string{"ice", "--help"}))
	assert.False(t, NeedsCatalogue([]string{"ice"}))
}
