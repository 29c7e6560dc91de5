// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"fmt"
	"os"
	"strconv"
)

// LookupEnv is os.LookupEnv with an empty value treated as unset
func LookupEnv(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	return v, ok && v != ""
}

// BoolEnvVar parses an env var as bool. ok is false when the var is unset or empty.
func BoolEnvVar(key string) (val bool, ok bool, err error) {
	s, ok := LookupEnv(key)
	if !ok {
		return false, false, nil
	}
	val, err = strconv.ParseBool(s)
	if err != nil {
		return false, true, fmt.Errorf("invalid value %q for %s env var. Must be one of ('true', 'false')", s, key)
	}
	return val, true, nil
}

// PathListEnvVar splits a PATH-style env var. ok is false when the var is unset or empty.
func PathListEnvVar(key string) ([]string, bool) {
	s, ok := LookupEnv(key)
	if !ok {
		return nil, false
	}
	return SplitPathList(s), true
}
