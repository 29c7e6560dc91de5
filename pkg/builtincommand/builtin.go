// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package builtincommand

import (
	"github.com/samber/lo"
)

type BuiltinCommand string

const (
	Libs    BuiltinCommand = "libs"
	Order   BuiltinCommand = "order"
	Plan    BuiltinCommand = "plan"
	Locate  BuiltinCommand = "locate"
	Check   BuiltinCommand = "check"
	Deploy  BuiltinCommand = "deploy"
	Version BuiltinCommand = "version"
)

var BuiltinCommands = []BuiltinCommand{Libs, Order, Plan, Locate, Check, Deploy, Version}

// NeedsCatalogue reports whether the invoked command plans with the library
// catalogue. Help, completion and version never load it, and check loads it
// itself to diagnose a broken one.
func NeedsCatalogue(args []string) bool {
	if len(args) > 1 {
		elems := lo.Map(lo.Without(BuiltinCommands, Version, Check), func(item BuiltinCommand, _ int) string {
			return string(item)
		})
		return lo.Contains(elems, args[1])
	}
	return false
}
