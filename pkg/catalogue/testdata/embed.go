// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package testdata

import _ "embed"

//go:embed valid.yaml
var Valid []byte

//go:embed empty.yaml
var Empty []byte

//go:embed missingVersion.yaml
var MissingVersion []byte

//go:embed badVersion.yaml
var BadVersion []byte

//go:embed unknownField.yaml
var UnknownField []byte

//go:embed unknownFact.yaml
var UnknownFact []byte

//go:embed badType.yaml
var BadType []byte

//go:embed wrongKind.yaml
var WrongKind []byte

//go:embed duplicate.yaml
var Duplicate []byte

//go:embed cyclic.yaml
var Cyclic []byte
