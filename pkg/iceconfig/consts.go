// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package iceconfig

const (
	IceConfigFileName = "ice-config.yaml"

	// ProjectCatalogueFilename is picked up from the working directory or its ancestors
	// when no catalogue is configured
	ProjectCatalogueFilename = "ice-catalogue.yaml"

	IceHomeDirName = "ice"
)
