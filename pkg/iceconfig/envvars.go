// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package iceconfig

const envVarPrefix = "ICE_"

const (
	// IceHomeEnvVar
	// ICE_HOME is the absolute path to the `ice` home directory, holding ice-config.yaml
	// 	Default: $HOME/.ice
	IceHomeEnvVar = envVarPrefix + "HOME"

	// LogLevelEnvVar
	// ICE_LOG_LEVEL sets the log level.
	// 	Default: info
	//  Possible values: debug info warn error
	LogLevelEnvVar = envVarPrefix + "LOG_LEVEL"

	// LogFormatEnvVar
	// ICE_LOG_FORMAT selects the log line format.
	// 	Default: text
	//  Possible values: text json
	LogFormatEnvVar = envVarPrefix + "LOG_FORMAT"

	// CatalogueEnvVar
	// ICE_CATALOGUE is a path to a library catalogue manifest replacing the built-in one
	CatalogueEnvVar = envVarPrefix + "CATALOGUE"

	// LibraryPathEnvVar
	// ICE_LIBRARY_PATH lists the directories searched for library artifacts,
	// separated like PATH
	LibraryPathEnvVar = envVarPrefix + "LIBRARY_PATH"

	// PlatformEnvVar
	// ICE_PLATFORM overrides the target platform, as os/arch (e.g. darwin/arm64)
	PlatformEnvVar = envVarPrefix + "PLATFORM"

	// DebugEnvVar
	// ICE_DEBUG selects debug artifacts instead of release ones
	DebugEnvVar = envVarPrefix + "DEBUG"
)
