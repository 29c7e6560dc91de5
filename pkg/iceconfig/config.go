// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package iceconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/goccy/go-yaml"
	"icompile.org/x/ice/pkg/catalogue"
	"icompile.org/x/ice/pkg/linkplan"
	"icompile.org/x/ice/pkg/platform"
	"icompile.org/x/ice/pkg/utils"
)

type Config struct {
	IceHomePath string `yaml:"-"`

	// CataloguePath is empty for the built-in catalogue. Relative paths in
	// ice-config.yaml are resolved against IceHomePath.
	CataloguePath string `yaml:"catalogue,omitempty"`

	// LibraryPath is searched in order for library artifacts
	LibraryPath []string `yaml:"library-path,omitempty"`

	// Platform defaults to the host
	Platform *LazyPlatform `yaml:"platform,omitempty"`

	Debug bool `yaml:"debug,omitempty"`
}

func Get() (*Config, error) {
	iceHomePath, err := getIceHomePath()
	if err != nil {
		return nil, err
	}
	return GetWithCustomIceHome(iceHomePath)
}

func GetWithCustomIceHome(iceHomePath string) (*Config, error) {
	config := Config{}

	// ice-config.yaml is optional
	configFilePath := filepath.Join(iceHomePath, IceConfigFileName)
	fileInfo, err := os.Stat(configFilePath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else {
		if fileInfo.IsDir() {
			return nil, fmt.Errorf("%q is directory and not a file", configFilePath)
		}

		bytes, err := os.ReadFile(configFilePath)
		if err != nil {
			return nil, err
		}

		if err := yaml.UnmarshalWithOptions(bytes, &config, yaml.Strict()); err != nil {
			return nil, fmt.Errorf("%s: %w", configFilePath, err)
		}
		if config.CataloguePath != "" {
			config.CataloguePath = utils.ResolvePath(iceHomePath, config.CataloguePath)
		}
	}

	// an empty variable leaves the file's value in place
	if v, ok := utils.LookupEnv(CatalogueEnvVar); ok {
		config.CataloguePath = v
	}

	if dirs, ok := utils.PathListEnvVar(LibraryPathEnvVar); ok {
		config.LibraryPath = dirs
	}

	if v, ok := utils.LookupEnv(PlatformEnvVar); ok {
		config.Platform = NewLazyPlatform(v)
	}

	debug, ok, err := utils.BoolEnvVar(DebugEnvVar)
	if err != nil {
		return nil, err
	}
	if ok {
		config.Debug = debug
	}

	config.IceHomePath = iceHomePath
	return &config, nil
}

// TargetPlatform is the configured platform, or the host's.
func (c *Config) TargetPlatform() (platform.Descriptor, error) {
	return c.Platform.Get()
}

// Catalogue loads the catalogue for the target platform: the configured path,
// else an ice-catalogue.yaml in the working directory or an ancestor, else the built-in one.
func (c *Config) Catalogue() (*catalogue.Catalogue, error) {
	p, err := c.TargetPlatform()
	if err != nil {
		return nil, err
	}

	path := c.CataloguePath
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		if path, _, err = findInAncestors(cwd, ProjectCatalogueFilename); err != nil {
			return nil, err
		}
	}
	return catalogue.Load(p, path)
}

// Planner loads the catalogue and builds the link planner for it.
func (c *Config) Planner() (*linkplan.Planner, error) {
	cat, err := c.Catalogue()
	if err != nil {
		return nil, err
	}
	return linkplan.New(cat)
}

func getIceHomePath() (string, error) {
	if v, ok := utils.LookupEnv(IceHomeEnvVar); ok {
		return v, nil
	}

	return getAppUserDataDirectory(IceHomeDirName)
}

func getAppUserDataDirectory(appName string) (string, error) {
	switch runtime.GOOS {
	case "windows":
		dir, ok := os.LookupEnv("APPDATA")
		if !ok {
			return "", fmt.Errorf("APPDATA environment variable is not set")
		}
		return filepath.Join(dir, appName), nil
	default:
		dir, ok := os.LookupEnv("HOME")
		if !ok {
			return "", fmt.Errorf("HOME environment variable is not set")
		}
		return filepath.Join(dir, "."+appName), nil
	}
}

func findInAncestors(startDir, filename string) (absolutePath string, ok bool, err error) {
	p, ok, err := doFindInAncestors(startDir, filename)
	if err != nil {
		return
	}
	if !ok {
		return "", false, nil
	}
	absolutePath, err = filepath.Abs(p)
	return
}

func doFindInAncestors(startDir, filename string) (string, bool, error) {
	f := filepath.Join(startDir, filename)

	info, err := os.Stat(f)
	if err == nil && !info.IsDir() {
		return f, true, nil
	}

	parent := filepath.Dir(startDir)
	if parent == startDir {
		return "", false, nil
	}

	return doFindInAncestors(parent, filename)
}
