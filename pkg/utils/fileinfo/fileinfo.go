// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package fileinfo

import (
	"errors"
	"io/fs"
	"os"
	"time"
)

// FileInfo is the subset of file metadata compared when checking a deployed artifact.
type FileInfo struct {
	FileMode os.FileMode
	ModTime  time.Time
	FileName string
}

// Stat follows symlinks, so a versioned symlink reports its target's metadata.
func Stat(path string) (*FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	return New(info), nil
}

// NewerThan reports whether fi should replace the file at path: true when path
// does not exist or was modified before fi.
func (fi *FileInfo) NewerThan(path string) (bool, error) {
	other, err := Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	} else if err != nil {
		return false, err
	}
	return fi.ModTime.After(other.ModTime), nil
}

func New(info os.FileInfo) *FileInfo {
	return &FileInfo{
		FileMode: info.Mode(),
		ModTime:  info.ModTime(),
		FileName: info.Name(),
	}
}
