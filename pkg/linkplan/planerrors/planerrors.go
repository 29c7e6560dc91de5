// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package planerrors

import (
	"encoding/json"
	"errors"
)

const (
	UnknownLibrary        = "UNKNOWN_LIBRARY"
	UnavailableOnPlatform = "UNAVAILABLE_ON_PLATFORM"
	ArtifactNotFound      = "ARTIFACT_NOT_FOUND"
	UnknownError          = "UNKNOWN_ERROR"
)

// PlanError is a non-fatal issue recorded against one library of a link plan.
type PlanError struct {
	Code    string
	Library string
	Cause   error
}

func (p *PlanError) Error() string {
	msg := p.Code
	if p.Library != "" {
		msg += " (" + p.Library + ")"
	}
	if p.Cause != nil {
		msg += ": " + p.Cause.Error()
	}
	return msg
}

func (p *PlanError) fields() map[string]interface{} {
	var causeStr string
	if p.Cause != nil {
		causeStr = p.Cause.Error()
	}
	return map[string]interface{}{
		"code":    p.Code,
		"library": p.Library,
		"cause":   causeStr,
	}
}

func (p *PlanError) MarshalYAML() (interface{}, error) {
	return p.fields(), nil
}

func (p *PlanError) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.fields())
}

func (p *PlanError) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var aux struct {
		Code    string `yaml:"code"`
		Library string `yaml:"library"`
		Cause   string `yaml:"cause"`
	}
	if err := unmarshal(&aux); err != nil {
		return err
	}
	p.Code = aux.Code
	p.Library = aux.Library
	if aux.Cause != "" {
		p.Cause = errors.New(aux.Cause)
	}
	return nil
}

func (p *PlanError) Unwrap() error {
	return p.Cause
}

var _ error = (*PlanError)(nil)

func NewUnknownLibraryError(name string) *PlanError {
	return &PlanError{
		Code:    UnknownLibrary,
		Library: name,
		Cause:   errors.New("not in the library catalogue, passed to the linker as is"),
	}
}

func NewUnavailableOnPlatformError(name string, cause error) *PlanError {
	return &PlanError{
		Code:    UnavailableOnPlatform,
		Library: name,
		Cause:   cause,
	}
}

func NewArtifactNotFoundError(name string, cause error) *PlanError {
	return &PlanError{
		Code:    ArtifactNotFound,
		Library: name,
		Cause:   cause,
	}
}

func NewUnknownError(cause error) *PlanError {
	return &PlanError{
		Code:  UnknownError,
		Cause: cause,
	}
}

func Standardize(err error) *PlanError {
	if err == nil {
		return nil
	}

	var planErr *PlanError
	if errors.As(err, &planErr) {
		return planErr
	}

	return NewUnknownError(err)
}
