/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package commonerrors defines the error taxonomy shared by all combinators.
package commonerrors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmpty        = errors.New("empty")
	ErrInvalidArity = errors.New("invalid arity")
	ErrInvalid      = errors.New("invalid")
	ErrUndefined    = errors.New("undefined")
	ErrOutOfRange   = errors.New("out of range")
	ErrNotFound     = errors.New("not found")
)

// Any determines whether the target error is of the same type as any of the errors `err`
func Any(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return true
		}
	}
	return false
}

// CorrespondTo determines whether a `target` error corresponds to a specific error described by `description`
// It will check whether the error contains the string in its description. It is not case-sensitive.
func CorrespondTo(target error, description ...string) bool {
	if target == nil {
		return false
	}
	desc := strings.ToLower(target.Error())
	for _, d := range description {
		if strings.Contains(desc, strings.ToLower(d)) {
			return true
		}
	}
	return false
}

// New creates a new error with the same type as targetErr. It ensures the targetErr type
// can be checked using Any.
func New(targetErr error, message string) error {
	if targetErr == nil {
		return errors.New(message)
	}
	if message == "" {
		return targetErr
	}
	return fmt.Errorf("%w: %v", targetErr, message)
}

// Newf is similar to New but allows to format the message.
func Newf(targetErr error, format string, args ...any) error {
	return New(targetErr, fmt.Sprintf(format, args...))
}

// UndefinedParameter returns an error stating that a parameter was not defined.
func UndefinedParameter(message string) error {
	return New(ErrUndefined, message)
}

// UndefinedParameterf is similar to UndefinedParameter but allows to format the message.
func UndefinedParameterf(format string, args ...any) error {
	return UndefinedParameter(fmt.Sprintf(format, args...))
}
