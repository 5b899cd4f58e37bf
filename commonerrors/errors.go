/*
 * Copyright (C) 2020-2024 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package commonerrors defines the error types shared by the closures utilities.
package commonerrors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotImplemented          = errors.New("not implemented")
	ErrUndefined               = errors.New("undefined")
	ErrInvalid                 = errors.New("invalid")
	ErrUnexpected              = errors.New("unexpected")
	ErrUnknown                 = errors.New("unknown")
	ErrOutOfRange              = errors.New("out of range")
	ErrEmptySequence           = errors.New("empty sequence")
	ErrUnsatisfiableConstraint = errors.New("unsatisfiable constraint")
	ErrEOF                     = errors.New("end of file")
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

// None determines whether the target error is of none of the types of the errors `err`
func None(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return false
		}
	}
	return true
}

// CorrespondTo determines whether the description of `target` contains any of the descriptions provided.
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

// New creates a new error of type targetErr with the given reason.
func New(targetErr error, reason string) error {
	if targetErr == nil {
		return errors.New(reason)
	}
	if strings.TrimSpace(reason) == "" {
		return targetErr
	}
	return fmt.Errorf("%w: %v", targetErr, reason)
}

// Newf is similar to New but allows formatting the reason.
func Newf(targetErr error, format string, args ...any) error {
	return New(targetErr, fmt.Sprintf(format, args...))
}

// WrapError wraps an error into a particular targetError while keeping track of the original cause.
// If the original error is already of the target type, it is only annotated with the message.
func WrapError(targetError, originalError error, message string) error {
	if originalError == nil {
		return New(targetError, message)
	}
	if targetError == nil || Any(originalError, targetError) {
		if strings.TrimSpace(message) == "" {
			return originalError
		}
		return fmt.Errorf("%v: %w", message, originalError)
	}
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("%w: %w", targetError, originalError)
	}
	return fmt.Errorf("%w: %v: %w", targetError, message, originalError)
}

// WrapErrorf is similar to WrapError but allows formatting the message.
func WrapErrorf(targetError, originalError error, format string, args ...any) error {
	return WrapError(targetError, originalError, fmt.Sprintf(format, args...))
}

// Join is like errors.Join but nil entries do not produce a wrapping error.
func Join(errs ...error) error {
	var nonNil []error
	for _, e := range errs {
		if e != nil {
			nonNil = append(nonNil, e)
		}
	}
	switch len(nonNil) {
	case 0:
		return nil
	case 1:
		return nonNil[0]
	default:
		return errors.Join(nonNil...)
	}
}

// Ignore returns nil if err is of one of the types of ignore; otherwise err is returned.
func Ignore(err error, ignore ...error) error {
	if Any(err, ignore...) {
		return nil
	}
	return err
}
