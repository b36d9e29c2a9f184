/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package exitcodes contains the constants representing possible
// bibfmt exit codes, and the plumbing for carrying one on an error.
package exitcodes

import "errors"

// ExitCode is a process exit code for bibfmt.
type ExitCode uint8

// Each failure category maps to its own code so scripts can tell them
// apart.
const (
	GenericError      ExitCode = 1
	InputReadFailed   ExitCode = 2
	ParseFailed       ExitCode = 3
	OutputWriteFailed ExitCode = 4
)

// Coded is implemented by errors that carry an exit code.
type Coded interface {
	error
	ExitCode() ExitCode
}

type codedError struct {
	err  error
	code ExitCode
}

func (e *codedError) Error() string      { return e.err.Error() }
func (e *codedError) Unwrap() error      { return e.err }
func (e *codedError) ExitCode() ExitCode { return e.code }

// Wrap attaches code to err. A nil err stays nil.
func Wrap(err error, code ExitCode) error {
	if err == nil {
		return nil
	}
	return &codedError{err: err, code: code}
}

// From extracts the exit code carried by err, or GenericError when it
// carries none.
func From(err error) ExitCode {
	var coded Coded
	if errors.As(err, &coded) {
		return coded.ExitCode()
	}
	return GenericError
}
