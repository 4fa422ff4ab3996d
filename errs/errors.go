// Copyright 2017 The Towerse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package errs defines the error taxonomy of the analysis pipeline
package errs

import "github.com/cpmech/gosl/io"

// DomainError indicates invalid geometry or an environment model evaluated
// outside its validity domain. It is always surfaced to the caller and
// never silently corrected.
type DomainError string

// Error returns the message
func (e DomainError) Error() string { return string(e) }

// SolverError indicates a singular or non-converged structural solve. It is
// fatal for the evaluation at hand and must not be retried internally.
type SolverError string

// Error returns the message
func (e SolverError) Error() string { return string(e) }

// Domain returns a new DomainError with a formatted message
func Domain(msg string, prm ...interface{}) error {
	return DomainError(io.Sf(msg, prm...))
}

// Solver returns a new SolverError with a formatted message
func Solver(msg string, prm ...interface{}) error {
	return SolverError(io.Sf(msg, prm...))
}

// IsDomain tells whether err is a DomainError
func IsDomain(err error) bool {
	_, ok := err.(DomainError)
	return ok
}

// IsSolver tells whether err is a SolverError
func IsSolver(err error) bool {
	_, ok := err.(SolverError)
	return ok
}
