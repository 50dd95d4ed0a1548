// SPDX-License-Identifier: MIT

package sequence

import "errors"

var (
	// ErrMalformed indicates a token that is not of the form "<count>x<status>".
	ErrMalformed = errors.New("sequence: malformed token")

	// ErrBadMultiplicity indicates a multiplicity that is zero or negative.
	ErrBadMultiplicity = errors.New("sequence: multiplicity must be positive")

	// ErrNegativeStatus indicates a negative status value.
	ErrNegativeStatus = errors.New("sequence: status must be non-negative")
)
