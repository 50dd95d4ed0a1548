// SPDX-License-Identifier: MIT

package caterpillar

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCaterpillar indicates that no caterpillar has the given sequence.
	ErrNoCaterpillar = errors.New("caterpillar: no caterpillar with this sequence")

	// ErrEmptySequence indicates an empty input sequence.
	ErrEmptySequence = fmt.Errorf("caterpillar: empty sequence: %w", ErrNoCaterpillar)

	// ErrTooManyCenters indicates a minimum status occurring three or more
	// times; a tree has at most two vertices of minimum status.
	ErrTooManyCenters = fmt.Errorf("caterpillar: more than two centers: %w", ErrNoCaterpillar)

	// ErrOddBicentral indicates two vertices of minimum status with an odd
	// vertex count; two centers split the tree into equal halves.
	ErrOddBicentral = fmt.Errorf("caterpillar: two centers with odd vertex count: %w", ErrNoCaterpillar)

	// ErrBudgetExceeded indicates that the search expanded more frontier
	// pairs than WithMaxStates allows.
	ErrBudgetExceeded = errors.New("caterpillar: state budget exceeded")
)
