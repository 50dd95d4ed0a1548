// SPDX-License-Identifier: MIT

package status

import "errors"

// ErrNilTree indicates a nil *tree.Tree argument.
var ErrNilTree = errors.New("status: tree is nil")
