// SPDX-License-Identifier: MIT

package combin

import "errors"

var (
	// ErrInvalidPartition - parts must be positive and weakly decreasing.
	ErrInvalidPartition = errors.New("combin: invalid partition")
	// ErrInvalidTableau - rows must form a partition shape with entries 1..n
	// increasing along rows and down columns.
	ErrInvalidTableau = errors.New("combin: invalid standard tableau")
)
