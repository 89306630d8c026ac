// SPDX-License-Identifier: MIT
// Package lincomb: sentinel errors.
//
// All messages are prefixed with "lincomb: ...". Algorithms on valid
// Combinations never fail; errors only come from construction, decoding
// and Pow.

package lincomb

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLinearCombination indicates malformed input at construction:
	// a zero coefficient under the strict policy, or a repeated tensor in a
	// term list without WithMergeDuplicates.
	ErrInvalidLinearCombination = errors.New("lincomb: invalid linear combination")

	// ErrNegativeExponent is returned by Pow for n < 0.
	ErrNegativeExponent = errors.New("lincomb: negative exponent")
)

// lincombErrorf wraps err with the operation tag.
func lincombErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
