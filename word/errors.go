// SPDX-License-Identifier: MIT
// Package word: sentinel errors.
//
// Every message is prefixed with "word: ..."; callers match with errors.Is.
// Call sites attach context through wordErrorf, never by formatting the
// sentinel itself.

package word

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWord is returned when a (start, length) pair or a textual
	// token does not describe a canonical alternating word: length 0 with a
	// start letter, a positive length without one, an unknown letter, or two
	// equal neighbouring letters.
	ErrInvalidWord = errors.New("word: invalid word")

	// ErrNegativeExponent is returned by Pow for n < 0. A has no inverses.
	ErrNegativeExponent = errors.New("word: negative exponent")
)

// wordErrorf wraps err with the operation tag.
func wordErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
