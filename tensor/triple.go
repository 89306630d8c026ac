// SPDX-License-Identifier: MIT

package tensor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nfaross/model-s4plus/word"
)

// Arity is the number of tensor factors.
const Arity = 3

// Separator is the rendering of ⊗ used by String.
const Separator = "⊗"

// ErrInvalidTriple is returned when a token does not split into Arity words.
// Malformed words inside an otherwise well-shaped token surface as
// word.ErrInvalidWord.
var ErrInvalidTriple = errors.New("tensor: invalid triple")

// Triple is the basis tensor t[0]⊗t[1]⊗t[2].
// Equality is componentwise word equality.
type Triple [Arity]word.Word

// Identity is 1⊗1⊗1, the unit of A⊗A⊗A (also the zero value of Triple).
var Identity = Triple{word.One, word.One, word.One}

// New builds a⊗b⊗c.
func New(a, b, c word.Word) Triple { return Triple{a, b, c} }

// Mul returns the componentwise product x·y. Total and pure.
// Complexity: O(Arity).
func Mul(x, y Triple) Triple {
	var out Triple
	for i := range out {
		out[i] = word.Mul(x[i], y[i])
	}

	return out
}

// String renders t as "p⊗q⊗1".
func (t Triple) String() string {
	parts := make([]string, Arity)
	for i, w := range t {
		parts[i] = w.String()
	}

	return strings.Join(parts, Separator)
}

// Parse reads a triple written with ⊗ or ',' between the factors,
// e.g. "p⊗qp⊗1" or "p, qp, 1".
//
// Errors:
//   - ErrInvalidTriple if the token does not have exactly Arity factors.
//   - word.ErrInvalidWord if a factor is not a canonical word.
func Parse(s string) (Triple, error) {
	sep := Separator
	if !strings.Contains(s, Separator) {
		sep = ","
	}
	parts := strings.Split(s, sep)
	if len(parts) != Arity {
		return Identity, fmt.Errorf("Parse(%q): %w", s, ErrInvalidTriple)
	}

	var t Triple
	for i, p := range parts {
		w, err := word.Parse(p)
		if err != nil {
			return Identity, fmt.Errorf("Parse(%q): factor %d: %w", s, i, err)
		}
		t[i] = w
	}

	return t, nil
}

// Compare orders triples lexicographically by word.Compare.
func Compare(a, b Triple) int {
	for i := range a {
		if c := word.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}

	return 0
}

// Degree is the total number of letters across the factors.
func (t Triple) Degree() int {
	d := 0
	for _, w := range t {
		d += w.Len()
	}

	return d
}

// Eval applies one word.Character per factor and multiplies the results.
func (t Triple) Eval(chars [Arity]word.Character) int64 {
	v := int64(1)
	for i, w := range t {
		v *= chars[i].Eval(w)
	}

	return v
}
