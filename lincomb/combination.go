// SPDX-License-Identifier: MIT

package lincomb

import (
	"fmt"
	"slices"

	"github.com/nfaross/model-s4plus/tensor"
)

// Combination is an immutable sparse integer combination of basis tensors.
// The zero value is the zero element.
type Combination struct {
	terms map[tensor.Triple]int64 // never holds a zero; never shared with callers
}

// Term is one (tensor, coefficient) pair of a Combination.
type Term struct {
	Tensor tensor.Triple
	Coeff  int64
}

// Zero returns the empty combination 0.
func Zero() Combination { return Combination{} }

// Unit returns 1⊗1⊗1 with coefficient 1, the multiplicative identity.
func Unit() Combination { return Single(tensor.Identity, 1) }

// Single returns c·t; Single(t, 0) is Zero.
func Single(t tensor.Triple, c int64) Combination {
	if c == 0 {
		return Zero()
	}

	return Combination{terms: map[tensor.Triple]int64{t: c}}
}

// New copies terms into a Combination.
//
// Errors:
//   - ErrInvalidLinearCombination if some coefficient is 0, unless
//     WithPruneZeros is given.
//
// Complexity: O(len(terms)).
func New(terms map[tensor.Triple]int64, opts ...Option) (Combination, error) {
	o := gatherOptions(opts...)
	acc := make(accumulator, len(terms))
	for t, c := range terms {
		if c == 0 {
			if o.pruneZeros {
				continue
			}

			return Zero(), lincombErrorf(fmt.Sprintf("New: zero coefficient at %s", t), ErrInvalidLinearCombination)
		}
		acc[t] = c
	}

	return acc.freeze(), nil
}

// MustNew is New for static data; it panics on invalid input.
func MustNew(terms map[tensor.Triple]int64, opts ...Option) Combination {
	c, err := New(terms, opts...)
	if err != nil {
		panic(err)
	}

	return c
}

// FromTerms builds a Combination from a term list.
//
// Errors:
//   - ErrInvalidLinearCombination on a zero coefficient (unless
//     WithPruneZeros) or a repeated tensor (unless WithMergeDuplicates).
func FromTerms(terms []Term, opts ...Option) (Combination, error) {
	o := gatherOptions(opts...)
	acc := make(accumulator, len(terms))
	seen := make(map[tensor.Triple]struct{}, len(terms))
	for _, tm := range terms {
		if _, dup := seen[tm.Tensor]; dup && !o.mergeDuplicates {
			return Zero(), lincombErrorf(fmt.Sprintf("FromTerms: repeated tensor %s", tm.Tensor), ErrInvalidLinearCombination)
		}
		seen[tm.Tensor] = struct{}{}
		if tm.Coeff == 0 && !o.pruneZeros {
			return Zero(), lincombErrorf(fmt.Sprintf("FromTerms: zero coefficient at %s", tm.Tensor), ErrInvalidLinearCombination)
		}
		acc.add(tm.Tensor, tm.Coeff)
	}
	if !o.pruneZeros && len(acc) != len(seen) {
		// merged duplicates cancelled to zero
		return Zero(), lincombErrorf("FromTerms: merged coefficient is zero", ErrInvalidLinearCombination)
	}

	return acc.freeze(), nil
}

// Len returns the number of nonzero terms.
func (c Combination) Len() int { return len(c.terms) }

// IsZero reports whether c is the zero element.
func (c Combination) IsZero() bool { return len(c.terms) == 0 }

// Coeff returns the coefficient of t (0 if absent).
func (c Combination) Coeff(t tensor.Triple) int64 { return c.terms[t] }

// Range calls fn for every term in unspecified order until fn returns false.
func (c Combination) Range(fn func(t tensor.Triple, coeff int64) bool) {
	for t, k := range c.terms {
		if !fn(t, k) {
			return
		}
	}
}

// Terms returns the terms sorted by tensor.Compare.
// The slice is freshly allocated.
func (c Combination) Terms() []Term {
	out := make([]Term, 0, len(c.terms))
	for t, k := range c.terms {
		out = append(out, Term{Tensor: t, Coeff: k})
	}
	slices.SortFunc(out, func(a, b Term) int { return tensor.Compare(a.Tensor, b.Tensor) })

	return out
}

// Map returns a copy of the underlying mapping.
func (c Combination) Map() map[tensor.Triple]int64 {
	out := make(map[tensor.Triple]int64, len(c.terms))
	for t, k := range c.terms {
		out[t] = k
	}

	return out
}

// Equal reports whether x and y have the same terms.
// Complexity: O(min(|x|,|y|)).
func Equal(x, y Combination) bool {
	if len(x.terms) != len(y.terms) {
		return false
	}
	for t, k := range x.terms {
		if y.terms[t] != k {
			return false
		}
	}

	return true
}

// Equal is the method form of the package-level Equal.
func (c Combination) Equal(other Combination) bool { return Equal(c, other) }

// accumulator collects coefficients while keeping the sparse-zero invariant.
type accumulator map[tensor.Triple]int64

// add adds k to the coefficient of t and deletes the key when it cancels.
func (a accumulator) add(t tensor.Triple, k int64) {
	v := a[t] + k
	if v == 0 {
		delete(a, t)

		return
	}
	a[t] = v
}

// freeze hands the map over to a Combination; a must not be used afterwards.
func (a accumulator) freeze() Combination {
	if len(a) == 0 {
		return Zero()
	}

	return Combination{terms: a}
}
