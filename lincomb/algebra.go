// SPDX-License-Identifier: MIT

package lincomb

import (
	"github.com/nfaross/model-s4plus/tensor"
	"github.com/nfaross/model-s4plus/word"
)

// Mul returns the product x·y, the bilinear extension of tensor.Mul.
//
// Implementation:
//   - Stage 1: an empty operand yields 0.
//   - Stage 2: for every pair (t1,c1) ∈ x, (t2,c2) ∈ y accumulate c1·c2 into
//     the coefficient of tensor.Mul(t1, t2); a key is deleted as soon as
//     its running sum hits 0, so the result never stores a zero even when
//     partial sums pass through zero.
//
// Behavior highlights:
//   - Operands are not mutated; the result owns a fresh map.
//   - Iteration order does not affect the result (integer addition commutes).
//
// Complexity: O(|x|·|y|) basis products and map updates.
func Mul(x, y Combination) Combination {
	if len(x.terms) == 0 || len(y.terms) == 0 {
		return Zero()
	}

	acc := make(accumulator, len(x.terms)+len(y.terms))
	for t1, c1 := range x.terms {
		for t2, c2 := range y.terms {
			acc.add(tensor.Mul(t1, t2), c1*c2)
		}
	}

	return acc.freeze()
}

// Product folds Mul over xs from the left; Product() is Unit.
func Product(xs ...Combination) Combination {
	acc := Unit()
	for _, x := range xs {
		acc = Mul(acc, x)
	}

	return acc
}

// Pow returns x multiplied by itself n times; Pow(x, 0) is Unit.
//
// Errors:
//   - ErrNegativeExponent if n < 0.
func Pow(x Combination, n int) (Combination, error) {
	if n < 0 {
		return Zero(), lincombErrorf("Pow", ErrNegativeExponent)
	}
	acc := Unit()
	for i := 0; i < n; i++ {
		acc = Mul(acc, x)
	}

	return acc, nil
}

// Add returns x + y.
// Complexity: O(|x|+|y|).
func Add(x, y Combination) Combination {
	return Sum(x, y)
}

// Sub returns x − y.
func Sub(x, y Combination) Combination {
	acc := make(accumulator, len(x.terms)+len(y.terms))
	for t, k := range x.terms {
		acc.add(t, k)
	}
	for t, k := range y.terms {
		acc.add(t, -k)
	}

	return acc.freeze()
}

// Sum returns the sum of xs; Sum() is Zero.
func Sum(xs ...Combination) Combination {
	n := 0
	for _, x := range xs {
		n += len(x.terms)
	}
	acc := make(accumulator, n)
	for _, x := range xs {
		for t, k := range x.terms {
			acc.add(t, k)
		}
	}

	return acc.freeze()
}

// Scale returns k·x; Scale(0, x) is Zero.
func Scale(k int64, x Combination) Combination {
	if k == 0 || len(x.terms) == 0 {
		return Zero()
	}
	acc := make(accumulator, len(x.terms))
	for t, c := range x.terms {
		acc.add(t, k*c)
	}

	return acc.freeze()
}

// Neg returns −x.
func Neg(x Combination) Combination { return Scale(-1, x) }

// Evaluate applies the character chars[0]⊗chars[1]⊗chars[2] to x.
// It is a ring homomorphism: Evaluate(Mul(x, y)) = Evaluate(x)·Evaluate(y).
func Evaluate(x Combination, chars [tensor.Arity]word.Character) int64 {
	var v int64
	for t, k := range x.terms {
		v += k * t.Eval(chars)
	}

	return v
}

// Augment is Evaluate under the augmentation character: the coefficient sum.
func Augment(x Combination) int64 {
	return Evaluate(x, [tensor.Arity]word.Character{word.Augmentation, word.Augmentation, word.Augmentation})
}
