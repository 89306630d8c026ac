// SPDX-License-Identifier: MIT

package word

// Mul returns the product x·y in A.
//
// Algorithm:
//  1. 1 is a strict two-sided unit: Mul(1, y) = y, Mul(x, 1) = x.
//  2. Otherwise the result starts with x's first letter. If the last letter
//     of x equals the first letter of y the two copies merge (p·p = p,
//     q·q = q) and one letter is consumed; else the alternation simply
//     continues across the boundary.
//
//	pq · p   = pqp    (q|p: clean)
//	pqp · p  = pqp    (p|p: merge, 3+1-1)
//	pqp · pq = pqpq   (p|p: merge, 3+2-1)
//
// Mul is total, associative and has One as identity; it is not commutative.
// Complexity: O(1).
func Mul(x, y Word) Word {
	if x.n == 0 {
		return y
	}
	if y.n == 0 {
		return x
	}

	if x.Last() == y.start {
		return Word{start: x.start, n: x.n + y.n - 1}
	}

	return Word{start: x.start, n: x.n + y.n}
}

// Product folds Mul over ws from the left; Product() is One.
func Product(ws ...Word) Word {
	acc := One
	for _, w := range ws {
		acc = Mul(acc, w)
	}

	return acc
}

// Pow returns w multiplied by itself n times; Pow(w, 0) is One.
//
// Errors:
//   - ErrNegativeExponent if n < 0.
//
// Complexity: O(n).
func Pow(w Word, n int) (Word, error) {
	if n < 0 {
		return One, wordErrorf("Pow", ErrNegativeExponent)
	}
	acc := One
	for i := 0; i < n; i++ {
		acc = Mul(acc, w)
	}

	return acc, nil
}
