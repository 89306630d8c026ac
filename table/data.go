// SPDX-License-Identifier: MIT

package table

import (
	"github.com/nfaross/model-s4plus/lincomb"
	"github.com/nfaross/model-s4plus/tensor"
	"github.com/nfaross/model-s4plus/word"
)

// M is the matrix M₃ = R^{⊥3} of structure constants, transcribed verbatim.
// It is built once during package initialisation and must be treated as
// read-only; Grid is an array, so copies handed out by value are independent
// at the top level and every Combination inside is immutable.
var M = buildM()

func buildM() Grid {
	I, P, Q := word.One, word.P, word.Q
	t := tensor.New
	lc := func(terms map[tensor.Triple]int64) lincomb.Combination { return lincomb.MustNew(terms) }

	return Grid{
		{
			// M[0][0]
			lc(map[tensor.Triple]int64{
				t(P, P, P): 1, t(I, Q, I): 1, t(I, Q, P): -1,
				t(P, Q, I): -1, t(P, Q, P): 1,
			}),
			// M[0][1]
			lc(map[tensor.Triple]int64{
				t(P, I, Q): 2, t(P, P, Q): -1, t(I, I, I): 1,
				t(I, I, Q): -1, t(I, Q, I): -1, t(I, Q, Q): 1,
				t(P, I, I): -1, t(P, Q, I): 1, t(P, Q, Q): -1,
			}),
			// M[0][2]
			lc(map[tensor.Triple]int64{
				t(P, P, I): 1, t(P, P, P): -1, t(I, Q, P): 1,
				t(P, Q, P): -1,
			}),
			// M[0][3]
			lc(map[tensor.Triple]int64{
				t(P, I, I): 1, t(P, I, Q): -2, t(P, P, I): -1,
				t(P, P, Q): 1, t(I, I, Q): 1, t(I, Q, Q): -1,
				t(P, Q, Q): 1,
			}),
		},
		{
			// M[1][0]
			lc(map[tensor.Triple]int64{
				t(I, P, P): 1, t(P, P, P): -1, t(P, Q, I): 1,
				t(P, Q, P): -1,
			}),
			// M[1][1]
			lc(map[tensor.Triple]int64{
				t(I, I, Q): 1, t(I, P, Q): -1, t(P, I, Q): -2,
				t(P, P, Q): 1, t(P, I, I): 1, t(P, Q, I): -1,
				t(P, Q, Q): 1,
			}),
			// M[1][2]
			lc(map[tensor.Triple]int64{
				t(I, P, I): 1, t(I, P, P): -1, t(P, P, I): -1,
				t(P, P, P): 1, t(P, Q, P): 1,
			}),
			// M[1][3]
			lc(map[tensor.Triple]int64{
				t(I, I, I): 1, t(I, I, Q): -1, t(I, P, I): -1,
				t(I, P, Q): 1, t(P, I, I): -1, t(P, I, Q): 2,
				t(P, P, I): 1, t(P, P, Q): -1, t(P, Q, Q): -1,
			}),
		},
		{
			// M[2][0]
			lc(map[tensor.Triple]int64{
				t(Q, P, P): -1, t(I, I, I): 1, t(I, I, P): -1,
				t(I, Q, I): -1, t(I, Q, P): 1, t(Q, I, I): -1,
				t(Q, I, P): 2, t(Q, Q, I): 1, t(Q, Q, P): -1,
			}),
			// M[2][1]
			lc(map[tensor.Triple]int64{
				t(Q, P, Q): 1, t(I, Q, I): 1, t(I, Q, Q): -1,
				t(Q, Q, I): -1, t(Q, Q, Q): 1,
			}),
			// M[2][2]
			lc(map[tensor.Triple]int64{
				t(Q, I, I): 1, t(Q, I, P): -2, t(Q, P, I): -1,
				t(Q, P, P): 1, t(I, I, P): 1, t(I, Q, P): -1,
				t(Q, Q, P): 1,
			}),
			// M[2][3]
			lc(map[tensor.Triple]int64{
				t(Q, P, I): 1, t(Q, P, Q): -1, t(I, Q, Q): 1,
				t(Q, Q, Q): -1,
			}),
		},
		{
			// M[3][0]
			lc(map[tensor.Triple]int64{
				t(I, I, P): 1, t(I, P, P): -1, t(Q, I, P): -2,
				t(Q, P, P): 1, t(Q, I, I): 1, t(Q, Q, I): -1,
				t(Q, Q, P): 1,
			}),
			// M[3][1]
			lc(map[tensor.Triple]int64{
				t(I, P, Q): 1, t(Q, P, Q): -1, t(Q, Q, I): 1,
				t(Q, Q, Q): -1,
			}),
			// M[3][2]
			lc(map[tensor.Triple]int64{
				t(I, I, I): 1, t(I, I, P): -1, t(I, P, I): -1,
				t(I, P, P): 1, t(Q, I, I): -1, t(Q, I, P): 2,
				t(Q, P, I): 1, t(Q, P, P): -1, t(Q, Q, P): -1,
			}),
			// M[3][3]
			lc(map[tensor.Triple]int64{
				t(I, P, I): 1, t(I, P, Q): -1, t(Q, P, I): -1,
				t(Q, P, Q): 1, t(Q, Q, Q): 1,
			}),
		},
	}
}
