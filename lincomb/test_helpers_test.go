// SPDX-License-Identifier: MIT
package lincomb_test

import (
	"math/rand"
	"testing"

	"github.com/nfaross/model-s4plus/lincomb"
	"github.com/nfaross/model-s4plus/tensor"
	"github.com/nfaross/model-s4plus/word"
	"github.com/stretchr/testify/require"
)

// tr parses a triple token such as "p⊗1⊗qp".
func tr(t testing.TB, s string) tensor.Triple {
	t.Helper()
	x, err := tensor.Parse(s)
	require.NoError(t, err, "parse %q", s)

	return x
}

// lc builds a strict combination from token → coefficient pairs.
func lc(t testing.TB, terms map[string]int64) lincomb.Combination {
	t.Helper()
	m := make(map[tensor.Triple]int64, len(terms))
	for s, c := range terms {
		m[tr(t, s)] = c
	}
	c, err := lincomb.New(m)
	require.NoError(t, err)

	return c
}

// smallWords are the factors used by randomCombination.
var smallWords = []word.Word{
	word.One, word.P, word.Q,
	word.MustNew(word.LetterP, 2), word.MustNew(word.LetterQ, 2),
}

// randomCombination draws up to maxTerms terms with coefficients in [-3,3]\{0}.
func randomCombination(rng *rand.Rand, maxTerms int) lincomb.Combination {
	terms := make([]lincomb.Term, 0, maxTerms)
	n := rng.Intn(maxTerms + 1)
	for i := 0; i < n; i++ {
		t := tensor.New(
			smallWords[rng.Intn(len(smallWords))],
			smallWords[rng.Intn(len(smallWords))],
			smallWords[rng.Intn(len(smallWords))],
		)
		c := int64(rng.Intn(7) - 3)
		terms = append(terms, lincomb.Term{Tensor: t, Coeff: c})
	}
	out, err := lincomb.FromTerms(terms, lincomb.WithPruneZeros(), lincomb.WithMergeDuplicates())
	if err != nil {
		panic(err)
	}

	return out
}

// requireNoZero asserts the sparse-zero invariant on c.
func requireNoZero(t testing.TB, c lincomb.Combination) {
	t.Helper()
	c.Range(func(x tensor.Triple, k int64) bool {
		require.NotZero(t, k, "zero coefficient stored at %s", x)

		return true
	})
}
