// SPDX-License-Identifier: MIT
// Package word_test covers construction, parsing and the multiplication law of A.
package word_test

import (
	"testing"

	"github.com/nfaross/model-s4plus/word"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allWords returns 1 and every alternating word of length 1..maxLen.
func allWords(t *testing.T, maxLen int) []word.Word {
	t.Helper()
	out := []word.Word{word.One}
	for n := 1; n <= maxLen; n++ {
		for _, s := range []word.Letter{word.LetterP, word.LetterQ} {
			w, err := word.New(s, n)
			require.NoError(t, err)
			out = append(out, w)
		}
	}

	return out
}

func mustParse(t *testing.T, s string) word.Word {
	t.Helper()
	w, err := word.Parse(s)
	require.NoError(t, err, "parse %q", s)

	return w
}

func TestNew_Validation(t *testing.T) {
	cases := []struct {
		name  string
		start word.Letter
		n     int
		ok    bool
	}{
		{"identity", word.NoLetter, 0, true},
		{"p", word.LetterP, 1, true},
		{"qpqp", word.LetterQ, 4, true},
		{"length without start", word.NoLetter, 2, false},
		{"start without length", word.LetterP, 0, false},
		{"negative length", word.LetterQ, -1, false},
		{"unknown letter", word.Letter(7), 1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := word.New(tc.start, tc.n)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, word.ErrInvalidWord)
			}
		})
	}
}

func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() { word.MustNew(word.LetterP, 0) })
	assert.NotPanics(t, func() { word.MustNew(word.LetterP, 3) })
}

func TestZeroValueIsOne(t *testing.T) {
	var w word.Word
	assert.Equal(t, word.One, w)
	assert.True(t, w.IsOne())
	assert.Equal(t, word.NoLetter, w.Start())
	assert.Equal(t, 0, w.Len())
}

func TestLast(t *testing.T) {
	assert.Equal(t, word.NoLetter, word.One.Last())
	assert.Equal(t, word.LetterP, word.P.Last())
	assert.Equal(t, word.LetterQ, mustParse(t, "pq").Last())
	assert.Equal(t, word.LetterP, mustParse(t, "pqp").Last())
	assert.Equal(t, word.LetterP, mustParse(t, "qp").Last())
}

func TestStringParse_RoundTrip(t *testing.T) {
	for _, w := range allWords(t, 6) {
		got, err := word.Parse(w.String())
		require.NoError(t, err)
		assert.Equal(t, w, got, "round trip of %s", w)
	}
	assert.Equal(t, "1", word.One.String())
	assert.Equal(t, "qpqp", word.MustNew(word.LetterQ, 4).String())
}

func TestParse_Rejects(t *testing.T) {
	for _, s := range []string{"", "pp", "pqq", "x", "p1", "PQ", "pq p"} {
		_, err := word.Parse(s)
		assert.ErrorIs(t, err, word.ErrInvalidWord, "input %q", s)
	}
}

func TestLetters(t *testing.T) {
	assert.Nil(t, word.One.Letters())
	assert.Equal(t,
		[]word.Letter{word.LetterQ, word.LetterP, word.LetterQ},
		mustParse(t, "qpq").Letters())
}

func TestMul_Identity(t *testing.T) {
	for _, w := range allWords(t, 5) {
		assert.Equal(t, w, word.Mul(word.One, w), "1·%s", w)
		assert.Equal(t, w, word.Mul(w, word.One), "%s·1", w)
	}
}

func TestMul_Idempotency(t *testing.T) {
	assert.Equal(t, word.P, word.Mul(word.P, word.P))
	assert.Equal(t, word.Q, word.Mul(word.Q, word.Q))
}

func TestMul_Table(t *testing.T) {
	cases := []struct{ x, y, want string }{
		{"p", "q", "pq"},
		{"pq", "p", "pqp"},
		{"p", "p", "p"},
		{"pqp", "p", "pqp"},
		{"pqp", "pq", "pqpq"},
		{"pq", "pq", "pqpq"},
		{"pq", "qp", "pqp"},
		{"qp", "q", "qpq"},
		{"qpq", "qpq", "qpqpq"},
		{"q", "pqp", "qpqp"},
	}
	for _, tc := range cases {
		t.Run(tc.x+"·"+tc.y, func(t *testing.T) {
			got := word.Mul(mustParse(t, tc.x), mustParse(t, tc.y))
			assert.Equal(t, tc.want, got.String())
		})
	}
}

// TestMul_MatchesConcatenation checks Mul against the naive rule: concatenate
// the letters and collapse equal neighbours.
func TestMul_MatchesConcatenation(t *testing.T) {
	ws := allWords(t, 5)
	for _, x := range ws {
		for _, y := range ws {
			letters := append(x.Letters(), y.Letters()...)
			var collapsed []word.Letter
			for _, l := range letters {
				if n := len(collapsed); n > 0 && collapsed[n-1] == l {
					continue
				}
				collapsed = append(collapsed, l)
			}
			got := word.Mul(x, y)
			if len(collapsed) == 0 {
				assert.Equal(t, word.One, got)
				continue
			}
			assert.Equal(t, collapsed, got.Letters(), "%s·%s", x, y)
		}
	}
}

func TestMul_Associative(t *testing.T) {
	ws := allWords(t, 4)
	for _, x := range ws {
		for _, y := range ws {
			for _, z := range ws {
				left := word.Mul(word.Mul(x, y), z)
				right := word.Mul(x, word.Mul(y, z))
				require.Equal(t, left, right, "(%s·%s)·%s", x, y, z)
			}
		}
	}
}

func TestMul_NotCommutative(t *testing.T) {
	pq := mustParse(t, "pq")
	assert.Equal(t, "pq", word.Mul(pq, word.Q).String())
	assert.Equal(t, "qpq", word.Mul(word.Q, pq).String())
	assert.NotEqual(t, word.Mul(pq, word.Q), word.Mul(word.Q, pq))
}

func TestMul_StartPreserved(t *testing.T) {
	ws := allWords(t, 4)
	for _, x := range ws[1:] {
		for _, y := range ws {
			assert.Equal(t, x.Start(), word.Mul(x, y).Start())
		}
	}
}

func TestProductAndPow(t *testing.T) {
	assert.Equal(t, word.One, word.Product())
	assert.Equal(t, "pqp", word.Product(word.P, word.Q, word.P, word.P).String())

	pq := mustParse(t, "pq")
	got, err := word.Pow(pq, 3)
	require.NoError(t, err)
	assert.Equal(t, "pqpqpq", got.String())

	got, err = word.Pow(word.P, 5)
	require.NoError(t, err)
	assert.Equal(t, word.P, got)

	got, err = word.Pow(pq, 0)
	require.NoError(t, err)
	assert.Equal(t, word.One, got)

	_, err = word.Pow(pq, -1)
	assert.ErrorIs(t, err, word.ErrNegativeExponent)
}

func TestCompare(t *testing.T) {
	ws := allWords(t, 3)
	for i := range ws {
		for j := range ws {
			got := word.Compare(ws[i], ws[j])
			switch {
			case i < j:
				assert.Equal(t, -1, got)
			case i > j:
				assert.Equal(t, 1, got)
			default:
				assert.Equal(t, 0, got)
			}
		}
	}
}

// TestCharacter_Multiplicative checks χ(x·y) = χ(x)·χ(y) for all four characters.
func TestCharacter_Multiplicative(t *testing.T) {
	ws := allWords(t, 4)
	for _, chi := range word.Characters {
		assert.Equal(t, int64(1), chi.Eval(word.One))
		for _, x := range ws {
			for _, y := range ws {
				require.Equal(t, chi.Eval(x)*chi.Eval(y), chi.Eval(word.Mul(x, y)),
					"χ=%+v x=%s y=%s", chi, x, y)
			}
		}
	}
	assert.Equal(t, int64(1), word.Augmentation.Eval(mustParse(t, "qpqp")))
	assert.Equal(t, int64(0), word.Character{P: true}.Eval(mustParse(t, "pq")))
	assert.Equal(t, int64(1), word.Character{P: true}.Eval(word.P))
	assert.Equal(t, int64(0), word.Character{P: true}.Eval(word.Q))
}
