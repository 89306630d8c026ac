// SPDX-License-Identifier: MIT
// Package lincomb_test covers construction policy, accessors and formatting.
package lincomb_test

import (
	"testing"

	"github.com/nfaross/model-s4plus/lincomb"
	"github.com/nfaross/model-s4plus/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_StrictRejectsZero(t *testing.T) {
	_, err := lincomb.New(map[tensor.Triple]int64{tr(t, "p⊗1⊗1"): 0, tr(t, "1⊗q⊗1"): 2})
	assert.ErrorIs(t, err, lincomb.ErrInvalidLinearCombination)
}

func TestNew_PruneZeros(t *testing.T) {
	c, err := lincomb.New(
		map[tensor.Triple]int64{tr(t, "p⊗1⊗1"): 0, tr(t, "1⊗q⊗1"): 2},
		lincomb.WithPruneZeros(),
	)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, int64(2), c.Coeff(tr(t, "1⊗q⊗1")))
	assert.Equal(t, int64(0), c.Coeff(tr(t, "p⊗1⊗1")))
}

func TestNew_CopiesInput(t *testing.T) {
	m := map[tensor.Triple]int64{tr(t, "p⊗1⊗1"): 1}
	c, err := lincomb.New(m)
	require.NoError(t, err)
	m[tr(t, "p⊗1⊗1")] = 5
	assert.Equal(t, int64(1), c.Coeff(tr(t, "p⊗1⊗1")))

	out := c.Map()
	out[tr(t, "q⊗q⊗q")] = 3
	assert.Equal(t, 1, c.Len())
}

func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() {
		lincomb.MustNew(map[tensor.Triple]int64{tensor.Identity: 0})
	})
}

func TestFromTerms_Duplicates(t *testing.T) {
	terms := []lincomb.Term{
		{Tensor: tr(t, "p⊗1⊗1"), Coeff: 2},
		{Tensor: tr(t, "p⊗1⊗1"), Coeff: 3},
	}
	_, err := lincomb.FromTerms(terms)
	assert.ErrorIs(t, err, lincomb.ErrInvalidLinearCombination)

	c, err := lincomb.FromTerms(terms, lincomb.WithMergeDuplicates())
	require.NoError(t, err)
	assert.Equal(t, int64(5), c.Coeff(tr(t, "p⊗1⊗1")))

	cancel := []lincomb.Term{
		{Tensor: tr(t, "p⊗1⊗1"), Coeff: 2},
		{Tensor: tr(t, "p⊗1⊗1"), Coeff: -2},
	}
	_, err = lincomb.FromTerms(cancel, lincomb.WithMergeDuplicates())
	assert.ErrorIs(t, err, lincomb.ErrInvalidLinearCombination)

	c, err = lincomb.FromTerms(cancel, lincomb.WithMergeDuplicates(), lincomb.WithPruneZeros())
	require.NoError(t, err)
	assert.True(t, c.IsZero())
}

func TestZeroUnitSingle(t *testing.T) {
	assert.True(t, lincomb.Zero().IsZero())
	var zero lincomb.Combination
	assert.True(t, lincomb.Equal(zero, lincomb.Zero()))

	u := lincomb.Unit()
	assert.Equal(t, 1, u.Len())
	assert.Equal(t, int64(1), u.Coeff(tensor.Identity))

	assert.True(t, lincomb.Single(tr(t, "p⊗p⊗p"), 0).IsZero())
}

func TestTerms_Sorted(t *testing.T) {
	c := lc(t, map[string]int64{"q⊗1⊗1": 1, "1⊗1⊗q": -1, "p⊗1⊗1": 4, "1⊗1⊗1": 2})
	var got []string
	for _, tm := range c.Terms() {
		got = append(got, tm.Tensor.String())
	}
	assert.Equal(t, []string{"1⊗1⊗1", "1⊗1⊗q", "p⊗1⊗1", "q⊗1⊗1"}, got)
}

func TestEqual(t *testing.T) {
	a := lc(t, map[string]int64{"p⊗1⊗1": 1, "1⊗q⊗1": -2})
	b := lc(t, map[string]int64{"1⊗q⊗1": -2, "p⊗1⊗1": 1})
	c := lc(t, map[string]int64{"1⊗q⊗1": -2, "p⊗1⊗1": 2})
	d := lc(t, map[string]int64{"1⊗q⊗1": -2, "q⊗1⊗1": 1})
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.False(t, a.Equal(lincomb.Zero()))
}

func TestString(t *testing.T) {
	x := lincomb.Sub(lincomb.Single(tr(t, "p⊗q⊗1"), 1), lincomb.Single(tr(t, "1⊗1⊗q"), 2))
	assert.Equal(t, "-2·1⊗1⊗q + p⊗q⊗1", x.String())
	assert.Equal(t, "0", lincomb.Zero().String())
	assert.Equal(t, "1⊗1⊗1", lincomb.Unit().String())
	assert.Equal(t, "-1⊗1⊗1", lincomb.Neg(lincomb.Unit()).String())
	assert.Equal(t, "3·1⊗1⊗1 - p⊗1⊗1",
		lc(t, map[string]int64{"1⊗1⊗1": 3, "p⊗1⊗1": -1}).String())
}

func TestFingerprint(t *testing.T) {
	a := lc(t, map[string]int64{"p⊗1⊗1": 1, "1⊗q⊗1": -2})
	b := lincomb.Add(lc(t, map[string]int64{"1⊗q⊗1": -2}), lc(t, map[string]int64{"p⊗1⊗1": 1}))
	c := lc(t, map[string]int64{"p⊗1⊗1": 1, "1⊗q⊗1": 2})

	assert.Len(t, a.Fingerprint(), 2*lincomb.FingerprintSize)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
	assert.NotEqual(t, lincomb.Zero().Fingerprint(), lincomb.Unit().Fingerprint())
}
