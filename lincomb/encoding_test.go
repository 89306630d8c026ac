// SPDX-License-Identifier: MIT
package lincomb_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/nfaross/model-s4plus/lincomb"
	"github.com/nfaross/model-s4plus/tensor"
	"github.com/nfaross/model-s4plus/word"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestYAML_Encode(t *testing.T) {
	x := lc(t, map[string]int64{"p⊗q⊗1": 1, "1⊗1⊗q": -2})
	out, err := yaml.Marshal(x)
	require.NoError(t, err)
	assert.Contains(t, string(out), "tensor: 1⊗1⊗q")
	assert.Less(t,
		strings.Index(string(out), "1⊗1⊗q"),
		strings.Index(string(out), "p⊗q⊗1"),
		"terms are emitted in sorted order")

	var back lincomb.Combination
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.True(t, lincomb.Equal(x, back))
}

func TestYAML_DecodeRejects(t *testing.T) {
	var c lincomb.Combination
	err := yaml.Unmarshal([]byte("- tensor: p⊗q⊗1\n  coeff: 0\n"), &c)
	assert.ErrorIs(t, err, lincomb.ErrInvalidLinearCombination)

	err = yaml.Unmarshal([]byte("- tensor: p⊗q\n  coeff: 1\n"), &c)
	assert.ErrorIs(t, err, tensor.ErrInvalidTriple)

	err = yaml.Unmarshal([]byte("- tensor: pp⊗q⊗1\n  coeff: 1\n"), &c)
	assert.ErrorIs(t, err, word.ErrInvalidWord)

	dup := "- tensor: p⊗q⊗1\n  coeff: 1\n- tensor: p⊗q⊗1\n  coeff: 2\n"
	err = yaml.Unmarshal([]byte(dup), &c)
	assert.ErrorIs(t, err, lincomb.ErrInvalidLinearCombination)
}

func TestJSON_RoundTrip(t *testing.T) {
	x := lc(t, map[string]int64{"pqp⊗q⊗1": 3, "1⊗1⊗q": -2})
	data, err := json.Marshal(x)
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"tensor":"1⊗1⊗q","coeff":-2},{"tensor":"pqp⊗q⊗1","coeff":3}]`,
		string(data))

	var back lincomb.Combination
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, lincomb.Equal(x, back))

	zero, err := json.Marshal(lincomb.Zero())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(zero))
}

func TestFromDocs_CommaSeparator(t *testing.T) {
	c, err := lincomb.FromDocs([]lincomb.TermDoc{{Tensor: "p,q,1", Coeff: 4}})
	require.NoError(t, err)
	assert.Equal(t, "4·p⊗q⊗1", c.String())
}
