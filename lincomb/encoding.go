// SPDX-License-Identifier: MIT

package lincomb

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/nfaross/model-s4plus/tensor"
)

// TermDoc is the serialized form of one term: {tensor: "p⊗q⊗1", coeff: 1}.
type TermDoc struct {
	Tensor string `yaml:"tensor" json:"tensor"`
	Coeff  int64  `yaml:"coeff" json:"coeff"`
}

// Docs returns c as sorted TermDocs.
func (c Combination) Docs() []TermDoc {
	terms := c.Terms()
	out := make([]TermDoc, len(terms))
	for i, tm := range terms {
		out[i] = TermDoc{Tensor: tm.Tensor.String(), Coeff: tm.Coeff}
	}

	return out
}

// FromDocs parses docs through the strict constructor.
//
// Errors:
//   - tensor.ErrInvalidTriple / word.ErrInvalidWord for malformed tensors.
//   - ErrInvalidLinearCombination for zero coefficients or repeats.
func FromDocs(docs []TermDoc, opts ...Option) (Combination, error) {
	terms := make([]Term, len(docs))
	for i, d := range docs {
		t, err := tensor.Parse(d.Tensor)
		if err != nil {
			return Zero(), fmt.Errorf("FromDocs: term %d: %w", i, err)
		}
		terms[i] = Term{Tensor: t, Coeff: d.Coeff}
	}

	return FromTerms(terms, opts...)
}

// MarshalYAML implements yaml.Marshaler.
func (c Combination) MarshalYAML() (interface{}, error) {
	return c.Docs(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Combination) UnmarshalYAML(value *yaml.Node) error {
	var docs []TermDoc
	if err := value.Decode(&docs); err != nil {
		return fmt.Errorf("lincomb: yaml decode: %w", err)
	}
	out, err := FromDocs(docs)
	if err != nil {
		return err
	}
	*c = out

	return nil
}

// MarshalJSON implements json.Marshaler.
func (c Combination) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Docs())
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Combination) UnmarshalJSON(data []byte) error {
	var docs []TermDoc
	if err := json.Unmarshal(data, &docs); err != nil {
		return fmt.Errorf("lincomb: json decode: %w", err)
	}
	out, err := FromDocs(docs)
	if err != nil {
		return err
	}
	*c = out

	return nil
}
