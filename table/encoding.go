// SPDX-License-Identifier: MIT

package table

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/nfaross/model-s4plus/lincomb"
)

// rows converts g into nested slices for the encoders.
func (g Grid) rows() [][]lincomb.Combination {
	out := make([][]lincomb.Combination, Size)
	for i := range g {
		out[i] = append([]lincomb.Combination(nil), g[i][:]...)
	}

	return out
}

// fromRows checks the Size×Size shape and copies rows into a Grid.
func fromRows(rows [][]lincomb.Combination) (Grid, error) {
	var g Grid
	if len(rows) != Size {
		return g, fmt.Errorf("table: %d rows: %w", len(rows), ErrOutOfRange)
	}
	for i, r := range rows {
		if len(r) != Size {
			return g, fmt.Errorf("table: row %d has %d cells: %w", i, len(r), ErrOutOfRange)
		}
		copy(g[i][:], r)
	}

	return g, nil
}

// MarshalYAML implements yaml.Marshaler as a Size×Size nested list.
func (g Grid) MarshalYAML() (interface{}, error) {
	return g.rows(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Cells go through the strict
// lincomb decoder.
func (g *Grid) UnmarshalYAML(value *yaml.Node) error {
	var rows [][]lincomb.Combination
	if err := value.Decode(&rows); err != nil {
		return err
	}
	out, err := fromRows(rows)
	if err != nil {
		return err
	}
	*g = out

	return nil
}

// MarshalJSON implements json.Marshaler.
func (g Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.rows())
}

// UnmarshalJSON implements json.Unmarshaler.
func (g *Grid) UnmarshalJSON(data []byte) error {
	var rows [][]lincomb.Combination
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	out, err := fromRows(rows)
	if err != nil {
		return err
	}
	*g = out

	return nil
}
