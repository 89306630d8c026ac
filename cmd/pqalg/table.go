// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nfaross/model-s4plus/lincomb"
	"github.com/nfaross/model-s4plus/table"
)

func newTableCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "table [i j]",
		Short: "Print the table of structure constants or one cell",
		Args:  usageArgs(cobra.MatchAll(cobra.MaximumNArgs(2), notOneArg)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return writeValue(a.out, a.format(), table.M)
			}
			i, j, err := parseCell(args[0], args[1])
			if err != nil {
				return err
			}
			c, err := table.M.At(i, j)
			if err != nil {
				return err
			}

			return writeValue(a.out, a.format(), c)
		},
	}
}

// notOneArg rejects exactly one positional argument (an index pair is needed).
func notOneArg(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return errors.New("need both i and j")
	}

	return nil
}

func newMulCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mul i j k l",
		Short: "Print the product M[i][j] · M[k][l]",
		Args:  usageArgs(cobra.ExactArgs(4)),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, j, err := parseCell(args[0], args[1])
			if err != nil {
				return err
			}
			k, l, err := parseCell(args[2], args[3])
			if err != nil {
				return err
			}
			prod := lincomb.Mul(table.M[i][j], table.M[k][l])
			a.log.Debug("product computed",
				"left", fmt.Sprintf("M[%d][%d]", i, j),
				"right", fmt.Sprintf("M[%d][%d]", k, l),
				"terms", prod.Len())

			return writeValue(a.out, a.format(), prod)
		},
	}
}

// squareReport is the structured output of the square command.
type squareReport struct {
	Square     table.Grid `yaml:"square" json:"square"`
	Idempotent bool       `yaml:"idempotent" json:"idempotent"`
}

func (r squareReport) String() string {
	return fmt.Sprintf("%sidempotent: %t\n", r.Square, r.Idempotent)
}

func newSquareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "square",
		Short: "Print M·M and whether M is idempotent",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			sq := table.MatMul(table.M, table.M)

			return writeValue(a.out, a.format(), squareReport{Square: sq, Idempotent: sq.Equal(table.M)})
		},
	}
}

func newExportCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the table as YAML or JSON",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := a.format()
			if format == formatText {
				format = formatYAML
			}
			if output == "" || output == "-" {
				return writeValue(a.out, format, table.M)
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			if err := writeValue(f, format, table.M); err != nil {
				f.Close()
				return err
			}
			a.log.Info("table exported", "path", output, "format", format)

			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}
