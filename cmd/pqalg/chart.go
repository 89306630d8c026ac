// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nfaross/model-s4plus/internal/chart"
	"github.com/nfaross/model-s4plus/table"
)

func newChartCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Write an HTML term-count report for M and M·M",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			err = chart.Render(f,
				chart.Report{Title: "M", Grid: table.M},
				chart.Report{Title: "M squared", Grid: table.MatMul(table.M, table.M)},
			)
			if err != nil {
				f.Close()
				return err
			}
			a.log.Info("chart written", "path", output)
			fmt.Fprintln(a.out, output)

			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "pqalg-report.html", "output HTML file")

	return cmd
}
