// SPDX-License-Identifier: MIT

// Package chart renders HTML reports about grids of structure constants.
package chart

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/nfaross/model-s4plus/table"
)

// ErrNoReports is returned by Render when called without reports.
var ErrNoReports = errors.New("chart: no reports")

// Report is one titled grid.
type Report struct {
	Title string
	Grid  table.Grid
}

// PageTitle is the HTML page title of every rendered report.
const PageTitle = "pqalg term report"

// cellLabels returns "[i][j]" labels in row-major order.
func cellLabels() []string {
	out := make([]string, 0, table.Size*table.Size)
	for i := 0; i < table.Size; i++ {
		for j := 0; j < table.Size; j++ {
			out = append(out, fmt.Sprintf("[%d][%d]", i, j))
		}
	}

	return out
}

// newGridChart builds a bar chart with the term count and the largest
// absolute coefficient of every cell.
func newGridChart(r Report) *charts.Bar {
	counts := make([]opts.BarData, 0, table.Size*table.Size)
	peaks := make([]opts.BarData, 0, table.Size*table.Size)
	total := 0
	for i := 0; i < table.Size; i++ {
		for j := 0; j < table.Size; j++ {
			c := r.Grid[i][j]
			total += c.Len()
			counts = append(counts, opts.BarData{Value: c.Len()})
			var peak int64
			for _, tm := range c.Terms() {
				k := tm.Coeff
				if k < 0 {
					k = -k
				}
				if k > peak {
					peak = k
				}
			}
			peaks = append(peaks, opts.BarData{Value: peak})
		}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: r.Title, Subtitle: fmt.Sprintf("terms=%d", total)}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: PageTitle, Width: "1200px", Height: "500px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(cellLabels()).
		AddSeries("terms", counts).
		AddSeries("max |coeff|", peaks).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(true)}))

	return bar
}

// Render writes an HTML page with one chart per report.
func Render(w io.Writer, reports ...Report) error {
	if len(reports) == 0 {
		return ErrNoReports
	}
	page := components.NewPage().SetPageTitle(PageTitle)
	for _, r := range reports {
		page.AddCharts(newGridChart(r))
	}
	if err := page.Render(w); err != nil {
		return fmt.Errorf("chart: render: %w", err)
	}

	return nil
}
