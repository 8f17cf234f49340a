// Package report renders quick-look charts for captured sessions.
package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// VelocityChart writes a standalone HTML line chart of velocity over sample
// index, labelled with the given speed unit. It is a debugging aid for
// eyeballing a run before feeding the exported file to analysis tooling.
func VelocityChart(w io.Writer, title, unit string, speeds []float64) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("velocity (%s) per sample", unit),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)

	xAxis := make([]string, len(speeds))
	data := make([]opts.LineData, len(speeds))
	for i, v := range speeds {
		xAxis[i] = fmt.Sprintf("%d", i)
		data[i] = opts.LineData{Value: v}
	}

	line.SetXAxis(xAxis)
	line.AddSeries("velocity", data)

	if err := line.Render(w); err != nil {
		return fmt.Errorf("render velocity chart: %w", err)
	}
	return nil
}
