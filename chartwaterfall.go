package main

import (
	"html/template"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// chartHandlerCumulativeRevenue charts the most recent period's business-unit
// breakdown composing into the consolidated total, waterfall style. Echarts
// has no native waterfall, so the usual trick applies: a transparent offset
// series stacked under the visible steps.
func chartHandlerCumulativeRevenue(ds Dataset, nonce string, assetsHost string) template.HTML {
	rec := ds.MostRecentRevenue()

	labels := []string{"Business 1", "Business 2", "Business 3", "Consolidated"}
	steps := []float64{rec.Business1, rec.Business2, rec.Business3, rec.Consolidated}
	offsets := []float64{0, rec.Business1, rec.Business1 + rec.Business2, 0}

	offsetData := make([]opts.BarData, 0, len(offsets))
	for _, v := range offsets {
		offsetData = append(offsetData, opts.BarData{Value: v})
	}
	stepData := make([]opts.BarData, 0, len(steps))
	for x, v := range steps {
		stepData = append(stepData, opts.BarData{Name: labels[x], Value: v})
	}

	barChart := charts.NewBar()
	barChart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			ChartID:    "waterfall-chart",
			Width:      "580px",
			Height:     "360px",
			AssetsHost: assetsHost,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:  "Cumulative Revenue (Year 0)",
			Target: nonce,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "category",
			Show: true,
			Data: labels,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "Revenue (USD thousands)",
		}),
	)

	barChart.
		SetXAxis(labels).
		AddSeries(
			"offset",
			offsetData,
			charts.WithBarChartOpts(opts.BarChart{Type: "bar", Stack: "waterfall"}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "rgba(0,0,0,0)"}),
			charts.WithLabelOpts(opts.Label{Show: false}),
		).
		AddSeries(
			"Revenue",
			stepData,
			charts.WithBarChartOpts(opts.BarChart{Type: "bar", Stack: "waterfall"}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "#4F81BD"}),
			charts.WithLabelOpts(opts.Label{Show: true, Position: "top"}),
		)

	barChart.Renderer = newSnippetRenderer(barChart, barChart.Validate)

	return renderToHtml(barChart)
}
