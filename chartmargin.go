package main

import (
	"html/template"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// chartHandlerProfitMargin charts the profit margin amount as bars against
// the left axis and the margin percentage as a dashed line against a second
// axis on the right.
func chartHandlerProfitMargin(ds Dataset, nonce string, assetsHost string) template.HTML {
	years := ds.Years()

	barData := make([]opts.BarData, 0, len(ds.Revenue))
	lineData := make([]opts.LineData, 0, len(ds.Revenue))
	for _, rec := range ds.Revenue {
		barData = append(barData, opts.BarData{Value: rec.ProfitMargin})
		lineData = append(lineData, opts.LineData{Value: rec.ProfitMarginPct * 100})
	}

	barChart := charts.NewBar()
	barChart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			ChartID:    "margin-chart",
			Width:      "580px",
			Height:     "360px",
			AssetsHost: assetsHost,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:  "Profit Margin",
			Target: nonce,
		}),
		charts.WithColorsOpts(opts.Colors{"#4472C4", "#ED7D31"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{
			Show:   true,
			Orient: "horizontal",
			Left:   "center",
			Top:    "bottom",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Year",
			Type: "category",
			Show: true,
			Data: years,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "Profit Margin ($)",
		}),
	)
	barChart.ExtendYAxis(opts.YAxis{
		Type:      "value",
		Name:      "Profit Margin (%)",
		AxisLabel: &opts.AxisLabel{Show: true, Formatter: "{value}"},
	})

	lineChart := charts.NewLine()
	lineChart.
		SetXAxis(years).
		AddSeries(
			"Profit Margin (%)",
			lineData,
			charts.WithLineChartOpts(opts.LineChart{YAxisIndex: 1, Symbol: "circle", SymbolSize: 7, ShowSymbol: true}),
			charts.WithLineStyleOpts(opts.LineStyle{Width: 2, Type: "dashed"}),
		)

	barChart.
		SetXAxis(years).
		AddSeries(
			"Profit Margin ($)",
			barData,
			charts.WithBarChartOpts(opts.BarChart{Type: "bar"}),
		)
	barChart.Overlap(lineChart)

	barChart.Renderer = newSnippetRenderer(barChart, barChart.Validate)

	return renderToHtml(barChart)
}
