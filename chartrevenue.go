package main

import (
	"html/template"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// chartHandlerRevenueStackedBar charts per-business-unit revenue across all
// periods as a stacked bar.
func chartHandlerRevenueStackedBar(ds Dataset, nonce string, assetsHost string) template.HTML {
	years := ds.Years()

	units := []struct {
		name  string
		value func(RevenueRecord) float64
	}{
		{"Business 1", func(r RevenueRecord) float64 { return r.Business1 }},
		{"Business 2", func(r RevenueRecord) float64 { return r.Business2 }},
		{"Business 3", func(r RevenueRecord) float64 { return r.Business3 }},
	}

	barChart := charts.NewBar()
	barChart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			ChartID:    "revenue-chart",
			Width:      "580px",
			Height:     "360px",
			AssetsHost: assetsHost,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:  "Business Unit Revenue",
			Target: nonce, // crazy hack to get nonce into scripts
		}),
		charts.WithColorsOpts(opts.Colors{"#4F81BD", "#A5A5A5", "#5B9BD5"}),
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
			Name: "Revenue (USD thousands)",
		}),
	)

	for _, unit := range units {
		data := make([]opts.BarData, 0, len(ds.Revenue))
		for _, rec := range ds.Revenue {
			data = append(data, opts.BarData{Value: unit.value(rec)})
		}
		barChart.
			SetXAxis(years).
			AddSeries(
				unit.name,
				data,
				charts.WithBarChartOpts(opts.BarChart{Type: "bar", Stack: "revenue"}),
			)
	}

	barChart.Renderer = newSnippetRenderer(barChart, barChart.Validate)

	return renderToHtml(barChart)
}
