package main

import (
	"html/template"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// chartHandlerExpensesStackedArea charts the four expense categories across
// all periods as a stacked area.
func chartHandlerExpensesStackedArea(ds Dataset, nonce string, assetsHost string) template.HTML {
	years := ds.Years()

	categories := []struct {
		name  string
		value func(ExpenseRecord) float64
	}{
		{"Salaries and Benefits", func(e ExpenseRecord) float64 { return e.SalariesBenefits }},
		{"Rent and Overhead", func(e ExpenseRecord) float64 { return e.RentOverhead }},
		{"Depreciation & Amortization", func(e ExpenseRecord) float64 { return e.DepreciationAmort }},
		{"Interest", func(e ExpenseRecord) float64 { return e.Interest }},
	}

	lineChart := charts.NewLine()
	lineChart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			ChartID:    "expenses-chart",
			Width:      "580px",
			Height:     "360px",
			AssetsHost: assetsHost,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:  "Expenses",
			Target: nonce,
		}),
		charts.WithColorsOpts(opts.Colors{"#4472C4", "#A5A5A5", "#5B9BD5", "#FFC000"}),
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
			Name: "Amount (USD thousands)",
		}),
	)

	for _, category := range categories {
		data := make([]opts.LineData, 0, len(ds.Expenses))
		for _, rec := range ds.Expenses {
			data = append(data, opts.LineData{Value: category.value(rec)})
		}
		lineChart.
			SetXAxis(years).
			AddSeries(
				category.name,
				data,
				charts.WithLineChartOpts(opts.LineChart{Stack: "expenses", ShowSymbol: false}),
				charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: 0.8}),
			)
	}

	lineChart.Renderer = newSnippetRenderer(lineChart, lineChart.Validate)

	return renderToHtml(lineChart)
}
