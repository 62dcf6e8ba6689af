package main

import (
	"fmt"
	"html/template"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

var (
	trendBarColors = map[string]string{
		"Revenue":           "#4F81BD",
		"COGS":              "#A5A5A5",
		"Expenses":          "#5B9BD5",
		"Profit Margin":     "#70AD47",
		"Profit Margin (%)": "#ED7D31",
	}
	trendLineColors = map[string]string{
		"Revenue":           "#2F5597",
		"COGS":              "#7F7F7F",
		"Expenses":          "#2E75B6",
		"Profit Margin":     "#548235",
		"Profit Margin (%)": "#C55A11",
	}
)

// chartHandlerTrendPanel builds the five-year micro-chart panel: one compact
// bar+line row per summary metric, stacked vertically.
func chartHandlerTrendPanel(ds Dataset, nonce string, assetsHost string) template.HTML {
	years := ds.Years()

	var panel template.HTML
	for x, s := range metricSeries(ds) {
		barData := make([]opts.BarData, 0, len(s.Values))
		lineData := make([]opts.LineData, 0, len(s.Values))
		for _, v := range s.Values {
			barData = append(barData, opts.BarData{Value: v})
			lineData = append(lineData, opts.LineData{Value: v})
		}

		barChart := charts.NewBar()
		barChart.SetGlobalOptions(
			charts.WithInitializationOpts(opts.Initialization{
				ChartID:    fmt.Sprintf("trend-chart-%d", x),
				Width:      "560px",
				Height:     "84px",
				AssetsHost: assetsHost,
			}),
			charts.WithTitleOpts(opts.Title{
				Subtitle: s.Name,
				Target:   nonce,
			}),
			charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
			charts.WithXAxisOpts(opts.XAxis{
				Type:      "category",
				Show:      true,
				Data:      years,
				AxisLabel: &opts.AxisLabel{Show: false},
			}),
			charts.WithYAxisOpts(opts.YAxis{
				Type:      "value",
				Show:      false,
				AxisLabel: &opts.AxisLabel{Show: false},
			}),
		)

		lineChart := charts.NewLine()
		lineChart.
			SetXAxis(years).
			AddSeries(
				s.Name,
				lineData,
				charts.WithLineChartOpts(opts.LineChart{Symbol: "circle", SymbolSize: 4, ShowSymbol: true}),
				charts.WithLineStyleOpts(opts.LineStyle{Width: 2, Color: trendLineColors[s.Name]}),
				charts.WithItemStyleOpts(opts.ItemStyle{Color: trendLineColors[s.Name]}),
				charts.WithLabelOpts(opts.Label{Show: false}),
			)

		barChart.
			SetXAxis(years).
			AddSeries(
				s.Name,
				barData,
				charts.WithBarChartOpts(opts.BarChart{Type: "bar"}),
				charts.WithItemStyleOpts(opts.ItemStyle{Color: trendBarColors[s.Name]}),
				charts.WithLabelOpts(opts.Label{Show: false}),
			)
		barChart.Overlap(lineChart)

		barChart.Renderer = newSnippetRenderer(barChart, barChart.Validate)

		panel += renderToHtml(barChart)
	}

	return panel
}
