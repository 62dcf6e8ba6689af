package main

import "html/template"

// Artifacts is the full set of renderables for one dashboard cycle: four
// chart snippets, the trend micro-panel, and the three tabular sections plus
// the balance sheet. It is a pure function of one Dataset; rebuilding it for
// the same input yields identical output.
type Artifacts struct {
	RevenueChart   template.HTML
	MarginChart    template.HTML
	WaterfallChart template.HTML
	ExpensesChart  template.HTML
	TrendPanel     template.HTML

	Averages        []AverageTableRow
	IncomeStatement []VarianceTableRow
	ProfitLoss      []PLTableRow
	BalanceSheet    BalanceSheetView
}

type AverageTableRow struct {
	Metric  string
	Average string
}

type VarianceTableRow struct {
	Item        string
	Actual      string
	Budget      string
	Variance    string
	VarPct      string
	VarianceCSS string
	VarPctCSS   string
}

type PLTableRow struct {
	Item   string
	Amount string
	Bold   bool
}

type BalanceSheetRow struct {
	Label     string
	Amount    string
	Bold      bool
	Underline bool
}

type BalanceSheetView struct {
	AssetRows     []BalanceSheetRow
	LiabilityRows []BalanceSheetRow
}

func buildArtifacts(ds Dataset, nonce string, assetsHost string) Artifacts {
	return Artifacts{
		RevenueChart:    chartHandlerRevenueStackedBar(ds, nonce, assetsHost),
		MarginChart:     chartHandlerProfitMargin(ds, nonce, assetsHost),
		WaterfallChart:  chartHandlerCumulativeRevenue(ds, nonce, assetsHost),
		ExpensesChart:   chartHandlerExpensesStackedArea(ds, nonce, assetsHost),
		TrendPanel:      chartHandlerTrendPanel(ds, nonce, assetsHost),
		Averages:        averagesTable(ds),
		IncomeStatement: incomeStatementTable(ds),
		ProfitLoss:      plSummaryTable(ds),
		BalanceSheet:    balanceSheetView(ds.BalanceSheet),
	}
}

func averagesTable(ds Dataset) []AverageTableRow {
	averages := fiveYearAverages(ds)
	rows := make([]AverageTableRow, 0, len(averages))
	for _, avg := range averages {
		rows = append(rows, AverageTableRow{Metric: avg.Metric, Average: FormatAverage(avg.Average)})
	}
	return rows
}

func incomeStatementTable(ds Dataset) []VarianceTableRow {
	lines := incomeStatement(ds)
	rows := make([]VarianceTableRow, 0, len(lines))
	for _, line := range lines {
		format := FormatAmount
		if line.Item == "Profit Margin (%)" {
			format = FormatPct
		}
		row := VarianceTableRow{
			Item:        line.Item,
			Actual:      format(line.Actual),
			Budget:      format(line.Budget),
			Variance:    format(line.Variance),
			VarianceCSS: VarianceColorCSS(line.Variance),
		}
		if line.VarPct != nil {
			row.VarPct = FormatPct(*line.VarPct) + "%"
			row.VarPctCSS = VarianceColorCSS(*line.VarPct)
		}
		rows = append(rows, row)
	}
	return rows
}

func plSummaryTable(ds Dataset) []PLTableRow {
	lines := plSummary(ds)
	rows := make([]PLTableRow, 0, len(lines))
	for _, line := range lines {
		if line.Separator {
			rows = append(rows, PLTableRow{})
			continue
		}
		rows = append(rows, PLTableRow{Item: line.Item, Amount: FormatAmount(line.Amount), Bold: line.Bold})
	}
	return rows
}

func balanceSheetView(bs BalanceSheet) BalanceSheetView {
	return BalanceSheetView{
		AssetRows: []BalanceSheetRow{
			{Label: "Current Assets", Amount: FormatAmount(bs.CurrentAssets)},
			{Label: "Non-current Assets", Amount: FormatAmount(bs.NonCurrentAssets)},
			{Label: "Total Assets", Amount: FormatAmount(bs.TotalAssets), Bold: true, Underline: true},
		},
		LiabilityRows: []BalanceSheetRow{
			{Label: "Current Liabilities", Amount: FormatAmount(bs.CurrentLiabilities)},
			{Label: "Long-term Liabilities", Amount: FormatAmount(bs.LongTermLiabilities)},
			{Label: "Shareholders' Equity", Amount: FormatAmount(bs.ShareholdersEquity)},
			{Label: "Liabilities & Shareholders' Equity", Amount: FormatAmount(bs.TotalLiabilitiesEquity), Bold: true, Underline: true},
		},
	}
}
