package main

// The five summary metrics, in the order every artifact presents them.
var summaryMetrics = []string{
	"Revenue",
	"COGS",
	"Expenses",
	"Profit Margin",
	"Profit Margin (%)",
}

type AverageRow struct {
	Metric  string
	Average float64
}

// fiveYearAverages computes the arithmetic mean of each summary metric over
// every period present. Profit Margin (%) is scaled to percentage points.
func fiveYearAverages(ds Dataset) []AverageRow {
	series := metricSeries(ds)
	rows := make([]AverageRow, 0, len(series))
	for _, s := range series {
		var sum float64
		for _, v := range s.Values {
			sum += v
		}
		rows = append(rows, AverageRow{Metric: s.Name, Average: sum / float64(len(s.Values))})
	}
	return rows
}

type VarianceLine struct {
	Item     string
	Actual   float64
	Budget   float64
	Variance float64
	// VarPct is nil when the budget figure is zero.
	VarPct *float64
}

// incomeStatement compares the most recent period against the budget, line by
// line. Variance is actual minus budget; Var% is variance over budget.
func incomeStatement(ds Dataset) []VarianceLine {
	rev := ds.MostRecentRevenue()
	exp := ds.MostRecentExpenses()

	pairs := []struct {
		item   string
		actual float64
		budget float64
	}{
		{"Revenue", rev.Consolidated, ds.Budget.Revenue},
		{"COGS", rev.COGS, ds.Budget.COGS},
		{"Expenses", exp.Total, ds.Budget.Expenses},
		{"Profit Margin", rev.ProfitMargin, ds.Budget.ProfitMargin},
		{"Profit Margin (%)", rev.ProfitMarginPct * 100, ds.Budget.ProfitMarginPct * 100},
	}

	lines := make([]VarianceLine, 0, len(pairs))
	for _, p := range pairs {
		line := VarianceLine{Item: p.item, Actual: p.actual, Budget: p.budget, Variance: p.actual - p.budget}
		if p.budget != 0 {
			pct := line.Variance / p.budget * 100
			line.VarPct = &pct
		}
		lines = append(lines, line)
	}
	return lines
}

type PLLine struct {
	Item      string
	Amount    float64
	Separator bool
	Bold      bool
}

// plSummary lists the most recent period in profit-and-loss order. Net
// Operating Profit is the profit-margin amount field verbatim; it is never
// recomputed from revenue minus COGS minus expenses.
func plSummary(ds Dataset) []PLLine {
	rev := ds.MostRecentRevenue()
	exp := ds.MostRecentExpenses()

	return []PLLine{
		{Item: "Revenue", Amount: rev.Consolidated},
		{Item: "COGS", Amount: rev.COGS},
		{Separator: true},
		{Item: "Salaries and Benefits", Amount: exp.SalariesBenefits},
		{Item: "Rent and Overhead", Amount: exp.RentOverhead},
		{Item: "Depreciation & Amortization", Amount: exp.DepreciationAmort},
		{Item: "Interest", Amount: exp.Interest},
		{Item: "Total Expenses", Amount: exp.Total},
		{Separator: true},
		{Item: "Net Operating Profit", Amount: rev.ProfitMargin, Bold: true},
	}
}

type MetricSeries struct {
	Name   string
	Values []float64
}

// metricSeries exposes the five summary metrics as per-period series, one
// value per period, for the trend micro-charts and the averages above.
func metricSeries(ds Dataset) []MetricSeries {
	n := len(ds.Revenue)
	series := make([]MetricSeries, len(summaryMetrics))
	for i, name := range summaryMetrics {
		series[i] = MetricSeries{Name: name, Values: make([]float64, 0, n)}
	}
	for x := 0; x < n; x++ {
		rev := ds.Revenue[x]
		series[0].Values = append(series[0].Values, rev.Consolidated)
		series[1].Values = append(series[1].Values, rev.COGS)
		series[2].Values = append(series[2].Values, ds.Expenses[x].Total)
		series[3].Values = append(series[3].Values, rev.ProfitMargin)
		series[4].Values = append(series[4].Values, rev.ProfitMarginPct*100)
	}
	return series
}
