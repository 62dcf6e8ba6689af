package main

// Year labels run chronologically with the most recent period last; "Year 0"
// is the current reporting period everywhere below.

type RevenueRecord struct {
	Year            string
	Business1       float64
	Business2       float64
	Business3       float64
	Consolidated    float64
	COGS            float64
	ProfitMargin    float64
	ProfitMarginPct float64
}

type ExpenseRecord struct {
	Year              string
	SalariesBenefits  float64
	RentOverhead      float64
	DepreciationAmort float64
	Interest          float64
	Total             float64
}

// Budget holds the Year 0 targets. ProfitMarginPct is a ratio, not a
// percentage, same as RevenueRecord.ProfitMarginPct.
type Budget struct {
	Revenue         float64
	COGS            float64
	Expenses        float64
	ProfitMargin    float64
	ProfitMarginPct float64
}

type BalanceSheet struct {
	CurrentAssets          float64
	NonCurrentAssets       float64
	TotalAssets            float64
	CurrentLiabilities     float64
	LongTermLiabilities    float64
	ShareholdersEquity     float64
	TotalLiabilitiesEquity float64
}

type Dataset struct {
	Revenue      []RevenueRecord
	Expenses     []ExpenseRecord
	Budget       Budget
	BalanceSheet BalanceSheet
}

// MostRecentRevenue returns the Year 0 revenue record.
func (ds Dataset) MostRecentRevenue() RevenueRecord {
	return ds.Revenue[len(ds.Revenue)-1]
}

// MostRecentExpenses returns the Year 0 expense record.
func (ds Dataset) MostRecentExpenses() ExpenseRecord {
	return ds.Expenses[len(ds.Expenses)-1]
}

func (ds Dataset) Years() []string {
	years := make([]string, 0, len(ds.Revenue))
	for _, rec := range ds.Revenue {
		years = append(years, rec.Year)
	}
	return years
}

// defaultDataset builds the built-in sample data. The accounting identities
// (business units summing to consolidated, categories summing to total,
// assets equaling liabilities plus equity) hold for these figures but are
// never checked anywhere, for these or for uploaded data.
func defaultDataset() Dataset {
	return Dataset{
		Revenue: []RevenueRecord{
			{"Year -4", 102_007, 156_387, 134_622, 393_016, 207_069, 26_063, 0.07},
			{"Year -3", 118_086, 158_882, 138_520, 415_488, 206_012, 34_177, 0.08},
			{"Year -2", 131_345, 160_034, 143_362, 434_741, 218_369, 43_380, 0.10},
			{"Year -1", 142_341, 174_988, 145_897, 463_226, 227_962, 64_068, 0.14},
			{"Year 0", 150_772, 191_520, 148_631, 490_923, 243_130, 70_081, 0.14},
		},
		Expenses: []ExpenseRecord{
			{"Year -4", 70_854, 32_789, 48_741, 7_500, 159_884},
			{"Year -3", 77_974, 35_375, 54_450, 7_500, 175_299},
			{"Year -2", 81_616, 35_261, 51_615, 4_500, 172_992},
			{"Year -1", 79_006, 38_060, 49_631, 4_500, 171_197},
			{"Year 0", 85_735, 39_236, 48_241, 4_500, 177_712},
		},
		Budget: Budget{
			Revenue:         475_000,
			COGS:            238_000,
			Expenses:        186_000,
			ProfitMargin:    73_500,
			ProfitMarginPct: 0.155,
		},
		BalanceSheet: BalanceSheet{
			CurrentAssets:          395_685,
			NonCurrentAssets:       589_610,
			TotalAssets:            985_295,
			CurrentLiabilities:     135_374,
			LongTermLiabilities:    384_962,
			ShareholdersEquity:     464_959,
			TotalLiabilitiesEquity: 985_295,
		},
	}
}
