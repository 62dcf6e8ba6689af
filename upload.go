package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// requiredColumns is the full upload schema, revenue-side then expense-side.
// "Total Expenses" may arrive under its legacy name "Total".
var requiredColumns = []string{
	"Year",
	"Business 1",
	"Business 2",
	"Business 3",
	"Consolidated",
	"COGS",
	"Profit Margin ($)",
	"Profit Margin (%)",
	"Salaries and Benefits",
	"Rent and Overhead",
	"Depreciation & Amortization",
	"Interest",
	"Total Expenses",
}

// parseUpload decodes an uploaded table and normalizes it into a Dataset.
// The filename suffix picks the decoder: ".csv" is comma-delimited text,
// anything else is treated as a spreadsheet. The budget and balance sheet are
// never taken from the upload; they always stay the built-in defaults, so an
// upload changes only the revenue and expense figures.
func parseUpload(raw []byte, filename string) (Dataset, error) {
	var header []string
	var rows [][]string
	var err error
	if strings.HasSuffix(strings.ToLower(filename), ".csv") {
		header, rows, err = decodeCSVTable(raw)
	} else {
		header, rows, err = decodeSpreadsheetTable(raw)
	}
	if err != nil {
		return Dataset{}, err
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	if _, ok := cols["Total Expenses"]; !ok {
		if idx, ok := cols["Total"]; ok {
			cols["Total Expenses"] = idx
		}
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return Dataset{}, MissingColumnsError{Columns: missing}
	}
	if len(rows) == 0 {
		return Dataset{}, errNoDataRows
	}

	ds := defaultDataset()
	ds.Revenue = make([]RevenueRecord, 0, len(rows))
	ds.Expenses = make([]ExpenseRecord, 0, len(rows))
	for n, row := range rows {
		cell := func(name string) string {
			if idx := cols[name]; idx < len(row) {
				return strings.TrimSpace(row[idx])
			}
			return ""
		}
		number := func(name string) (float64, error) {
			text := strings.ReplaceAll(cell(name), ",", "")
			value, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return 0, fmt.Errorf("row %d column %q: not a number: %q", n+1, name, cell(name))
			}
			return value, nil
		}

		rev := RevenueRecord{Year: cell("Year")}
		exp := ExpenseRecord{Year: cell("Year")}
		for _, field := range []struct {
			column string
			target *float64
		}{
			{"Business 1", &rev.Business1},
			{"Business 2", &rev.Business2},
			{"Business 3", &rev.Business3},
			{"Consolidated", &rev.Consolidated},
			{"COGS", &rev.COGS},
			{"Profit Margin ($)", &rev.ProfitMargin},
			{"Profit Margin (%)", &rev.ProfitMarginPct},
			{"Salaries and Benefits", &exp.SalariesBenefits},
			{"Rent and Overhead", &exp.RentOverhead},
			{"Depreciation & Amortization", &exp.DepreciationAmort},
			{"Interest", &exp.Interest},
			{"Total Expenses", &exp.Total},
		} {
			value, err := number(field.column)
			if err != nil {
				return Dataset{}, err
			}
			*field.target = value
		}
		ds.Revenue = append(ds.Revenue, rev)
		ds.Expenses = append(ds.Expenses, exp)
	}

	return ds, nil
}

func decodeCSVTable(raw []byte) ([]string, [][]string, error) {
	reader := csv.NewReader(bytes.NewReader(raw))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, errNoHeaderRow
	}
	return records[0], records[1:], nil
}

func decodeSpreadsheetTable(raw []byte) ([]string, [][]string, error) {
	workbook, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode spreadsheet: %w", err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, errNoWorksheets
	}
	records, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read worksheet %q: %w", sheets[0], err)
	}
	if len(records) == 0 {
		return nil, nil, errNoHeaderRow
	}
	return records[0], records[1:], nil
}
