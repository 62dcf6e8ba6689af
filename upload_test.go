package main

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// uploadTable is a valid single-period table used as the base fixture.
func uploadTable() ([]string, [][]string) {
	header := []string{
		"Year", "Business 1", "Business 2", "Business 3", "Consolidated", "COGS",
		"Profit Margin ($)", "Profit Margin (%)",
		"Salaries and Benefits", "Rent and Overhead", "Depreciation & Amortization",
		"Interest", "Total Expenses",
	}
	rows := [][]string{
		{"Year -1", "100", "200", "300", "600", "250", "50", "0.083", "40", "20", "30", "10", "100"},
		{"Year 0", "110", "210", "310", "630", "260", "60", "0.095", "42", "22", "32", "12", "108"},
	}
	return header, rows
}

func encodeCSV(t *testing.T, header []string, rows [][]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	require.NoError(t, writer.Write(header))
	require.NoError(t, writer.WriteAll(rows))
	writer.Flush()
	require.NoError(t, writer.Error())
	return buf.Bytes()
}

func encodeXLSX(t *testing.T, header []string, rows [][]string) []byte {
	t.Helper()
	workbook := excelize.NewFile()
	defer workbook.Close()

	sheet := workbook.GetSheetList()[0]
	writeRow := func(n int, cells []string) {
		values := make([]interface{}, len(cells))
		for i, cell := range cells {
			if v, err := strconv.ParseFloat(cell, 64); err == nil {
				values[i] = v
			} else {
				values[i] = cell
			}
		}
		axis, err := excelize.CoordinatesToCellName(1, n)
		require.NoError(t, err)
		require.NoError(t, workbook.SetSheetRow(sheet, axis, &values))
	}
	writeRow(1, header)
	for i, row := range rows {
		writeRow(i+2, row)
	}

	buf, err := workbook.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestParseUploadCSV(t *testing.T) {
	header, rows := uploadTable()
	ds, err := parseUpload(encodeCSV(t, header, rows), "report.csv")
	require.NoError(t, err)

	require.Len(t, ds.Revenue, 2)
	require.Len(t, ds.Expenses, 2)

	rev := ds.MostRecentRevenue()
	assert.Equal(t, "Year 0", rev.Year)
	assert.Equal(t, 630.0, rev.Consolidated)
	assert.Equal(t, 60.0, rev.ProfitMargin)
	assert.Equal(t, 0.095, rev.ProfitMarginPct)

	exp := ds.MostRecentExpenses()
	assert.Equal(t, 108.0, exp.Total)
	assert.Equal(t, 42.0, exp.SalariesBenefits)
}

func TestParseUploadKeepsDefaultBudgetAndBalanceSheet(t *testing.T) {
	header, rows := uploadTable()
	ds, err := parseUpload(encodeCSV(t, header, rows), "report.csv")
	require.NoError(t, err)

	defaults := defaultDataset()
	assert.Equal(t, defaults.Budget, ds.Budget)
	assert.Equal(t, defaults.BalanceSheet, ds.BalanceSheet)
}

func TestParseUploadXLSX(t *testing.T) {
	header, rows := uploadTable()
	ds, err := parseUpload(encodeXLSX(t, header, rows), "report.xlsx")
	require.NoError(t, err)

	require.Len(t, ds.Revenue, 2)
	assert.Equal(t, 630.0, ds.MostRecentRevenue().Consolidated)
	assert.Equal(t, 108.0, ds.MostRecentExpenses().Total)
}

func TestParseUploadSuffixSelectsDecoder(t *testing.T) {
	header, rows := uploadTable()

	// uppercase suffix still decodes as csv
	_, err := parseUpload(encodeCSV(t, header, rows), "REPORT.CSV")
	require.NoError(t, err)

	// any non-csv suffix goes through the spreadsheet decoder
	_, err = parseUpload(encodeXLSX(t, header, rows), "report.xls")
	require.NoError(t, err)
	_, err = parseUpload(encodeCSV(t, header, rows), "report.txt")
	require.Error(t, err, "csv bytes are not a valid spreadsheet")
}

func TestParseUploadLegacyTotalAlias(t *testing.T) {
	header, rows := uploadTable()
	header[12] = "Total"
	aliased, err := parseUpload(encodeCSV(t, header, rows), "legacy.csv")
	require.NoError(t, err)

	header[12] = "Total Expenses"
	canonical, err := parseUpload(encodeCSV(t, header, rows), "canonical.csv")
	require.NoError(t, err)

	assert.Equal(t, canonical, aliased)
}

func TestParseUploadMissingColumns(t *testing.T) {
	header, rows := uploadTable()
	// drop COGS and Interest
	trim := func(cells []string) []string {
		out := make([]string, 0, len(cells))
		for i, cell := range cells {
			if i == 5 || i == 11 {
				continue
			}
			out = append(out, cell)
		}
		return out
	}
	trimmedRows := make([][]string, len(rows))
	for i, row := range rows {
		trimmedRows[i] = trim(row)
	}

	_, err := parseUpload(encodeCSV(t, trim(header), trimmedRows), "partial.csv")
	require.Error(t, err)

	var missing MissingColumnsError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"COGS", "Interest"}, missing.Columns)
	assert.Contains(t, err.Error(), "missing columns in uploaded file: COGS, Interest")
}

func TestParseUploadNonNumericCell(t *testing.T) {
	header, rows := uploadTable()
	rows[1][4] = "n/a"
	_, err := parseUpload(encodeCSV(t, header, rows), "garbage.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Consolidated")
}

func TestParseUploadThousandsSeparators(t *testing.T) {
	header, rows := uploadTable()
	rows[1][4] = "1,630"
	ds, err := parseUpload(encodeCSV(t, header, rows), "separated.csv")
	require.NoError(t, err)
	assert.Equal(t, 1630.0, ds.MostRecentRevenue().Consolidated)
}

func TestParseUploadNoDataRows(t *testing.T) {
	header, _ := uploadTable()
	_, err := parseUpload(encodeCSV(t, header, nil), "empty.csv")
	require.ErrorIs(t, err, errNoDataRows)
}
