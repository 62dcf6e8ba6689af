package main

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatAmount renders a money figure with thousands separators and no
// decimal places, e.g. 985295 -> "985,295".
func FormatAmount(amount float64) string {
	return printer.Sprintf("%.0f", amount)
}

// FormatAverage keeps one decimal place so fractional means survive display.
func FormatAverage(amount float64) string {
	return printer.Sprintf("%.1f", amount)
}

// FormatPct renders a percentage-point figure with one decimal place.
func FormatPct(amount float64) string {
	return printer.Sprintf("%.1f", amount)
}

func VarianceColorCSS(amt float64) string {
	if amt > 0 {
		return "text-success"
	}
	if amt < 0 {
		return "text-danger"
	}
	return ""
}
