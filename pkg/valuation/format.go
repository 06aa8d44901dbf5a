package valuation

import (
	"fmt"
	"math"
)

// Formatter renders calculation figures for display.
type Formatter struct {
	// CurrencySymbol prefixes every currency amount.
	CurrencySymbol string
}

// DefaultFormatter renders amounts in dollars.
var DefaultFormatter = Formatter{CurrencySymbol: "$"}

// Currency formats v with two decimals, e.g. "$108000.00".
func (f Formatter) Currency(v float64) string {
	if s, ok := nonFinite(v); ok {
		return s
	}
	return fmt.Sprintf("%s%.2f", f.CurrencySymbol, v)
}

// Percent formats the ratio v as a percentage with two decimals, e.g. 0.036
// becomes "3.60%".
func (f Formatter) Percent(v float64) string {
	if s, ok := nonFinite(v); ok {
		return s
	}
	return fmt.Sprintf("%.2f%%", v*100)
}

func nonFinite(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "N/A", true
	case math.IsInf(v, 1):
		return "∞", true
	case math.IsInf(v, -1):
		return "-∞", true
	}
	return "", false
}

// Line is one labelled row of a report.
type Line struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Report returns the result rows in display order.
func (f Formatter) Report(in Inputs, res Result) []Line {
	return []Line{
		{"Initial capital raised from investors, e.g. convertible note", f.Currency(in.RaiseAmount)},
		{"Government's contribution (e.g., Tillväxtverket)", f.Currency(res.GovContribution)},
		{"Total capital for the startup", f.Currency(res.TotalCapital)},
		{"Pre-money valuation for the next round", f.Currency(res.PreMoneyValuation)},
		{"Post-money valuation after next round", f.Currency(res.PostMoneyValuation)},
		{"Value of the convertible note after interest", f.Currency(res.ConvertibleNoteValue)},
		{"Equity ownership for investors after conversion", f.Percent(res.EquityOwnershipInvestors)},
		{"Amount to be raised in the next funding round", f.Currency(in.NextRoundCapital)},
	}
}
