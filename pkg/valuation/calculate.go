package valuation

import "math"

// Calculate derives the funding figures from in. It does not validate in:
// callers run Validate first. Divisions by zero are not guarded and yield
// ±Inf or NaN, which Result.Degenerate reports.
func Calculate(in Inputs) Result {
	govContribution := math.Min(in.RaiseAmount, in.GrantLimit)
	totalCapital := in.RaiseAmount + govContribution
	// The explicit float64 conversion keeps the compiler from fusing the
	// multiply-add, so results match plain IEEE-754 double arithmetic.
	accrued := float64(in.InterestRate * (float64(in.TermMonths) / 12))
	convertibleNoteValue := in.RaiseAmount * (1 + accrued)
	preMoneyValuation := in.NextRoundCapital / in.EquityTradeFraction
	postMoneyValuation := preMoneyValuation + in.NextRoundCapital
	equityOwnershipInvestors := convertibleNoteValue / postMoneyValuation

	return Result{
		GovContribution:          govContribution,
		TotalCapital:             totalCapital,
		ConvertibleNoteValue:     convertibleNoteValue,
		PreMoneyValuation:        preMoneyValuation,
		PostMoneyValuation:       postMoneyValuation,
		EquityOwnershipInvestors: equityOwnershipInvestors,
	}
}

// NonFiniteFields returns the json names of the fields holding ±Inf or NaN.
func (r Result) NonFiniteFields() []string {
	var fields []string
	for _, f := range r.fields() {
		if math.IsInf(f.value, 0) || math.IsNaN(f.value) {
			fields = append(fields, f.name)
		}
	}
	return fields
}

// Degenerate reports whether any field of r is not a finite number.
func (r Result) Degenerate() bool {
	return len(r.NonFiniteFields()) > 0
}

type namedValue struct {
	name  string
	value float64
}

func (r Result) fields() []namedValue {
	return []namedValue{
		{"govContribution", r.GovContribution},
		{"totalCapital", r.TotalCapital},
		{"convertibleNoteValue", r.ConvertibleNoteValue},
		{"preMoneyValuation", r.PreMoneyValuation},
		{"postMoneyValuation", r.PostMoneyValuation},
		{"equityOwnershipInvestors", r.EquityOwnershipInvestors},
	}
}
