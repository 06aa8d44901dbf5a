package types

import (
	"math"

	"github.com/notecalc/notecalc/pkg/valuation"
)

func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

// NewDisplayResult copies r, replacing ±Inf and NaN with nil.
func NewDisplayResult(r valuation.Result) DisplayResult {
	return DisplayResult{
		GovContribution:          finite(r.GovContribution),
		TotalCapital:             finite(r.TotalCapital),
		ConvertibleNoteValue:     finite(r.ConvertibleNoteValue),
		PreMoneyValuation:        finite(r.PreMoneyValuation),
		PostMoneyValuation:       finite(r.PostMoneyValuation),
		EquityOwnershipInvestors: finite(r.EquityOwnershipInvestors),
	}
}

// NewCalculateResponse packs a calculation for the wire.
func NewCalculateResponse(in valuation.Inputs, res valuation.Result, f valuation.Formatter) CalculateResponse {
	return CalculateResponse{
		Inputs:     in,
		Result:     NewDisplayResult(res),
		Degenerate: res.Degenerate(),
		NonFinite:  res.NonFiniteFields(),
		Display:    f.Report(in, res),
	}
}

// Defaults supplies values for fields a CalculateRequest leaves out.
type Defaults interface {
	DefaultGrantLimit() float64
	DefaultTermMonths() int
	EquityTradeFraction() float64
}

// Inputs resolves req against d.
func (req CalculateRequest) Inputs(d Defaults) valuation.Inputs {
	in := valuation.Inputs{
		RaiseAmount:         req.RaiseAmount,
		GrantLimit:          d.DefaultGrantLimit(),
		InterestRate:        req.InterestRate,
		TermMonths:          d.DefaultTermMonths(),
		NextRoundCapital:    req.NextRoundCapital,
		EquityTradeFraction: d.EquityTradeFraction(),
	}
	if req.GrantLimit != nil {
		in.GrantLimit = *req.GrantLimit
	}
	if req.TermMonths != nil {
		in.TermMonths = *req.TermMonths
	}
	if req.EquityTradeFraction != nil {
		in.EquityTradeFraction = *req.EquityTradeFraction
	}
	return in
}
