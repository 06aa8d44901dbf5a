package types

import "github.com/notecalc/notecalc/pkg/valuation"

// CalculateRequest is the body of POST /calculate. Omitted grantLimit,
// termMonths and equityTradeFraction fall back to the daemon config.
type CalculateRequest struct {
	RaiseAmount         float64  `json:"raiseAmount"`
	GrantLimit          *float64 `json:"grantLimit,omitempty"`
	InterestRate        float64  `json:"interestRate"`
	TermMonths          *int     `json:"termMonths,omitempty"`
	NextRoundCapital    float64  `json:"nextRoundCapital"`
	EquityTradeFraction *float64 `json:"equityTradeFraction,omitempty"`
}

// CalculateResponse is returned by POST /calculate.
type CalculateResponse struct {
	Inputs valuation.Inputs `json:"inputs"`
	// Result is encoded through DisplayResult because encoding/json
	// rejects ±Inf and NaN.
	Result     DisplayResult    `json:"result"`
	Degenerate bool             `json:"degenerate"`
	NonFinite  []string         `json:"nonFinite,omitempty"`
	Display    []valuation.Line `json:"display"`
}

// DisplayResult mirrors valuation.Result with non-finite values set to nil.
type DisplayResult struct {
	GovContribution          *float64 `json:"govContribution"`
	TotalCapital             *float64 `json:"totalCapital"`
	ConvertibleNoteValue     *float64 `json:"convertibleNoteValue"`
	PreMoneyValuation        *float64 `json:"preMoneyValuation"`
	PostMoneyValuation       *float64 `json:"postMoneyValuation"`
	EquityOwnershipInvestors *float64 `json:"equityOwnershipInvestors"`
}

// ErrorResponse is returned with 4xx/5xx statuses.
type ErrorResponse struct {
	Error  string                 `json:"error"`
	Fields []valuation.FieldError `json:"fields,omitempty"`
}
