package valuation

// DefaultEquityTradeFraction is the fraction of equity traded in the next
// round when nothing else is configured.
const DefaultEquityTradeFraction = 0.20

// Inputs describes a convertible-note raise and the next funding round.
type Inputs struct {
	// RaiseAmount is the capital raised via the convertible note.
	RaiseAmount float64 `json:"raiseAmount"`
	// GrantLimit is the upper bound of the matching government grant.
	GrantLimit float64 `json:"grantLimit"`
	// InterestRate is the annual note interest as a fraction, e.g. 0.08.
	InterestRate float64 `json:"interestRate"`
	// TermMonths is the number of months until the next funding round.
	TermMonths int `json:"termMonths"`
	// NextRoundCapital is the capital target of the next round.
	NextRoundCapital float64 `json:"nextRoundCapital"`
	// EquityTradeFraction is the fraction of equity traded in the next round.
	EquityTradeFraction float64 `json:"equityTradeFraction"`
}

// Result holds the quantities derived from Inputs.
type Result struct {
	GovContribution          float64 `json:"govContribution"`
	TotalCapital             float64 `json:"totalCapital"`
	ConvertibleNoteValue     float64 `json:"convertibleNoteValue"`
	PreMoneyValuation        float64 `json:"preMoneyValuation"`
	PostMoneyValuation       float64 `json:"postMoneyValuation"`
	EquityOwnershipInvestors float64 `json:"equityOwnershipInvestors"`
}
