package types

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/notecalc/notecalc/pkg/utils/ptr"
	"github.com/notecalc/notecalc/pkg/valuation"
)

type fixedDefaults struct{}

func (fixedDefaults) DefaultGrantLimit() float64   { return 10 }
func (fixedDefaults) DefaultTermMonths() int       { return 6 }
func (fixedDefaults) EquityTradeFraction() float64 { return 0.5 }

func TestCalculateRequestInputs(t *testing.T) {
	tests := []struct {
		name string
		req  CalculateRequest
		want valuation.Inputs
	}{
		{
			name: "defaults",
			req:  CalculateRequest{RaiseAmount: 1, InterestRate: 0.1, NextRoundCapital: 2},
			want: valuation.Inputs{RaiseAmount: 1, GrantLimit: 10, InterestRate: 0.1, TermMonths: 6, NextRoundCapital: 2, EquityTradeFraction: 0.5},
		},
		{
			name: "explicit zero values win over defaults",
			req:  CalculateRequest{GrantLimit: ptr.To(0.0), TermMonths: ptr.To(0), EquityTradeFraction: ptr.To(0.0)},
			want: valuation.Inputs{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.req.Inputs(fixedDefaults{}); got != tt.want {
				t.Errorf("Inputs() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNewCalculateResponseEncodesNonFinite(t *testing.T) {
	in := valuation.Inputs{RaiseAmount: 100000, TermMonths: 12, NextRoundCapital: 500000}
	res := valuation.Calculate(in)
	if !math.IsInf(res.PreMoneyValuation, 1) {
		t.Fatalf("PreMoneyValuation = %v, want +Inf", res.PreMoneyValuation)
	}

	resp := NewCalculateResponse(in, res, valuation.DefaultFormatter)
	if !resp.Degenerate {
		t.Errorf("Degenerate = false, want true")
	}
	if resp.Result.PreMoneyValuation != nil || resp.Result.PostMoneyValuation != nil {
		t.Errorf("non-finite valuations were not nulled: %+v", resp.Result)
	}
	if resp.Result.EquityOwnershipInvestors == nil || *resp.Result.EquityOwnershipInvestors != 0 {
		t.Errorf("EquityOwnershipInvestors = %v, want 0", resp.Result.EquityOwnershipInvestors)
	}
	if _, err := json.Marshal(resp); err != nil {
		t.Errorf("json.Marshal() error = %v", err)
	}
}
