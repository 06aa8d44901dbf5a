package valuation

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func validInputs() Inputs {
	return Inputs{
		RaiseAmount:         100000,
		GrantLimit:          50000,
		InterestRate:        0.08,
		TermMonths:          12,
		NextRoundCapital:    500000,
		EquityTradeFraction: DefaultEquityTradeFraction,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		modify     func(in *Inputs)
		wantFields []string
	}{
		{
			name:   "valid",
			modify: func(_ *Inputs) {},
		},
		{
			name:   "all zero amounts are allowed",
			modify: func(in *Inputs) { *in = Inputs{TermMonths: 1, EquityTradeFraction: 1} },
		},
		{
			name:       "negative raise",
			modify:     func(in *Inputs) { in.RaiseAmount = -1 },
			wantFields: []string{"raiseAmount"},
		},
		{
			name:       "negative grant limit and rate",
			modify:     func(in *Inputs) { in.GrantLimit = -5; in.InterestRate = -0.01 },
			wantFields: []string{"grantLimit", "interestRate"},
		},
		{
			name:       "zero term",
			modify:     func(in *Inputs) { in.TermMonths = 0 },
			wantFields: []string{"termMonths"},
		},
		{
			name:       "zero equity fraction",
			modify:     func(in *Inputs) { in.EquityTradeFraction = 0 },
			wantFields: []string{"equityTradeFraction"},
		},
		{
			name:       "non-finite values",
			modify:     func(in *Inputs) { in.NextRoundCapital = math.Inf(1); in.EquityTradeFraction = math.NaN() },
			wantFields: []string{"nextRoundCapital", "equityTradeFraction"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInputs()
			tt.modify(&in)
			err := Validate(in)
			if tt.wantFields == nil {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("Validate() error = %v, want ErrInvalidInput", err)
			}
			var invalid *InvalidInputError
			if !errors.As(err, &invalid) {
				t.Fatalf("Validate() error is %T, want *InvalidInputError", err)
			}
			var got []string
			for _, f := range invalid.Fields {
				got = append(got, f.Field)
			}
			if !reflect.DeepEqual(got, tt.wantFields) {
				t.Errorf("Validate() fields = %v, want %v", got, tt.wantFields)
			}
		})
	}
}

func TestInvalidInputErrorMessage(t *testing.T) {
	err := Validate(Inputs{RaiseAmount: -2, EquityTradeFraction: 0.2, TermMonths: 1})
	want := "invalid input: raiseAmount must not be negative, got -2"
	if err == nil || err.Error() != want {
		t.Errorf("Validate() error = %v, want %q", err, want)
	}
}
