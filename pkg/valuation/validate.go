package valuation

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidInput is matched by every error returned from Validate.
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes one rejected input field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e FieldError) String() string {
	return e.Field + " " + e.Reason
}

// InvalidInputError lists all fields of Inputs that failed validation.
type InvalidInputError struct {
	Fields []FieldError `json:"fields"`
}

func (e *InvalidInputError) Error() string {
	s := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		s = append(s, f.String())
	}
	return fmt.Sprintf("%s: %s", ErrInvalidInput, strings.Join(s, "; "))
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Validate checks in against the domain constraints. Calculate itself never
// validates, so this is the input layer's job.
func Validate(in Inputs) error {
	var fields []FieldError

	checkAmount := func(name string, v float64) {
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			fields = append(fields, FieldError{name, "must be a finite number"})
		case v < 0:
			fields = append(fields, FieldError{name, fmt.Sprintf("must not be negative, got %g", v)})
		}
	}

	checkAmount("raiseAmount", in.RaiseAmount)
	checkAmount("grantLimit", in.GrantLimit)
	checkAmount("interestRate", in.InterestRate)
	checkAmount("nextRoundCapital", in.NextRoundCapital)

	if in.TermMonths < 1 {
		fields = append(fields, FieldError{"termMonths", fmt.Sprintf("must be at least 1, got %d", in.TermMonths)})
	}

	switch f := in.EquityTradeFraction; {
	case math.IsNaN(f) || math.IsInf(f, 0):
		fields = append(fields, FieldError{"equityTradeFraction", "must be a finite number"})
	case f <= 0:
		fields = append(fields, FieldError{"equityTradeFraction", fmt.Sprintf("must be greater than 0, got %g", f)})
	}

	if len(fields) > 0 {
		return &InvalidInputError{Fields: fields}
	}
	return nil
}
