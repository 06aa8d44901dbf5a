package valuation

import (
	"math"
	"strings"
	"testing"
)

func TestFormatter(t *testing.T) {
	f := DefaultFormatter
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"currency", f.Currency(108000), "$108000.00"},
		{"currency rounding", f.Currency(1234.565), "$1234.57"},
		{"currency NaN", f.Currency(math.NaN()), "N/A"},
		{"currency +Inf", f.Currency(math.Inf(1)), "∞"},
		{"currency -Inf", f.Currency(math.Inf(-1)), "-∞"},
		{"percent", f.Percent(0.036), "3.60%"},
		{"percent third", f.Percent(200000.0 / 6000000.0), "3.33%"},
		{"percent NaN", f.Percent(math.NaN()), "N/A"},
		{"custom symbol", Formatter{CurrencySymbol: "SEK "}.Currency(5), "SEK 5.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestReport(t *testing.T) {
	in := validInputs()
	lines := DefaultFormatter.Report(in, Calculate(in))
	want := []string{
		"$100000.00",
		"$50000.00",
		"$150000.00",
		"$2500000.00",
		"$3000000.00",
		"$108000.00",
		"3.60%",
		"$500000.00",
	}
	if len(lines) != len(want) {
		t.Fatalf("Report() returned %d lines, want %d", len(lines), len(want))
	}
	for i, l := range lines {
		if l.Value != want[i] {
			t.Errorf("line %d (%s) = %q, want %q", i, l.Label, l.Value, want[i])
		}
	}
}

func TestExplanationHTML(t *testing.T) {
	if !strings.Contains(Explanation(), "Pre-money valuation") {
		t.Fatalf("Explanation() is missing the pre-money section")
	}
	html, err := ExplanationHTML()
	if err != nil {
		t.Fatalf("ExplanationHTML() error = %v", err)
	}
	if !strings.Contains(html, "<h1>Startup Fundraising Financial Model</h1>") {
		t.Errorf("ExplanationHTML() = %q, want a rendered heading", html)
	}
}
