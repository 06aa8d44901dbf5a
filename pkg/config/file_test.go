package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestFileDefaults(t *testing.T) {
	f, err := NewFile(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("NewFile() error = %v", err)
	}
	if got := f.EquityTradeFraction(); got != 0.20 {
		t.Errorf("EquityTradeFraction() = %v, want 0.20", got)
	}
	if got := f.DefaultTermMonths(); got != 12 {
		t.Errorf("DefaultTermMonths() = %v, want 12", got)
	}
	if got := f.Listen(); got != DefaultListen {
		t.Errorf("Listen() = %v, want %v", got, DefaultListen)
	}
	if got := f.CurrencySymbol(); got != "$" {
		t.Errorf("CurrencySymbol() = %v, want $", got)
	}
}

func TestFileLoad(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		wantErr  bool
		fraction float64
		term     int
		listen   string
	}{
		{
			name:     "empty json",
			file:     "c.json",
			content:  "  \n",
			fraction: 0.20,
			term:     12,
			listen:   DefaultListen,
		},
		{
			name:     "json",
			file:     "c.json",
			content:  `{"equityTradeFraction": 0.25, "defaultTermMonths": 18, "listen": "tcp://127.0.0.1:8080"}`,
			fraction: 0.25,
			term:     18,
			listen:   "tcp://127.0.0.1:8080",
		},
		{
			name:     "yaml",
			file:     "c.yaml",
			content:  "equityTradeFraction: 0.1\ndefaultTermMonths: 6\n",
			fraction: 0.1,
			term:     6,
			listen:   DefaultListen,
		},
		{
			name:    "yaml with unknown key",
			file:    "c.yml",
			content: "equityFraction: 0.1\n",
			wantErr: true,
		},
		{
			name:    "zero fraction",
			file:    "c.json",
			content: `{"equityTradeFraction": 0}`,
			wantErr: true,
		},
		{
			name:    "yaml NaN fraction",
			file:    "c.yaml",
			content: "equityTradeFraction: .nan\n",
			wantErr: true,
		},
		{
			name:    "yaml infinite grant limit",
			file:    "c.yaml",
			content: "defaultGrantLimit: .inf\n",
			wantErr: true,
		},
		{
			name:    "broken json",
			file:    "c.json",
			content: `{"equityTradeFraction": `,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(p, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			f, err := NewFile(p)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewFile() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := f.EquityTradeFraction(); got != tt.fraction {
				t.Errorf("EquityTradeFraction() = %v, want %v", got, tt.fraction)
			}
			if got := f.DefaultTermMonths(); got != tt.term {
				t.Errorf("DefaultTermMonths() = %v, want %v", got, tt.term)
			}
			if got := f.Listen(); got != tt.listen {
				t.Errorf("Listen() = %v, want %v", got, tt.listen)
			}
		})
	}
}

func TestFileSaveRoundTrip(t *testing.T) {
	for _, name := range []string{"notecalc.json", "notecalc.yaml"} {
		t.Run(name, func(t *testing.T) {
			p := filepath.Join(t.TempDir(), name)
			f := NewFileFromConfig(nil, p)
			f.SetEquityTradeFraction(0.3)
			f.SetDefaultTermMonths(24)
			f.SetDefaultGrantLimit(150000)
			f.SetCurrencySymbol("€")
			if err := f.Save(); err != nil {
				t.Fatalf("Save() error = %v", err)
			}

			loaded, err := NewFile(p)
			if err != nil {
				t.Fatalf("NewFile() error = %v", err)
			}
			if got := loaded.EquityTradeFraction(); got != 0.3 {
				t.Errorf("EquityTradeFraction() = %v, want 0.3", got)
			}
			if got := loaded.DefaultTermMonths(); got != 24 {
				t.Errorf("DefaultTermMonths() = %v, want 24", got)
			}
			if got := loaded.DefaultGrantLimit(); got != 150000 {
				t.Errorf("DefaultGrantLimit() = %v, want 150000", got)
			}
			if got := loaded.CurrencySymbol(); got != "€" {
				t.Errorf("CurrencySymbol() = %v, want €", got)
			}
			if got := loaded.AllowNonRootAccess(); got {
				t.Errorf("AllowNonRootAccess() = %v, want false", got)
			}
		})
	}
}

func TestSettersPanicOnInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		set  func(f *File)
	}{
		{"zero fraction", func(f *File) { f.SetEquityTradeFraction(0) }},
		{"NaN fraction", func(f *File) { f.SetEquityTradeFraction(math.NaN()) }},
		{"infinite fraction", func(f *File) { f.SetEquityTradeFraction(math.Inf(1)) }},
		{"negative grant limit", func(f *File) { f.SetDefaultGrantLimit(-1) }},
		{"NaN grant limit", func(f *File) { f.SetDefaultGrantLimit(math.NaN()) }},
		{"infinite grant limit", func(f *File) { f.SetDefaultGrantLimit(math.Inf(1)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("setter did not panic")
				}
			}()
			tt.set(NewFileFromConfig(nil, ""))
		})
	}
}
