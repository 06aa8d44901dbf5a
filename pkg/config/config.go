package config

type Config interface {
	EquityTradeFraction() float64
	DefaultTermMonths() int
	DefaultGrantLimit() float64
	Listen() string
	AllowNonRootAccess() bool
	CurrencySymbol() string

	SetEquityTradeFraction(float64)
	SetDefaultTermMonths(int)
	SetDefaultGrantLimit(float64)
	SetListen(string)
	SetAllowNonRootAccess(bool)
	SetCurrencySymbol(string)

	// Load reads the configuration from the source.
	Load() error
	// Save saves the configuration to the source.
	Save() error
}
