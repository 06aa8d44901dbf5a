package config

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/notecalc/notecalc/pkg/utils/ptr"
	"github.com/notecalc/notecalc/pkg/valuation"
)

// DefaultListen is the daemon address used when none is configured.
const DefaultListen = "unix:///var/run/notecalc.sock"

var (
	defaultFileConfig = &RawFileConfig{
		EquityTradeFraction: ptr.To(valuation.DefaultEquityTradeFraction),
		DefaultTermMonths:   ptr.To(12),
		DefaultGrantLimit:   ptr.To(0.0),
		Listen:              ptr.To(DefaultListen),
		AllowNonRootAccess:  ptr.To(false),
		CurrencySymbol:      ptr.To("$"),
	}
)

var _ Config = &File{}

type File struct {
	c        *RawFileConfig
	mu       *sync.RWMutex
	filepath string
}

func NewFile(configPath string) (*File, error) {
	f := &File{
		filepath: configPath,
		mu:       &sync.RWMutex{},
	}
	err := f.Load()
	if err != nil {
		return nil, err
	}

	return f, nil
}

func NewFileFromConfig(c *RawFileConfig, configPath string) *File {
	if c == nil {
		c = &RawFileConfig{}
	}

	f := &File{
		c:        c,
		mu:       &sync.RWMutex{},
		filepath: configPath,
	}

	return f
}

type RawFileConfig struct {
	EquityTradeFraction *float64 `json:"equityTradeFraction,omitempty" yaml:"equityTradeFraction,omitempty"`
	DefaultTermMonths   *int     `json:"defaultTermMonths,omitempty" yaml:"defaultTermMonths,omitempty"`
	DefaultGrantLimit   *float64 `json:"defaultGrantLimit,omitempty" yaml:"defaultGrantLimit,omitempty"`
	Listen              *string  `json:"listen,omitempty" yaml:"listen,omitempty"`
	AllowNonRootAccess  *bool    `json:"allowNonRootAccess,omitempty" yaml:"allowNonRootAccess,omitempty"`
	CurrencySymbol      *string  `json:"currencySymbol,omitempty" yaml:"currencySymbol,omitempty"`
}

func NewRawFileConfigFromConfig(c Config) (*RawFileConfig, error) {
	if c == nil {
		return nil, pkgerrors.New("config is nil")
	}

	rawConfig := &RawFileConfig{
		EquityTradeFraction: ptr.To(c.EquityTradeFraction()),
		DefaultTermMonths:   ptr.To(c.DefaultTermMonths()),
		DefaultGrantLimit:   ptr.To(c.DefaultGrantLimit()),
		Listen:              ptr.To(c.Listen()),
		AllowNonRootAccess:  ptr.To(c.AllowNonRootAccess()),
		CurrencySymbol:      ptr.To(c.CurrencySymbol()),
	}

	return rawConfig, nil
}

func (f *File) EquityTradeFraction() float64 {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c.EquityTradeFraction != nil {
		return *f.c.EquityTradeFraction
	}
	return *defaultFileConfig.EquityTradeFraction
}

func (f *File) DefaultTermMonths() int {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c.DefaultTermMonths != nil {
		return *f.c.DefaultTermMonths
	}
	return *defaultFileConfig.DefaultTermMonths
}

func (f *File) DefaultGrantLimit() float64 {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c.DefaultGrantLimit != nil {
		return *f.c.DefaultGrantLimit
	}
	return *defaultFileConfig.DefaultGrantLimit
}

func (f *File) Listen() string {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c.Listen != nil && *f.c.Listen != "" {
		return *f.c.Listen
	}
	return *defaultFileConfig.Listen
}

func (f *File) AllowNonRootAccess() bool {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c.AllowNonRootAccess != nil {
		return *f.c.AllowNonRootAccess
	}
	return *defaultFileConfig.AllowNonRootAccess
}

func (f *File) CurrencySymbol() string {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c.CurrencySymbol != nil {
		return *f.c.CurrencySymbol
	}
	return *defaultFileConfig.CurrencySymbol
}

func (f *File) SetEquityTradeFraction(v float64) {
	if f.c == nil {
		panic("config is nil")
	}

	if !isFinite(v) || v <= 0 {
		panic("equity trade fraction must be a finite number greater than 0")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.EquityTradeFraction = &v
}

func (f *File) SetDefaultTermMonths(i int) {
	if f.c == nil {
		panic("config is nil")
	}

	if i < 1 {
		panic("default term must be at least 1 month")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.DefaultTermMonths = &i
}

func (f *File) SetDefaultGrantLimit(v float64) {
	if f.c == nil {
		panic("config is nil")
	}

	if !isFinite(v) || v < 0 {
		panic("default grant limit must be a finite, non-negative number")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.DefaultGrantLimit = &v
}

func (f *File) SetListen(s string) {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.Listen = &s
}

func (f *File) SetAllowNonRootAccess(b bool) {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.AllowNonRootAccess = &b
}

func (f *File) SetCurrencySymbol(s string) {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.CurrencySymbol = &s
}

func (f *File) isYAML() bool {
	switch strings.ToLower(filepath.Ext(f.filepath)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func (f *File) Load() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, err := os.ReadFile(f.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			// If the file does not exist, return the empty config.
			// Do not make f.c a nil.
			f.c = &RawFileConfig{}
			return nil
		}
		return pkgerrors.Wrapf(err, "failed to read file %s", f.filepath)
	}

	if strings.TrimSpace(string(b)) == "" {
		f.c = &RawFileConfig{}
		return nil
	}

	conf := RawFileConfig{}
	if f.isYAML() {
		err = yaml.UnmarshalStrict(b, &conf)
	} else {
		err = json.Unmarshal(b, &conf)
	}
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to unmarshal config from file %s", f.filepath)
	}

	if err := validateRaw(&conf); err != nil {
		return pkgerrors.Wrapf(err, "invalid config in file %s", f.filepath)
	}
	f.c = &conf

	return nil
}

func validateRaw(c *RawFileConfig) error {
	if c.EquityTradeFraction != nil && (!isFinite(*c.EquityTradeFraction) || *c.EquityTradeFraction <= 0) {
		return pkgerrors.Errorf("equityTradeFraction must be a finite number greater than 0, got %g", *c.EquityTradeFraction)
	}
	if c.DefaultTermMonths != nil && *c.DefaultTermMonths < 1 {
		return pkgerrors.Errorf("defaultTermMonths must be at least 1, got %d", *c.DefaultTermMonths)
	}
	if c.DefaultGrantLimit != nil && (!isFinite(*c.DefaultGrantLimit) || *c.DefaultGrantLimit < 0) {
		return pkgerrors.Errorf("defaultGrantLimit must be a finite, non-negative number, got %g", *c.DefaultGrantLimit)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (f *File) Save() error {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c == nil {
		return pkgerrors.New("config is nil")
	}

	var (
		b   []byte
		err error
	)
	if f.isYAML() {
		b, err = yaml.Marshal(f.c)
	} else {
		b, err = json.MarshalIndent(f.c, "", "  ")
		b = append(b, '\n')
	}
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to encode config to file %s", f.filepath)
	}

	if err := os.WriteFile(f.filepath, b, 0644); err != nil {
		return pkgerrors.Wrapf(err, "failed to write file %s", f.filepath)
	}

	return nil
}

func (f *File) LogrusFields() logrus.Fields {
	if f.c == nil {
		panic("config is nil")
	}

	return logrus.Fields{
		"equityTradeFraction": f.EquityTradeFraction(),
		"defaultTermMonths":   f.DefaultTermMonths(),
		"defaultGrantLimit":   f.DefaultGrantLimit(),
		"listen":              f.Listen(),
		"allowNonRootAccess":  f.AllowNonRootAccess(),
		"currencySymbol":      f.CurrencySymbol(),
	}
}
