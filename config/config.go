// Package config holds the ldash settings: a YAML file merged over defaults,
// then overridden by LEDGERDASH_* environment variables (optionally read from
// .env files).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/etnz/ledgerdash"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "LEDGERDASH_"

// Settings configures the ldash commands.
type Settings struct {
	LedgerFile     string              `yaml:"ledger_file"`
	CurrencySymbol string              `yaml:"currency_symbol"`
	Prefixes       ledgerdash.Prefixes `yaml:"prefixes"`
	DashboardTitle string              `yaml:"dashboard_title"`
	TrendMonths    int                 `yaml:"trend_months"`
	DustThreshold  float64             `yaml:"dust_threshold"`
	ReloadSchedule string              `yaml:"reload_schedule"` // cron spec of the ledger reload in serve
	Listen         string              `yaml:"listen"`
	LogLevel       string              `yaml:"log_level"`
	Model          string              `yaml:"model"` // generative model used by assist
}

// Default returns the default settings.
func Default() Settings {
	return Settings{
		LedgerFile:     "transactions.jsonl",
		CurrencySymbol: "$",
		Prefixes:       ledgerdash.DefaultPrefixes(),
		DashboardTitle: "Ledger Dashboard",
		TrendMonths:    12,
		DustThreshold:  0.01,
		ReloadSchedule: "@every 1m",
		Listen:         ":8080",
		LogLevel:       "info",
		Model:          "gemini-2.5-flash",
	}
}

// Load returns the defaults, overridden by the YAML file at path and then by
// the environment. A missing file is not an error, the defaults are used.
//
// envFiles are loaded with godotenv before the environment is read; missing
// ones are ignored. Variables already set in the environment win.
func Load(path string, envFiles ...string) (Settings, error) {
	s := Default()
	if path != "" {
		if err := s.loadFile(path); err != nil {
			return s, err
		}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return s, fmt.Errorf("could not load env file %q: %w", f, err)
		}
	}
	if err := s.ApplyEnv(os.LookupEnv); err != nil {
		return s, err
	}
	return s, s.Validate()
}

func (s *Settings) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not read config file %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return fmt.Errorf("could not decode config file %q: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides settings with the LEDGERDASH_* variables found by lookup.
func (s *Settings) ApplyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"LEDGER_FILE":      &s.LedgerFile,
		"CURRENCY_SYMBOL":  &s.CurrencySymbol,
		"ASSET_PREFIX":     &s.Prefixes.Asset,
		"LIABILITY_PREFIX": &s.Prefixes.Liability,
		"INCOME_PREFIX":    &s.Prefixes.Income,
		"EXPENSE_PREFIX":   &s.Prefixes.Expense,
		"DASHBOARD_TITLE":  &s.DashboardTitle,
		"RELOAD_SCHEDULE":  &s.ReloadSchedule,
		"LISTEN":           &s.Listen,
		"LOG_LEVEL":        &s.LogLevel,
		"MODEL":            &s.Model,
	}
	for name, field := range strs {
		if v, ok := lookup(EnvPrefix + name); ok {
			*field = v
		}
	}

	var errs []error
	if v, ok := lookup(EnvPrefix + "TREND_MONTHS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sTREND_MONTHS: %w", EnvPrefix, err))
		}
		s.TrendMonths = n
	}
	if v, ok := lookup(EnvPrefix + "DUST_THRESHOLD"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sDUST_THRESHOLD: %w", EnvPrefix, err))
		}
		s.DustThreshold = f
	}
	return errors.Join(errs...)
}

// Validate checks that the settings are usable.
func (s Settings) Validate() error {
	var errs []error
	if s.Prefixes.Asset == "" || s.Prefixes.Liability == "" || s.Prefixes.Income == "" || s.Prefixes.Expense == "" {
		errs = append(errs, errors.New("every account prefix must be set"))
	}
	if s.TrendMonths <= 0 || s.TrendMonths > ledgerdash.MaxTrendMonths {
		errs = append(errs, fmt.Errorf("trend_months must be from 1 to %d, got %d", ledgerdash.MaxTrendMonths, s.TrendMonths))
	}
	if s.DustThreshold < 0 {
		errs = append(errs, fmt.Errorf("dust_threshold must not be negative, got %v", s.DustThreshold))
	}
	if _, err := cron.ParseStandard(s.ReloadSchedule); err != nil {
		errs = append(errs, fmt.Errorf("invalid reload_schedule %q: %w", s.ReloadSchedule, err))
	}
	return errors.Join(errs...)
}

// Options returns the snapshot options of these settings.
func (s Settings) Options() ledgerdash.Options {
	return ledgerdash.Options{
		Prefixes:      s.Prefixes,
		DustThreshold: decimal.NewFromFloat(s.DustThreshold),
	}
}
