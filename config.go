package main

import (
	"fmt"
	"os"
)

// Engine defaults, used when the corresponding config field is zero.
// Exploration has no default: zero is a meaningful value (always greedy).
const (
	defaultTemperature  = 0.65
	defaultRiskAversion = 1.35
	defaultTopK         = 6
)

// EngineConfig configures a decision engine.
// Zero values produce defaults (except Exploration); invalid values are
// rejected by NewEngine, never clamped (clamping would silently change
// selection behavior).
type EngineConfig struct {
	Temperature  float64 // softmax sharpness, >0; lower = more greedy. zero → 0.65
	Exploration  float64 // probability of a probabilistic pick, [0,1). zero = greedy
	RiskAversion float64 // weight on risk in utility, >0. zero → 1.35
	TopK         int     // ranked candidates kept for reporting. zero → 6
	Seed         *int64  // nil → time-seeded; set for reproducible runs
}

// Config holds application-level configuration.
type Config struct {
	CatalogDir string // empty means the built-in catalog
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		CatalogDir: os.Getenv("QUANTUMDICE_CATALOG_DIR"),
	}
}

// TestConfig returns a configuration for testing.
func TestConfig(testDir string) *Config {
	return &Config{
		CatalogDir: testDir,
	}
}

// validate fills zero-value fields with defaults and rejects out-of-range
// values. Returns the normalized config.
func (c EngineConfig) validate() (EngineConfig, error) {
	if c.Temperature == 0 {
		c.Temperature = defaultTemperature
	}
	if c.RiskAversion == 0 {
		c.RiskAversion = defaultRiskAversion
	}
	if c.TopK == 0 {
		c.TopK = defaultTopK
	}

	if c.Temperature < 0 {
		return c, fmt.Errorf("%w: temperature %g must be positive", ErrInvalidConfig, c.Temperature)
	}
	if c.Exploration < 0 || c.Exploration >= 1 {
		return c, fmt.Errorf("%w: exploration %g outside [0,1)", ErrInvalidConfig, c.Exploration)
	}
	if c.RiskAversion < 0 {
		return c, fmt.Errorf("%w: risk aversion %g must be positive", ErrInvalidConfig, c.RiskAversion)
	}
	if c.TopK < 0 {
		return c, fmt.Errorf("%w: top-k %d must be positive", ErrInvalidConfig, c.TopK)
	}

	return c, nil
}
