package engine

import "time"

// ============================================================================
// ENGINE OPTIONS — Functional options for the aggregate functions
// ============================================================================

// Option configures engine behavior via functional options pattern.
type Option func(*config)

type config struct {
	CurrentYear int              // 0 = take the year from Now
	Now         func() time.Time // clock used when CurrentYear is unset
}

// WithCurrentYear fixes the year living members' lifespans run up to.
// Values <= 0 are ignored.
func WithCurrentYear(year int) Option {
	return func(c *config) {
		if year > 0 {
			c.CurrentYear = year
		}
	}
}

// WithClock replaces the wall clock consulted when no year is fixed.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.Now = now
		}
	}
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{
		Now: time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// year resolves the effective current year.
func (c *config) year() int {
	if c.CurrentYear > 0 {
		return c.CurrentYear
	}
	return c.Now().Year()
}

// CurrentYear returns the year the given options resolve to. Callers use it
// to label reports with the year the figures were computed for.
func CurrentYear(opts ...Option) int {
	return applyOptions(opts).year()
}
