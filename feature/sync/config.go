package sync

import (
	"time"

	"products-api/feature/sync/provider"
)

// Config holds configuration for the product synchronization feature.
type Config struct {
	// Enabled toggles the sync feature (endpoints and scheduler).
	Enabled bool `mapstructure:"enabled" default:"true"`
	// IntervalMinutes is the periodic scheduler interval.
	IntervalMinutes int `mapstructure:"interval_minutes" default:"30"`
	// RunTimeoutMinutes bounds a single sync run. A provider that hangs
	// mid-run would otherwise hold the at-most-one-run gate forever.
	RunTimeoutMinutes int `mapstructure:"run_timeout_minutes" default:"10"`
	// Provider holds the external provider settings.
	Provider provider.Config `mapstructure:"provider"`
}

// Interval returns the scheduler interval as a duration.
func (c Config) Interval() time.Duration {
	if c.IntervalMinutes <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(c.IntervalMinutes) * time.Minute
}

// RunTimeout returns the per-run timeout as a duration.
func (c Config) RunTimeout() time.Duration {
	if c.RunTimeoutMinutes <= 0 {
		return 10 * time.Minute
	}
	return time.Duration(c.RunTimeoutMinutes) * time.Minute
}
