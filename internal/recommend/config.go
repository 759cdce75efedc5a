// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"fmt"
)

// Config contains the operational limits of the recommendation engine.
type Config struct {
	// MaxSeeds caps the number of seed titles per request. Zero disables the cap.
	// Default: 5.
	MaxSeeds int `json:"max_seeds"`

	// MaxN caps the number of results per request. Zero disables the cap.
	// Default: 20.
	MaxN int `json:"max_n"`

	// ConcurrentSeeds computes per-seed rankings in parallel, one store
	// session per seed. Output is identical to the sequential path.
	// Default: true.
	ConcurrentSeeds bool `json:"concurrent_seeds"`

	// MaxConcurrency bounds the number of seeds computed at once when
	// ConcurrentSeeds is enabled.
	// Default: 4.
	MaxConcurrency int `json:"max_concurrency"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		MaxSeeds:        5,
		MaxN:            20,
		ConcurrentSeeds: true,
		MaxConcurrency:  4,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.MaxSeeds < 0 {
		return fmt.Errorf("max_seeds must be non-negative, got %d", c.MaxSeeds)
	}
	if c.MaxN < 0 {
		return fmt.Errorf("max_n must be non-negative, got %d", c.MaxN)
	}
	if c.ConcurrentSeeds && c.MaxConcurrency < 1 {
		return fmt.Errorf("max_concurrency must be positive when concurrent_seeds is enabled, got %d", c.MaxConcurrency)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
