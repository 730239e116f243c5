// SPDX-License-Identifier: MIT
// Package: joltage
//
// options.go - functional options for the joltage Solver.
//
// Option constructors panic on meaningless values; the solver itself
// never panics.

package joltage

const (
	// DefaultCacheSize is the per-solver memo capacity.
	DefaultCacheSize = 4096

	// DefaultMaxRounds covers the bit length of any non-negative int.
	DefaultMaxRounds = 64
)

// Option customizes a Solver.
type Option func(*solverConfig)

type solverConfig struct {
	cacheSize int
	maxRounds int
}

// WithCacheSize sets the memo capacity (entries). Panics if n <= 0.
func WithCacheSize(n int) Option {
	if n <= 0 {
		panic("joltage: WithCacheSize(n<=0)")
	}
	return func(c *solverConfig) {
		c.cacheSize = n
	}
}

// WithMaxRounds bounds the number of halving rounds per query.
// Panics if n <= 0.
func WithMaxRounds(n int) Option {
	if n <= 0 {
		panic("joltage: WithMaxRounds(n<=0)")
	}
	return func(c *solverConfig) {
		c.maxRounds = n
	}
}

func newSolverConfig(opts ...Option) solverConfig {
	cfg := solverConfig{
		cacheSize: DefaultCacheSize,
		maxRounds: DefaultMaxRounds,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
