package solve

import (
	"runtime"

	"github.com/firstChairCoder/advent-of-code-2025/joltage"
	"github.com/firstChairCoder/advent-of-code-2025/metrics"
)

// Option customizes a run.
type Option func(*runConfig)

type runConfig struct {
	workers   int
	cacheSize int
	maxRounds int
	recorder  *metrics.Recorder
	onReport  func(Report)
}

// WithWorkers sets the number of machines solved in parallel.
// n == 0 selects runtime.NumCPU(); panics if n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("solve: WithWorkers(n<0)")
	}
	return func(c *runConfig) {
		c.workers = n
	}
}

// WithCacheSize sets each machine's joltage memo capacity. Panics if n <= 0.
func WithCacheSize(n int) Option {
	if n <= 0 {
		panic("solve: WithCacheSize(n<=0)")
	}
	return func(c *runConfig) {
		c.cacheSize = n
	}
}

// WithMaxRounds bounds binary-lifting rounds per machine. Panics if n <= 0.
func WithMaxRounds(n int) Option {
	if n <= 0 {
		panic("solve: WithMaxRounds(n<=0)")
	}
	return func(c *runConfig) {
		c.maxRounds = n
	}
}

// WithRecorder sends per-machine outcomes to r. A nil r disables metrics.
func WithRecorder(r *metrics.Recorder) Option {
	return func(c *runConfig) {
		c.recorder = r
	}
}

// WithReportFunc calls fn once per machine, in input order, after the
// batch has finished.
func WithReportFunc(fn func(Report)) Option {
	return func(c *runConfig) {
		c.onReport = fn
	}
}

func newRunConfig(opts ...Option) runConfig {
	cfg := runConfig{
		cacheSize: joltage.DefaultCacheSize,
		maxRounds: joltage.DefaultMaxRounds,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers == 0 {
		cfg.workers = runtime.NumCPU()
	}
	return cfg
}
