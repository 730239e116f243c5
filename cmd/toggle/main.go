// Command toggle reads toggle-machine lines and prints the fewest presses
// for the indicator targets and for the joltage targets, summed over all
// machines.
//
//	toggle [flags] [input-file|-]
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/firstChairCoder/advent-of-code-2025/config"
	"github.com/firstChairCoder/advent-of-code-2025/metrics"
	"github.com/firstChairCoder/advent-of-code-2025/solve"
)

var version = "unreleased"

type flags struct {
	configPath  string
	workers     int
	cacheSize   int
	maxRounds   int
	logLevel    string
	metricsFile string
	profileDir  string
	verbose     bool
}

func newRootCmd() *cobra.Command {
	var f flags
	def := config.Default()

	cmd := &cobra.Command{
		Use:           "toggle [input-file|-]",
		Short:         "Fewest button presses for toggle machines",
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}
			return run(cmd, args, cfg)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&f.configPath, "config", "", "YAML config file")
	fs.IntVar(&f.workers, "workers", def.Workers, "machines solved in parallel (0 = number of CPUs)")
	fs.IntVar(&f.cacheSize, "cache-size", def.CacheSize, "per-machine joltage memo size")
	fs.IntVar(&f.maxRounds, "max-rounds", def.MaxRounds, "binary-lifting round bound per machine")
	fs.StringVar(&f.logLevel, "log-level", def.LogLevel, "logging level (debug, info, warning, error)")
	fs.StringVar(&f.metricsFile, "metrics-file", def.MetricsFile, "write Prometheus metrics to this file on exit")
	fs.StringVar(&f.profileDir, "profile", def.ProfileDir, "enable CPU profiling and write profiles to given path")
	fs.BoolVar(&f.verbose, "verbose", def.Verbose, "print one line per machine")

	return cmd
}

// resolveConfig layers defaults, the config file and explicitly set flags.
func resolveConfig(cmd *cobra.Command, f flags) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, err
	}
	fs := cmd.Flags()
	if fs.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fs.Changed("cache-size") {
		cfg.CacheSize = f.cacheSize
	}
	if fs.Changed("max-rounds") {
		cfg.MaxRounds = f.maxRounds
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if fs.Changed("metrics-file") {
		cfg.MetricsFile = f.metricsFile
	}
	if fs.Changed("profile") {
		cfg.ProfileDir = f.profileDir
	}
	if fs.Changed("verbose") {
		cfg.Verbose = f.verbose
	}
	return cfg, cfg.Validate()
}

func run(cmd *cobra.Command, args []string, cfg config.Config) error {
	logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}
	solve.SetLogger(logger)
	defer solve.SetLogger(nil)

	if cfg.ProfileDir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.ProfileDir), profile.NoShutdownHook, profile.Quiet).Stop()
	}

	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		file, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "open input")
		}
		defer file.Close()
		in = file
	}

	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	opts := []solve.Option{
		solve.WithWorkers(cfg.Workers),
		solve.WithCacheSize(cfg.CacheSize),
		solve.WithMaxRounds(cfg.MaxRounds),
		solve.WithRecorder(rec),
	}
	if cfg.Verbose {
		opts = append(opts, solve.WithReportFunc(func(r solve.Report) {
			fmt.Fprintln(out, r)
		}))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Infof("Starting toggle %s", version)
	totals, _, err := solve.Reader(ctx, in, opts...)
	if err != nil {
		return err
	}
	printTotals(out, totals)

	if cfg.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(cfg.MetricsFile, reg); err != nil {
			return errors.Wrap(err, "write metrics")
		}
	}
	return nil
}

func printTotals(w io.Writer, t solve.Totals) {
	fmt.Fprintf(w, "Fewest Button Presses: %d\n", t.Indicator)
	fmt.Fprintf(w, "Actual Button presses for counters: %d\n", t.Joltage)
}

func main() {
	cmd := newRootCmd()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "toggle:", err)
		os.Exit(1)
	}
}
