package solve

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/firstChairCoder/advent-of-code-2025/combo"
	"github.com/firstChairCoder/advent-of-code-2025/joltage"
	"github.com/firstChairCoder/advent-of-code-2025/machine"
	"github.com/firstChairCoder/advent-of-code-2025/metrics"
)

var log logrus.FieldLogger = logrus.StandardLogger()

// SetLogger replaces the package logger. Call it before solving.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = logrus.StandardLogger()
	}
	log = l
}

// Report is the outcome of one machine.
type Report struct {
	Index     int
	Width     int
	Buttons   int
	TableSize int

	Indicator    int
	IndicatorErr error // wraps combo.ErrUnreachableTarget

	Joltage    int
	JoltageErr error // wraps joltage.ErrInfeasible

	MemoHits   uint64
	MemoMisses uint64
}

// IndicatorOK reports whether the indicator target was reachable.
func (r Report) IndicatorOK() bool { return r.IndicatorErr == nil }

// JoltageOK reports whether the joltage target was feasible.
func (r Report) JoltageOK() bool { return r.JoltageErr == nil }

// String renders the report as a single line.
func (r Report) String() string {
	ind, jol := fmt.Sprint(r.Indicator), fmt.Sprint(r.Joltage)
	if !r.IndicatorOK() {
		ind = "unreachable"
	}
	if !r.JoltageOK() {
		jol = "infeasible"
	}
	return fmt.Sprintf("machine %d: width=%d buttons=%d table=%d indicator=%s joltage=%s",
		r.Index, r.Width, r.Buttons, r.TableSize, ind, jol)
}

// Totals aggregates a batch.
type Totals struct {
	Machines    int
	Indicator   int
	Joltage     int
	Unreachable int
	Infeasible  int
}

// Sum folds reports into Totals. Unreachable and infeasible machines add 0.
func Sum(reports []Report) Totals {
	t := Totals{Machines: len(reports)}
	for _, r := range reports {
		if r.IndicatorOK() {
			t.Indicator += r.Indicator
		} else {
			t.Unreachable++
		}
		if r.JoltageOK() {
			t.Joltage += r.Joltage
		} else {
			t.Infeasible++
		}
	}
	return t
}

// Machine solves a single machine. index only labels the report.
func Machine(index int, m *machine.Machine, opts ...Option) (Report, error) {
	return solveOne(index, m, newRunConfig(opts...))
}

// All solves machines on a bounded worker pool and returns the totals with
// the per-machine reports in input order. Cancelling ctx stops the batch
// with ctx's error.
func All(ctx context.Context, machines []*machine.Machine, opts ...Option) (Totals, []Report, error) {
	cfg := newRunConfig(opts...)
	reports := make([]Report, len(machines))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for i, m := range machines {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rep, err := solveOne(i, m, cfg)
			if err != nil {
				return err
			}
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Totals{}, nil, err
	}
	if err := ctx.Err(); err != nil {
		return Totals{}, nil, err
	}

	for _, rep := range reports {
		if cfg.onReport != nil {
			cfg.onReport(rep)
		}
	}
	totals := Sum(reports)
	log.WithFields(logrus.Fields{
		"machines":    totals.Machines,
		"unreachable": totals.Unreachable,
		"infeasible":  totals.Infeasible,
		"workers":     cfg.workers,
	}).Info("batch solved")

	return totals, reports, nil
}

// Reader parses machine lines from r and solves them with All.
func Reader(ctx context.Context, r io.Reader, opts ...Option) (Totals, []Report, error) {
	machines, err := machine.ParseAll(r)
	if err != nil {
		return Totals{}, nil, err
	}
	log.WithField("machines", len(machines)).Debug("input parsed")
	return All(ctx, machines, opts...)
}

// solveOne owns the machine's table and memo for the duration of the call.
func solveOne(index int, m *machine.Machine, cfg runConfig) (Report, error) {
	tbl := combo.ForMachine(m)
	rep := Report{
		Index:     index,
		Width:     m.Width(),
		Buttons:   len(m.Buttons()),
		TableSize: tbl.Len(),
	}
	entry := log.WithField("machine", index)

	rep.Indicator, rep.IndicatorErr = tbl.Indicator(m.Indicator())
	if !rep.IndicatorOK() {
		entry.WithField("target", m.Indicator().Indicator(m.Width())).
			Warn("indicator target unreachable, contributing 0")
	}

	js, err := joltage.New(tbl,
		joltage.WithCacheSize(cfg.cacheSize),
		joltage.WithMaxRounds(cfg.maxRounds))
	if err != nil {
		return Report{}, errors.Wrapf(err, "machine %d", index)
	}
	presses, err := js.MinPresses(m.Joltage())
	switch {
	case err == nil:
		rep.Joltage = presses
	case errors.Is(err, joltage.ErrInfeasible):
		rep.JoltageErr = err
		entry.WithField("reason", err.Error()).Warn("joltage target infeasible, contributing 0")
	default:
		return Report{}, errors.Wrapf(err, "machine %d", index)
	}

	stats := js.Stats()
	rep.MemoHits, rep.MemoMisses = stats.Hits, stats.Misses
	cfg.recorder.Machine(rep.TableSize, indicatorOutcome(rep), joltageOutcome(rep), stats.Hits, stats.Misses)
	entry.WithFields(logrus.Fields{
		"table":     rep.TableSize,
		"indicator": rep.Indicator,
		"joltage":   rep.Joltage,
	}).Debug("machine solved")

	return rep, nil
}

func indicatorOutcome(r Report) string {
	if r.IndicatorOK() {
		return metrics.OutcomeSolved
	}
	return metrics.OutcomeUnreachable
}

func joltageOutcome(r Report) string {
	if r.JoltageOK() {
		return metrics.OutcomeSolved
	}
	return metrics.OutcomeInfeasible
}
