package solve_test

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/firstChairCoder/advent-of-code-2025/combo"
	"github.com/firstChairCoder/advent-of-code-2025/joltage"
	"github.com/firstChairCoder/advent-of-code-2025/machine"
	"github.com/firstChairCoder/advent-of-code-2025/metrics"
	"github.com/firstChairCoder/advent-of-code-2025/solve"
)

const sampleInput = `[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}
[...#.] (0,2,3,4) (2,3) (0,4) (0,1,2) (1,2,3,4) {7,5,12,7,2}
[.###.#] (0,1,2,3,4) (0,3,4) (0,1,2,4,5) (1,2) {10,11,11,5,10,5}
`

func mustParse(t *testing.T, lines ...string) []*machine.Machine {
	t.Helper()
	ms, err := machine.ParseAll(strings.NewReader(strings.Join(lines, "\n")))
	require.NoError(t, err)
	return ms
}

func TestReader_Sample(t *testing.T) {
	totals, reports, err := solve.Reader(context.Background(), strings.NewReader(sampleInput))
	require.NoError(t, err)
	require.Len(t, reports, 3)

	// indicator: 2 + 3 + 2
	require.Equal(t, 7, totals.Indicator)
	require.Zero(t, totals.Unreachable)

	// joltage: the third machine needs parity 0b010111 in round 1,
	// outside the span of its buttons, and contributes 0
	require.Equal(t, []int{14, 38, 0}, []int{reports[0].Joltage, reports[1].Joltage, reports[2].Joltage})
	require.False(t, reports[2].JoltageOK())
	require.ErrorIs(t, reports[2].JoltageErr, joltage.ErrInfeasible)
	require.Equal(t, 52, totals.Joltage)
	require.Equal(t, 1, totals.Infeasible)
	require.Equal(t, 3, totals.Machines)
}

func TestMachine_EndToEndTwoButtons(t *testing.T) {
	ms := mustParse(t, "[.#] (0) (1) {0,0}")
	rep, err := solve.Machine(0, ms[0])
	require.NoError(t, err)
	require.Equal(t, 4, rep.TableSize)
	require.Equal(t, 1, rep.Indicator)
	require.True(t, rep.IndicatorOK())
	require.Equal(t, 0, rep.Joltage)
}

func TestMachine_UnreachableAndInfeasibleContributeZero(t *testing.T) {
	ms := mustParse(t,
		"[##] (0) {1,1}", // indicator 0b11 and parity 0b11 both missing
		"[#] (0) {3}",
	)
	totals, reports, err := solve.All(context.Background(), ms)
	require.NoError(t, err)

	require.ErrorIs(t, reports[0].IndicatorErr, combo.ErrUnreachableTarget)
	require.ErrorIs(t, reports[0].JoltageErr, joltage.ErrInfeasible)
	require.Equal(t, solve.Totals{
		Machines:    2,
		Indicator:   1,
		Joltage:     3,
		Unreachable: 1,
		Infeasible:  1,
	}, totals)
}

func TestAll_ParallelMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	var ms []*machine.Machine
	for i := 0; i < 60; i++ {
		width := 1 + rng.Intn(6)
		buttons := make([]machine.Mask, rng.Intn(7))
		for j := range buttons {
			buttons[j] = machine.Mask(rng.Intn(1 << width))
		}
		target := make([]int, width)
		for j := range target {
			target[j] = rng.Intn(50)
		}
		m, err := machine.New(width, machine.Mask(rng.Intn(1<<width)), buttons, target)
		require.NoError(t, err)
		ms = append(ms, m)
	}

	seqTotals, seqReports, err := solve.All(context.Background(), ms, solve.WithWorkers(1))
	require.NoError(t, err)
	parTotals, parReports, err := solve.All(context.Background(), ms, solve.WithWorkers(8))
	require.NoError(t, err)

	require.Equal(t, seqTotals, parTotals)
	require.Len(t, parReports, len(seqReports))
	for i, r := range parReports {
		s := seqReports[i]
		require.Equal(t, i, r.Index)
		require.Equal(t, s.Indicator, r.Indicator)
		require.Equal(t, s.IndicatorOK(), r.IndicatorOK())
		require.Equal(t, s.Joltage, r.Joltage)
		require.Equal(t, s.JoltageOK(), r.JoltageOK())
		require.Equal(t, s.TableSize, r.TableSize)
	}
}

func TestAll_ReportFuncInOrder(t *testing.T) {
	ms := mustParse(t, strings.Split(strings.TrimSpace(sampleInput), "\n")...)
	var seen []int
	_, _, err := solve.All(context.Background(), ms,
		solve.WithWorkers(3),
		solve.WithReportFunc(func(r solve.Report) { seen = append(seen, r.Index) }))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, seen)
}

func TestAll_Cancelled(t *testing.T) {
	ms := mustParse(t, "[#] (0) {3}", "[#] (0) {5}")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := solve.All(ctx, ms)
	require.ErrorIs(t, err, context.Canceled)
}

func TestAll_RoundLimitAborts(t *testing.T) {
	ms := mustParse(t, "[#] (0) {1024}")
	_, _, err := solve.All(context.Background(), ms, solve.WithMaxRounds(4))
	require.ErrorIs(t, err, joltage.ErrRoundLimit)
}

func TestAll_Empty(t *testing.T) {
	totals, reports, err := solve.All(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, reports)
	require.Equal(t, solve.Totals{}, totals)
}

func TestReader_ParseErrorStopsBeforeSolving(t *testing.T) {
	_, _, err := solve.Reader(context.Background(), strings.NewReader("[#] (4) {1}\n"))
	require.ErrorIs(t, err, machine.ErrPositionRange)
}

func TestAll_RecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	require.NoError(t, err)

	_, _, err = solve.Reader(context.Background(), strings.NewReader(sampleInput), solve.WithRecorder(rec))
	require.NoError(t, err)

	expected := `
# HELP toggle_joltage_results_total Joltage queries by outcome.
# TYPE toggle_joltage_results_total counter
toggle_joltage_results_total{outcome="infeasible"} 1
toggle_joltage_results_total{outcome="solved"} 2
# HELP toggle_machines_total Machines processed.
# TYPE toggle_machines_total counter
toggle_machines_total 3
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"toggle_machines_total", "toggle_joltage_results_total"))
}

func TestAll_LogsSkippedMachines(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	solve.SetLogger(logger)
	defer solve.SetLogger(nil)

	ms := mustParse(t, "[##] (0) {1,1}")
	_, _, err := solve.All(context.Background(), ms, solve.WithWorkers(1))
	require.NoError(t, err)

	var warnings []string
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warnings = append(warnings, e.Message)
			require.Equal(t, 0, e.Data["machine"])
		}
	}
	require.Equal(t, []string{
		"indicator target unreachable, contributing 0",
		"joltage target infeasible, contributing 0",
	}, warnings)
	require.Equal(t, "batch solved", hook.LastEntry().Message)
}

func TestReport_String(t *testing.T) {
	ms := mustParse(t, "[##] (0) {1,1}")
	rep, err := solve.Machine(4, ms[0])
	require.NoError(t, err)
	require.Equal(t, "machine 4: width=2 buttons=1 table=2 indicator=unreachable joltage=infeasible", rep.String())
}

func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { solve.WithWorkers(-1) })
	require.Panics(t, func() { solve.WithCacheSize(0) })
	require.Panics(t, func() { solve.WithMaxRounds(0) })
}
