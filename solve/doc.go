// Package solve runs both toggle-machine solvers over a batch of machines
// and aggregates the results.
//
// Each machine gets its own combination table and joltage memo; both are
// dropped as soon as that machine's report is produced. Machines share no
// solver state, so All spreads them over a bounded pool of goroutines.
//
// Aggregation rules:
//   - indicator total: sum over machines whose indicator target is reachable;
//     unreachable machines add 0 and are counted in Totals.Unreachable.
//   - joltage total: sum over machines whose counter target is feasible;
//     infeasible machines add 0 and are counted in Totals.Infeasible.
//
// Any other solver error (round limit, overflow) aborts the batch.
package solve
