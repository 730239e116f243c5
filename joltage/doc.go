// Package joltage computes the fewest button presses that drive a machine's
// counters from zero to an exact target vector.
//
// 🚀 How it works (binary lifting over parity):
//
//	Write every target as Σ_r 2^r · o_r, where o_r is whether position i
//	received an odd number of presses in round r. Round 0 must realise the
//	parity pattern P of the target, and the cheapest way to do that is the
//	combination table's entry for P. Removing that round's contribution and
//	halving leaves a self-similar target of half the magnitude:
//
//	  cost(0)  = 0
//	  cost(V)  = T[P(V)] + 2 · cost((V − P(V)) / 2)
//	  cost(V)  = infeasible if P(V) ∉ T
//
// The solver runs this as a loop over rounds, never as recursion, so depth
// is bounded by the bit length of the largest target (≤ 64) and enforced
// by MaxRounds. Every state on the chain is memoised in a bounded LRU owned
// by the Solver; a Solver belongs to exactly one machine.
//
// ⚙️ Usage:
//
//	tbl := combo.ForMachine(m)
//	s, err := joltage.New(tbl, joltage.WithCacheSize(1024))
//	presses, err := s.MinPresses(m.Joltage())
//	if errors.Is(err, joltage.ErrInfeasible) {
//	  // no press sequence reaches the target
//	}
//
// Complexity: O(R · W) per uncached query, R = rounds ≤ 64.
package joltage
