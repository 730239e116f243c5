package joltage

import (
	"math"

	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"

	"github.com/firstChairCoder/advent-of-code-2025/machine"
)

// Table is the read side of a combination table.
// *combo.Table satisfies it.
type Table interface {
	Lookup(mask machine.Mask) (int, bool)
}

// outcome is a memoised result: a press count or an infeasibility marker.
type outcome struct {
	presses  int
	feasible bool
}

// round is one unresolved level of the lifting chain.
type round struct {
	key     string
	presses int
}

// Stats reports memo usage of one Solver.
type Stats struct {
	Hits    uint64
	Misses  uint64
	Entries int
}

// Solver answers joltage queries for a single machine.
// It is not safe for concurrent use; give each worker its own Solver.
type Solver struct {
	table     Table
	memo      *lru.Cache
	maxRounds int
	hits      uint64
	misses    uint64
}

// New returns a Solver over table with its own, empty memo.
func New(table Table, opts ...Option) (*Solver, error) {
	if table == nil {
		return nil, ErrNilTable
	}
	cfg := newSolverConfig(opts...)
	memo, err := lru.New(cfg.cacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "joltage: creating memo")
	}
	return &Solver{
		table:     table,
		memo:      memo,
		maxRounds: cfg.maxRounds,
	}, nil
}

// MinPresses returns the fewest presses that raise the counters from zero
// to exactly target.
//
// Steps:
//  1. Walk the chain V₀ = target, V_{r+1} = Halve(V_r, P(V_r)) until the
//     zero vector, a memoised state, or an unreachable parity is met.
//  2. Unwind: cost(V_r) = T[P(V_r)] + 2·cost(V_{r+1}), memoising each level.
//
// Errors:
//   - ErrInfeasible    - a parity pattern is missing from the table, or a
//     counter is negative.
//   - ErrRoundLimit    - more than MaxRounds rounds would be needed.
//   - ErrCostOverflow  - the total does not fit in an int.
//   - ErrTooWide       - len(target) > 64.
func (s *Solver) MinPresses(target []int) (int, error) {
	if len(target) > machine.MaxWidth {
		return 0, errors.Wrapf(ErrTooWide, "%d counters", len(target))
	}

	var (
		chain []round
		tail  outcome
		cur   = target
		cause error
	)
	for {
		key := Key(cur)
		if v, ok := s.memo.Get(key); ok {
			s.hits++
			tail = v.(outcome)
			break
		}
		s.misses++

		if isZero(cur) {
			tail = outcome{feasible: true}
			s.memo.Add(key, tail)
			break
		}
		if len(chain) >= s.maxRounds {
			return 0, errors.Wrapf(ErrRoundLimit, "limit %d", s.maxRounds)
		}

		mask, err := ParityMask(cur)
		if err != nil {
			if !errors.Is(err, ErrInfeasible) {
				return 0, err
			}
			cause = err
			s.memo.Add(key, outcome{})
			break
		}
		presses, ok := s.table.Lookup(mask)
		if !ok {
			cause = errors.Wrapf(ErrInfeasible, "round %d: parity %#b unreachable", len(chain), uint64(mask))
			s.memo.Add(key, outcome{})
			break
		}
		chain = append(chain, round{key: key, presses: presses})
		cur = Halve(cur, mask)
	}

	total, feasible := tail.presses, tail.feasible
	for i := len(chain) - 1; i >= 0; i-- {
		if feasible {
			next, ok := lift(chain[i].presses, total)
			if !ok {
				return 0, errors.Wrapf(ErrCostOverflow, "round %d", i)
			}
			total = next
		}
		s.memo.Add(chain[i].key, outcome{presses: total, feasible: feasible})
	}

	if !feasible {
		if cause == nil {
			cause = errors.Wrap(ErrInfeasible, "memoised")
		}
		return 0, cause
	}
	return total, nil
}

// Stats returns memo counters for this Solver.
func (s *Solver) Stats() Stats {
	return Stats{Hits: s.hits, Misses: s.misses, Entries: s.memo.Len()}
}

// Purge drops every memoised state and resets the counters.
func (s *Solver) Purge() {
	s.memo.Purge()
	s.hits, s.misses = 0, 0
}

// lift returns c + 2·rest, reporting false on int overflow.
func lift(c, rest int) (int, bool) {
	if rest > (math.MaxInt-c)/2 {
		return 0, false
	}
	return c + 2*rest, true
}
