package combo

import (
	"slices"

	"github.com/pkg/errors"

	"github.com/firstChairCoder/advent-of-code-2025/machine"
)

// Table maps each reachable XOR pattern to its minimal press count.
// A Table is immutable once returned by Build; concurrent reads are safe.
type Table struct {
	presses map[machine.Mask]int
}

// Build computes the combination table for buttons, processed in order.
//
// Each round copies the current table and relaxes it with the button, so a
// button is never applied twice within one round and every stored count is
// the minimum over the subsets seen so far. The zero mask always maps to 0;
// a zero-mask button can only propose 1 for it and is therefore ignored.
//
// Time: O(|T|·len(buttons)), Memory: O(|T|).
func Build(buttons []machine.Mask) *Table {
	cur := map[machine.Mask]int{0: 0}
	for _, b := range buttons {
		next := make(map[machine.Mask]int, 2*len(cur))
		for mask, n := range cur {
			next[mask] = n
		}
		for mask, n := range cur {
			cand := mask ^ b
			if old, ok := next[cand]; !ok || n+1 < old {
				next[cand] = n + 1
			}
		}
		cur = next
	}

	return &Table{presses: cur}
}

// ForMachine builds the table of m's buttons.
func ForMachine(m *machine.Machine) *Table {
	return Build(m.Buttons())
}

// Lookup returns the minimal press count for mask and whether mask is
// reachable at all.
func (t *Table) Lookup(mask machine.Mask) (int, bool) {
	n, ok := t.presses[mask]
	return n, ok
}

// Contains reports whether mask is reachable.
func (t *Table) Contains(mask machine.Mask) bool {
	_, ok := t.presses[mask]
	return ok
}

// Len returns the number of reachable masks (always ≥ 1).
func (t *Table) Len() int {
	return len(t.presses)
}

// Masks returns the reachable masks in increasing order.
func (t *Table) Masks() []machine.Mask {
	out := make([]machine.Mask, 0, len(t.presses))
	for m := range t.presses {
		out = append(out, m)
	}
	slices.Sort(out)
	return out
}

// Indicator returns the fewest presses that light exactly the target
// pattern, or ErrUnreachableTarget.
func (t *Table) Indicator(target machine.Mask) (int, error) {
	n, ok := t.presses[target]
	if !ok {
		return 0, errors.Wrapf(ErrUnreachableTarget, "mask %#b", uint64(target))
	}
	return n, nil
}

// MinIndicatorPresses builds m's table and solves its indicator target.
// Use Build plus Table.Indicator when the table is also needed for the
// joltage solver.
func MinIndicatorPresses(m *machine.Machine) (int, error) {
	return ForMachine(m).Indicator(m.Indicator())
}
