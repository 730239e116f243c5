package joltage

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/firstChairCoder/advent-of-code-2025/machine"
)

// ParityMask returns the mask whose bit i is v[i] mod 2.
// A negative entry makes the state infeasible.
func ParityMask(v []int) (machine.Mask, error) {
	if len(v) > machine.MaxWidth {
		return 0, errors.Wrapf(ErrTooWide, "%d counters", len(v))
	}
	var m machine.Mask
	for i, x := range v {
		if x < 0 {
			return 0, errors.Wrapf(ErrInfeasible, "counter %d is negative (%d)", i, x)
		}
		if x&1 == 1 {
			m |= 1 << uint(i)
		}
	}
	return m, nil
}

// Halve removes one press of every position in mask and halves the rest:
// R[i] = (v[i] − bit_i(mask)) / 2. It returns a new slice.
func Halve(v []int, mask machine.Mask) []int {
	out := make([]int, len(v))
	for i, x := range v {
		if mask.Has(i) {
			x--
		}
		out[i] = x / 2
	}
	return out
}

// Key is the canonical memo key of a vector: the zig-zag varints of its
// entries, concatenated. Equal vectors give equal keys and vice versa.
func Key(v []int) string {
	buf := make([]byte, 0, len(v)*2)
	for _, x := range v {
		buf = binary.AppendVarint(buf, int64(x))
	}
	return string(buf)
}

func isZero(v []int) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}
