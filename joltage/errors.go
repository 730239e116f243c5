// SPDX-License-Identifier: MIT
// Package: joltage
//
// errors.go - sentinel errors for the joltage solver.
//
// ErrInfeasible is an outcome, not a failure: aggregators skip the machine.
// The remaining sentinels report inputs the solver refuses to evaluate.

package joltage

import "errors"

var (
	// ErrInfeasible indicates that some round's parity pattern is not in the
	// combination table, or that the target holds a negative counter.
	ErrInfeasible = errors.New("joltage: target is infeasible")

	// ErrRoundLimit indicates the target needs more rounds than MaxRounds.
	ErrRoundLimit = errors.New("joltage: round limit exceeded")

	// ErrCostOverflow indicates the press count does not fit in an int.
	ErrCostOverflow = errors.New("joltage: press count overflows int")

	// ErrTooWide indicates a target vector longer than machine.MaxWidth.
	ErrTooWide = errors.New("joltage: target wider than 64 counters")

	// ErrNilTable indicates New was called without a combination table.
	ErrNilTable = errors.New("joltage: nil combination table")
)
