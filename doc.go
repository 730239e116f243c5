// Package aoc2025 is the root of the toggle-machine solvers.
//
// 🚀 What is in here?
//
//	A machine has W indicator lights / counters and a set of buttons, each
//	touching a fixed subset of positions. Two questions are answered per
//	machine:
//	  • the fewest presses that light exactly the target pattern
//	  • the fewest presses that raise the counters to an exact target vector
//
// Packages:
//
//	machine/    - Mask, Machine and the "[.##.] (1,3) ... {3,5,4,7}" parser
//	combo/      - combination table (XOR pattern → min presses), indicator lookup
//	joltage/    - binary lifting over counter parity with a per-machine memo
//	solve/      - per-machine reports, totals, bounded parallel batches
//	metrics/    - Prometheus collectors for outcomes and memo usage
//	config/     - defaults, YAML config file and validation
//	cmd/toggle/ - command-line front end
//
// Data flow:
//
//	input lines → machine.ParseAll → combo.Build → {Table.Indicator, joltage.Solver} → solve.Sum
//
//	go run ./cmd/toggle input.txt
package aoc2025
