// Package machine defines the toggle-machine data model and its line parser.
//
// 🚀 What is a machine?
//
//	A machine has W positions. Each button flips (or, for the counter
//	puzzle, increments) a fixed subset of those positions. A machine line
//	carries three things:
//	  • the target indicator pattern, e.g. [.##.]
//	  • the buttons, one (p1,p2,...) group per button
//	  • the target counter ("joltage") vector, e.g. {3,5,4,7}
//
// ✨ Key types:
//   - Mask    - a uint64 bit set, bit i = position i (so W ≤ 64)
//   - Machine - immutable, validated machine description
//
// ⚙️ Usage:
//
//	m, err := machine.ParseLine("[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}")
//	if err != nil {
//	  // errors.Is(err, machine.ErrMalformedLine) etc.
//	}
//
//	all, err := machine.ParseAll(os.Stdin)
//
// Blank lines are skipped by ParseAll. Any other malformed line aborts
// parsing; solvers downstream assume well-formed machines.
package machine
