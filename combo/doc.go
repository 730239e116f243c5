// Package combo builds the combination table of a toggle machine and answers
// indicator queries against it.
//
// 🚀 What is the combination table?
//
//	Pressing a button twice cancels its effect on the indicator lights, so
//	only the parity of each button's presses matters for the XOR pattern.
//	The table maps every reachable XOR pattern to the fewest presses that
//	produce it, each chosen button counted once.
//
// Algorithm Outline:
//  1. T = {0 → 0}.
//  2. For each button b, in input order:
//     for every (mask, n) already in T (snapshot before this button):
//     T[mask ^ b] = min(T[mask ^ b], n + 1)
//  3. T now holds, for every reachable mask, the minimum over all button
//     subsets.
//
// Complexity:
//
//	Time   = O(|T| · B), |T| ≤ 2^W
//	Memory = O(|T|)
//
// The table is read-only once built and is meant to live exactly as long
// as one machine's queries.
package combo
