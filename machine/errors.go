// SPDX-License-Identifier: MIT
// Package: machine
//
// errors.go - sentinel errors for machine construction and parsing.
//
// Callers branch with errors.Is; the parser attaches line and token context
// by wrapping these values.

package machine

import "errors"

var (
	// ErrMalformedLine indicates a line that does not follow
	// "[indicator] (button)... {joltage}".
	ErrMalformedLine = errors.New("machine: malformed line")

	// ErrPositionRange indicates a button position outside 0..W-1.
	ErrPositionRange = errors.New("machine: button position out of range")

	// ErrWidthMismatch indicates a joltage vector whose length differs from W.
	ErrWidthMismatch = errors.New("machine: joltage length differs from indicator width")

	// ErrNegativeJoltage indicates a negative target counter.
	ErrNegativeJoltage = errors.New("machine: negative joltage target")

	// ErrTooWide indicates W outside 1..MaxWidth.
	ErrTooWide = errors.New("machine: width must be between 1 and 64")
)
