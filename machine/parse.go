package machine

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// maxLineBytes bounds a single input line for the scanner.
const maxLineBytes = 1 << 20

// ParseLine parses one machine line:
//
//	[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}
//
// The indicator width W fixes the machine width. The last group is the
// joltage vector and may be written with braces or parentheses. A button
// written as "()" toggles nothing.
func ParseLine(line string) (*Machine, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return nil, errors.Wrapf(ErrMalformedLine, "need indicator and joltage, got %d groups", len(fields))
	}

	pattern, err := unwrap(fields[0], '[', ']')
	if err != nil {
		return nil, err
	}
	width := len(pattern)
	if width < 1 || width > MaxWidth {
		return nil, errors.Wrapf(ErrTooWide, "indicator %q", fields[0])
	}
	var indicator Mask
	for i, c := range pattern {
		switch c {
		case '#':
			indicator |= 1 << uint(i)
		case '.':
		default:
			return nil, errors.Wrapf(ErrMalformedLine, "indicator %q: unexpected %q", fields[0], c)
		}
	}

	last := fields[len(fields)-1]
	var body string
	if strings.HasPrefix(last, "{") {
		body, err = unwrap(last, '{', '}')
	} else {
		body, err = unwrap(last, '(', ')')
	}
	if err != nil {
		return nil, err
	}
	joltage, err := parseInts(body, last)
	if err != nil {
		return nil, err
	}

	buttons := make([]Mask, 0, len(fields)-2)
	for _, tok := range fields[1 : len(fields)-1] {
		body, err := unwrap(tok, '(', ')')
		if err != nil {
			return nil, err
		}
		positions, err := parseInts(body, tok)
		if err != nil {
			return nil, err
		}
		var b Mask
		for _, p := range positions {
			if p < 0 || p >= width {
				return nil, errors.Wrapf(ErrPositionRange, "button %q: position %d, width %d", tok, p, width)
			}
			b |= 1 << uint(p)
		}
		buttons = append(buttons, b)
	}

	return New(width, indicator, buttons, joltage)
}

// ParseAll reads one machine per non-blank line. The first bad line stops
// parsing; the error carries its 1-based line number.
func ParseAll(r io.Reader) ([]*Machine, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var out []*Machine
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		m, err := ParseLine(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		out = append(out, m)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "machine: reading input")
	}
	return out, nil
}

// unwrap strips the open/close delimiters from tok.
func unwrap(tok string, open, close byte) (string, error) {
	if len(tok) < 2 || tok[0] != open || tok[len(tok)-1] != close {
		return "", errors.Wrapf(ErrMalformedLine, "group %q: want %c...%c", tok, open, close)
	}
	return tok[1 : len(tok)-1], nil
}

// parseInts splits a comma-separated list. An empty body yields no values.
func parseInts(body, tok string) ([]int, error) {
	if body == "" {
		return nil, nil
	}
	parts := strings.Split(body, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedLine, "group %q: %q is not an integer", tok, p)
		}
		out[i] = v
	}
	return out, nil
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
