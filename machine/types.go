package machine

import (
	"math/bits"
	"strings"

	"github.com/pkg/errors"
)

// MaxWidth is the largest number of positions a Mask can address.
const MaxWidth = 64

// Mask is a set of positions; bit i is position i.
type Mask uint64

// MaskOf builds a Mask from a list of positions. Positions outside
// 0..MaxWidth-1 are ignored; validation belongs to New and the parser.
func MaskOf(positions ...int) Mask {
	var m Mask
	for _, p := range positions {
		if p < 0 || p >= MaxWidth {
			continue
		}
		m |= 1 << uint(p)
	}
	return m
}

// Has reports whether position i is set.
func (m Mask) Has(i int) bool {
	return i >= 0 && i < MaxWidth && m&(1<<uint(i)) != 0
}

// Count returns the number of set positions.
func (m Mask) Count() int {
	return bits.OnesCount64(uint64(m))
}

// Positions lists set positions in increasing order.
func (m Mask) Positions() []int {
	out := make([]int, 0, m.Count())
	for v := uint64(m); v != 0; v &= v - 1 {
		out = append(out, bits.TrailingZeros64(v))
	}
	return out
}

// Indicator renders the low width bits as an indicator string ('#' = set).
func (m Mask) Indicator(width int) string {
	var b strings.Builder
	b.Grow(width)
	for i := 0; i < width; i++ {
		if m.Has(i) {
			b.WriteByte('#')
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}

// Machine is an immutable toggle-machine description.
// Buttons keep their input order; order only fixes the order in which the
// combination table is built.
type Machine struct {
	width     int
	indicator Mask
	buttons   []Mask
	joltage   []int
}

// New validates and deep-copies its inputs into a Machine.
//
// Errors:
//   - ErrTooWide          - width outside 1..MaxWidth.
//   - ErrPositionRange    - indicator or button bit at or beyond width.
//   - ErrWidthMismatch    - len(joltage) != width.
//   - ErrNegativeJoltage  - a joltage entry below zero.
func New(width int, indicator Mask, buttons []Mask, joltage []int) (*Machine, error) {
	if width < 1 || width > MaxWidth {
		return nil, errors.Wrapf(ErrTooWide, "width %d", width)
	}
	limit := widthMask(width)
	if indicator&^limit != 0 {
		return nil, errors.Wrapf(ErrPositionRange, "indicator %#x for width %d", uint64(indicator), width)
	}
	for i, b := range buttons {
		if b&^limit != 0 {
			return nil, errors.Wrapf(ErrPositionRange, "button %d mask %#x for width %d", i, uint64(b), width)
		}
	}
	if len(joltage) != width {
		return nil, errors.Wrapf(ErrWidthMismatch, "got %d counters, want %d", len(joltage), width)
	}
	for i, v := range joltage {
		if v < 0 {
			return nil, errors.Wrapf(ErrNegativeJoltage, "counter %d = %d", i, v)
		}
	}

	m := &Machine{
		width:     width,
		indicator: indicator,
		buttons:   make([]Mask, len(buttons)),
		joltage:   make([]int, width),
	}
	copy(m.buttons, buttons)
	copy(m.joltage, joltage)

	return m, nil
}

// Width returns the number of positions W.
func (m *Machine) Width() int { return m.width }

// Indicator returns the target indicator mask.
func (m *Machine) Indicator() Mask { return m.indicator }

// Buttons returns a copy of the button masks in input order.
func (m *Machine) Buttons() []Mask {
	out := make([]Mask, len(m.buttons))
	copy(out, m.buttons)
	return out
}

// Joltage returns a copy of the target counter vector.
func (m *Machine) Joltage() []int {
	out := make([]int, len(m.joltage))
	copy(out, m.joltage)
	return out
}

// String renders the machine in input-line form.
func (m *Machine) String() string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(m.indicator.Indicator(m.width))
	b.WriteByte(']')
	for _, btn := range m.buttons {
		b.WriteString(" (")
		b.WriteString(joinInts(btn.Positions()))
		b.WriteByte(')')
	}
	b.WriteString(" {")
	b.WriteString(joinInts(m.joltage))
	b.WriteByte('}')
	return b.String()
}

// widthMask returns a Mask with the low width bits set.
func widthMask(width int) Mask {
	if width >= MaxWidth {
		return ^Mask(0)
	}
	return Mask(1)<<uint(width) - 1
}
