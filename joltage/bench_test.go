package joltage_test

import (
	"testing"

	"github.com/firstChairCoder/advent-of-code-2025/combo"
	"github.com/firstChairCoder/advent-of-code-2025/joltage"
	"github.com/firstChairCoder/advent-of-code-2025/machine"
)

// BenchmarkMinPresses_Cold measures a full chain with an empty memo each time.
func BenchmarkMinPresses_Cold(b *testing.B) {
	tbl := combo.Build([]machine.Mask{1, 2, 4, 8, 3, 12})
	target := []int{1 << 20, 3<<18 + 7, 99991, 123456}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s, err := joltage.New(tbl, joltage.WithCacheSize(64))
		if err != nil {
			b.Fatal(err)
		}
		if _, err := s.MinPresses(target); err != nil {
			b.Fatal(err)
		}
	}
}
