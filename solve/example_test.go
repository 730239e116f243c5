// File: solve/example_test.go
package solve_test

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/firstChairCoder/advent-of-code-2025/solve"
)

// ExampleReader solves two machines: the first needs one press per round
// (3 = 1 + 2·1), the second cannot light both of its positions.
func ExampleReader() {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	solve.SetLogger(quiet)
	defer solve.SetLogger(nil)

	input := "[#] (0) {3}\n[##] (0) {1,1}\n"
	totals, reports, err := solve.Reader(context.Background(), strings.NewReader(input), solve.WithWorkers(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, r := range reports {
		fmt.Println(r)
	}
	fmt.Printf("indicator=%d joltage=%d unreachable=%d infeasible=%d\n",
		totals.Indicator, totals.Joltage, totals.Unreachable, totals.Infeasible)

	// Output:
	// machine 0: width=1 buttons=1 table=2 indicator=1 joltage=3
	// machine 1: width=2 buttons=1 table=2 indicator=unreachable joltage=infeasible
	// indicator=1 joltage=3 unreachable=1 infeasible=1
}
