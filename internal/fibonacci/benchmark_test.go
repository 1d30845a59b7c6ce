package fibonacci

import (
	"context"
	"fmt"
	"testing"
)

func benchmarkCalculator(b *testing.B, calc Calculator, n uint64) {
	ctx := context.Background()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := calc.Calculate(ctx, n); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRecursive(b *testing.B) {
	// Kept small: the point of the recursive algorithm is its cost.
	benchmarkCalculator(b, &Recursive{}, 20)
}

func BenchmarkLinearAlgorithms(b *testing.B) {
	for _, calc := range linearCalculators() {
		for _, n := range []uint64{10, 45, 90} {
			b.Run(fmt.Sprintf("%s/n=%d", calc.Name(), n), func(b *testing.B) {
				benchmarkCalculator(b, calc, n)
			})
		}
	}
}
