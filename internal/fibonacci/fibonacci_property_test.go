package fibonacci

import (
	"context"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// calcF is a shorthand that computes F(n) with the given calculator.
func calcF(t *testing.T, calc Calculator, n uint64) int64 {
	t.Helper()
	v, err := calc.Calculate(context.Background(), n)
	if err != nil {
		t.Fatalf("%s(%d) error: %v", calc.Name(), n, err)
	}
	return v
}

// TestRecurrenceRelation_PropertyBased verifies the fundamental recurrence:
//
//	F(n) = F(n-1) + F(n-2)  for n >= 2
//
// This is the defining property of the Fibonacci sequence.
func TestRecurrenceRelation_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	for _, calculator := range linearCalculators() {
		calculator := calculator
		properties.Property(calculator.Name()+" satisfies recurrence F(n) = F(n-1) + F(n-2)", prop.ForAll(
			func(n uint64) bool {
				fn := calcF(t, calculator, n)
				fn1 := calcF(t, calculator, n-1)
				fn2 := calcF(t, calculator, n-2)
				return fn == fn1+fn2
			},
			gen.UInt64Range(2, MaxNativeIndex),
		))
	}

	properties.TestingRun(t)
}

// TestEquivalence_PropertyBased verifies that the stride-based and
// optimized memoized variants agree with the iterative reference over
// the full valid domain.
func TestEquivalence_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	reference := &Iterative{}
	for _, calculator := range []Calculator{&Memoized{}, &MemoizedOptimized{}} {
		calculator := calculator
		properties.Property(calculator.Name()+" agrees with Iterative", prop.ForAll(
			func(n uint64) bool {
				return calcF(t, calculator, n) == calcF(t, reference, n)
			},
			gen.UInt64Range(0, 90),
		))
	}

	properties.TestingRun(t)
}

// TestMonotonicity_PropertyBased verifies F(n+1) >= F(n) for n >= 0.
func TestMonotonicity_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	calculator := &MemoizedOptimized{}
	properties.Property("F(n+1) >= F(n)", prop.ForAll(
		func(n uint64) bool {
			return calcF(t, calculator, n+1) >= calcF(t, calculator, n)
		},
		gen.UInt64Range(0, MaxNativeIndex-1),
	))

	properties.TestingRun(t)
}

// TestParitySelection_PropertyBased verifies the fixed parity rule of
// the memoized variants: after the pair updates, the result is the
// accumulator a when n is even and b when n is odd. The expected pair is
// stepped independently here, so the test checks the selection, not just
// the final value.
func TestParitySelection_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	for _, calculator := range []Calculator{&Memoized{}, &MemoizedOptimized{}} {
		calculator := calculator
		properties.Property(calculator.Name()+" selects a for even n, b for odd n", prop.ForAll(
			func(n uint64) bool {
				// After k iterations a holds F(2k) and b holds F(2k+1).
				var a, b int64 = 0, 1
				for k := uint64(0); k < n/2; k++ {
					a += b
					b += a
				}
				want := a
				if n%2 != 0 {
					want = b
				}
				return calcF(t, calculator, n) == want
			},
			gen.UInt64Range(2, MaxNativeIndex),
		))
	}

	properties.TestingRun(t)
}
