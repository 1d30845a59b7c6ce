package fibonacci

import (
	"context"

	apperrors "github.com/agbru/fibbench/internal/errors"
)

// checkDomain rejects indices whose Fibonacci value does not fit in an
// int64. All four algorithms share this guard so their domains stay
// identical.
func checkDomain(n uint64) error {
	if n > MaxNativeIndex {
		return apperrors.OverflowError{N: n, Max: MaxNativeIndex}
	}
	return nil
}

// Recursive computes F(n) by direct application of the recurrence,
// without memoization. Time O(phi^n), space O(n) call depth. The
// redundant recomputation is intentional: this algorithm exists to
// illustrate the cost of the exponential strategy.
type Recursive struct{}

// Name returns the algorithm name.
func (*Recursive) Name() string { return AlgoRecursive }

// Exponential marks this algorithm as requiring the recursive-limit guard.
func (*Recursive) Exponential() bool { return true }

// Calculate computes F(n) recursively. Cancellation is checked once on
// entry; checking inside the recursion would dominate the cost being
// measured.
func (*Recursive) Calculate(ctx context.Context, n uint64) (int64, error) {
	if err := checkDomain(n); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return recurse(n), nil
}

func recurse(n uint64) int64 {
	if n <= 1 {
		return int64(n)
	}
	return recurse(n-1) + recurse(n-2)
}

// Iterative computes F(n) by building the full sequence up to index n.
// Time O(n), space O(n).
type Iterative struct{}

// Name returns the algorithm name.
func (*Iterative) Name() string { return AlgoIterative }

// Calculate builds the sequence seeded with [0, 1] and appends each
// term as the sum of the two preceding entries.
func (*Iterative) Calculate(_ context.Context, n uint64) (int64, error) {
	if err := checkDomain(n); err != nil {
		return 0, err
	}
	if n <= 1 {
		return int64(n), nil
	}
	seq := append(make([]int64, 0, n+1), 0, 1)
	for i := uint64(2); i <= n; i++ {
		seq = append(seq, seq[i-1]+seq[i-2])
	}
	return seq[n], nil
}

// Memoized computes F(n) keeping only the two most recent terms in a
// paired accumulator, advancing over odd indices with a stride of 2.
// Time O(n), space O(1).
//
// Invariant: after k loop iterations, a holds F(2k) and b holds F(2k+1).
// The loop runs ceil((n-1)/2) times, so the result is a when n is even
// and b when n is odd.
type Memoized struct{}

// Name returns the algorithm name.
func (*Memoized) Name() string { return AlgoMemoized }

// Calculate computes F(n) with the stride-based pair update.
func (*Memoized) Calculate(_ context.Context, n uint64) (int64, error) {
	if err := checkDomain(n); err != nil {
		return 0, err
	}
	if n <= 1 {
		return int64(n), nil
	}
	var a, b int64 = 0, 1
	for i := uint64(1); i < n; i += 2 {
		a += b
		b += a
	}
	if n%2 == 0 {
		return a, nil
	}
	return b, nil
}

// MemoizedOptimized is behaviorally identical to Memoized (same pair
// update, same parity-based selection) but iterates a plain counted loop
// from 1 to n/2, avoiding the stride bookkeeping. Time O(n), space O(1),
// lower constant factor than the stride form.
type MemoizedOptimized struct{}

// Name returns the algorithm name.
func (*MemoizedOptimized) Name() string { return AlgoMemoizedOpt }

// Calculate computes F(n) with the counted-loop pair update. For n <= 1
// the guard returns n before the loop, so n=0 never produces a loop with
// a non-positive count.
func (*MemoizedOptimized) Calculate(_ context.Context, n uint64) (int64, error) {
	if err := checkDomain(n); err != nil {
		return 0, err
	}
	if n <= 1 {
		return int64(n), nil
	}
	var a, b int64 = 0, 1
	for i := uint64(1); i <= n/2; i++ {
		a += b
		b += a
	}
	if n%2 == 0 {
		return a, nil
	}
	return b, nil
}
