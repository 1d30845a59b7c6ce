package fibonacci

// ─────────────────────────────────────────────────────────────────────────────
// Engine Constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// MaxNativeIndex is the largest Fibonacci index whose value fits in a
	// signed 64-bit integer. F(92) = 7540113804746346429 is representable;
	// F(93) = 12200160415121876738 exceeds math.MaxInt64.
	//
	// Indices above this limit are rejected with an OverflowError instead
	// of silently wrapping.
	MaxNativeIndex = 92

	// DefaultRecursiveLimit is the index at or above which the naive
	// recursive algorithm is skipped by the driver. The recursive algorithm
	// makes O(phi^n) calls (phi ~ 1.618, the golden ratio), so runtimes
	// become impractical in the mid-thirties on typical hardware.
	DefaultRecursiveLimit = 35

	// DefaultN is the Fibonacci index computed when none is configured.
	// It is the upper edge of the documented valid domain.
	DefaultN = 90
)

// Canonical algorithm names, used as labels in console output, metrics
// and traces. The factory registers the calculators under lowercase
// flag-friendly keys.
const (
	AlgoRecursive   = "Recursive"
	AlgoIterative   = "Iterative"
	AlgoMemoized    = "Memoized"
	AlgoMemoizedOpt = "MemoizedOptimized"
)
