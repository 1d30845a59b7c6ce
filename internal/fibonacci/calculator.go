package fibonacci

import (
	"context"
	"fmt"
)

// Calculator is the common contract for all Fibonacci engine algorithms.
// Implementations are pure functions of n; the context allows the caller
// to abandon a long-running computation (only the naive recursive
// algorithm runs long enough for this to matter in practice).
type Calculator interface {
	// Name returns the human-readable algorithm name used in output.
	Name() string
	// Calculate computes F(n). It returns an OverflowError when n exceeds
	// MaxNativeIndex, since the result would not fit in an int64.
	Calculate(ctx context.Context, n uint64) (int64, error)
}

// CostHinter is an optional interface for calculators whose running time
// grows exponentially with n. The driver uses it to decide which runs
// must be guarded behind the recursive limit.
type CostHinter interface {
	// Exponential reports whether the algorithm's time complexity is
	// exponential in n.
	Exponential() bool
}

// CalculatorFactory provides access to the available algorithm
// implementations.
type CalculatorFactory interface {
	// Get returns the calculator registered under the given key.
	Get(key string) (Calculator, error)
	// List returns the registered keys in canonical execution order:
	// the guarded recursive algorithm first, then the linear algorithms.
	List() []string
	// GetAll returns all calculators in canonical execution order.
	GetAll() []Calculator
}

// defaultFactory is the standard CalculatorFactory backed by a fixed
// registration table.
type defaultFactory struct {
	order       []string
	calculators map[string]Calculator
}

// NewDefaultFactory creates a factory with the four engine algorithms
// registered under their flag-friendly keys.
func NewDefaultFactory() CalculatorFactory {
	f := &defaultFactory{calculators: make(map[string]Calculator)}
	f.register("recursive", &Recursive{})
	f.register("iterative", &Iterative{})
	f.register("memoized", &Memoized{})
	f.register("memoized-opt", &MemoizedOptimized{})
	return f
}

func (f *defaultFactory) register(key string, calc Calculator) {
	f.order = append(f.order, key)
	f.calculators[key] = calc
}

// Get returns the calculator registered under the given key.
func (f *defaultFactory) Get(key string) (Calculator, error) {
	calc, ok := f.calculators[key]
	if !ok {
		return nil, fmt.Errorf("unknown algorithm %q", key)
	}
	return calc, nil
}

// List returns the registered keys in canonical execution order.
func (f *defaultFactory) List() []string {
	keys := make([]string, len(f.order))
	copy(keys, f.order)
	return keys
}

// GetAll returns all calculators in canonical execution order.
func (f *defaultFactory) GetAll() []Calculator {
	calculators := make([]Calculator, 0, len(f.order))
	for _, key := range f.order {
		calculators = append(calculators, f.calculators[key])
	}
	return calculators
}
