package orchestration

import (
	"github.com/agbru/fibbench/internal/fibonacci"
)

// GetCalculatorsToRun determines which calculators should be executed
// based on the algorithm selection. Returns calculators in the factory's
// canonical execution order for consistent, reproducible behavior.
func GetCalculatorsToRun(algo string, factory fibonacci.CalculatorFactory) []fibonacci.Calculator {
	if algo == "all" {
		return factory.GetAll()
	}
	if calc, err := factory.Get(algo); err == nil {
		return []fibonacci.Calculator{calc}
	}
	return nil
}
