// Package orchestration coordinates benchmark execution: it applies the
// recursive-limit guard, runs the selected algorithms one at a time under
// the timing harness, and cross-validates their results.
package orchestration
