// Package ft provides a handful of small, stateless functional
// helpers for conditionals and invariant checking.
package ft

import (
	"fmt"

	"github.com/tychoish/chain/ers"
)

// Invariant panics when err is non-nil. The panic value is an error
// wrapping both ers.ErrInvariantViolation and err, which
// ers.IsInvariantViolation recognizes.
func Invariant(err error) {
	if err == nil {
		return
	}

	panic(fmt.Errorf("%w: %w", ers.ErrInvariantViolation, err))
}

// IfElse returns the first value when the condition is true and the
// second otherwise.
func IfElse[T any](cond bool, then T, elsewise T) T {
	if cond {
		return then
	}
	return elsewise
}

// IsZero reports whether the value is the zero value of its type.
func IsZero[T comparable](in T) bool { return in == Zero[T]() }

// Default returns defaultValue when input is the zero value of T,
// and input otherwise.
func Default[T comparable](input T, defaultValue T) T {
	return IfElse(IsZero(input), defaultValue, input)
}

// Zero returns the zero value for the type.
func Zero[T any]() (zero T) { return zero }
