package ers

const (
	// ErrInvariantViolation roots every panic raised by ft.Invariant.
	ErrInvariantViolation Error = "invariant violation"

	// ErrInvalidInput marks malformed input, such as an unparsable index
	// or span.
	ErrInvalidInput Error = "invalid input"

	// ErrInvalidRuntimeType marks a value whose dynamic type cannot be
	// used, and is usually joined with a more specific error.
	ErrInvalidRuntimeType Error = "invalid type at runtime"
)

// IsInvariantViolation reports whether r, typically the result of
// recover(), is an error rooted at ErrInvariantViolation.
func IsInvariantViolation(r any) bool {
	err, ok := r.(error)
	if !ok || err == nil {
		return false
	}

	return Is(err, ErrInvariantViolation)
}
