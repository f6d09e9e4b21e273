package dt

import "fmt"

// Optional is a wrapper type for values that may or may not be
// defined. The zero value is undefined.
type Optional[T any] struct {
	v       T
	defined bool
}

func NewOptional[T any](in T) Optional[T]  { return Optional[T]{v: in, defined: true} }
func (o Optional[T]) Reset() Optional[T]   { return Optional[T]{} }
func (o Optional[T]) Set(in T) Optional[T] { o.defined = true; o.v = in; return o }
func (o Optional[T]) Get() (T, bool)       { return o.v, o.defined }
func (o Optional[T]) Resolve() T           { return o.v }
func (o Optional[T]) OK() bool             { return o.defined }

// Or returns the value when it is defined, and the provided default
// otherwise.
func (o Optional[T]) Or(def T) T {
	if o.defined {
		return o.v
	}
	return def
}

// String renders the value with fmt, or the empty string when the
// value is not defined.
func (o Optional[T]) String() string {
	if !o.defined {
		return ""
	}
	return fmt.Sprint(o.v)
}
