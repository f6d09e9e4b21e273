// Package dt provides List, a sequence container built on a singly
// linked chain of nodes that behaves like a slice: positional
// indexing with negative indices, spans (start:stop:step) for reading
// and deleting ranges, membership queries, insertion and removal at
// arbitrary positions, equality, iteration, copying and reversal.
//
// Lists are not safe for concurrent use; callers are responsible for
// their own concurrency control.
package dt

import "github.com/tychoish/chain/ers"

// ErrUninitializedContainer is the content of the panic produced when you
// attempt to modify a nil list.
const ErrUninitializedContainer ers.Error = ers.Error("uninitialized container")

// ErrIndexOutOfBounds is returned when a (resolved) index falls
// outside of the range [0, length) of the list.
const ErrIndexOutOfBounds ers.Error = ers.Error("index out of bounds")

// ErrValueNotFound is returned by search operations (Remove, Index)
// when no element of the list is equal to the requested value.
const ErrValueNotFound ers.Error = ers.Error("value not found")

// ErrInvalidStep is returned when a span has a step of zero or a
// negative step.
const ErrInvalidStep ers.Error = ers.Error("invalid span step")

// ErrUnsupportedOperation is returned by operations that lists do
// not offer, such as assigning to a span.
const ErrUnsupportedOperation ers.Error = ers.Error("unsupported operation")

// ErrInvalidConstruction is returned when a list cannot be built from
// the value provided as its source.
const ErrInvalidConstruction ers.Error = ers.Error("invalid list source")

// ErrIteratorExhausted is returned by Cursor.Next when the traversal
// reached the end of the list. It marks the end of a sequence, and
// is not a failure.
const ErrIteratorExhausted ers.Error = ers.Error("iterator exhausted")

// ErrStaleCursor is returned by Cursor.Next when the list changed
// structure (insertion, deletion, clear) after the cursor was
// created or last reset.
const ErrStaleCursor ers.Error = ers.Error("stale cursor")
