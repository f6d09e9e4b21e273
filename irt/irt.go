// Package irt, for iterator tools, provides a collection of stateless
// iterator handling functions over the native iter.Seq types, with no
// dependencies on other packages in this module.
package irt

import (
	"iter"
	"slices"
)

// Collect materializes the sequence into a slice. Optional arguments
// set the initial length and capacity of the output slice, as in
// make().
func Collect[T any](seq iter.Seq[T], args ...int) []T {
	size := idxorz(0, args)
	return slices.AppendSeq(make([]T, size, max(size, idxorz(1, args))), seq)
}

func Slice[T any](sl []T) iter.Seq[T]    { return slices.Values(sl) }
func Args[T any](items ...T) iter.Seq[T] { return Slice(items) }

// Apply calls the function on every item in the sequence and returns
// the number of items processed.
func Apply[T any](seq iter.Seq[T], op func(T)) (count int) {
	for value := range seq {
		op(value)
		count++
	}
	return count
}

// WithIndex pairs each item of the sequence with its zero-based
// position.
func WithIndex[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		idx := 0
		for value := range seq {
			if !yield(idx, value) {
				return
			}
			idx++
		}
	}
}

// Contains reports whether any item in the sequence is equal to cmp.
func Contains[T comparable](seq iter.Seq[T], cmp T) bool { return Index(seq, cmp) >= 0 }

// Index returns the position of the first item in the sequence equal
// to cmp, or -1 if there is no such item.
func Index[T comparable](seq iter.Seq[T], cmp T) int {
	for idx, value := range WithIndex(seq) {
		if value == cmp {
			return idx
		}
	}
	return -1
}

// Count returns the number of items in the sequence equal to cmp.
func Count[T comparable](seq iter.Seq[T], cmp T) (count int) {
	for value := range seq {
		if value == cmp {
			count++
		}
	}
	return count
}

// Equal consumes both sequences in lock step and reports whether
// they yield the same items in the same order.
func Equal[T comparable](lhs iter.Seq[T], rhs iter.Seq[T]) bool {
	next, stop := iter.Pull(rhs)
	defer stop()

	for value := range lhs {
		other, ok := next()
		if !ok || other != value {
			return false
		}
	}

	_, ok := next()
	return !ok
}

func idxorz[E any, S ~[]E](idx int, sl S) (zero E) {
	if idx < 0 || len(sl) <= idx {
		return zero
	}
	return sl[idx]
}
