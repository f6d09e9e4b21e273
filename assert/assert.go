// Package assert holds a small set of generic test assertions. Every
// assertion is fatal: a failure stops the test at the line of the
// assertion. The check package has the same assertions in a form that
// lets the test continue.
package assert

import (
	"errors"
	"testing"
)

// True fails the test when cond is false.
func True(t testing.TB, cond bool) {
	t.Helper()
	if !cond {
		t.Fatal("condition is false")
	}
}

// Equal fails the test when the values differ. Values are compared
// with ==, so pointers are equal only when they point to the same
// object.
func Equal[T comparable](t testing.TB, got, want T) {
	t.Helper()
	if got != want {
		t.Fatalf("got <%v>, want <%v>", got, want)
	}
}

// EqualItems fails the test unless both slices hold equal items in
// the same order.
func EqualItems[T comparable](t testing.TB, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d items %v, want %d items %v", len(got), got, len(want), want)
		return
	}

	for idx := range got {
		if got[idx] != want[idx] {
			t.Fatalf("item %d: got <%v>, want <%v>", idx, got[idx], want[idx])
			return
		}
	}
}

// Error fails the test when err is nil.
func Error(t testing.TB, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("got nil, want an error")
	}
}

// NotError fails the test when err is not nil.
func NotError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// ErrorIs fails the test unless errors.Is(err, target).
func ErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("error <%v> does not match <%v>", err, target)
	}
}

// Panic fails the test when fn returns without panicking.
func Panic(t testing.TB, fn func()) {
	t.Helper()
	if !panics(fn) {
		t.Fatal("function returned without panicking")
	}
}

// NotPanic fails the test when fn panics.
func NotPanic(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if r := recover(); r != nil {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	fn()
}

func panics(fn func()) (out bool) {
	defer func() { out = recover() != nil }()
	fn()
	return
}
