// Package check holds the non-fatal forms of the assertions in the
// assert package. Failures are reported with t.Error and the test
// keeps running.
package check

import (
	"errors"
	"strings"
	"testing"
)

// True reports a failure when cond is false.
func True(t testing.TB, cond bool) {
	t.Helper()
	if !cond {
		t.Error("condition is false")
	}
}

// Equal reports a failure when the values differ.
func Equal[T comparable](t testing.TB, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("got <%v>, want <%v>", got, want)
	}
}

// Zero reports a failure unless val is the zero value of its type.
func Zero[T comparable](t testing.TB, val T) {
	t.Helper()
	var zero T
	if val != zero {
		t.Errorf("got <%v>, want the zero %T", val, val)
	}
}

// EqualItems reports every position at which the slices differ, or
// a single failure when their lengths differ.
func EqualItems[T comparable](t testing.TB, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("got %d items %v, want %d items %v", len(got), got, len(want), want)
		return
	}

	for idx := range got {
		if got[idx] != want[idx] {
			t.Errorf("item %d: got <%v>, want <%v>", idx, got[idx], want[idx])
		}
	}
}

func Error(t testing.TB, err error) {
	t.Helper()
	if err == nil {
		t.Error("got nil, want an error")
	}
}

func NotError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

// ErrorIs reports a failure unless errors.Is(err, target).
func ErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf("error <%v> does not match <%v>", err, target)
	}
}

// Panic reports a failure when fn returns without panicking.
func Panic(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Error("function returned without panicking")
		}
	}()
	fn()
}

// Substring reports a failure unless str contains substr.
func Substring(t testing.TB, str, substr string) {
	t.Helper()
	if !strings.Contains(str, substr) {
		t.Errorf("%q does not contain %q", str, substr)
	}
}
