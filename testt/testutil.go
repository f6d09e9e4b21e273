// Package testt (for test tools), provides a couple of helpers for
// the test patterns shared across packages, as a companion to the
// assert/check library.
package testt

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// Context creates a context that is canceled during the test's
// Cleanup, after the test function's defers have run.
func Context(t testing.TB) context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}

// Logf calls t.Logf with the given arguments *if* the test has
// failed.
func Logf(t testing.TB, format string, args ...any) {
	t.Helper()
	if t.Failed() {
		t.Logf(format, args...)
	}
}

// WriteFile writes content to a file with the given name in a
// directory removed when the test completes, and returns its path.
func WriteFile(t testing.TB, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}

	return path
}
