package testutil

import (
	"context"
	"testing"
	"time"
)

const defaultTimeout = 5 * time.Second

// Context returns a context bounded by a generous deadline so a hung fake
// upstream fails the test instead of blocking it.
func Context(t *testing.T) context.Context {
	t.Helper()

	return ContextWithTimeout(t, defaultTimeout)
}

func ContextWithTimeout(t *testing.T, timeout time.Duration) context.Context {
	t.Helper()

	ctx, cancel := context.WithTimeout(t.Context(), timeout)
	t.Cleanup(cancel)

	return ctx
}
