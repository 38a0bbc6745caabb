package testutil

import (
	"context"
	"testing"
)

func Context(t *testing.T) context.Context {
	t.Helper()

	ctx, cancel := context.WithCancel(t.Context())
	t.Cleanup(cancel)

	return ctx
}
