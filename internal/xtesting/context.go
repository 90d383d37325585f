package xtesting

import (
	"context"
	"testing"
	"time"
)

// ContextForCleanup returns a context with a short timeout that can be used to
// cleanup after a test ends.
//
// It can be called at any time during the test (including within a cleanup
// function). The returned context will be cancelled 3 seconds after the test
// ends.
func ContextForCleanup(t testing.TB) context.Context {
	t.Helper()

	ctx, cancel := context.WithCancelCause(context.Background())

	testEnded := make(chan struct{})
	t.Cleanup(func() {
		close(testEnded)
	})

	startTimeout := func() {
		timedOut := time.NewTimer(3 * time.Second)
		defer timedOut.Stop()

		select {
		case <-timedOut.C:
			cancel(context.DeadlineExceeded)
		case <-testEnded:
			cancel(t.Context().Err())
		}
	}

	if t.Context().Err() == nil {
		// The test has not ended yet, so the timeout does not start until it
		// does.
		t.Cleanup(startTimeout)
	} else {
		go startTimeout()
	}

	return ctx
}
