package async

import "context"

// Get blocks the calling goroutine until t completes, then consumes and
// returns its result. A failure carried by t is returned as the error,
// exactly as the producer supplied it.
//
// Get counts as t's one suspension and one consumption: it must not be
// combined with other consumers of the same Task.
func Get[T any](t Task[T]) (T, error) {
	var done Latch

	if t.Suspend(done.Set) {
		done.Wait()
	}

	return t.Result()
}

// GetContext is like [Get] but gives up when ctx is done first, returning
// the context's error.
//
// Giving up does not unbind the continuation: t remains suspended on the
// abandoned wait, so it cannot be suspended again, and its result, once
// ready, stays unconsumed.
func GetContext[T any](ctx context.Context, t Task[T]) (T, error) {
	var done Latch

	if t.Suspend(done.Set) {
		if err := done.WaitContext(ctx); err != nil {
			var zero T
			return zero, err
		}
	}

	return t.Result()
}
