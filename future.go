package async

// Future converts t into a plain receive-only channel that delivers t's
// result exactly once. The channel is buffered, so the completing
// goroutine never blocks on it.
//
// Future is the bridge for code that knows nothing of this package's
// suspension protocol: a channel can be selected on, passed across APIs
// and received from at leisure. Internally it is a [Then] continuation, so
// it counts as t's one suspension and one consumption.
func Future[T any](t Task[T]) <-chan Result[T] {
	ch := make(chan Result[T], 1)

	Then(t, func(v T, err error) {
		ch <- Result[T]{Value: v, Err: err}
	})

	return ch
}
