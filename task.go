package async

// A Continuation is the wakeup for a suspended consumer: a function the
// completing side invokes, exactly once, when the result becomes ready.
//
// A Continuation runs on whichever goroutine performs the completion, so it
// should be cheap and must not block. [Latch.Set] and a buffered channel
// send are good Continuations; doing the actual consuming work is not.
type Continuation func()

// A Task is the consumer-side handle to a single eventually-available
// result.
//
// A Task is obtained from [CompletionSource.Task] or from [Start]. Over its
// lifetime it may be bound to at most one [Continuation], and its result
// may be consumed at most once; violating either contract panics.
//
// Most consumers do not drive a Task by hand. [Get] blocks for the result,
// [Then] attaches a callback, and [Future] converts the Task into a plain
// channel. All three are built purely on the three methods below.
type Task[T any] struct {
	state *taskState[T]
}

// IsReady reports whether the result is available (or already consumed).
// It never blocks.
func (t Task[T]) IsReady() bool {
	return t.state.isReady()
}

// Suspend registers c to be invoked when the result becomes available, and
// reports whether the consumer actually suspended.
//
// A false return means the result is already available: c will never be
// invoked and the caller should proceed straight to [Task.Result]. A true
// return means c is now owned by the task and will be invoked, exactly
// once, from whichever goroutine completes it.
//
// Suspend may succeed at most once per Task; a second suspension panics.
func (t Task[T]) Suspend(c Continuation) bool {
	if c == nil {
		panic("async(Task): Suspend(nil): undefined behavior")
	}
	return t.state.suspend(c)
}

// Result consumes the result of t, returning the completion value or the
// carried failure exactly as the producer supplied it.
//
// Result may only be called once, and only after readiness was observed
// (IsReady returned true, Suspend returned false, or the registered
// Continuation ran). Calling it early or twice panics.
func (t Task[T]) Result() (T, error) {
	return t.state.consume()
}
