package async

import "weak"

// Start runs f on a new goroutine and returns a [Task] that completes with
// f's outcome when it returns. A panic inside f is captured, stack and
// all, and carried to the consumer as a [*PanicError].
//
// The returned Task owns the shared state; the producer goroutine holds
// only a weak reference to it. A Task that is dropped without ever being
// awaited therefore does not stay alive for the sake of a still-running
// producer, and a completion that arrives after the Task is gone is a
// silent no-op.
func Start[T any](f func() (T, error)) Task[T] {
	state := new(taskState[T])
	go produce(weak.Make(state), f)
	return Task[T]{state: state}
}

func produce[T any](w weak.Pointer[taskState[T]], f func() (T, error)) {
	v, err := invoke(f)

	state := w.Value()
	if state == nil {
		// The task was abandoned. Drop the outcome.
		return
	}

	if err != nil {
		state.result.setFailure(err)
	} else {
		state.result.setValue(v)
	}

	if c := state.markReady(); c != nil {
		// Not recovered: the producer has no caller left to report a
		// resumption panic to, so it is allowed to take the process down.
		c()
	}
}

// invoke calls f, converting a panic into the returned error.
func invoke[T any](f func() (T, error)) (v T, err error) {
	defer func() {
		if x := recover(); x != nil {
			err = newPanicError(x)
		}
	}()

	return f()
}
