package async

import "sync/atomic"

// Completion progress of a CompletionSource. The unset→committing CAS
// claims the exclusive right to write the result slot; committed is stored
// only after the write, so the slot is never observed half-written.
const (
	progressUnset uint32 = iota
	progressCommitting
	progressCommitted
)

// A CompletionSource produces the result of exactly one [Task].
//
// Any number of goroutines may race to complete a CompletionSource; at
// most one of them writes the result. The strict methods (SetValue,
// SetError) treat losing that race as a contract violation and panic. The
// Try methods treat it as expected and report it with a false return.
//
// A successful completion may synchronously run consumer code: if the
// consumer suspended first, its [Continuation] is invoked on the
// completing goroutine before the Set call returns.
type CompletionSource[T any] struct {
	state    *taskState[T]
	progress atomic.Uint32
}

// NewCompletionSource creates a CompletionSource and the shared state of
// the [Task] it will complete.
func NewCompletionSource[T any]() *CompletionSource[T] {
	return &CompletionSource[T]{state: new(taskState[T])}
}

// Task returns the consumer-side handle of s.
func (s *CompletionSource[T]) Task() Task[T] {
	return Task[T]{state: s.state}
}

// SetValue completes the task with v.
//
// SetValue panics if s has already been completed, or with a [*PanicError]
// if the woken continuation itself panicked. Callers that can tolerate
// either should use [CompletionSource.TrySetValue].
func (s *CompletionSource[T]) SetValue(v T) {
	ok, err := s.TrySetValue(v)
	if err != nil {
		panic(err)
	}
	if !ok {
		panic("async(CompletionSource): already completed")
	}
}

// SetError completes the task with err, which the consumer receives
// verbatim from [Task.Result].
//
// SetError panics if err is nil, if s has already been completed, or with
// a [*PanicError] if the woken continuation itself panicked.
func (s *CompletionSource[T]) SetError(err error) {
	if err == nil {
		panic("async(CompletionSource): SetError(nil): undefined behavior")
	}

	ok, cerr := s.TrySetError(err)
	if cerr != nil {
		panic(cerr)
	}
	if !ok {
		panic("async(CompletionSource): already completed")
	}
}

// TrySetValue completes the task with v if no completion has happened yet,
// and reports whether this call was the one that completed it.
//
// The two return values answer different questions and are independent:
// false means another completion won the race and v was discarded; a
// non-nil error means this call did complete the task but resuming the
// woken continuation panicked, and carries that panic as a [*PanicError].
func (s *CompletionSource[T]) TrySetValue(v T) (bool, error) {
	if !s.progress.CompareAndSwap(progressUnset, progressCommitting) {
		return false, nil
	}

	s.state.result.setValue(v)
	s.progress.Store(progressCommitted)

	return true, s.complete()
}

// TrySetError completes the task with err if no completion has happened
// yet, and reports whether this call was the one that completed it.
// A nil err never completes the task.
//
// See [CompletionSource.TrySetValue] for the meaning of the two return
// values.
func (s *CompletionSource[T]) TrySetError(err error) (bool, error) {
	if err == nil {
		return false, nil
	}

	if !s.progress.CompareAndSwap(progressUnset, progressCommitting) {
		return false, nil
	}

	s.state.result.setFailure(err)
	s.progress.Store(progressCommitted)

	return true, s.complete()
}

// complete flips the shared state to ready and, if a consumer suspended
// first, resumes it here on the completing goroutine.
func (s *CompletionSource[T]) complete() error {
	c := s.state.markReady()
	if c == nil {
		return nil
	}
	return resume(c)
}
