package async

import (
	"fmt"
	"runtime/debug"
)

// A PanicError carries a recovered panic value together with the stack
// captured at the point of the panic.
//
// PanicErrors arise in two places: [Start] stores one as the carried
// failure when the producer function panics, and the TrySet methods of
// [CompletionSource] return one when the woken continuation panics.
type PanicError struct {
	value any
	stack []byte
}

func newPanicError(v any) *PanicError {
	return &PanicError{value: v, stack: debug.Stack()}
}

// Value returns the value the panic was raised with.
func (e *PanicError) Value() any {
	return e.value
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v\n\n%s", e.value, e.stack)
}

func (e *PanicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}

// resume invokes a continuation, converting a panic into an error so that
// the completing caller can tell "resumption failed" apart from its own
// outcome.
func resume(c Continuation) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = newPanicError(v)
		}
	}()

	c()
	return nil
}
