package async

import "sync/atomic"

// The coordination word of a taskState. Before the result is consumed,
// exactly one of stateRunning, stateSuspended and stateReady holds;
// stateDone is absorbing.
//
// stateSuspended is the one state in which the cont field is populated.
// The original formulation overloads a single pointer word with three
// sentinel addresses and "anything else is a continuation"; a tagged word
// plus a separately-owned continuation slot guarded by the same
// compare-and-swap expresses the same machine without the pointer games.
const (
	stateRunning   uint32 = iota // no result yet, no consumer waiting
	stateSuspended               // no result yet, a continuation is registered
	stateReady                   // result written, not yet consumed
	stateDone                    // result consumed
)

// taskState is the state shared between a [Task] and its producer: the
// atomic coordination word, the registered continuation, and the one-shot
// result slot.
//
// The zero taskState is running.
type taskState[T any] struct {
	coord  atomic.Uint32
	cont   Continuation
	result resultSlot[T]
}

func (s *taskState[T]) isReady() bool {
	coord := s.coord.Load()
	return coord == stateReady || coord == stateDone
}

// suspend registers c to be resumed when the result arrives, and reports
// whether the consumer must now wait.
//
// A false return means the result turned out to be ready already and c was
// not retained; the consumer proceeds synchronously. Observing any state
// other than running or ready means a second suspension was attempted,
// which is a contract violation.
func (s *taskState[T]) suspend(c Continuation) bool {
	// Populate the slot first. If the CAS below succeeds, the completer's
	// later exchange of the coordination word is what orders its read of
	// this field after this write. If the CAS fails, the completer never
	// looks at the slot and no one else can touch it.
	s.cont = c

	if s.coord.CompareAndSwap(stateRunning, stateSuspended) {
		return true
	}

	s.cont = nil

	if s.coord.Load() != stateReady {
		panic("async(Task): a task may be suspended only once")
	}

	return false
}

// markReady publishes the result, which must already be in the slot, and
// returns the continuation to resume, or nil if no consumer was waiting.
//
// The continuation is returned rather than invoked so that the caller can
// resume it as its final act, keeping the state machine itself out of the
// resumption's stack.
func (s *taskState[T]) markReady() Continuation {
	switch prev := s.coord.Swap(stateReady); prev {
	case stateRunning:
		return nil
	case stateSuspended:
		c := s.cont
		s.cont = nil
		return c
	default:
		// The CompletionSource progress flag and Start's single producer
		// make a second completion unreachable; reaching here means the
		// state was corrupted.
		panic("async(Task): a task may be completed only once")
	}
}

// consume moves the state from ready to done and takes the result.
func (s *taskState[T]) consume() (T, error) {
	if !s.coord.CompareAndSwap(stateReady, stateDone) {
		if s.coord.Load() == stateDone {
			panic("async(Task): a result may be consumed only once")
		}
		panic("async(Task): a result may not be consumed before the task is ready")
	}

	return s.result.take()
}
