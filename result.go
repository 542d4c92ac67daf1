package async

// A Result is the outcome of a completed [Task]: a value, or an error.
//
// Results appear where an outcome must travel as a single unit, e.g. as
// the element type of the channel returned by [Future].
type Result[T any] struct {
	Value T
	Err   error
}

// Get returns the value and the error carried by r.
func (r Result[T]) Get() (T, error) {
	return r.Value, r.Err
}

const (
	slotUnset = iota
	slotValue
	slotFailure
	slotTaken
)

// A resultSlot holds exactly one of {unset, value, failure}.
// It is written at most once and taken at most once.
//
// The slot itself is not synchronized. The coordination word of taskState
// orders the one write against the one take.
type resultSlot[T any] struct {
	kind  uint8
	value T
	err   error
}

func (s *resultSlot[T]) setValue(v T) {
	s.value = v
	s.kind = slotValue
}

func (s *resultSlot[T]) setFailure(err error) {
	s.err = err
	s.kind = slotFailure
}

// take moves the outcome out of s, leaving it empty.
func (s *resultSlot[T]) take() (T, error) {
	switch s.kind {
	case slotValue:
		v := s.value
		var zero T
		s.value = zero
		s.kind = slotTaken
		return v, nil
	case slotFailure:
		err := s.err
		s.err = nil
		s.kind = slotTaken
		var zero T
		return zero, err
	case slotTaken:
		panic("async(Task): result may be taken only once")
	default:
		panic("async(Task): result is not yet available")
	}
}
