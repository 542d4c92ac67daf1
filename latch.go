package async

import (
	"context"
	"sync"
	"time"
)

// A Latch is a binary signal for blocking waiters: once set, it stays set,
// and every past and future wait returns immediately.
//
// Latches are what the blocking adapters ([Get], [GetContext]) hand to
// [Task.Suspend] as their wakeup. They are ordinary mutex-guarded
// synchronization and take no part in the lock-free completion path.
//
// The zero Latch is ready to use.
type Latch struct {
	mu   sync.Mutex
	done chan struct{}
	set  bool
}

var closedchan = make(chan struct{})

func init() {
	close(closedchan)
}

// Set sets l, waking every waiter. Setting an already-set Latch is a no-op.
func (l *Latch) Set() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.set {
		return
	}

	l.set = true

	if l.done != nil {
		close(l.done)
	}
}

// IsSet reports whether l has been set.
func (l *Latch) IsSet() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.set
}

func (l *Latch) waitChan() <-chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.set {
		return closedchan
	}

	if l.done == nil {
		l.done = make(chan struct{})
	}

	return l.done
}

// Wait blocks until l is set.
func (l *Latch) Wait() {
	<-l.waitChan()
}

// WaitFor blocks until l is set or d elapses.
// It reports whether l was set in time.
func (l *Latch) WaitFor(d time.Duration) bool {
	done := l.waitChan()

	select {
	case <-done:
		return true
	default:
	}

	tm := time.NewTimer(d)
	defer tm.Stop()

	select {
	case <-done:
		return true
	case <-tm.C:
		return false
	}
}

// WaitContext blocks until l is set or ctx is done.
// It returns nil if l was set, or the context's error otherwise.
func (l *Latch) WaitContext(ctx context.Context) error {
	done := l.waitChan()

	select {
	case <-done:
		return nil
	default:
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
