package async_test

import (
	"errors"
	"runtime"
	"testing"

	"github.com/taskcomp/async"
)

func TestStartValue(t *testing.T) {
	task := async.Start(func() (int, error) { return 42, nil })

	if v, err := async.Get(task); v != 42 || err != nil {
		t.Errorf("got (%v, %v), want (42, <nil>)", v, err)
	}
}

func TestStartError(t *testing.T) {
	errBoom := errors.New("boom")

	task := async.Start(func() (int, error) { return 0, errBoom })

	if _, err := async.Get(task); err != errBoom {
		t.Errorf("got %v, want the producer's error", err)
	}
}

func TestStartCapturesPanic(t *testing.T) {
	errBoom := errors.New("boom")

	task := async.Start(func() (int, error) { panic(errBoom) })

	_, err := async.Get(task)

	var pe *async.PanicError
	if !errors.As(err, &pe) {
		t.Fatalf("got %v, want a *PanicError", err)
	}
	if pe.Value() != errBoom {
		t.Errorf("got panic value %v, want the producer's", pe.Value())
	}
	if !errors.Is(err, errBoom) {
		t.Error("a PanicError around an error value should unwrap to it")
	}
}

func TestStartAbandonedTask(t *testing.T) {
	var gate, finished async.Latch

	// Drop the handle without ever awaiting it.
	func() {
		_ = async.Start(func() (int, error) {
			defer finished.Set()
			gate.Wait()
			return 1, nil
		})
	}()

	// Whether or not the collector has reclaimed the state by the time the
	// producer finishes, the late completion must be a silent no-op.
	runtime.GC()
	gate.Set()
	finished.Wait()
}
