package async_test

import (
	"errors"
	"testing"

	"github.com/taskcomp/async"
)

func TestThenRunsInlineWhenReady(t *testing.T) {
	src := async.NewCompletionSource[int]()

	src.SetValue(7)

	var got int
	async.Then(src.Task(), func(v int, err error) { got = v })

	if got != 7 {
		t.Errorf("got %v, want 7, delivered before Then returns", got)
	}
}

func TestThenRunsOnCompletion(t *testing.T) {
	src := async.NewCompletionSource[int]()

	var got int
	var ran bool

	async.Then(src.Task(), func(v int, err error) {
		got = v
		ran = true
	})

	if ran {
		t.Fatal("the callback should not run before completion")
	}

	src.SetValue(42)

	if !ran || got != 42 {
		t.Errorf("got (ran=%v, v=%v), want the callback run inline by SetValue with 42", ran, got)
	}
}

func TestThenReceivesFailure(t *testing.T) {
	errBoom := errors.New("boom")

	src := async.NewCompletionSource[int]()

	var got error
	async.Then(src.Task(), func(v int, err error) { got = err })

	src.SetError(errBoom)

	if got != errBoom {
		t.Errorf("got %v, want the producer's error", got)
	}
}

func TestThenTwicePanics(t *testing.T) {
	src := async.NewCompletionSource[int]()
	task := src.Task()

	async.Then(task, func(int, error) {})

	expectPanic(t, "second Then", func() { async.Then(task, func(int, error) {}) })
}
