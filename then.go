package async

// Then attaches fn to t as a fire-and-forget continuation. fn is invoked
// exactly once with t's consumed result: inline, before Then returns, if t
// is already complete, or otherwise on whichever goroutine completes t.
//
// Then counts as t's one suspension and one consumption: attaching a
// second continuation, or combining Then with [Get] or [Task.Result] on
// the same Task, panics.
func Then[T any](t Task[T], fn func(v T, err error)) {
	if !t.Suspend(func() { fn(t.Result()) }) {
		fn(t.Result())
	}
}
