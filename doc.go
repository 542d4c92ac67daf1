// Package async provides a minimal, allocation-conscious asynchronous
// completion primitive: a single-value, single-consumer [Task] paired with
// a producer-side [CompletionSource], built on a lock-free atomic state
// machine rather than locks.
//
// # One Producer, One Consumer
//
// Each Task models exactly one eventually-available result with exactly one
// producer and at most one waiting consumer. The producer completes the
// Task through a CompletionSource (or by returning from a function given to
// [Start]); the consumer either polls with [Task.IsReady], parks itself
// with [Task.Suspend], blocks with [Get], attaches a callback with [Then],
// or converts the Task into a plain channel with [Future].
//
// The hard part is the race between a consumer registering interest in a
// not-yet-ready result and a producer completing that result from another
// goroutine. Both sides funnel through a single atomic word that serves as
// both a state tag and a mailbox for the registered continuation: whichever
// side performs the deciding atomic operation second discovers the other
// party and acts on its behalf. No matter which side wins, exactly one
// resumption happens and exactly one consumption happens, without a lock
// anywhere on the path.
//
// # Completion May Run Consumer Code
//
// When a consumer suspended first, a successful completion resumes it on
// the completing goroutine, synchronously. This is deliberate: completion
// is not guaranteed to return before arbitrary consumer-side logic has run.
// A [Continuation] is best kept a cheap wakeup, such as [Latch.Set] or a
// channel send, with the real work living on the consumer's own goroutine.
//
// # No Scheduler
//
// This package never schedules work. Go already has a fine scheduler;
// consumers that need to wait simply block a goroutine on a [Latch] or a
// channel, and a completion costs one wakeup regardless of how many tasks
// are chained behind it.
//
// # Errors
//
// Contract violations are loud: consuming a result twice, suspending a
// Task twice, consuming before readiness and completing a CompletionSource
// twice through the strict API all panic. Expected race losses are not
// violations: the TrySet methods report them with a false return instead.
// A failure stored with SetError is carried verbatim and handed back, same
// error value, when the result is consumed.
package async
