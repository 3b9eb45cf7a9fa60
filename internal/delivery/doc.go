// Package delivery implements the fixed-interval polling loop used to wait
// for a message to reach an inbox.
//
// # Ticks
//
// A wait is a sequence of ticks. Each tick fetches the full candidate set,
// scans it in order, and either:
//
//   - returns the first candidate accepted by the matcher,
//   - returns [ErrDeadline] if nothing matched and the timeout has elapsed,
//   - or sleeps for the poll interval and starts the next tick.
//
// Ticks never overlap and the deadline is only evaluated between ticks, so
// a slow request that is already in flight when the deadline passes is
// allowed to complete (and may still match).
//
// # Errors
//
// Fetch and match errors end the wait immediately and are returned as-is.
// There is no retry and no backoff.
//
// # Cancellation
//
// The context passed to [Wait] is the only way to abandon a wait early.
// Cancelling it stops the pending timer and returns the context error.
package delivery
