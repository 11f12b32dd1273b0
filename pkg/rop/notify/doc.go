// Package notify is a small synchronous observer registry. Callbacks are
// kept in slots keyed by a Handle so they can be removed at any time,
// including from inside another callback.
//
// Delivery rules:
// - callbacks run in subscription order on the goroutine that calls Notify
// - every callback registered when Notify starts is visited exactly once
// - callbacks added during delivery wait for the next Notify
// - Stream bridges a Notifier to a channel for goroutine-based consumers
package notify
