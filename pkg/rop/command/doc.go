// Package command drives one fallible asynchronous action at a time and
// publishes its lifecycle to observers.
//
// A Command moves Idle -> Executing -> Completed(success|failure) and can be
// executed again indefinitely. Every run that is not dropped emits exactly two
// notifications: one after the start (executing, no result) and one after the
// finish (not executing, result set). A trigger that arrives while a run is in
// flight is dropped without a notification.
//
// Key constructs:
// - New/Command: zero-argument command around a rop.Action
// - New1/Command1, New2/Command2: commands that remember their last arguments
// - Subscribe/Watch: callback or channel observers receiving a State snapshot
// - ClearResult/Dispose: reset the result or detach every observer
//
// Actions classify their own failures. A panic inside an action is recovered
// and stored as an unexpected failure; it never escapes Execute.
package command
