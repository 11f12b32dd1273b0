// Package solo contains single-value, synchronous helpers over Result[T].
// They are the building blocks for writing command actions without
// branching on every intermediate outcome.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Validate/AndValidate: turn an invalid input into a validation failure
// - Switch/Map: move from Result[In] to Result[Out]
// - Try/Lift: call a function (Out, error) and classify the error
// - Tee/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/failure handlers
package solo
