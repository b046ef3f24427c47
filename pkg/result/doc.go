// Package result contains Result[T], a closed two-variant value holding either
// a successful value or the error that prevented one, plus the combinators
// that transform, inspect and recover it without unwinding the call stack.
//
// Highlights:
// - Ok/Err/From: construct Result[T]
// - Of/Run/Lift: capture a fallible computation (returned error or panic)
// - Map/MapCatching/FlatMap/Filter: transform successful values
// - OnSuccess/OnFailure/OnSuccessCatching: side-effect hooks
// - Recover/RecoverCatching/Fold: recover from or eliminate a failure
// - Get/MustGet/GetOr*/Optional/All: extract the value
// - Close/Use: release a resource held by a successful value
// - WithInterceptor: observe every Err construction process-wide
package result
