// Package result provides Result[T, E], a value that is either a success
// (Ok) carrying a T or a failure (Err) carrying an E, and the combinators
// used to compose it without panics.
//
// Highlights:
// - Ok/Err: construct a Result; the explicit type argument names the unused slot
// - Try/TryFunc/FromTuple: adapt panicking or (T, error) code into a Result
// - IsOk/IsErr/Ok/Err/Iter/Match: inspect a Result
// - Map/MapErr: transform the value or the error
// - And/AndThen/Or/OrElse: chain results, short-circuiting on the other variant
// - UnwrapOr/UnwrapOrElse: total extraction
// - Unwrap/Expect: extraction that panics on Err, for errors only
//
// Failures are data. Only Unwrap and Expect turn an Err back into a panic.
//
// For fluent, context-aware composition see package chain.
package result
