// Package chain provides a fluent wrapper around result.Result[T, E] for
// building synchronous chains whose steps receive a context.Context.
//
// Every step delegates to the matching result combinator, so short-circuit
// rules are the same: Ok-side steps never run on Err, Err-side steps never
// run on Ok.
//
// Key operations:
// - Start/FromValue/FromError: begin a chain
// - Then/Map/MapErr/OrElse: same-type steps
// - To/Convert/ThenTry: steps that change the value type
// - Or/And: pick between two chains
// - Ensure: side effects without changing the result
// - Finally: collapse the chain into a value
package chain
