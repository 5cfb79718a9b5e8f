// Package option provides Option[T], a value that is either present (Some)
// or absent (None). It is the return type of result.Result's Ok and Err
// projections.
//
// - Some/None: construct an Option
// - IsSome/IsNone/Get: inspect it
// - Unwrap/UnwrapOr: extract the value
// - Iter: range over zero or one value
package option
