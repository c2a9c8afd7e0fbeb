// Package canon is the canonical-vector bridge between structured telemetry
// records and flat []float64 data.
//
// A type joins the bridge by implementing [Encoder] on its value receiver and
// [Decoder] on its pointer receiver. Both directions use the same fixed field
// order, so FromVec is the left inverse of ToVec for every well-formed vector.
// Generic algorithms move data between any two participating types through
// [Convert] without knowing either layout:
//
//	var w geometry.Wrench
//	err := canon.Convert(twist, &w) // 6 values in, 6 values out
//
// Composite records are built from simpler ones. Encoding concatenates the
// parts with [Concat]; decoding splits the input with [DecodeParts], which
// checks the total arity before touching any field.
//
// A shape mismatch is an ordinary, recoverable condition: FromVec returns an
// error wrapping [ErrArity] and leaves the target unchanged.
package canon
