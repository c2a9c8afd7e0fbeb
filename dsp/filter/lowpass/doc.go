// Package lowpass provides the first-order smoothing filter used on robot
// telemetry, at three levels:
//
//   - [Scalar] smooths a single channel.
//   - [Vector] runs a fixed number of independent Scalar channels.
//   - [Typed] filters a structured record (a wrench, a pose, ...) by converting
//     it to its canonical vector, running a Vector, and converting back.
//
// Each channel applies
//
//	y[n] = (x[n] + x[n-1] - (1-c)*y[n-1]) / (1+c)
//
// where c is the filter coefficient. Larger coefficients smooth more and lag
// more; [DefaultCoefficient] is a reasonable starting point. Filters are seeded
// with an initial value so the first output is not a transient.
//
// Filters are not safe for concurrent use. Length and index violations on
// Vector and Typed return [ErrOutOfRange] or [ErrInvalidArgument]; they mark a
// caller bug, not a data condition.
package lowpass
