package control

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-telemetry/canon"
	"gonum.org/v1/gonum/floats"
)

// ErrInvalidArgument reports a record and limits whose canonical lengths differ.
var ErrInvalidArgument = errors.New("control: invalid argument")

// Bound returns n limited to [lower, upper]. When lower > upper the result is
// lower.
func Bound(n, lower, upper float64) float64 {
	return math.Max(lower, math.Min(n, upper))
}

// BoundAll clamps each element of input between the matching elements of lower
// and upper and returns the result as a T.
func BoundAll[T any, PT canon.Codec[T], U canon.Encoder](input T, lower, upper U) (T, error) {
	var zero T

	in := PT(&input).ToVec()
	lo := lower.ToVec()
	hi := upper.ToVec()

	if len(lo) != len(in) || len(hi) != len(in) {
		return zero, fmt.Errorf("%w: input has %d values, lower %d, upper %d",
			ErrInvalidArgument, len(in), len(lo), len(hi))
	}

	for i := range in {
		in[i] = Bound(in[i], lo[i], hi[i])
	}

	return decode[T, PT](input, in)
}

// BoundUniform scales input by a single factor so that |input[i]| <= |limit[i]|
// for every element, and returns the result as a T. Elements already within
// their limit do not shrink the factor; an input that fits is returned as is.
func BoundUniform[T any, PT canon.Codec[T], U canon.Encoder](input T, limit U) (T, error) {
	var zero T

	in := PT(&input).ToVec()

	s, err := ScaleFactor(in, limit.ToVec())
	if err != nil {
		return zero, err
	}

	floats.Scale(s, in)

	return decode[T, PT](input, in)
}

// ScaleFactor returns the largest s in [0, 1] such that s*input respects the
// symmetric limit element-wise. A zero limit on a non-zero element yields 0.
func ScaleFactor(input, limit []float64) (float64, error) {
	if len(input) != len(limit) {
		return 0, fmt.Errorf("%w: input has %d values, limit %d",
			ErrInvalidArgument, len(input), len(limit))
	}

	s := 1.0

	for i, x := range input {
		ax, al := math.Abs(x), math.Abs(limit[i])
		if ax > al {
			s = math.Min(s, al/ax)
		}
	}

	return s, nil
}

// decode writes v into a copy of like, so fields outside the canonical vector
// are kept.
func decode[T any, PT canon.Codec[T]](like T, v []float64) (T, error) {
	out := like
	if err := PT(&out).FromVec(v); err != nil {
		var zero T
		return zero, fmt.Errorf("control: decode result: %w", err)
	}

	return out, nil
}
