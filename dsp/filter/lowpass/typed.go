package lowpass

import (
	"fmt"

	"github.com/cwbudde/algo-telemetry/canon"
)

// Typed filters a structured record of type T. The record is converted to its
// canonical vector, each element is smoothed by its own channel, and the
// result is converted back to T.
//
// The channel count is fixed when the filter is built. For variable-length
// records such as polygons every measurement must have that same length.
//
// The zero value is a filter with no channels; it only accepts records whose
// canonical vector is empty.
type Typed[T any, PT canon.Codec[T]] struct {
	multi *Vector
}

// NewTyped returns a filter whose per-element coefficients are given as a
// value of the filtered type. All channels start at zero.
//
//	f, err := lowpass.NewTyped(geometry.Wrench{
//		Force:  geometry.Vector3{X: 2, Y: 2, Z: 2},
//		Torque: geometry.Vector3{X: 4, Y: 4, Z: 4},
//	})
func NewTyped[T any, PT canon.Codec[T]](coefficients T) (*Typed[T, PT], error) {
	coeffs := PT(&coefficients).ToVec()

	multi, err := NewVector(coeffs, make([]float64, len(coeffs)))
	if err != nil {
		return nil, err
	}

	return &Typed[T, PT]{multi: multi}, nil
}

// NewTypedSeeded returns a filter seeded with the values of seed. The
// coefficients may be of any type with the same arity as T.
func NewTypedSeeded[T any, PT canon.Codec[T], U canon.Encoder](seed T, coefficients U) (*Typed[T, PT], error) {
	multi, err := NewVector(coefficients.ToVec(), PT(&seed).ToVec())
	if err != nil {
		return nil, err
	}

	return &Typed[T, PT]{multi: multi}, nil
}

// Channels returns the arity the filter was built for.
func (f *Typed[T, PT]) Channels() int { return f.channels().Channels() }

// Filter smooths one measurement and returns the filtered record. Fields
// outside the canonical vector, such as a stamped record's header, are copied
// from the measurement.
func (f *Typed[T, PT]) Filter(measurement T) (T, error) {
	var zero T

	filtered, err := f.channels().Filter(PT(&measurement).ToVec())
	if err != nil {
		return zero, err
	}

	out := measurement
	if err := PT(&out).FromVec(filtered); err != nil {
		return zero, fmt.Errorf("lowpass: decode filtered value: %w", err)
	}

	return out, nil
}

// Reset sets the filter state to value.
func (f *Typed[T, PT]) Reset(value T) error {
	return f.channels().Reset(PT(&value).ToVec())
}

func (f *Typed[T, PT]) channels() *Vector {
	if f.multi == nil {
		f.multi = &Vector{}
	}

	return f.multi
}
