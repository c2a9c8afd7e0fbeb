package lowpass

import (
	"fmt"

	"github.com/cwbudde/algo-telemetry/dsp/core"
)

// Vector filters a fixed number of channels, each with its own [Scalar].
// Channels do not interact.
type Vector struct {
	channels []Scalar
}

// NewVector returns a filter with one channel per initial value. coefficients
// must have the same length as initial.
func NewVector(coefficients, initial []float64) (*Vector, error) {
	if len(coefficients) != len(initial) {
		return nil, fmt.Errorf("%w: %d coefficients for %d initial values",
			ErrInvalidArgument, len(coefficients), len(initial))
	}

	v := &Vector{channels: make([]Scalar, len(initial))}
	for i := range v.channels {
		v.channels[i] = Scalar{coeff: coefficients[i]}
		v.channels[i].Reset(initial[i])
	}

	return v, nil
}

// Channels returns the number of channels.
func (v *Vector) Channels() int { return len(v.channels) }

// Filter filters one measurement per channel and returns the outputs in a new
// slice.
func (v *Vector) Filter(x []float64) ([]float64, error) {
	return v.ProcessInto(nil, x)
}

// ProcessInto filters x into dst, reusing dst's capacity, and returns the
// resized dst. dst and x may alias.
func (v *Vector) ProcessInto(dst, x []float64) ([]float64, error) {
	if err := v.checkLen("measurement", len(x)); err != nil {
		return nil, err
	}

	dst = core.EnsureLen(dst, len(x))
	for i := range v.channels {
		dst[i] = v.channels[i].Filter(x[i])
	}

	return dst, nil
}

// Reset sets every channel to the matching value.
func (v *Vector) Reset(values []float64) error {
	if err := v.checkLen("reset", len(values)); err != nil {
		return err
	}

	for i := range v.channels {
		v.channels[i].Reset(values[i])
	}

	return nil
}

// ResetChannel sets a single channel to value.
func (v *Vector) ResetChannel(index int, value float64) error {
	if index < 0 || index >= len(v.channels) {
		return fmt.Errorf("%w: channel %d of %d", ErrOutOfRange, index, len(v.channels))
	}

	v.channels[index].Reset(value)

	return nil
}

// Outputs returns the most recent output of every channel.
func (v *Vector) Outputs() []float64 {
	out := make([]float64, len(v.channels))
	for i := range v.channels {
		out[i] = v.channels[i].Output()
	}

	return out
}

func (v *Vector) checkLen(what string, n int) error {
	if n != len(v.channels) {
		return fmt.Errorf("%w: %s has %d values, filter has %d channels",
			ErrOutOfRange, what, n, len(v.channels))
	}

	return nil
}
