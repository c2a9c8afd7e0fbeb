package lowpass

// DefaultCoefficient is the recommended smoothing coefficient.
const DefaultCoefficient = 2.0

// Scalar is a single-channel first-order low-pass filter.
type Scalar struct {
	coeff float64

	x0, x1 float64 // x0 is the newest input
	y      float64
}

// NewScalar returns a filter with the given coefficient whose history and
// output are all set to initial.
func NewScalar(coefficient, initial float64) *Scalar {
	s := &Scalar{coeff: coefficient}
	s.Reset(initial)

	return s
}

// Filter pushes x into the history and returns the new filtered value.
func (s *Scalar) Filter(x float64) float64 {
	s.x1 = s.x0
	s.x0 = x
	s.y = (s.x0 + s.x1 - (1-s.coeff)*s.y) / (1 + s.coeff)

	return s.y
}

// ProcessInPlace filters buf sample by sample, overwriting it with the output.
func (s *Scalar) ProcessInPlace(buf []float64) {
	for i, x := range buf {
		buf[i] = s.Filter(x)
	}
}

// Reset overwrites the history and the output with v, removing any transient
// a known discontinuity would otherwise cause.
func (s *Scalar) Reset(v float64) {
	s.x0, s.x1, s.y = v, v, v
}

// Coefficient returns the smoothing coefficient.
func (s *Scalar) Coefficient() float64 { return s.coeff }

// Output returns the most recent filtered value.
func (s *Scalar) Output() float64 { return s.y }
