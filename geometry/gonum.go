package geometry

import (
	"github.com/cwbudde/algo-telemetry/canon"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// R3 is gonum's r3.Vec viewed as a bridge participant. Convert with R3(v) and
// r3.Vec(r); both are free.
type R3 r3.Vec

// Arity implements canon.Sized.
func (R3) Arity() int { return 3 }

// ToVec returns [X Y Z].
func (r R3) ToVec() []float64 {
	return []float64{r.X, r.Y, r.Z}
}

// FromVec reads [X Y Z].
func (r *R3) FromVec(in []float64) error {
	if err := canon.CheckArity("R3", in, 3); err != nil {
		return err
	}

	r.X, r.Y, r.Z = in[0], in[1], in[2]

	return nil
}

// Quat is gonum's quat.Number viewed as a bridge participant. Its canonical
// order is the imaginary parts followed by the real part, matching
// [Quaternion]'s x, y, z, w.
type Quat quat.Number

// Arity implements canon.Sized.
func (Quat) Arity() int { return 4 }

// ToVec returns [Imag Jmag Kmag Real].
func (q Quat) ToVec() []float64 {
	return []float64{q.Imag, q.Jmag, q.Kmag, q.Real}
}

// FromVec reads [Imag Jmag Kmag Real].
func (q *Quat) FromVec(in []float64) error {
	if err := canon.CheckArity("Quat", in, 4); err != nil {
		return err
	}

	q.Imag, q.Jmag, q.Kmag, q.Real = in[0], in[1], in[2], in[3]

	return nil
}
