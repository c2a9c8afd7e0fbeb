package canon

import "gonum.org/v1/gonum/mat"

// Vector is a canonical vector taking part in the bridge itself. Converting
// to or from a Vector is the identity, and any length is accepted.
type Vector []float64

// ToVec returns a copy of v.
func (v Vector) ToVec() []float64 {
	return append([]float64(nil), v...)
}

// FromVec replaces v with a copy of in.
func (v *Vector) FromVec(in []float64) error {
	*v = append((*v)[:0:0], in...)
	return nil
}

// Dense adapts a gonum dense vector to the bridge, so telemetry can be handed
// to mat-based linear algebra without an intermediate copy loop at the call
// site. The zero value is an empty vector.
type Dense struct {
	mat.VecDense
}

// NewDense returns a Dense holding a copy of data.
func NewDense(data []float64) *Dense {
	d := &Dense{}
	_ = d.FromVec(data)

	return d
}

// ToVec returns the elements of d in order.
func (d Dense) ToVec() []float64 {
	if d.IsEmpty() {
		return []float64{}
	}

	return mat.Col(nil, 0, &d.VecDense)
}

// FromVec resizes d to len(in) and copies in. An empty input leaves d empty.
func (d *Dense) FromVec(in []float64) error {
	d.Reset()
	if len(in) == 0 {
		return nil
	}

	d.VecDense = *mat.NewVecDense(len(in), append([]float64(nil), in...))

	return nil
}
