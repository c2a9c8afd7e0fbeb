package geometry

import (
	"fmt"

	"github.com/cwbudde/algo-telemetry/canon"
)

// Polygon is an ordered list of vertices. Its arity is three times the number
// of points, so it is the one record whose canonical length varies.
type Polygon struct {
	Points []Point32 `json:"points" yaml:"points"`
}

// ToVec returns the points flattened as [x0 y0 z0 x1 y1 z1 ...].
func (p Polygon) ToVec() []float64 {
	out := make([]float64, 0, 3*len(p.Points))
	for _, pt := range p.Points {
		out = append(out, pt.ToVec()...)
	}

	return out
}

// FromVec groups the input into consecutive triples. Any length that is a
// multiple of three is accepted, including zero.
func (p *Polygon) FromVec(in []float64) error {
	if len(in)%3 != 0 {
		return fmt.Errorf("%w: Polygon wants a multiple of 3 values, got %d", canon.ErrArity, len(in))
	}

	points := make([]Point32, len(in)/3)
	for i := range points {
		if err := points[i].FromVec(in[3*i : 3*i+3]); err != nil {
			return err
		}
	}

	p.Points = points

	return nil
}
