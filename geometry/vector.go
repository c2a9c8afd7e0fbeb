package geometry

import "github.com/cwbudde/algo-telemetry/canon"

// Vector3 is a free vector in 3-D space.
type Vector3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Arity implements canon.Sized.
func (Vector3) Arity() int { return 3 }

// ToVec returns [x y z].
func (v Vector3) ToVec() []float64 {
	return []float64{v.X, v.Y, v.Z}
}

// FromVec reads [x y z].
func (v *Vector3) FromVec(in []float64) error {
	if err := canon.CheckArity("Vector3", in, 3); err != nil {
		return err
	}

	v.X, v.Y, v.Z = in[0], in[1], in[2]

	return nil
}

// Point is a position in 3-D space.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Arity implements canon.Sized.
func (Point) Arity() int { return 3 }

// ToVec returns [x y z].
func (p Point) ToVec() []float64 {
	return []float64{p.X, p.Y, p.Z}
}

// FromVec reads [x y z].
func (p *Point) FromVec(in []float64) error {
	if err := canon.CheckArity("Point", in, 3); err != nil {
		return err
	}

	p.X, p.Y, p.Z = in[0], in[1], in[2]

	return nil
}

// Point32 is a single-precision position, as used by polygons and point clouds.
// Decoding rounds each value to the nearest float32.
type Point32 struct {
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
	Z float32 `json:"z" yaml:"z"`
}

// Arity implements canon.Sized.
func (Point32) Arity() int { return 3 }

// ToVec returns [x y z] widened to float64.
func (p Point32) ToVec() []float64 {
	return []float64{float64(p.X), float64(p.Y), float64(p.Z)}
}

// FromVec reads [x y z], narrowing to float32.
func (p *Point32) FromVec(in []float64) error {
	if err := canon.CheckArity("Point32", in, 3); err != nil {
		return err
	}

	p.X, p.Y, p.Z = float32(in[0]), float32(in[1]), float32(in[2])

	return nil
}

// Quaternion is an orientation in x, y, z, w order.
type Quaternion struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
	W float64 `json:"w" yaml:"w"`
}

// Identity is the quaternion of no rotation.
var Identity = Quaternion{W: 1}

// Arity implements canon.Sized.
func (Quaternion) Arity() int { return 4 }

// ToVec returns [x y z w].
func (q Quaternion) ToVec() []float64 {
	return []float64{q.X, q.Y, q.Z, q.W}
}

// FromVec reads [x y z w].
func (q *Quaternion) FromVec(in []float64) error {
	if err := canon.CheckArity("Quaternion", in, 4); err != nil {
		return err
	}

	q.X, q.Y, q.Z, q.W = in[0], in[1], in[2], in[3]

	return nil
}
