package geometry

import "github.com/cwbudde/algo-telemetry/canon"

// Pose2D is a planar position and heading.
type Pose2D struct {
	X     float64 `json:"x"     yaml:"x"`
	Y     float64 `json:"y"     yaml:"y"`
	Theta float64 `json:"theta" yaml:"theta"`
}

// Arity implements canon.Sized.
func (Pose2D) Arity() int { return 3 }

// ToVec returns [x y theta].
func (p Pose2D) ToVec() []float64 {
	return []float64{p.X, p.Y, p.Theta}
}

// FromVec reads [x y theta].
func (p *Pose2D) FromVec(in []float64) error {
	if err := canon.CheckArity("Pose2D", in, 3); err != nil {
		return err
	}

	p.X, p.Y, p.Theta = in[0], in[1], in[2]

	return nil
}

// Pose is a position and orientation in 3-D space.
type Pose struct {
	Position    Point      `json:"position"    yaml:"position"`
	Orientation Quaternion `json:"orientation" yaml:"orientation"`
}

// Arity implements canon.Sized.
func (Pose) Arity() int { return 7 }

// ToVec returns the position followed by the orientation.
func (p Pose) ToVec() []float64 {
	return canon.Concat(p.Position, p.Orientation)
}

// FromVec reads the position followed by the orientation.
func (p *Pose) FromVec(in []float64) error {
	return canon.DecodeParts("Pose", in, &p.Position, &p.Orientation)
}

// Transform is a translation followed by a rotation between two frames.
type Transform struct {
	Translation Vector3    `json:"translation" yaml:"translation"`
	Rotation    Quaternion `json:"rotation"    yaml:"rotation"`
}

// Arity implements canon.Sized.
func (Transform) Arity() int { return 7 }

// ToVec returns the translation followed by the rotation.
func (t Transform) ToVec() []float64 {
	return canon.Concat(t.Translation, t.Rotation)
}

// FromVec reads the translation followed by the rotation.
func (t *Transform) FromVec(in []float64) error {
	return canon.DecodeParts("Transform", in, &t.Translation, &t.Rotation)
}
