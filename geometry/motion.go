package geometry

import "github.com/cwbudde/algo-telemetry/canon"

// Twist is a velocity split into its linear and angular parts.
type Twist struct {
	Linear  Vector3 `json:"linear"  yaml:"linear"`
	Angular Vector3 `json:"angular" yaml:"angular"`
}

// Arity implements canon.Sized.
func (Twist) Arity() int { return 6 }

// ToVec returns the linear part followed by the angular part.
func (t Twist) ToVec() []float64 {
	return canon.Concat(t.Linear, t.Angular)
}

// FromVec reads the linear part followed by the angular part.
func (t *Twist) FromVec(in []float64) error {
	return canon.DecodeParts("Twist", in, &t.Linear, &t.Angular)
}

// Accel is an acceleration split into its linear and angular parts.
type Accel struct {
	Linear  Vector3 `json:"linear"  yaml:"linear"`
	Angular Vector3 `json:"angular" yaml:"angular"`
}

// Arity implements canon.Sized.
func (Accel) Arity() int { return 6 }

// ToVec returns the linear part followed by the angular part.
func (a Accel) ToVec() []float64 {
	return canon.Concat(a.Linear, a.Angular)
}

// FromVec reads the linear part followed by the angular part.
func (a *Accel) FromVec(in []float64) error {
	return canon.DecodeParts("Accel", in, &a.Linear, &a.Angular)
}

// Wrench is a force and torque applied at a point.
type Wrench struct {
	Force  Vector3 `json:"force"  yaml:"force"`
	Torque Vector3 `json:"torque" yaml:"torque"`
}

// Arity implements canon.Sized.
func (Wrench) Arity() int { return 6 }

// ToVec returns the force followed by the torque.
func (w Wrench) ToVec() []float64 {
	return canon.Concat(w.Force, w.Torque)
}

// FromVec reads the force followed by the torque.
func (w *Wrench) FromVec(in []float64) error {
	return canon.DecodeParts("Wrench", in, &w.Force, &w.Torque)
}
