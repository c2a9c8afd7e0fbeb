package geometry

// Stamped records encode and decode only their inner record. FromVec leaves
// the Header as it was, so a decoded measurement keeps its time tag and frame.

// Vector3Stamped is a Vector3 with a header.
type Vector3Stamped struct {
	Header Header  `json:"header" yaml:"header"`
	Vector Vector3 `json:"vector" yaml:"vector"`
}

// Arity returns the arity of Vector.
func (s Vector3Stamped) Arity() int { return s.Vector.Arity() }

// ToVec encodes Vector; the header is not part of the vector.
func (s Vector3Stamped) ToVec() []float64 { return s.Vector.ToVec() }

// FromVec decodes into Vector and leaves the header unchanged.
func (s *Vector3Stamped) FromVec(in []float64) error { return s.Vector.FromVec(in) }

// PointStamped is a Point with a header.
type PointStamped struct {
	Header Header `json:"header" yaml:"header"`
	Point  Point  `json:"point"  yaml:"point"`
}

// Arity returns the arity of Point.
func (s PointStamped) Arity() int { return s.Point.Arity() }

// ToVec encodes Point; the header is not part of the vector.
func (s PointStamped) ToVec() []float64 { return s.Point.ToVec() }

// FromVec decodes into Point and leaves the header unchanged.
func (s *PointStamped) FromVec(in []float64) error { return s.Point.FromVec(in) }

// QuaternionStamped is a Quaternion with a header.
type QuaternionStamped struct {
	Header     Header     `json:"header"     yaml:"header"`
	Quaternion Quaternion `json:"quaternion" yaml:"quaternion"`
}

// Arity returns the arity of Quaternion.
func (s QuaternionStamped) Arity() int { return s.Quaternion.Arity() }

// ToVec encodes Quaternion; the header is not part of the vector.
func (s QuaternionStamped) ToVec() []float64 { return s.Quaternion.ToVec() }

// FromVec decodes into Quaternion and leaves the header unchanged.
func (s *QuaternionStamped) FromVec(in []float64) error { return s.Quaternion.FromVec(in) }

// PoseStamped is a Pose with a header.
type PoseStamped struct {
	Header Header `json:"header" yaml:"header"`
	Pose   Pose   `json:"pose"   yaml:"pose"`
}

// Arity returns the arity of Pose.
func (s PoseStamped) Arity() int { return s.Pose.Arity() }

// ToVec encodes Pose; the header is not part of the vector.
func (s PoseStamped) ToVec() []float64 { return s.Pose.ToVec() }

// FromVec decodes into Pose and leaves the header unchanged.
func (s *PoseStamped) FromVec(in []float64) error { return s.Pose.FromVec(in) }

// TransformStamped is a Transform from Header.FrameID to ChildFrameID.
type TransformStamped struct {
	Header       Header    `json:"header"         yaml:"header"`
	ChildFrameID string    `json:"child_frame_id" yaml:"child_frame_id"`
	Transform    Transform `json:"transform"      yaml:"transform"`
}

// Arity returns the arity of Transform.
func (s TransformStamped) Arity() int { return s.Transform.Arity() }

// ToVec encodes Transform; the header is not part of the vector.
func (s TransformStamped) ToVec() []float64 { return s.Transform.ToVec() }

// FromVec decodes into Transform and leaves the header unchanged.
func (s *TransformStamped) FromVec(in []float64) error { return s.Transform.FromVec(in) }

// TwistStamped is a Twist with a header.
type TwistStamped struct {
	Header Header `json:"header" yaml:"header"`
	Twist  Twist  `json:"twist"  yaml:"twist"`
}

// Arity returns the arity of Twist.
func (s TwistStamped) Arity() int { return s.Twist.Arity() }

// ToVec encodes Twist; the header is not part of the vector.
func (s TwistStamped) ToVec() []float64 { return s.Twist.ToVec() }

// FromVec decodes into Twist and leaves the header unchanged.
func (s *TwistStamped) FromVec(in []float64) error { return s.Twist.FromVec(in) }

// AccelStamped is an Accel with a header.
type AccelStamped struct {
	Header Header `json:"header" yaml:"header"`
	Accel  Accel  `json:"accel"  yaml:"accel"`
}

// Arity returns the arity of Accel.
func (s AccelStamped) Arity() int { return s.Accel.Arity() }

// ToVec encodes Accel; the header is not part of the vector.
func (s AccelStamped) ToVec() []float64 { return s.Accel.ToVec() }

// FromVec decodes into Accel and leaves the header unchanged.
func (s *AccelStamped) FromVec(in []float64) error { return s.Accel.FromVec(in) }

// WrenchStamped is a Wrench with a header.
type WrenchStamped struct {
	Header Header `json:"header" yaml:"header"`
	Wrench Wrench `json:"wrench" yaml:"wrench"`
}

// Arity returns the arity of Wrench.
func (s WrenchStamped) Arity() int { return s.Wrench.Arity() }

// ToVec encodes Wrench; the header is not part of the vector.
func (s WrenchStamped) ToVec() []float64 { return s.Wrench.ToVec() }

// FromVec decodes into Wrench and leaves the header unchanged.
func (s *WrenchStamped) FromVec(in []float64) error { return s.Wrench.FromVec(in) }

// PolygonStamped is a Polygon with a header.
type PolygonStamped struct {
	Header  Header  `json:"header"  yaml:"header"`
	Polygon Polygon `json:"polygon" yaml:"polygon"`
}

// ToVec encodes Polygon; the header is not part of the vector.
func (s PolygonStamped) ToVec() []float64 { return s.Polygon.ToVec() }

// FromVec decodes into Polygon and leaves the header unchanged.
func (s *PolygonStamped) FromVec(in []float64) error { return s.Polygon.FromVec(in) }
