// Package geometry defines the structured telemetry records exchanged with a
// robot (vectors, points, quaternions, poses, transforms, twists, wrenches,
// polygons and their time-stamped variants) and plugs each one into the
// canonical-vector bridge of package canon.
//
// Field layouts mirror the common robotics message definitions; json and yaml
// tags use their snake_case names. Every record encodes its numeric fields in
// declaration order. Composite records delegate to their parts, and stamped
// records encode only the inner record: the [Header] never enters the vector
// and is preserved when decoding.
//
// [R3] and [Quat] adapt gonum's spatial and quaternion types so values coming
// from gonum-based code can be converted directly.
package geometry
