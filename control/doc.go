// Package control provides limit enforcement for robot commands and
// measurements.
//
// [Bound] clamps a single value. [BoundAll] clamps every element of a record
// against per-element limits, and [BoundUniform] scales a whole record down
// until every element fits a symmetric limit, which keeps the direction of a
// velocity or force command intact. The record and the limits may be of
// different types as long as their canonical vectors have the same length:
//
//	lower := canon.Vector{-1, -1, -1, -0.5, -0.5, -0.5}
//	upper := canon.Vector{1, 1, 1, 0.5, 0.5, 0.5}
//	cmd, err := control.BoundAll(twist, lower, upper)
package control
