// Package transform builds rotation matrices for 2-D points and
// homogeneous 3-D vertices. Angles are in radians.
package transform

import (
	"github.com/chewxy/math32"

	"wireframe/internal/linalg"
)

// Rotation2D returns the planar rotation [[cos, -sin], [sin, cos]].
func Rotation2D(a float32) linalg.Matrix[linalg.D2, linalg.D2] {
	s, c := math32.Sincos(a)
	return linalg.MustFromRows[linalg.D2, linalg.D2]([][]float32{
		{c, -s},
		{s, c},
	})
}

// planeRotation embeds Rotation2D(a) into the (i, j) plane of a 4×4
// identity. The w row and column are never touched.
func planeRotation(i, j int, a float32) linalg.Matrix[linalg.D4, linalg.D4] {
	s, c := math32.Sincos(a)
	m := linalg.Identity[linalg.D4]()
	m.Set(i, i, c)
	m.Set(i, j, -s)
	m.Set(j, i, s)
	m.Set(j, j, c)
	return m
}

// Roll rotates in the x/y plane.
func Roll(a float32) linalg.Matrix[linalg.D4, linalg.D4] {
	return planeRotation(0, 1, a)
}

// Pitch rotates in the x/z plane.
func Pitch(a float32) linalg.Matrix[linalg.D4, linalg.D4] {
	return planeRotation(0, 2, a)
}

// Yaw rotates in the y/z plane.
func Yaw(a float32) linalg.Matrix[linalg.D4, linalg.D4] {
	return planeRotation(1, 2, a)
}

// YawPitchRoll returns Yaw(yaw) × Pitch(pitch) × Roll(roll). Applied to a
// column vector, roll acts first, then pitch, then yaw.
func YawPitchRoll(yaw, pitch, roll float32) linalg.Matrix[linalg.D4, linalg.D4] {
	return linalg.Mul(linalg.Mul(Yaw(yaw), Pitch(pitch)), Roll(roll))
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float32) float32 {
	return d * math32.Pi / 180
}
