package transform

import "wireframe/internal/linalg"

// Translation returns the homogeneous translation by (x, y, z).
func Translation(x, y, z float32) linalg.Matrix[linalg.D4, linalg.D4] {
	m := linalg.Identity[linalg.D4]()
	m.Set(0, 3, x)
	m.Set(1, 3, y)
	m.Set(2, 3, z)
	return m
}

// Scaling returns diag(x, y, z, 1).
func Scaling(x, y, z float32) linalg.Matrix[linalg.D4, linalg.D4] {
	m := linalg.Identity[linalg.D4]()
	m.Set(0, 0, x)
	m.Set(1, 1, y)
	m.Set(2, 2, z)
	return m
}

// FlipY mirrors the y axis, turning y-up coordinates into y-down screen ones.
func FlipY() linalg.Matrix[linalg.D4, linalg.D4] {
	return Scaling(1, -1, 1)
}
