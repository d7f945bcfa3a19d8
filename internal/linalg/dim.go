// Package linalg implements fixed-shape float32 matrices and vectors.
//
// Shapes are carried as type parameters. A Matrix[D2, D3] and a
// Matrix[D3, D4] multiply to a Matrix[D2, D4]; adding a Matrix[D2, D3]
// to a Matrix[D3, D2] does not compile. Storage is row-major.
package linalg

import "errors"

// ErrShapeMismatch is returned when runtime-shaped input does not match
// the requested static shape.
var ErrShapeMismatch = errors.New("linalg: shape mismatch")

// Dim is a dimension marker. Implementations are empty structs whose
// Len reports the dimension; only the zero value is ever used.
type Dim interface {
	Len() int
}

type (
	D1 struct{}
	D2 struct{}
	D3 struct{}
	D4 struct{}
)

func (D1) Len() int { return 1 }
func (D2) Len() int { return 2 }
func (D3) Len() int { return 3 }
func (D4) Len() int { return 4 }

// lenOf returns the size named by a dimension marker.
func lenOf[D Dim]() int {
	var d D
	return d.Len()
}
