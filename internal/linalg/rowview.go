package linalg

import "fmt"

// RowView is a read-only window onto one row of a Matrix. It shares the
// matrix storage, so later writes to the matrix show through the view.
type RowView[L Dim] struct {
	data []float32
}

func (rv RowView[L]) Len() int { return lenOf[L]() }

func (rv RowView[L]) At(i int) float32 {
	if i < 0 || i >= rv.Len() {
		panic(fmt.Sprintf("linalg: index %d out of range for row of length %d", i, rv.Len()))
	}
	return rv.data[i]
}

// Dot is the inner product of the row with v.
func (rv RowView[L]) Dot(v Vector[L]) float32 {
	var sum float32
	vd := v.storage()
	for i, x := range rv.data {
		sum += x * vd[i]
	}
	return sum
}

// Vector copies the row out into an owned vector.
func (rv RowView[L]) Vector() Vector[L] {
	out := ZeroVector[L]()
	copy(out.data, rv.data)
	return out
}
