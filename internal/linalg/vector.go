package linalg

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vector is an L-component column of float32 values.
//
// Like Matrix, a Vector value is a handle to shared storage: copies alias
// the components, and the ...InPlace methods and Set write through every
// copy. Use Clone for an independent vector. The zero Vector has no storage
// and panics on use.
type Vector[L Dim] struct {
	data []float32
}

// Point is a 2-D position on a drawing surface.
type Point struct {
	X, Y float32
}

func ZeroVector[L Dim]() Vector[L] {
	return Vector[L]{data: make([]float32, lenOf[L]())}
}

// FromArray copies values into a new vector; len(values) must equal L.
func FromArray[L Dim](values []float32) (Vector[L], error) {
	v := ZeroVector[L]()
	if len(values) != len(v.data) {
		return Vector[L]{}, fmt.Errorf("%w: got %d components, want %d", ErrShapeMismatch, len(values), len(v.data))
	}
	copy(v.data, values)
	return v, nil
}

// MustVector is FromArray for literal input; it panics on a length mismatch.
func MustVector[L Dim](values ...float32) Vector[L] {
	v, err := FromArray[L](values)
	if err != nil {
		panic(err)
	}
	return v
}

// GenerateVector returns a vector whose component i is f(i).
func GenerateVector[L Dim](f func(i int) float32) Vector[L] {
	v := ZeroVector[L]()
	for i := range v.data {
		v.data[i] = f(i)
	}
	return v
}

// Vec4 builds a homogeneous (x, y, z, w) vector.
func Vec4(x, y, z, w float32) Vector[D4] {
	return Vector[D4]{data: []float32{x, y, z, w}}
}

func (v Vector[L]) Len() int { return lenOf[L]() }

// storage returns the components, panicking on a zero-value Vector.
func (v Vector[L]) storage() []float32 {
	if n := v.Len(); len(v.data) != n {
		panic(fmt.Sprintf("linalg: uninitialized vector of length %d (has %d components)", n, len(v.data)))
	}
	return v.data
}

func (v Vector[L]) checkIndex(i int) {
	v.storage()
	if i < 0 || i >= v.Len() {
		panic(fmt.Sprintf("linalg: index %d out of range for vector of length %d", i, v.Len()))
	}
}

func (v Vector[L]) At(i int) float32 {
	v.checkIndex(i)
	return v.data[i]
}

func (v Vector[L]) Set(i int, x float32) {
	v.checkIndex(i)
	v.data[i] = x
}

func (v Vector[L]) Clone() Vector[L] {
	out := ZeroVector[L]()
	copy(out.data, v.storage())
	return out
}

// Components returns a copy of the components.
func (v Vector[L]) Components() []float32 {
	return v.Clone().data
}

func (v Vector[L]) Dot(o Vector[L]) float32 {
	var sum float32
	od := o.storage()
	for i, x := range v.storage() {
		sum += x * od[i]
	}
	return sum
}

// zip combines v and o component by component into a new vector.
func (v Vector[L]) zip(o Vector[L], f func(a, b float32) float32) Vector[L] {
	vd, od := v.storage(), o.storage()
	return GenerateVector[L](func(i int) float32 { return f(vd[i], od[i]) })
}

func (v Vector[L]) Add(o Vector[L]) Vector[L] {
	return v.zip(o, func(a, b float32) float32 { return a + b })
}

func (v Vector[L]) Sub(o Vector[L]) Vector[L] {
	return v.zip(o, func(a, b float32) float32 { return a - b })
}

// Mul is the component-wise product.
func (v Vector[L]) Mul(o Vector[L]) Vector[L] {
	return v.zip(o, func(a, b float32) float32 { return a * b })
}

// Div is the component-wise quotient. Division by zero follows IEEE 754.
func (v Vector[L]) Div(o Vector[L]) Vector[L] {
	return v.zip(o, func(a, b float32) float32 { return a / b })
}

func (v Vector[L]) Scale(s float32) Vector[L] {
	vd := v.storage()
	return GenerateVector[L](func(i int) float32 { return vd[i] * s })
}

func (v Vector[L]) DivScalar(s float32) Vector[L] {
	vd := v.storage()
	return GenerateVector[L](func(i int) float32 { return vd[i] / s })
}

// ScaleInPlace multiplies every component of v by s.
func (v Vector[L]) ScaleInPlace(s float32) {
	vd := v.storage()
	for i := range vd {
		vd[i] *= s
	}
}

// MulInPlace multiplies v component-wise by o.
func (v Vector[L]) MulInPlace(o Vector[L]) {
	vd, od := v.storage(), o.storage()
	for i := range vd {
		vd[i] *= od[i]
	}
}

// ScaleAll scales each vector of vs by s.
func ScaleAll[L Dim](vs []Vector[L], s float32) {
	for _, v := range vs {
		v.ScaleInPlace(s)
	}
}

// Point drops every component after the first two.
func (v Vector[L]) Point() Point {
	if v.Len() < 2 {
		panic(fmt.Sprintf("linalg: vector of length %d has no 2-D point", v.Len()))
	}
	vd := v.storage()
	return Point{X: vd[0], Y: vd[1]}
}

// Homogenize divides every component by the last one so that it becomes 1.
// It returns false and leaves v unchanged when the last component is zero
// or the division would produce a non-finite component.
func (v Vector[L]) Homogenize() bool {
	n := v.Len()
	v.storage()
	w := v.data[n-1]
	if w == 0 {
		return false
	}
	for _, x := range v.data {
		q := x / w
		if math32.IsNaN(q) || math32.IsInf(q, 0) {
			return false
		}
	}
	for i := 0; i < n-1; i++ {
		v.data[i] /= w
	}
	v.data[n-1] = 1
	return true
}

// Equal reports exact component-wise equality.
func (v Vector[L]) Equal(o Vector[L]) bool {
	od := o.storage()
	for i, x := range v.storage() {
		if x != od[i] {
			return false
		}
	}
	return true
}

// ApproxEqual reports whether every component differs by at most tol.
func (v Vector[L]) ApproxEqual(o Vector[L], tol float32) bool {
	od := o.storage()
	for i, x := range v.storage() {
		if math32.Abs(x-od[i]) > tol {
			return false
		}
	}
	return true
}
