package linalg

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Matrix is an R×C matrix stored row-major.
//
// A Matrix is a handle to its storage: assigning or passing it by value
// shares the elements, so Set through a copy is visible in the original.
// Use Clone for an independent matrix. The zero Matrix has no storage and
// panics on use; build one with Zero, Fill, Generate, FromRows or Identity.
type Matrix[R, C Dim] struct {
	data []float32
}

func Zero[R, C Dim]() Matrix[R, C] {
	return Matrix[R, C]{data: make([]float32, lenOf[R]()*lenOf[C]())}
}

// Fill returns a matrix with every element set to v.
func Fill[R, C Dim](v float32) Matrix[R, C] {
	m := Zero[R, C]()
	for i := range m.data {
		m.data[i] = v
	}
	return m
}

// Generate returns a matrix whose element (r, c) is f(r, c).
func Generate[R, C Dim](f func(r, c int) float32) Matrix[R, C] {
	m := Zero[R, C]()
	rows, cols := m.Rows(), m.Cols()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			m.data[r*cols+c] = f(r, c)
		}
	}
	return m
}

// FromRows copies rows into a new matrix. The row count and every row
// length must match the static shape.
func FromRows[R, C Dim](rows [][]float32) (Matrix[R, C], error) {
	nr, nc := lenOf[R](), lenOf[C]()
	if len(rows) != nr {
		return Matrix[R, C]{}, fmt.Errorf("%w: got %d rows, want %d", ErrShapeMismatch, len(rows), nr)
	}
	m := Zero[R, C]()
	for r, row := range rows {
		if len(row) != nc {
			return Matrix[R, C]{}, fmt.Errorf("%w: row %d has %d columns, want %d", ErrShapeMismatch, r, len(row), nc)
		}
		copy(m.data[r*nc:(r+1)*nc], row)
	}
	return m, nil
}

// MustFromRows is FromRows for literal input; it panics on a shape mismatch.
func MustFromRows[R, C Dim](rows [][]float32) Matrix[R, C] {
	m, err := FromRows[R, C](rows)
	if err != nil {
		panic(err)
	}
	return m
}

// FromSlice builds a matrix from R·C row-major values.
func FromSlice[R, C Dim](values []float32) (Matrix[R, C], error) {
	m := Zero[R, C]()
	if len(values) != len(m.data) {
		return Matrix[R, C]{}, fmt.Errorf("%w: got %d values, want %d", ErrShapeMismatch, len(values), len(m.data))
	}
	copy(m.data, values)
	return m, nil
}

// Identity returns a fresh N×N identity matrix.
func Identity[N Dim]() Matrix[N, N] {
	m := Zero[N, N]()
	n := m.Rows()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

// RowMatrix wraps a copy of v as a 1×L matrix.
func RowMatrix[L Dim](v Vector[L]) Matrix[D1, L] {
	m := Zero[D1, L]()
	copy(m.data, v.storage())
	return m
}

// ColMatrix wraps a copy of v as an L×1 matrix.
func ColMatrix[L Dim](v Vector[L]) Matrix[L, D1] {
	m := Zero[L, D1]()
	copy(m.data, v.storage())
	return m
}

func (m Matrix[R, C]) Rows() int { return lenOf[R]() }
func (m Matrix[R, C]) Cols() int { return lenOf[C]() }

// Len is the element count R·C.
func (m Matrix[R, C]) Len() int { return m.Rows() * m.Cols() }

// storage returns the elements, panicking on a zero-value Matrix.
func (m Matrix[R, C]) storage() []float32 {
	if n := m.Len(); len(m.data) != n {
		panic(fmt.Sprintf("linalg: uninitialized %dx%d matrix (has %d elements, want %d)", m.Rows(), m.Cols(), len(m.data), n))
	}
	return m.data
}

func (m Matrix[R, C]) offset(r, c int) int {
	m.storage()
	rows, cols := m.Rows(), m.Cols()
	if r < 0 || r >= rows || c < 0 || c >= cols {
		panic(fmt.Sprintf("linalg: index (%d, %d) out of range for %dx%d matrix", r, c, rows, cols))
	}
	return r*cols + c
}

func (m Matrix[R, C]) At(r, c int) float32 {
	return m.data[m.offset(r, c)]
}

func (m Matrix[R, C]) Set(r, c int, v float32) {
	m.data[m.offset(r, c)] = v
}

// Row returns a read-only view of row r backed by the matrix storage.
func (m Matrix[R, C]) Row(r int) RowView[C] {
	cols := m.Cols()
	if r < 0 || r >= m.Rows() {
		panic(fmt.Sprintf("linalg: row %d out of range for %dx%d matrix", r, m.Rows(), cols))
	}
	lo, hi := r*cols, (r+1)*cols
	return RowView[C]{data: m.storage()[lo:hi:hi]}
}

// RowSlice returns a copy of row r.
func (m Matrix[R, C]) RowSlice(r int) []float32 {
	return m.Row(r).Vector().data
}

// Col returns a copy of column c.
func (m Matrix[R, C]) Col(c int) Vector[R] {
	out := ZeroVector[R]()
	for r := range out.data {
		out.data[r] = m.At(r, c)
	}
	return out
}

func (m Matrix[R, C]) Clone() Matrix[R, C] {
	out := Zero[R, C]()
	copy(out.data, m.storage())
	return out
}

// Add returns m + o.
func (m Matrix[R, C]) Add(o Matrix[R, C]) Matrix[R, C] {
	out := m.Clone()
	for i, v := range o.storage() {
		out.data[i] += v
	}
	return out
}

// Sub returns m - o.
func (m Matrix[R, C]) Sub(o Matrix[R, C]) Matrix[R, C] {
	out := m.Clone()
	for i, v := range o.storage() {
		out.data[i] -= v
	}
	return out
}

// Scale returns m with every element multiplied by s.
func (m Matrix[R, C]) Scale(s float32) Matrix[R, C] {
	out := m.Clone()
	for i := range out.data {
		out.data[i] *= s
	}
	return out
}

// Transpose returns the C×R matrix with out[c][r] = m[r][c].
func (m Matrix[R, C]) Transpose() Matrix[C, R] {
	out := Zero[C, R]()
	src := m.storage()
	rows, cols := m.Rows(), m.Cols()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out.data[c*rows+r] = src[r*cols+c]
		}
	}
	return out
}

// Dot is the flattened inner product Σ m[i][j]·o[i][j].
func (m Matrix[R, C]) Dot(o Matrix[R, C]) float32 {
	var sum float32
	od := o.storage()
	for i, v := range m.storage() {
		sum += v * od[i]
	}
	return sum
}

// NormalizedDot is Dot divided by the element count.
func (m Matrix[R, C]) NormalizedDot(o Matrix[R, C]) float32 {
	return m.Dot(o) / float32(m.Len())
}

func (m Matrix[R, C]) Sum() float32 {
	var sum float32
	for _, v := range m.storage() {
		sum += v
	}
	return sum
}

// NormalizedSum is the mean element value.
func (m Matrix[R, C]) NormalizedSum() float32 {
	return m.Sum() / float32(m.Len())
}

// Equal reports exact element-wise equality. NaN is never equal.
func (m Matrix[R, C]) Equal(o Matrix[R, C]) bool {
	od := o.storage()
	for i, v := range m.storage() {
		if v != od[i] {
			return false
		}
	}
	return true
}

// ApproxEqual reports whether every element differs by at most tol.
func (m Matrix[R, C]) ApproxEqual(o Matrix[R, C], tol float32) bool {
	od := o.storage()
	for i, v := range m.storage() {
		if math32.Abs(v-od[i]) > tol {
			return false
		}
	}
	return true
}

// Hadamard returns the element-wise product of two square matrices.
func Hadamard[N Dim](a, b Matrix[N, N]) Matrix[N, N] {
	out := a.Clone()
	for i, v := range b.storage() {
		out.data[i] *= v
	}
	return out
}

// Mul returns the matrix product a × b.
func Mul[R, C, K Dim](a Matrix[R, C], b Matrix[C, K]) Matrix[R, K] {
	out := Zero[R, K]()
	ad, bd := a.storage(), b.storage()
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	for r := 0; r < rows; r++ {
		for k := 0; k < cols; k++ {
			var sum float32
			for c := 0; c < inner; c++ {
				sum += ad[r*inner+c] * bd[c*cols+k]
			}
			out.data[r*cols+k] = sum
		}
	}
	return out
}
