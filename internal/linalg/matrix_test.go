package linalg

import (
	"math"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample3x4() Matrix[D3, D4] {
	return MustFromRows[D3, D4]([][]float32{
		{1, 2, 3, 4},
		{-5, 6.5, 0, 8},
		{9, -10, 11, 0.25},
	})
}

func TestFromRowsTranspose(t *testing.T) {
	m := MustFromRows[D2, D2]([][]float32{{1, 2}, {3, 4}})
	want := MustFromRows[D2, D2]([][]float32{{1, 3}, {2, 4}})
	assert.True(t, m.Transpose().Equal(want), "got\n%s", m.Transpose())
}

func TestTransposeShape(t *testing.T) {
	m := sample3x4()
	tr := m.Transpose()

	assert.Equal(t, 4, tr.Rows())
	assert.Equal(t, 3, tr.Cols())
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			assert.Equal(t, m.At(r, c), tr.At(c, r))
		}
	}
}

func TestTransposeTwice(t *testing.T) {
	m := sample3x4()
	assert.True(t, m.Transpose().Transpose().Equal(m))

	sq := Generate[D4, D4](func(r, c int) float32 { return float32(r*7 - c*3) })
	assert.True(t, sq.Transpose().Transpose().Equal(sq))
}

func TestDotAndNormalizedDot(t *testing.T) {
	a := MustFromRows[D2, D2]([][]float32{{1, 2}, {3, 4}})
	ones := Fill[D2, D2](1)

	assert.Equal(t, float32(10), a.Dot(ones))
	assert.Equal(t, float32(2.5), a.NormalizedDot(ones))
}

func TestSum(t *testing.T) {
	m := sample3x4()
	assert.InDelta(t, 29.75, m.Sum(), 1e-5)
	assert.InDelta(t, 29.75/12, m.NormalizedSum(), 1e-5)
}

func TestIdentityIsNeutral(t *testing.T) {
	m := Generate[D4, D4](func(r, c int) float32 { return float32(r+1) * float32(c-2) })
	id := Identity[D4]()

	assert.True(t, Mul(id, m).Equal(m))
	assert.True(t, Mul(m, id).Equal(m))

	// rectangular: I3 × A(3×4) × I4 == A
	a := sample3x4()
	assert.True(t, Mul(Mul(Identity[D3](), a), Identity[D4]()).Equal(a))
}

func TestIdentityFresh(t *testing.T) {
	id := Identity[D2]()
	id.Set(0, 0, 9)
	assert.Equal(t, float32(1), Identity[D2]().At(0, 0))
}

func TestMulMatchesTripleSum(t *testing.T) {
	a := MustFromRows[D2, D3]([][]float32{{1, 2, 3}, {4, 5, 6}})
	b := MustFromRows[D3, D2]([][]float32{{7, 8}, {9, 10}, {11, 12}})

	got := Mul(a, b)
	want := MustFromRows[D2, D2]([][]float32{{58, 64}, {139, 154}})
	assert.True(t, got.Equal(want), "got\n%s", got)

	for r := 0; r < 2; r++ {
		for k := 0; k < 2; k++ {
			var sum float32
			for c := 0; c < 3; c++ {
				sum += a.At(r, c) * b.At(c, k)
			}
			assert.Equal(t, sum, got.At(r, k))
		}
	}
}

func TestAddSubScale(t *testing.T) {
	a := MustFromRows[D2, D3]([][]float32{{1, 2, 3}, {4, 5, 6}})
	b := Fill[D2, D3](2)

	assert.True(t, a.Add(b).Equal(MustFromRows[D2, D3]([][]float32{{3, 4, 5}, {6, 7, 8}})))
	assert.True(t, a.Sub(b).Equal(MustFromRows[D2, D3]([][]float32{{-1, 0, 1}, {2, 3, 4}})))
	assert.True(t, a.Scale(-1).Add(a).Equal(Zero[D2, D3]()))

	// operands untouched
	assert.Equal(t, float32(1), a.At(0, 0))
	assert.Equal(t, float32(2), b.At(1, 2))
}

func TestHadamard(t *testing.T) {
	a := MustFromRows[D2, D2]([][]float32{{1, 2}, {3, 4}})
	b := MustFromRows[D2, D2]([][]float32{{5, 6}, {7, 8}})
	want := MustFromRows[D2, D2]([][]float32{{5, 12}, {21, 32}})
	assert.True(t, Hadamard(a, b).Equal(want))
}

func TestNaNPropagates(t *testing.T) {
	nan := float32(math.NaN())
	a := MustFromRows[D2, D2]([][]float32{{nan, 0}, {0, 1}})
	sum := a.Add(Identity[D2]())
	assert.True(t, math.IsNaN(float64(sum.At(0, 0))))
	assert.Equal(t, float32(2), sum.At(1, 1))
}

func TestFromRowsShapeMismatch(t *testing.T) {
	_, err := FromRows[D2, D2]([][]float32{{1, 2}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = FromRows[D2, D2]([][]float32{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = FromSlice[D2, D3]([]float32{1, 2, 3})
	assert.ErrorIs(t, err, ErrShapeMismatch)

	assert.Panics(t, func() { MustFromRows[D3, D1]([][]float32{{1}}) })
}

func TestOutOfRangePanics(t *testing.T) {
	m := sample3x4()

	assert.Panics(t, func() { m.At(3, 0) })
	assert.Panics(t, func() { m.At(0, 4) })
	assert.Panics(t, func() { m.At(-1, 0) })
	assert.Panics(t, func() { m.Set(0, -1, 1) })
	assert.Panics(t, func() { m.Row(3) })
	assert.Panics(t, func() { m.Col(4) })
	assert.Panics(t, func() { m.Row(0).At(4) })
}

func TestRowViewSharesStorage(t *testing.T) {
	m := sample3x4()
	row := m.Row(1)

	assert.Equal(t, 4, row.Len())
	assert.Equal(t, float32(6.5), row.At(1))

	m.Set(1, 1, 42)
	assert.Equal(t, float32(42), row.At(1))

	// copies are detached
	cp := m.RowSlice(1)
	m.Set(1, 1, 0)
	assert.Equal(t, float32(42), cp[1])
}

func TestColAndRowColMatrix(t *testing.T) {
	m := sample3x4()
	assert.Equal(t, []float32{2, 6.5, -10}, m.Col(1).Components())

	v := MustVector[D3](1, 2, 3)
	outer := Mul(ColMatrix(v), RowMatrix(v))
	assert.Equal(t, float32(6), outer.At(1, 2))
	assert.Equal(t, float32(14), Mul(RowMatrix(v), ColMatrix(v)).At(0, 0))
}

func TestCloneIsDeep(t *testing.T) {
	m := sample3x4()
	c := m.Clone()
	c.Set(0, 0, 100)
	assert.Equal(t, float32(1), m.At(0, 0))
}

func TestStringGolden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	g.Assert(t, "matrix_2x2", []byte(MustFromRows[D2, D2]([][]float32{{1, 2}, {3, 4}}).String()))
	g.Assert(t, "matrix_2x3", []byte(MustFromRows[D2, D3]([][]float32{
		{0.5, -2.25, 1000000},
		{0, 3.75, -1},
	}).String()))
}

func TestStringDeterministic(t *testing.T) {
	m := sample3x4()
	assert.Equal(t, m.String(), m.Clone().String())
}

func TestZeroValueMatrixPanicsDescriptively(t *testing.T) {
	var m Matrix[D2, D2]
	want := "linalg: uninitialized 2x2 matrix (has 0 elements, want 4)"

	assert.PanicsWithValue(t, want, func() { m.At(0, 0) })
	assert.PanicsWithValue(t, want, func() { Mul(m, Identity[D2]()) })
	assert.PanicsWithValue(t, want, func() { Identity[D2]().Add(m) })
	assert.PanicsWithValue(t, want, func() { m.Transpose() })
}

func TestMatrixCopiesShareStorage(t *testing.T) {
	a := Identity[D2]()
	b := a
	b.Set(0, 1, 5)
	assert.Equal(t, float32(5), a.At(0, 1))

	c := a.Clone()
	c.Set(0, 1, 9)
	assert.Equal(t, float32(5), a.At(0, 1))
}
