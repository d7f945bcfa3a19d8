package render

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wireframe/internal/linalg"
	"wireframe/internal/transform"
)

type line struct {
	from, to linalg.Point
}

// recorder is a Canvas that remembers every line and can fail on demand.
type recorder struct {
	lines  []line
	failAt int // 1-based call index that fails; 0 never fails
	err    error
}

func (r *recorder) DrawLine(from, to linalg.Point) error {
	if r.failAt > 0 && len(r.lines)+1 == r.failAt {
		return r.err
	}
	r.lines = append(r.lines, line{from, to})
	return nil
}

func upTriangle() Polygon {
	return PolygonFromArrays([3][4]float32{
		{0, 200, 0, 1},
		{200, 0, 0, 1},
		{-200, 0, 0, 1},
	})
}

func TestIdentityHomogenizeKeepsCoordinates(t *testing.T) {
	p := upTriangle()
	p.Transform(linalg.Identity[linalg.D4]())
	ok := p.Homogenize()

	assert.Equal(t, [3]bool{true, true, true}, ok)
	assert.Equal(t, upTriangle().Arrays(), p.Arrays())
}

func TestHomogenizeSetsWToOne(t *testing.T) {
	p := PolygonFromArrays([3][4]float32{
		{2, 4, 6, 2},
		{-3, 3, 9, 3},
		{1, 1, 1, 0.5},
	})
	p.Homogenize()
	for i := 0; i < 3; i++ {
		assert.Equal(t, float32(1), p.Vertex(i).At(3))
	}
	assert.Equal(t, [4]float32{2, 2, 2, 1}, p.Arrays()[2])
}

func TestNewPolygonKeepsW(t *testing.T) {
	p := NewPolygon(linalg.Vec4(1, 0, 0, 0), linalg.Vec4(0, 1, 0, 1), linalg.Vec4(0, 0, 1, 0))
	arr := p.Arrays()
	assert.Equal(t, float32(0), arr[0][3])
	assert.Equal(t, float32(1), arr[1][3])
	assert.Equal(t, float32(0), arr[2][3])
	assert.Panics(t, func() { p.Vertex(3) })
}

func TestReadAccessorsOnValues(t *testing.T) {
	assert.Equal(t, [4]float32{0, 200, 0, 1}, upTriangle().Arrays()[0])
	assert.Equal(t, float32(200), upTriangle().Vertices()[1].At(0))
	assert.True(t, upTriangle().Equal(upTriangle().Clone()))
	assert.False(t, upTriangle().Equal(PolygonFromArrays([3][4]float32{})))

	// Vertex aliases the polygon storage even through a value copy
	p := upTriangle()
	p.Vertex(0).Set(0, 7)
	assert.Equal(t, float32(7), p.Arrays()[0][0])
}

func TestPolygonScaleAndClone(t *testing.T) {
	p := upTriangle()
	c := p.Clone()
	p.Scale(0.5)

	assert.Equal(t, [4]float32{0, 100, 0, 0.5}, p.Arrays()[0])
	assert.True(t, c.Equal(upTriangle()))
}

func TestDrawEmitsClosedOutline(t *testing.T) {
	r := NewRenderer([]Polygon{upTriangle()}, linalg.Point{X: 320, Y: 240})
	rec := &recorder{}

	stats, err := r.DrawCounted(rec)
	require.NoError(t, err)
	assert.Equal(t, DrawStats{Polygons: 1, Edges: 3}, stats)

	top := linalg.Point{X: 320, Y: 40}
	right := linalg.Point{X: 520, Y: 240}
	left := linalg.Point{X: 120, Y: 240}
	assert.Equal(t, []line{{top, right}, {right, left}, {left, top}}, rec.lines)
}

func TestDrawDoesNotMutatePolygons(t *testing.T) {
	polys := []Polygon{upTriangle(), PolygonFromArrays([3][4]float32{
		{10, 20, 30, 2},
		{-1, -2, -3, 1},
		{5, 5, 5, 0},
	})}
	r := NewRenderer(polys, linalg.Point{X: 50, Y: 60})
	before := r.Polygons()

	require.NoError(t, r.Draw(&recorder{}))
	require.NoError(t, r.Draw(&recorder{}))

	after := r.Polygons()
	for i := range before {
		assert.True(t, before[i].Equal(after[i]), "polygon %d changed: %s -> %s", i, before[i], after[i])
	}
}

func TestRendererCopiesInput(t *testing.T) {
	polys := []Polygon{upTriangle()}
	r := NewRenderer(polys, linalg.Point{})
	polys[0].Scale(10)

	got := r.Polygons()
	assert.Equal(t, upTriangle().Arrays(), got[0].Arrays())
	assert.Equal(t, 1, r.Len())
}

func TestDrawSkipsDegenerateVertex(t *testing.T) {
	p := PolygonFromArrays([3][4]float32{
		{0, 200, 0, 1},
		{200, 0, 0, 0}, // direction: w stays 0 under the view transform
		{-200, 0, 0, 1},
	})
	r := NewRenderer([]Polygon{p}, linalg.Point{X: 100, Y: 100})
	rec := &recorder{}

	var stats DrawStats
	var err error
	assert.NotPanics(t, func() { stats, err = r.DrawCounted(rec) })
	require.NoError(t, err)

	// only the edge 2-0 avoids vertex 1
	assert.Equal(t, DrawStats{Polygons: 1, Edges: 1, Skipped: 2}, stats)
	require.Len(t, rec.lines, 1)
	assert.Equal(t, line{linalg.Point{X: -100, Y: 100}, linalg.Point{X: 100, Y: -100}}, rec.lines[0])
	for _, l := range rec.lines {
		for _, pt := range []linalg.Point{l.from, l.to} {
			assert.False(t, math32.IsInf(pt.X, 0) || math32.IsNaN(pt.X))
			assert.False(t, math32.IsInf(pt.Y, 0) || math32.IsNaN(pt.Y))
		}
	}
}

func TestDrawAllDegenerate(t *testing.T) {
	p := PolygonFromArrays([3][4]float32{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}})
	rec := &recorder{}
	stats, err := NewRenderer([]Polygon{p}, linalg.Point{}).DrawCounted(rec)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Skipped)
	assert.Empty(t, rec.lines)
}

func TestDrawStopsOnCanvasError(t *testing.T) {
	boom := errors.New("surface lost")
	r := NewRenderer([]Polygon{upTriangle(), upTriangle()}, linalg.Point{})
	rec := &recorder{failAt: 2, err: boom}

	stats, err := r.DrawCounted(rec)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "polygon 0 edge 1-2")
	assert.Len(t, rec.lines, 1)
	assert.Equal(t, 1, stats.Edges)
}

func TestCanvasFunc(t *testing.T) {
	var n int
	c := CanvasFunc(func(from, to linalg.Point) error {
		n++
		return nil
	})
	require.NoError(t, NewRenderer([]Polygon{upTriangle(), upTriangle()}, linalg.Point{}).Draw(c))
	assert.Equal(t, 6, n)
}

func TestSetCenterReplacesView(t *testing.T) {
	r := NewRenderer([]Polygon{upTriangle()}, linalg.Point{X: 10, Y: 20})
	old := r.View()

	r.SetCenter(linalg.Point{X: 400, Y: 300})
	assert.True(t, old.Equal(ViewTransform(linalg.Point{X: 10, Y: 20})), "View must return a copy")
	assert.True(t, r.View().Equal(ViewTransform(linalg.Point{X: 400, Y: 300})))

	rec := &recorder{}
	require.NoError(t, r.Draw(rec))
	assert.Equal(t, linalg.Point{X: 400, Y: 100}, rec.lines[0].from)
}

func TestViewTransformMatchesFlipThenTranslate(t *testing.T) {
	v := ViewTransform(linalg.Point{X: 7, Y: 9})
	want := linalg.MustFromRows[linalg.D4, linalg.D4]([][]float32{
		{1, 0, 0, 7},
		{0, -1, 0, 9},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
	assert.True(t, v.Equal(want), "got\n%s", v)
}

func TestModifyPolygonsRotates(t *testing.T) {
	r := NewRenderer([]Polygon{upTriangle(), upTriangle()}, linalg.Point{})
	spin := transform.Roll(math32.Pi / 2)

	var calls int
	r.ModifyPolygons(func(p *Polygon) {
		calls++
		p.Transform(spin)
	})
	assert.Equal(t, 2, calls)

	for _, p := range r.Polygons() {
		top := p.Vertex(0)
		assert.InDelta(t, -200, top.At(0), 1e-3)
		assert.InDelta(t, 0, top.At(1), 1e-3)
		assert.Equal(t, float32(1), top.At(3))
	}
}
