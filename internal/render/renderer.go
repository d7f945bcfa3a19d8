package render

import (
	"fmt"

	"wireframe/internal/linalg"
	"wireframe/internal/transform"
)

// Canvas is a surface that can draw a straight line between two points.
type Canvas interface {
	DrawLine(from, to linalg.Point) error
}

// CanvasFunc adapts a function to Canvas.
type CanvasFunc func(from, to linalg.Point) error

func (f CanvasFunc) DrawLine(from, to linalg.Point) error { return f(from, to) }

// edges lists the vertex pairs of a closed triangle outline.
var edges = [3][2]int{{0, 1}, {1, 2}, {2, 0}}

// DrawStats counts the work done by one Draw pass.
type DrawStats struct {
	Polygons int
	Edges    int // lines handed to the canvas
	Skipped  int // edges dropped because an endpoint was degenerate
}

// Renderer owns a fixed set of polygons and the view transform that maps
// them onto the canvas.
type Renderer struct {
	polys []Polygon
	view  linalg.Matrix[linalg.D4, linalg.D4]
}

// NewRenderer takes ownership of copies of polys and centers the view on center.
func NewRenderer(polys []Polygon, center linalg.Point) *Renderer {
	owned := make([]Polygon, len(polys))
	for i := range polys {
		owned[i] = polys[i].Clone()
	}
	return &Renderer{
		polys: owned,
		view:  ViewTransform(center),
	}
}

// ViewTransform flips y (canvas rows grow downward) and then moves the
// origin to center.
func ViewTransform(center linalg.Point) linalg.Matrix[linalg.D4, linalg.D4] {
	return linalg.Mul(transform.Translation(center.X, center.Y, 0), transform.FlipY())
}

// SetCenter replaces the view transform with one centered on center.
func (r *Renderer) SetCenter(center linalg.Point) {
	r.view = ViewTransform(center)
}

// View returns a copy of the current view transform.
func (r *Renderer) View() linalg.Matrix[linalg.D4, linalg.D4] {
	return r.view.Clone()
}

func (r *Renderer) Len() int { return len(r.polys) }

// Polygons returns deep copies of the stored polygons.
func (r *Renderer) Polygons() []Polygon {
	out := make([]Polygon, len(r.polys))
	for i := range r.polys {
		out[i] = r.polys[i].Clone()
	}
	return out
}

// ModifyPolygons calls fn on every stored polygon in order.
func (r *Renderer) ModifyPolygons(fn func(*Polygon)) {
	for i := range r.polys {
		fn(&r.polys[i])
	}
}

// Draw outlines every polygon on c. Stored polygons are not modified.
func (r *Renderer) Draw(c Canvas) error {
	_, err := r.DrawCounted(c)
	return err
}

// DrawCounted is Draw that also reports how many edges were drawn and skipped.
// The first canvas error stops the pass and is returned.
func (r *Renderer) DrawCounted(c Canvas) (DrawStats, error) {
	var stats DrawStats
	for i := range r.polys {
		tp := r.polys[i].Clone()
		tp.Transform(r.view)
		ok := tp.Homogenize()
		stats.Polygons++

		for _, e := range edges {
			a, b := e[0], e[1]
			if !ok[a] || !ok[b] {
				stats.Skipped++
				continue
			}
			if err := c.DrawLine(tp.vertices[a].Point(), tp.vertices[b].Point()); err != nil {
				return stats, fmt.Errorf("render: polygon %d edge %d-%d: %w", i, a, b, err)
			}
			stats.Edges++
		}
	}
	return stats, nil
}
