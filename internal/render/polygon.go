// Package render projects homogeneous triangles onto a line-drawing Canvas.
package render

import (
	"fmt"

	"wireframe/internal/linalg"
)

// Vertex is a homogeneous (x, y, z, w) coordinate. w is 1 for a position
// and 0 for a direction.
type Vertex = linalg.Vector[linalg.D4]

// Polygon is a triangle of three homogeneous vertices.
type Polygon struct {
	vertices [3]Vertex
}

// NewPolygon copies the three vertices; their w components are kept as given.
func NewPolygon(a, b, c Vertex) Polygon {
	return Polygon{vertices: [3]Vertex{a.Clone(), b.Clone(), c.Clone()}}
}

// PolygonFromArrays builds a Polygon from literal (x, y, z, w) tuples.
func PolygonFromArrays(v [3][4]float32) Polygon {
	var p Polygon
	for i, xyzw := range v {
		p.vertices[i] = linalg.Vec4(xyzw[0], xyzw[1], xyzw[2], xyzw[3])
	}
	return p
}

// Vertex returns vertex i (0, 1 or 2). The result aliases the polygon.
func (p Polygon) Vertex(i int) Vertex {
	if i < 0 || i >= len(p.vertices) {
		panic(fmt.Sprintf("render: vertex %d out of range for polygon", i))
	}
	return p.vertices[i]
}

// Vertices returns copies of the three vertices.
func (p Polygon) Vertices() [3]Vertex {
	return [3]Vertex{p.vertices[0].Clone(), p.vertices[1].Clone(), p.vertices[2].Clone()}
}

// Arrays returns the vertices as literal tuples.
func (p Polygon) Arrays() [3][4]float32 {
	var out [3][4]float32
	for i, v := range p.vertices {
		copy(out[i][:], v.Components())
	}
	return out
}

func (p Polygon) Clone() Polygon {
	return NewPolygon(p.vertices[0], p.vertices[1], p.vertices[2])
}

// Transform replaces every vertex v with m × v.
func (p *Polygon) Transform(m linalg.Matrix[linalg.D4, linalg.D4]) {
	linalg.TransformAll(m, p.vertices[:])
}

// Scale multiplies every component of every vertex by s.
func (p *Polygon) Scale(s float32) {
	linalg.ScaleAll(p.vertices[:], s)
}

// Homogenize divides each vertex by its own w. ok[i] is false for a
// degenerate vertex, which is left unchanged.
func (p *Polygon) Homogenize() (ok [3]bool) {
	for i, v := range p.vertices {
		ok[i] = v.Homogenize()
	}
	return ok
}

func (p Polygon) Equal(o Polygon) bool {
	for i, v := range p.vertices {
		if !v.Equal(o.vertices[i]) {
			return false
		}
	}
	return true
}

func (p Polygon) String() string {
	return fmt.Sprintf("{%s %s %s}", p.vertices[0], p.vertices[1], p.vertices[2])
}
