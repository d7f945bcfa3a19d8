// Package scene describes what the renderer draws: the triangles, where
// the view is centered and how fast the triangles spin.
package scene

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"wireframe/internal/linalg"
	"wireframe/internal/render"
	"wireframe/internal/transform"
)

// Triangle holds three homogeneous (x, y, z, w) vertices.
type Triangle [3][4]float32

// Spin is the rotation applied to every triangle once per frame, in radians.
type Spin struct {
	Yaw   float32 `json:"yaw" toml:"yaw" yaml:"yaw"`
	Pitch float32 `json:"pitch" toml:"pitch" yaml:"pitch"`
	Roll  float32 `json:"roll" toml:"roll" yaml:"roll"`
}

// Matrix composes the per-frame rotation as Yaw × Pitch × Roll.
func (s Spin) Matrix() linalg.Matrix[linalg.D4, linalg.D4] {
	return transform.YawPitchRoll(s.Yaw, s.Pitch, s.Roll)
}

func (s Spin) IsZero() bool {
	return s == Spin{}
}

// Scene is the declarative input of a render session.
type Scene struct {
	// Center is the canvas point the origin maps to. Nil means the
	// middle of the frame.
	Center    *[2]float32 `json:"center,omitempty" toml:"center,omitempty" yaml:"center,omitempty"`
	Spin      Spin        `json:"spin" toml:"spin" yaml:"spin"`
	Triangles []Triangle  `json:"triangles" toml:"triangles" yaml:"triangles"`
}

var ErrEmpty = errors.New("scene: no triangles")

// Default is a tilted triangle pointing up, one pointing down behind it,
// and a third pushed back along z, all spinning slowly about every axis.
func Default() Scene {
	return Scene{
		Spin: Spin{Yaw: 0.011, Pitch: 0.017, Roll: 0.023},
		Triangles: []Triangle{
			{{0, 200, 0, 1}, {200, 0, 0, 1}, {-200, 0, 0, 1}},
			{{0, -200, 50, 1}, {-150, 50, 50, 1}, {150, 50, 50, 1}},
			{{-100, -100, -120, 1}, {100, -100, -120, 1}, {0, 120, -120, 1}},
		},
	}
}

// Validate rejects an empty scene and non-finite coordinates. A w of 0 is
// allowed: such vertices are directions and their edges are not drawn.
func (s *Scene) Validate() error {
	if len(s.Triangles) == 0 {
		return ErrEmpty
	}
	for i, tri := range s.Triangles {
		for j, v := range tri {
			for k, x := range v {
				if math32.IsNaN(x) || math32.IsInf(x, 0) {
					return fmt.Errorf("scene: triangle %d vertex %d component %d is not finite", i, j, k)
				}
			}
		}
	}
	return nil
}

// CenterPoint returns the configured center, or the middle of a w×h frame.
func (s *Scene) CenterPoint(w, h int) linalg.Point {
	if s.Center != nil {
		return linalg.Point{X: s.Center[0], Y: s.Center[1]}
	}
	return linalg.Point{X: float32(w) / 2, Y: float32(h) / 2}
}

// Polygons converts the triangles into render polygons.
func (s *Scene) Polygons() []render.Polygon {
	polys := make([]render.Polygon, len(s.Triangles))
	for i, tri := range s.Triangles {
		polys[i] = render.PolygonFromArrays(tri)
	}
	return polys
}

// NewRenderer builds a renderer for a w×h frame.
func (s *Scene) NewRenderer(w, h int) (*render.Renderer, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return render.NewRenderer(s.Polygons(), s.CenterPoint(w, h)), nil
}

// Rotator returns the per-frame polygon callback for ModifyPolygons.
func (s Spin) Rotator() func(*render.Polygon) {
	m := s.Matrix()
	return func(p *render.Polygon) {
		p.Transform(m)
	}
}
