// Package window shows a scene in a desktop window, spinning it once per tick.
package window

import (
	"image/color"

	"wireframe/internal/render"
	"wireframe/internal/scene"
)

// Options controls the window and line style.
type Options struct {
	Title      string
	Width      int
	Height     int
	TPS        int
	LineWidth  float32
	LineColor  color.NRGBA
	Background color.NRGBA
}

// Session is the frame loop state behind the window: it owns the renderer,
// spins the polygons once per step and keeps the view centered on resize.
type Session struct {
	scene    scene.Scene
	renderer *render.Renderer
	rotate   func(*render.Polygon)
	width    int
	height   int
	paused   bool
	frames   int
}

// NewSession builds a session for a w×h viewport.
func NewSession(sc scene.Scene, w, h int) (*Session, error) {
	r, err := sc.NewRenderer(w, h)
	if err != nil {
		return nil, err
	}
	return &Session{
		scene:    sc,
		renderer: r,
		rotate:   sc.Spin.Rotator(),
		width:    w,
		height:   h,
	}, nil
}

// Step advances the animation by one tick unless paused.
func (s *Session) Step() {
	if s.paused {
		return
	}
	s.renderer.ModifyPolygons(s.rotate)
	s.frames++
}

// TogglePause flips the paused state and returns the new one.
func (s *Session) TogglePause() bool {
	s.paused = !s.paused
	return s.paused
}

func (s *Session) Paused() bool { return s.paused }

// Frames is the number of steps applied since the last reset.
func (s *Session) Frames() int { return s.frames }

// Reset restores the scene's initial pose.
func (s *Session) Reset() {
	s.renderer = render.NewRenderer(s.scene.Polygons(), s.scene.CenterPoint(s.width, s.height))
	s.frames = 0
}

// Resize recenters the view for a new viewport size. A scene with an
// explicit center keeps it.
func (s *Session) Resize(w, h int) {
	if w == s.width && h == s.height {
		return
	}
	s.width, s.height = w, h
	s.renderer.SetCenter(s.scene.CenterPoint(w, h))
}

func (s *Session) Size() (w, h int) { return s.width, s.height }

// Draw renders the current pose onto c.
func (s *Session) Draw(c render.Canvas) (render.DrawStats, error) {
	return s.renderer.DrawCounted(c)
}
