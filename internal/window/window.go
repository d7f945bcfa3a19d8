//go:build cgo

package window

import (
	"errors"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"wireframe/internal/linalg"
	"wireframe/internal/scene"
)

// Run opens a window and blocks until it is closed or Escape is pressed.
// Space pauses the spin and R resets it.
func Run(sc scene.Scene, opts Options) error {
	s, err := NewSession(sc, opts.Width, opts.Height)
	if err != nil {
		return err
	}

	g := &game{s: s, opts: opts}
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.TPS)

	err = ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type game struct {
	s    *Session
	opts Options
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		slog.Debug("pause toggled", "paused", g.s.TogglePause())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.s.Reset()
	}
	g.s.Step()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.opts.Background)
	c := screenCanvas{dst: screen, width: g.opts.LineWidth, color: g.opts.LineColor}
	stats, err := g.s.Draw(c)
	if err != nil {
		slog.Warn("draw failed", "frame", g.s.Frames(), "err", err)
		return
	}
	if stats.Skipped > 0 {
		slog.Debug("skipped degenerate edges", "frame", g.s.Frames(), "skipped", stats.Skipped)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.s.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// screenCanvas strokes lines straight onto the ebiten screen.
type screenCanvas struct {
	dst   *ebiten.Image
	width float32
	color color.NRGBA
}

func (c screenCanvas) DrawLine(from, to linalg.Point) error {
	vector.StrokeLine(c.dst, from.X, from.Y, to.X, to.Y, c.width, c.color, true)
	return nil
}
