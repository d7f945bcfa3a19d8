// Package batch renders a scene headlessly into numbered image files.
package batch

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"wireframe/internal/postprocess"
	"wireframe/internal/raster"
	"wireframe/internal/render"
)

// ManifestName is the file written next to the frames.
const ManifestName = "manifest.json"

// Config holds all settings for a batch run.
type Config struct {
	OutputDir   string
	Format      Format
	Width       int
	Height      int
	Supersample int
	Frames      int
	Workers     int
	Line        raster.Options

	// Modify is applied to every polygon before each frame after the first.
	Modify func(*render.Polygon)
}

// Result holds the outcome of writing one frame.
type Result struct {
	Index   int
	File    string
	Stats   render.DrawStats
	Success bool
	Error   string
}

// Report summarizes a run.
type Report struct {
	RunID   string
	Results []Result
	Written int
	Elapsed time.Duration
}

type frame struct {
	index int
	img   *image.NRGBA
	stats render.DrawStats
}

// FrameName returns the file name of frame i.
func FrameName(i int, f Format) string {
	return fmt.Sprintf("frame_%05d%s", i, f.Ext())
}

// Run draws cfg.Frames frames from r and writes them using a worker pool.
// The renderer is only touched by the calling goroutine. Cancelling ctx
// stops drawing between frames; frames already drawn are still written,
// and the manifest lists them.
func Run(ctx context.Context, cfg Config, r *render.Renderer) (Report, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Report{}, fmt.Errorf("batch: invalid frame size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Frames <= 0 {
		return Report{}, errors.New("batch: no frames requested")
	}
	format, err := ParseFormat(string(cfg.Format))
	if err != nil {
		return Report{}, err
	}
	cfg.Format = format
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Supersample <= 0 {
		cfg.Supersample = 1
	}
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return Report{}, fmt.Errorf("batch: create %s: %w", cfg.OutputDir, err)
	}

	report := Report{RunID: uuid.NewString()}
	results := make([]Result, cfg.Frames)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					slog.Info("progress", "done", p, "total", cfg.Frames, "fps", fmt.Sprintf("%.1f", rate))
				}
			}
		}
	}()

	// Encoder pool
	frameChan := make(chan frame, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for f := range frameChan {
				results[f.index] = writeFrame(cfg, f)
				processed.Add(1)
			}
		}()
	}

	opts := cfg.Line
	opts.Scale = float32(cfg.Supersample)
	canvas := raster.NewCanvas(cfg.Width*cfg.Supersample, cfg.Height*cfg.Supersample, opts)

	drawn, runErr := drawFrames(ctx, cfg, r, canvas, frameChan)
	close(frameChan)

	wg.Wait()
	close(done)

	report.Results = results[:drawn]
	report.Elapsed = time.Since(start)
	for _, res := range report.Results {
		if res.Success {
			report.Written++
		}
	}

	manifest := NewManifest(report.RunID, cfg, report.Results)
	if err := WriteManifest(filepath.Join(cfg.OutputDir, ManifestName), manifest); err != nil && runErr == nil {
		runErr = fmt.Errorf("batch: write manifest: %w", err)
	}

	return report, runErr
}

// drawFrames is the frame loop. It returns how many frames were queued.
func drawFrames(ctx context.Context, cfg Config, r *render.Renderer, canvas *raster.Canvas, out chan<- frame) (int, error) {
	for i := 0; i < cfg.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return i, err
		}

		if i > 0 && cfg.Modify != nil {
			r.ModifyPolygons(cfg.Modify)
		}

		canvas.Clear()
		stats, err := r.DrawCounted(canvas)
		if err != nil {
			return i, fmt.Errorf("batch: frame %d: %w", i, err)
		}
		if stats.Skipped > 0 {
			slog.Debug("skipped degenerate edges", "frame", i, "skipped", stats.Skipped)
		}

		select {
		case out <- frame{index: i, img: canvas.Snapshot(), stats: stats}:
		case <-ctx.Done():
			return i, ctx.Err()
		}
	}
	return cfg.Frames, nil
}

func writeFrame(cfg Config, f frame) Result {
	res := Result{Index: f.index, File: FrameName(f.index, cfg.Format), Stats: f.stats}

	img := f.img
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.Width, cfg.Height)
	}

	outPath := filepath.Join(cfg.OutputDir, res.File)
	out, err := os.Create(outPath)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	if err := Encode(out, img, cfg.Format); err != nil {
		out.Close()
		res.Error = err.Error()
		return res
	}
	if err := out.Close(); err != nil {
		res.Error = err.Error()
		return res
	}

	slog.Debug("frame written", "index", f.index, "file", outPath, "edges", f.stats.Edges)
	res.Success = true
	return res
}
