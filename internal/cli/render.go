package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"wireframe/internal/batch"
	"wireframe/internal/config"
	"wireframe/internal/raster"
)

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	var flags config.Flags

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render frames to image files",
		Long: `Render the scene headlessly, one frame per spin step, into numbered
image files plus a manifest.json.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runRender(ctx, rootOpts, flags, cmd)
		},
	}

	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", "", "output directory (default: frames)")
	cmd.Flags().StringVarP(&flags.Format, "format", "f", "", "image format: webp, png or tga (default: webp)")
	cmd.Flags().IntVar(&flags.Width, "width", 0, "frame width (default: 640)")
	cmd.Flags().IntVar(&flags.Height, "height", 0, "frame height (default: 480)")
	cmd.Flags().IntVar(&flags.Supersample, "supersample", 0, "supersample factor (default: 2)")
	cmd.Flags().IntVarP(&flags.Frames, "frames", "n", 0, "number of frames (default: 120)")
	cmd.Flags().IntVarP(&flags.Workers, "workers", "w", 0, "encoder goroutines (default: NumCPU)")

	return cmd
}

func runRender(ctx context.Context, opts *RootOptions, flags config.Flags, cmd *cobra.Command) error {
	cfg, err := loadConfig(opts, flags)
	if err != nil {
		return err
	}
	format, err := batch.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	line, bg, err := cfg.Colors()
	if err != nil {
		return err
	}
	r, err := cfg.Scene.NewRenderer(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wireframe → %s, %dx%d (x%d supersample)\n", format, cfg.Width, cfg.Height, cfg.Supersample)
	fmt.Fprintf(out, "Frames: %d, Triangles: %d, Workers: %d\n", cfg.Frames, r.Len(), cfg.Workers)
	fmt.Fprintf(out, "Output: %s\n", cfg.OutputDir)
	fmt.Fprintln(out, "------------------------------------------------------------")

	modify := cfg.Scene.Spin.Rotator()
	if cfg.Scene.Spin.IsZero() {
		modify = nil
	}

	report, runErr := batch.Run(ctx, batch.Config{
		OutputDir:   cfg.OutputDir,
		Format:      format,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: cfg.Supersample,
		Frames:      cfg.Frames,
		Workers:     cfg.Workers,
		Line: raster.Options{
			LineWidth:  cfg.LineWidth,
			Color:      line,
			Background: bg,
		},
		Modify: modify,
	}, r)

	fmt.Fprintln(out, "------------------------------------------------------------")
	fmt.Fprintf(out, "Done in %.1fs\n", report.Elapsed.Seconds())
	fmt.Fprintf(out, "Rendered: %d/%d\n", report.Written, cfg.Frames)

	var failed []batch.Result
	for _, res := range report.Results {
		if !res.Success {
			failed = append(failed, res)
		}
	}
	if len(failed) > 0 {
		fmt.Fprintf(out, "\nFailed (%d):\n", len(failed))
		limit := min(20, len(failed))
		for _, res := range failed[:limit] {
			fmt.Fprintf(out, "  %s: %s\n", res.File, res.Error)
		}
	}
	if report.RunID != "" {
		fmt.Fprintf(out, "Manifest: %s (run %s)\n", filepath.Join(cfg.OutputDir, batch.ManifestName), report.RunID)
	}

	if runErr != nil {
		return runErr
	}
	if len(failed) > 0 {
		return fmt.Errorf("render: %d frames failed", len(failed))
	}
	return nil
}
