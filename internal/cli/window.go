package cli

import (
	"github.com/spf13/cobra"

	"wireframe/internal/config"
	"wireframe/internal/window"
)

// NewWindowCommand creates the window command.
func NewWindowCommand(rootOpts *RootOptions) *cobra.Command {
	var flags config.Flags

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Show the spinning scene in a window",
		Long: `Open a resizable window and spin the scene once per tick.
Space pauses, R resets, Escape quits.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(rootOpts, flags)
			if err != nil {
				return err
			}
			line, bg, err := cfg.Colors()
			if err != nil {
				return err
			}
			return window.Run(cfg.Scene, window.Options{
				Title:      "wireframe",
				Width:      cfg.Width,
				Height:     cfg.Height,
				TPS:        cfg.TPS,
				LineWidth:  cfg.LineWidth,
				LineColor:  line,
				Background: bg,
			})
		},
	}

	cmd.Flags().IntVar(&flags.Width, "width", 0, "window width (default: 640)")
	cmd.Flags().IntVar(&flags.Height, "height", 0, "window height (default: 480)")
	cmd.Flags().IntVar(&flags.TPS, "tps", 0, "spin steps per second (default: 60)")

	return cmd
}
