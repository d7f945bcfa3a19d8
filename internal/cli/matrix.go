package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"wireframe/internal/linalg"
	"wireframe/internal/transform"
)

// NewMatrixCommand creates the matrix command, which prints worked
// examples of the matrix algebra.
func NewMatrixCommand(_ *RootOptions) *cobra.Command {
	var degrees float32

	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Print sample matrices and rotations",
		Long: `Print a diagonal-line pattern, a variation of it and their normalized
dot product, followed by the rotation matrices for --angle degrees.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			// diagonal line
			a := linalg.MustFromRows[linalg.D3, linalg.D3]([][]float32{{1, -1, -1}, {-1, 1, -1}, {-1, -1, 1}})
			b := linalg.MustFromRows[linalg.D3, linalg.D3]([][]float32{{-1, -1, -1}, {-1, 1, -1}, {-1, -1, 1}})
			fmt.Fprintln(out, a)
			fmt.Fprintln(out, b)
			fmt.Fprintf(out, "normalized dot: %v\n", a.NormalizedDot(b))

			rad := transform.Deg2Rad(degrees)
			fmt.Fprintf(out, "\nrotation %v°:\n%v\n", degrees, transform.Rotation2D(rad))
			fmt.Fprintf(out, "roll:\n%v\n", transform.Roll(rad))
			fmt.Fprintf(out, "pitch:\n%v\n", transform.Pitch(rad))
			fmt.Fprintf(out, "yaw:\n%v\n", transform.Yaw(rad))
			return nil
		},
	}

	cmd.Flags().Float32VarP(&degrees, "angle", "a", 30, "rotation angle in degrees")

	return cmd
}
