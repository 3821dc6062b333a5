// Package cli provides the command-line interface for qtizer.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/qtizer/internal/version"
)

// NewRootCmd builds the root command; qtizer is a single-purpose tool
// so the root command runs the quantization pipeline itself.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "qtizer [flags] <input> [output]",
		Short: "Quantize an image's colour palette using k-means clustering",
		Long: `Qtizer derives a small set of representative colours from an image by
clustering its pixels with seeded k-means, then prints them as hex or
rgb colour codes.

When the output path carries an image file extension, qtizer instead
writes the image itself, re-coloured to its quantized palette.

Examples:
  # Print an 8-colour palette to the terminal
  qtizer wallpaper.png

  # 16 colours, rgb() codes, reproducible across runs
  qtizer -k 16 -f rgb -s 42 wallpaper.png

  # Include alpha in clustering and write the palette to a file
  qtizer --with-alpha -o palette.txt sprite.png

  # Write the quantized image instead of a palette
  qtizer -k 8 photo.jpg quantized.png`,
		Args:         cobra.RangeArgs(1, 2),
		Version:      version.Short(),
		SilenceUsage: true,
		RunE:         runQuantize,
	}

	registerQuantizeFlags(rootCmd.Flags())
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newVersionCmd builds the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.String())
		},
	}
}
