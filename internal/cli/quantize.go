package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/jmylchreest/qtizer/internal/colour"
	"github.com/jmylchreest/qtizer/internal/image"
)

var (
	// Quantize flags
	quantizeColours    int
	quantizeIterations int
	quantizeWithAlpha  bool
	quantizeSeed       int64
	quantizeOutput     string
	quantizeFormat     string
	quantizeMaxDim     int
)

// registerQuantizeFlags defines the quantization flags on the given
// flag set.
func registerQuantizeFlags(flags *pflag.FlagSet) {
	flags.IntVarP(&quantizeColours, "colours", "k", 8, "number of colours to quantize to")
	flags.IntVarP(&quantizeIterations, "iterations", "n", 5, "number of k-means iterations to perform")
	flags.BoolVarP(&quantizeWithAlpha, "with-alpha", "a", false, "include the alpha channel in clustering")
	flags.Int64VarP(&quantizeSeed, "seed", "s", 0, "RNG seed for reproducible results")
	flags.StringVarP(&quantizeOutput, "output", "o", "", "output file (default: stdout)")
	flags.StringVarP(&quantizeFormat, "format", "f", "hex", "palette output format (hex, rgb)")
	flags.IntVar(&quantizeMaxDim, "max-dimension", 0, "downscale the image so neither side exceeds this before clustering (0: off)")
}

// runQuantize executes the quantization pipeline: decode, cluster,
// format, write.
func runQuantize(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	input := args[0]
	output, err := resolveOutput(args, quantizeOutput)
	if err != nil {
		return err
	}

	// Validate option values before touching the input.
	if quantizeColours < 1 {
		return fmt.Errorf("colour count must be at least 1, got %d", quantizeColours)
	}
	if quantizeIterations < 0 {
		return fmt.Errorf("iteration count cannot be negative, got %d", quantizeIterations)
	}
	format, err := colour.ParseFormat(quantizeFormat)
	if err != nil {
		return err
	}
	if quantizeMaxDim < 0 {
		return fmt.Errorf("max dimension cannot be negative, got %d", quantizeMaxDim)
	}

	imageOut := output != "" && image.IsImagePath(output)
	if imageOut {
		if cmd.Flags().Changed("format") {
			return fmt.Errorf("cannot specify a colour-code format when writing an image file")
		}
		if quantizeWithAlpha && !image.SupportsAlpha(output) {
			ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
			return fmt.Errorf("the %s image format does not support alpha", ext)
		}
	}

	logger.Debug("loading image", "path", input)
	loader := image.NewFileLoader()
	img, err := loader.Load(input)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	if quantizeMaxDim > 0 {
		img = image.Downscale(img, quantizeMaxDim)
		bounds := img.Bounds()
		logger.Debug("downscaled image for clustering", "width", bounds.Dx(), "height", bounds.Dy())
	}

	set := image.Samples(img, quantizeWithAlpha)
	logger.Debug("extracted samples", "count", set.Len(), "alpha", set.HasAlpha)

	var seed *int64
	if cmd.Flags().Changed("seed") {
		seed = &quantizeSeed
	}

	quantizer := colour.NewQuantizer(colour.Options{
		Iterations: quantizeIterations,
		Seed:       seed,
		UseAlpha:   quantizeWithAlpha,
		Logger:     logger,
	})

	palette, assignments, err := quantizer.Cluster(set, quantizeColours)
	if err != nil {
		return fmt.Errorf("clustering failed: %w", err)
	}
	logger.Debug("clustering complete", "colours", palette.Len())

	if imageOut {
		quantized := image.Reconstruct(set, palette, assignments)
		if err := image.Save(quantized, output); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "saved quantized image to %s\n", output)
		return nil
	}

	return writePalette(palette, format, output)
}

// resolveOutput reconciles the positional output argument with the
// --output flag; the two are mutually exclusive.
func resolveOutput(args []string, flagOutput string) (string, error) {
	if len(args) < 2 {
		return flagOutput, nil
	}
	if flagOutput != "" {
		return "", fmt.Errorf("output path given both as positional argument and --output")
	}
	return args[1], nil
}

// writePalette writes one formatted line per centroid, in centroid
// order. Terminal output gets an ANSI preview of each colour; file
// output is always plain text.
func writePalette(palette *colour.Palette, format colour.Format, output string) error {
	lines := palette.Format(format)

	if output != "" {
		content := strings.Join(lines, "\n") + "\n"
		if err := os.WriteFile(output, []byte(content), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}

	colourize := term.IsTerminal(int(os.Stdout.Fd()))
	for i, line := range lines {
		if colourize {
			line = colour.PreviewLine(palette.Colours[i], line)
		}
		fmt.Println(line)
	}
	return nil
}

// newLogger builds the pipeline logger from the verbose flag.
func newLogger(cmd *cobra.Command) hclog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "qtizer",
			Output: os.Stderr,
			Level:  hclog.Debug,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "qtizer",
		Output: io.Discard,
		Level:  hclog.Off,
	})
}
