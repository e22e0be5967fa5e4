package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"heightmap-harvester/internal/heightmap"
	"heightmap-harvester/internal/logger"
	"heightmap-harvester/internal/models"
	"heightmap-harvester/internal/pipeline"
	"heightmap-harvester/internal/stats"
)

const (
	appName    = "heightmap-harvester"
	appVersion = "1.0.0"
)

type cliOptions struct {
	inputPath   string
	outputPath  string
	format      string
	scaleFactor float64
	outWidth    int
	outHeight   int
	diameter    int
	sigmaColor  float64
	sigmaSpace  float64
	amount      float64
	workers     int
	verbose     bool
}

func main() {
	opts := &cliOptions{}

	rootCmd := &cobra.Command{
		Use:     appName,
		Short:   "Convert grayscale images into floating-point height maps",
		Version: appVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
		SilenceUsage: true,
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.inputPath, "input", "i", "", "input image (png, jpeg, gif, bmp, tiff)")
	flags.StringVarP(&opts.outputPath, "output", "o", "", "output file path")
	flags.StringVarP(&opts.format, "format", "f", "", "output format: stl, r32 or png (default: from output extension)")
	flags.Float64VarP(&opts.scaleFactor, "scale", "s", 1.0, "intensity-to-height scale factor")
	flags.IntVarP(&opts.outWidth, "width", "W", 0, "output grid width (default: input width)")
	flags.IntVarP(&opts.outHeight, "height", "H", 0, "output grid height (default: input height)")
	flags.IntVar(&opts.diameter, "diameter", 5, "bilateral neighborhood diameter (odd)")
	flags.Float64Var(&opts.sigmaColor, "sigma-color", 25.0, "bilateral intensity sigma")
	flags.Float64Var(&opts.sigmaSpace, "sigma-space", 5.0, "bilateral spatial sigma")
	flags.Float64Var(&opts.amount, "amount", 1.5, "unsharp mask strength")
	flags.IntVar(&opts.workers, "workers", 0, "worker goroutines for the bilateral stage (0 = all CPUs)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	_ = rootCmd.MarkFlagRequired("input")
	_ = rootCmd.MarkFlagRequired("output")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, opts *cliOptions) error {
	level := zerolog.InfoLevel
	if opts.verbose {
		level = zerolog.DebugLevel
	}
	log := logger.NewConsoleLogger(level)

	if err := validateOverrides(opts); err != nil {
		return err
	}

	format := opts.format
	if format == "" {
		format = formatFromPath(opts.outputPath)
	}

	coordinator := pipeline.NewCoordinator(log)

	input, err := os.Open(opts.inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	source, err := coordinator.LoadImage(input)
	input.Close()
	if err != nil {
		return err
	}

	outWidth := opts.outWidth
	if outWidth == 0 {
		outWidth = source.Width
	}
	outHeight := opts.outHeight
	if outHeight == 0 {
		outHeight = source.Height
	}

	genOpts := heightmap.Options{
		Diameter:   opts.diameter,
		SigmaColor: opts.sigmaColor,
		SigmaSpace: opts.sigmaSpace,
		Amount:     opts.amount,
		Workers:    opts.workers,
	}

	heights, err := coordinator.Generate(ctx, genOpts, opts.scaleFactor, outWidth, outHeight)
	if err != nil {
		return err
	}

	log.Info("main", "height statistics", stats.Summarize(heights).Fields())

	output, err := os.Create(opts.outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer output.Close()

	return coordinator.Export(output, format)
}

// validateOverrides rejects out-of-range flag values through the parameter
// registry before any pixel work starts.
func validateOverrides(opts *cliOptions) error {
	config := models.NewPipelineConfiguration()
	pipelineName := config.GetCurrentPipeline()

	overrides := map[string]interface{}{
		"diameter":       opts.diameter,
		"sigma_color":    opts.sigmaColor,
		"sigma_space":    opts.sigmaSpace,
		"unsharp_amount": opts.amount,
		"workers":        opts.workers,
	}

	for name, value := range overrides {
		if err := config.SetParameter(pipelineName, name, value); err != nil {
			return err
		}
	}

	return nil
}

func formatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".stl":
		return "stl"
	case ".png":
		return "png"
	default:
		return "r32"
	}
}
