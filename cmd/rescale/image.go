package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rescale-ml/rescale/backend/cpu"
	"github.com/rescale-ml/rescale/internal/imageconv"
	"github.com/rescale-ml/rescale/resample"
	"github.com/rescale-ml/rescale/tensor"
)

type imageOptions struct {
	width  int
	height int
	method string
	output string
	outDir string
}

func newImageCmd() *cobra.Command {
	var opts imageOptions

	cmd := &cobra.Command{
		Use:   "image INPUT...",
		Short: "Resize one or more images (png, jpeg, gif, bmp, tiff, webp in; png out)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runImage(opts, args)
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "W", 0, "Output width in pixels (required)")
	cmd.Flags().IntVarP(&opts.height, "height", "H", 0, "Output height in pixels (required)")
	cmd.Flags().StringVarP(&opts.method, "method", "m", "bilinear", "Resampling method: bilinear or nearest")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output path (single input only)")
	cmd.Flags().StringVarP(&opts.outDir, "dir", "d", "", "Output directory (defaults to each input's directory)")

	return cmd
}

func runImage(opts imageOptions, inputs []string) error {
	if opts.width <= 0 || opts.height <= 0 {
		return fmt.Errorf("invalid output size %dx%d: --width and --height must be positive", opts.width, opts.height)
	}
	if opts.output != "" && len(inputs) > 1 {
		return fmt.Errorf("--output works with a single input, got %d", len(inputs))
	}

	method, err := resample.ParseMethod(opts.method)
	if err != nil {
		return err
	}

	backend := cpu.New()

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for _, input := range inputs {
		input := input
		g.Go(func() error {
			out := opts.output
			if out == "" {
				out = outputPath(input, opts.outDir, opts.width, opts.height)
			}
			if err := resizeImageFile(backend, input, out, opts.width, opts.height, method); err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}
			fmt.Printf("%s -> %s\n", input, out)
			return nil
		})
	}

	return g.Wait()
}

// outputPath derives "name_WxH.png" next to the input, or inside dir.
func outputPath(input, dir string, width, height int) string {
	base := filepath.Base(input)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, fmt.Sprintf("%s_%dx%d.png", name, width, height))
}

func resizeImageFile(backend tensor.Backend, input, output string, width, height int, method resample.Method) error {
	f, err := os.Open(input)
	if err != nil {
		return err
	}
	defer f.Close()

	img, err := imageconv.Decode(f)
	if err != nil {
		return err
	}

	src, err := imageconv.ToTensor(img, tensor.NCHW)
	if err != nil {
		return err
	}

	dst, err := resample.Resize(backend, src, tensor.NCHW, height, width, method)
	if err != nil {
		return err
	}

	resized, err := imageconv.ToImage(dst, tensor.NCHW)
	if err != nil {
		return err
	}

	out, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := png.Encode(out, resized); err != nil {
		out.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return out.Close()
}
