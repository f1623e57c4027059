// Package resample implements spatial resizing of 4D image-batch tensors by
// bilinear or nearest-neighbor interpolation.
//
// The coordinate convention projects the top-left corner of each output
// texel into the input image, matching the TensorFlow and AndroidNN resize
// operators. This yields different results than projecting texel centers and
// must not be changed without breaking numerical parity with those
// frameworks.
package resample

import (
	"fmt"
	"math"

	"github.com/rescale-ml/rescale/internal/tensor"
)

// lerp linearly interpolates between a and b by weight w in [0, 1].
func lerp(a, b, w float32) float32 {
	return w*b + (1-w)*a
}

// sourceCoord maps one output coordinate to input space along a single axis.
// scale is inputExtent / outputExtent. It returns the floor coordinate, the
// next coordinate clamped to the last valid input index, and the fractional
// weight in [0, 1).
//
// The clamp is the border policy: at the last row/column both interpolation
// samples collapse onto the same texel instead of reading past the input.
func sourceCoord(outCoord int, scale float32, inputExtent int) (base, next int, frac float32) {
	src := float32(outCoord) * scale
	floor := float32(math.Floor(float64(src)))
	base = int(floor)
	frac = src - floor
	next = base + 1
	if next > inputExtent-1 {
		next = inputExtent - 1
	}
	return base, next, frac
}

// Plane resamples the (n, c) spatial plane of the input into the output.
// Planes of a call are independent, so callers may distribute them across
// goroutines as long as each goroutine uses its own cursors.
//
// Trusted hot path: shapes and coordinates are not validated here.
func Plane(
	in tensor.Decoder, inShape tensor.Shape, inLayout tensor.DataLayout,
	out tensor.Encoder, outShape tensor.Shape, outLayout tensor.DataLayout,
	n, c int, method tensor.ResizeMethod,
) {
	inH := inShape[inLayout.HeightIndex()]
	inW := inShape[inLayout.WidthIndex()]
	outH := outShape[outLayout.HeightIndex()]
	outW := outShape[outLayout.WidthIndex()]

	// Scale from output pixel coordinates to the corresponding input
	// coordinates, per axis.
	scaleY := float32(inH) / float32(outH)
	scaleX := float32(inW) / float32(outW)

	for y := 0; y < outH; y++ {
		y0, y1, yw := sourceCoord(y, scaleY, inH)

		for x := 0; x < outW; x++ {
			x0, x1, xw := sourceCoord(x, scaleX, inW)

			var value float32
			switch method {
			case tensor.Bilinear:
				topLeft := in.Seek(inLayout.Index(inShape, n, c, y0, x0)).Get()
				topRight := in.Seek(inLayout.Index(inShape, n, c, y0, x1)).Get()
				bottomLeft := in.Seek(inLayout.Index(inShape, n, c, y1, x0)).Get()
				bottomRight := in.Seek(inLayout.Index(inShape, n, c, y1, x1)).Get()

				top := lerp(topLeft, topRight, xw)
				bottom := lerp(bottomLeft, bottomRight, xw)
				value = lerp(top, bottom, yw)

			case tensor.NearestNeighbor:
				// Distance from the fractional source point to the two
				// clamped diagonal candidates (x0,y0) and (x1,y1). Only
				// these two are considered, never the mixed corners, and
				// a tie selects the base candidate. Compatible with the
				// reference operator; not a general 2D nearest search.
				dx1 := xw - float32(x1-x0)
				dy1 := yw - float32(y1-y0)
				d0 := math.Sqrt(float64(xw*xw + yw*yw))
				d1 := math.Sqrt(float64(dx1*dx1 + dy1*dy1))

				yNearest, xNearest := y0, x0
				if d0 > d1 {
					yNearest, xNearest = y1, x1
				}
				value = in.Seek(inLayout.Index(inShape, n, c, yNearest, xNearest)).Get()

			default:
				panic(fmt.Sprintf("resample: unknown method %d", method))
			}

			out.Seek(outLayout.Index(outShape, n, c, y, x)).Set(value)
		}
	}
}

// Run resamples every output element in lexicographic (n, c, y, x) order.
// Each output element is written exactly once; the input is only read.
//
// Trusted caller contract: shapes must be 4D with positive dimensions and
// matching batch/channel extents. Use Resize for a validated entry point.
func Run(
	in tensor.Decoder, inShape tensor.Shape, inLayout tensor.DataLayout,
	out tensor.Encoder, outShape tensor.Shape, outLayout tensor.DataLayout,
	method tensor.ResizeMethod,
) {
	batch := inShape[inLayout.BatchIndex()]
	channels := inShape[inLayout.ChannelsIndex()]

	for n := 0; n < batch; n++ {
		for c := 0; c < channels; c++ {
			Plane(in, inShape, inLayout, out, outShape, outLayout, n, c, method)
		}
	}
}

// Check validates the shape contract of a resize call: both tensors are 4D
// with positive dimensions, and batch and channel extents agree between
// input and output. Only the spatial extents may differ.
func Check(inShape tensor.Shape, inLayout tensor.DataLayout, outShape tensor.Shape, outLayout tensor.DataLayout) error {
	if len(inShape) != 4 {
		return fmt.Errorf("input must be 4D, got %dD shape %v", len(inShape), inShape)
	}
	if len(outShape) != 4 {
		return fmt.Errorf("output must be 4D, got %dD shape %v", len(outShape), outShape)
	}
	if err := inShape.Validate(); err != nil {
		return fmt.Errorf("invalid input shape: %w", err)
	}
	if err := outShape.Validate(); err != nil {
		return fmt.Errorf("invalid output shape: %w", err)
	}
	if in, out := inShape[inLayout.BatchIndex()], outShape[outLayout.BatchIndex()]; in != out {
		return fmt.Errorf("batch extent mismatch: input %d, output %d", in, out)
	}
	if in, out := inShape[inLayout.ChannelsIndex()], outShape[outLayout.ChannelsIndex()]; in != out {
		return fmt.Errorf("channel extent mismatch: input %d, output %d", in, out)
	}
	return nil
}

// Resize is the validated cursor-level entry point. It checks the shape
// contract, then resamples the input into the output. The input and output
// tensors may carry different memory layouts.
func Resize(
	in tensor.Decoder, inShape tensor.Shape, inLayout tensor.DataLayout,
	out tensor.Encoder, outShape tensor.Shape, outLayout tensor.DataLayout,
	method tensor.ResizeMethod,
) error {
	if err := Check(inShape, inLayout, outShape, outLayout); err != nil {
		return err
	}
	Run(in, inShape, inLayout, out, outShape, outLayout, method)
	return nil
}
