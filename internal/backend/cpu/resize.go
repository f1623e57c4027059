package cpu

import (
	"fmt"

	"github.com/rescale-ml/rescale/internal/parallel"
	"github.com/rescale-ml/rescale/internal/resample"
	"github.com/rescale-ml/rescale/internal/tensor"
)

// Resize resamples the spatial dimensions of a 4D tensor to outH x outW.
//
// Input shape:  [N, C, H, W] (NCHW) or [N, H, W, C] (NHWC)
// Output shape: same layout with H and W replaced by outH and outW.
//
// Batch and channel extents are preserved; the output uses the input's
// layout and dtype. Planes are resampled concurrently when the backend's
// parallel config allows it; results are identical either way since every
// output element depends only on the read-only input.
func (cpu *CPUBackend) Resize(input *tensor.RawTensor, layout tensor.DataLayout, outH, outW int, method tensor.ResizeMethod) (*tensor.RawTensor, error) {
	inShape := input.Shape()
	if len(inShape) != 4 {
		return nil, fmt.Errorf("resize: expected 4D input, got %dD", len(inShape))
	}
	if outH <= 0 || outW <= 0 {
		return nil, fmt.Errorf("resize: invalid output size %dx%d", outH, outW)
	}

	outShape := inShape.Clone()
	outShape[layout.HeightIndex()] = outH
	outShape[layout.WidthIndex()] = outW

	if err := resample.Check(inShape, layout, outShape, layout); err != nil {
		return nil, fmt.Errorf("resize: %w", err)
	}

	output, err := tensor.NewRaw(outShape, input.DType())
	if err != nil {
		return nil, fmt.Errorf("resize: failed to create output: %w", err)
	}

	batch := inShape[layout.BatchIndex()]
	channels := inShape[layout.ChannelsIndex()]

	// Cursors hold a position, so each goroutine binds its own pair.
	parallel.ForBatch(batch, channels, func(n, c int) {
		resample.Plane(
			input.Decoder(), inShape, layout,
			output.Encoder(), outShape, layout,
			n, c, method,
		)
	}, cpu.parallel)

	return output, nil
}
