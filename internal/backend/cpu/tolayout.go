package cpu

import (
	"fmt"

	"github.com/rescale-ml/rescale/internal/parallel"
	"github.com/rescale-ml/rescale/internal/tensor"
)

// ToLayout permutes a 4D tensor between memory layouts, e.g. NCHW to NHWC.
// The logical content is unchanged; only the element order in memory moves.
// Returns a clone when from == to.
func (cpu *CPUBackend) ToLayout(input *tensor.RawTensor, from, to tensor.DataLayout) (*tensor.RawTensor, error) {
	inShape := input.Shape()
	if len(inShape) != 4 {
		return nil, fmt.Errorf("tolayout: expected 4D input, got %dD", len(inShape))
	}
	if from == to {
		return input.Clone(), nil
	}

	batch := inShape[from.BatchIndex()]
	channels := inShape[from.ChannelsIndex()]
	height := inShape[from.HeightIndex()]
	width := inShape[from.WidthIndex()]

	outShape := make(tensor.Shape, 4)
	outShape[to.BatchIndex()] = batch
	outShape[to.ChannelsIndex()] = channels
	outShape[to.HeightIndex()] = height
	outShape[to.WidthIndex()] = width

	output, err := tensor.NewRaw(outShape, input.DType())
	if err != nil {
		return nil, fmt.Errorf("tolayout: failed to create output: %w", err)
	}

	parallel.ForBatch(batch, channels, func(n, c int) {
		in := input.Decoder()
		out := output.Encoder()
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				v := in.Seek(from.Index(inShape, n, c, y, x)).Get()
				out.Seek(to.Index(outShape, n, c, y, x)).Set(v)
			}
		}
	}, cpu.parallel)

	return output, nil
}
