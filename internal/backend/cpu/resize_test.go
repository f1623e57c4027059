package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rescale-ml/rescale/internal/parallel"
	"github.com/rescale-ml/rescale/internal/tensor"
)

func TestResize_UpscaleBilinear(t *testing.T) {
	backend := New()

	input, err := tensor.FromFloat32([]float32{1, 2, 3, 4}, tensor.Shape{1, 1, 2, 2})
	require.NoError(t, err)

	output, err := backend.Resize(input, tensor.NCHW, 4, 4, tensor.Bilinear)
	require.NoError(t, err)

	assert.True(t, output.Shape().Equal(tensor.Shape{1, 1, 4, 4}))
	assert.Equal(t, []float32{
		1, 1.5, 2, 2,
		2, 2.5, 3, 3,
		3, 3.5, 4, 4,
		3, 3.5, 4, 4,
	}, output.AsFloat32())
}

func TestResize_Identity(t *testing.T) {
	backend := New()

	data := []float32{5, -1, 2, 0, 7, 3, 8, 4, -6}
	input, err := tensor.FromFloat32(data, tensor.Shape{1, 1, 3, 3})
	require.NoError(t, err)

	for _, method := range []tensor.ResizeMethod{tensor.Bilinear, tensor.NearestNeighbor} {
		output, err := backend.Resize(input, tensor.NCHW, 3, 3, method)
		require.NoError(t, err)
		assert.Equal(t, data, output.AsFloat32(), "identity resize with %s", method)
	}
}

func TestResize_InputUnmodified(t *testing.T) {
	backend := New()

	data := []float32{1, 2, 3, 4}
	input, err := tensor.FromFloat32(data, tensor.Shape{1, 1, 2, 2})
	require.NoError(t, err)

	_, err = backend.Resize(input, tensor.NCHW, 7, 5, tensor.Bilinear)
	require.NoError(t, err)

	assert.Equal(t, data, input.AsFloat32())
}

func TestResize_PreservesDType(t *testing.T) {
	backend := New()

	input, err := tensor.NewRaw(tensor.Shape{1, 1, 2, 2}, tensor.Float16)
	require.NoError(t, err)
	input.Encoder().Seek(0).Set(1)
	input.Encoder().Seek(3).Set(4)

	output, err := backend.Resize(input, tensor.NCHW, 1, 1, tensor.NearestNeighbor)
	require.NoError(t, err)

	assert.Equal(t, tensor.Float16, output.DType())
	assert.Equal(t, float32(1), output.Decoder().Seek(0).Get())
}

func TestResize_Errors(t *testing.T) {
	backend := New()

	bad, err := tensor.FromFloat32([]float32{1, 2}, tensor.Shape{1, 2})
	require.NoError(t, err)
	_, err = backend.Resize(bad, tensor.NCHW, 2, 2, tensor.Bilinear)
	assert.Error(t, err, "non-4D input must be rejected")

	input, err := tensor.FromFloat32([]float32{1, 2, 3, 4}, tensor.Shape{1, 1, 2, 2})
	require.NoError(t, err)

	_, err = backend.Resize(input, tensor.NCHW, 0, 4, tensor.Bilinear)
	assert.Error(t, err, "zero output height must be rejected")

	_, err = backend.Resize(input, tensor.NCHW, 4, -1, tensor.Bilinear)
	assert.Error(t, err, "negative output width must be rejected")
}

// TestResize_ParallelMatchesSequential: the resampling of one output element
// never depends on another, so the parallel traversal must be bit-identical
// to the sequential one.
func TestResize_ParallelMatchesSequential(t *testing.T) {
	seqBackend := New(WithParallel(parallel.Sequential()))
	parBackend := New(WithParallel(parallel.Config{
		Enabled:      true,
		NumWorkers:   8,
		MinChunkSize: 1,
	}))

	inShape := tensor.Shape{3, 4, 16, 16}
	data := make([]float32, inShape.NumElements())
	for i := range data {
		data[i] = float32(i%251) * 0.5
	}
	input, err := tensor.FromFloat32(data, inShape)
	require.NoError(t, err)

	for _, method := range []tensor.ResizeMethod{tensor.Bilinear, tensor.NearestNeighbor} {
		seq, err := seqBackend.Resize(input, tensor.NCHW, 23, 9, method)
		require.NoError(t, err)
		par, err := parBackend.Resize(input, tensor.NCHW, 23, 9, method)
		require.NoError(t, err)

		assert.Equal(t, seq.AsFloat32(), par.AsFloat32(), "method %s", method)
	}
}

// TestResize_LayoutIndependence: the same logical image stored NCHW and NHWC
// must resample to numerically identical results.
func TestResize_LayoutIndependence(t *testing.T) {
	backend := New()

	inShape := tensor.Shape{2, 3, 5, 4}
	data := make([]float32, inShape.NumElements())
	for i := range data {
		data[i] = float32((i*37)%113) - 56
	}
	nchw, err := tensor.FromFloat32(data, inShape)
	require.NoError(t, err)

	nhwc, err := backend.ToLayout(nchw, tensor.NCHW, tensor.NHWC)
	require.NoError(t, err)

	for _, method := range []tensor.ResizeMethod{tensor.Bilinear, tensor.NearestNeighbor} {
		outNCHW, err := backend.Resize(nchw, tensor.NCHW, 8, 7, method)
		require.NoError(t, err)

		outNHWC, err := backend.Resize(nhwc, tensor.NHWC, 8, 7, method)
		require.NoError(t, err)

		back, err := backend.ToLayout(outNHWC, tensor.NHWC, tensor.NCHW)
		require.NoError(t, err)

		assert.Equal(t, outNCHW.AsFloat32(), back.AsFloat32(), "method %s", method)
	}
}
