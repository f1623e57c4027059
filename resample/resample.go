// Copyright 2025 The Rescale Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package resample

import (
	"fmt"

	internalresample "github.com/rescale-ml/rescale/internal/resample"
	"github.com/rescale-ml/rescale/tensor"
)

// Method selects the resampling algorithm.
type Method = tensor.ResizeMethod

// Supported resampling methods.
const (
	Bilinear        Method = tensor.Bilinear
	NearestNeighbor Method = tensor.NearestNeighbor
)

// ParseMethod parses a method name ("bilinear" or "nearest").
func ParseMethod(name string) (Method, error) {
	switch name {
	case "bilinear":
		return Bilinear, nil
	case "nearest":
		return NearestNeighbor, nil
	default:
		return 0, fmt.Errorf("unknown resampling method %q (want bilinear or nearest)", name)
	}
}

// Resize resamples the spatial dimensions of a 4D tensor to outH x outW
// using the given backend. Batch and channel extents are preserved; the
// result uses the input's layout and dtype.
func Resize(b tensor.Backend, input *tensor.RawTensor, layout tensor.DataLayout, outH, outW int, method Method) (*tensor.RawTensor, error) {
	return b.Resize(input, layout, outH, outW, method)
}

// Into resamples from a read cursor into a write cursor. The shapes describe
// the buffers behind the cursors; input and output may carry different
// memory layouts. It validates the shape contract (4D, positive dimensions,
// matching batch and channel extents) before touching either cursor.
func Into(
	in tensor.Decoder, inShape tensor.Shape, inLayout tensor.DataLayout,
	out tensor.Encoder, outShape tensor.Shape, outLayout tensor.DataLayout,
	method Method,
) error {
	return internalresample.Resize(in, inShape, inLayout, out, outShape, outLayout, method)
}

// Resizer is a reusable resize operation bound to a backend, in the style
// of a parameterless network layer.
type Resizer struct {
	outH    int
	outW    int
	method  Method
	backend tensor.Backend
}

// NewResizer creates a Resizer producing outH x outW outputs.
func NewResizer(outH, outW int, method Method, backend tensor.Backend) (*Resizer, error) {
	if outH <= 0 || outW <= 0 {
		return nil, fmt.Errorf("invalid output size %dx%d", outH, outW)
	}
	return &Resizer{outH: outH, outW: outW, method: method, backend: backend}, nil
}

// Forward resamples input to the configured output size.
func (r *Resizer) Forward(input *tensor.RawTensor, layout tensor.DataLayout) (*tensor.RawTensor, error) {
	return r.backend.Resize(input, layout, r.outH, r.outW, r.method)
}

// String returns a string representation of the operation.
func (r *Resizer) String() string {
	return fmt.Sprintf("Resizer(size=%dx%d, method=%s)", r.outH, r.outW, r.method)
}
