// Copyright 2025 The Rescale Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/rescale-ml/rescale/internal/tensor"
)

// Shape represents the dimensions of a tensor.
// Example: Shape{1, 3, 224, 224} is a single NCHW image with 3 channels.
type Shape = tensor.Shape

// DataType represents the underlying data type of a tensor buffer.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float16 DataType = tensor.Float16
	Uint8   DataType = tensor.Uint8
)

// DataLayout selects how the four logical axes of an image batch are
// ordered in memory.
type DataLayout = tensor.DataLayout

// Layout constants.
const (
	NCHW DataLayout = tensor.NCHW
	NHWC DataLayout = tensor.NHWC
)

// ResizeMethod selects the resampling algorithm used by Resize.
type ResizeMethod = tensor.ResizeMethod

// Resampling method constants.
const (
	Bilinear        ResizeMethod = tensor.Bilinear
	NearestNeighbor ResizeMethod = tensor.NearestNeighbor
)

// RawTensor is the low-level tensor representation: a flat typed buffer
// plus shape and stride metadata.
type RawTensor = tensor.RawTensor

// Backend is the interface compute backends implement.
type Backend = tensor.Backend

// Decoder is a seekable read cursor over a flat real-valued buffer.
type Decoder = tensor.Decoder

// Encoder is a seekable write cursor over a flat real-valued buffer.
type Encoder = tensor.Encoder

// NewRaw creates a zero-initialized tensor with the given shape and type.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype)
}

// FromFloat32 creates a float32 tensor initialized from data.
// len(data) must equal shape.NumElements().
func FromFloat32(data []float32, shape Shape) (*RawTensor, error) {
	return tensor.FromFloat32(data, shape)
}

// NewFloat32Decoder returns a Decoder over a float32 slice.
func NewFloat32Decoder(data []float32) Decoder {
	return tensor.NewFloat32Decoder(data)
}

// NewFloat32Encoder returns an Encoder over a float32 slice.
func NewFloat32Encoder(data []float32) Encoder {
	return tensor.NewFloat32Encoder(data)
}

// NewFloat16Decoder returns a Decoder over IEEE 754 half-precision bits.
func NewFloat16Decoder(bits []uint16) Decoder {
	return tensor.NewFloat16Decoder(bits)
}

// NewFloat16Encoder returns an Encoder over IEEE 754 half-precision bits.
func NewFloat16Encoder(bits []uint16) Encoder {
	return tensor.NewFloat16Encoder(bits)
}
