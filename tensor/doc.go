// Copyright 2025 The Rescale Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the tensor types used by the Rescale library.
//
// # Overview
//
// This package defines:
//   - Shape: ordered dimension sizes with row-major strides
//   - DataLayout: NCHW (channels-first) and NHWC (channels-last) indexing
//   - RawTensor: a flat typed buffer with shape metadata
//   - Decoder/Encoder: cursor accessors decoupling storage from kernels
//
// # Basic Usage
//
//	import "github.com/rescale-ml/rescale/tensor"
//
//	t, err := tensor.FromFloat32(
//	    []float32{1, 2, 3, 4},
//	    tensor.Shape{1, 1, 2, 2}, // [N, C, H, W]
//	)
//
// # Layouts
//
// A DataLayout maps the logical (batch, channel, y, x) coordinate onto a
// flat offset. The same logical image can be stored channels-first or
// channels-last; operations take the layout alongside the tensor:
//
//	off := tensor.NCHW.Index(t.Shape(), 0, 0, 1, 1)
//
// # Cursors
//
// Decoder and Encoder are seekable cursors over a flat real-valued buffer.
// Kernels only ever see cursors, so buffers may be float32 or half-precision
// (or any custom implementation) without kernel changes.
package tensor
