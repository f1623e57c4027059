// Copyright 2025 The Rescale Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package resample provides spatial resizing of image-batch tensors.
//
// # Overview
//
// Resize maps every output texel back into the input image and samples it
// with one of two methods:
//   - Bilinear: blends the four neighboring input samples
//   - NearestNeighbor: picks a single closest sample
//
// The projection uses the top-left-corner convention of the TensorFlow and
// AndroidNN resize operators: output texel (0,0)'s corner aligns with input
// texel (0,0)'s corner. At the right and bottom borders the second
// interpolation sample is clamped to the last valid input texel, so bilinear
// interpolation degrades to a copy there instead of reading out of bounds.
//
// # Basic Usage
//
//	import (
//	    "github.com/rescale-ml/rescale/backend/cpu"
//	    "github.com/rescale-ml/rescale/resample"
//	    "github.com/rescale-ml/rescale/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    in, _ := tensor.FromFloat32(
//	        []float32{1, 2, 3, 4},
//	        tensor.Shape{1, 1, 2, 2},
//	    )
//	    out, _ := resample.Resize(backend, in, tensor.NCHW, 4, 4, resample.Bilinear)
//	    _ = out // [1, 1, 4, 4]
//	}
//
// # Custom Storage
//
// Into operates on cursor accessors instead of tensors, so callers with
// their own buffer representation only need to implement tensor.Decoder and
// tensor.Encoder.
package resample
