// Package imageconv converts between image.Image values and Rescale tensors.
//
// Tensors use float32 values in [0, 255] with batch size 1 and three RGB
// channels, in either memory layout. Importing this package registers
// decoders for png, jpeg, gif, bmp, tiff and webp.
package imageconv

import (
	"fmt"
	"image"
	"io"

	_ "image/gif"  // register gif decoder
	_ "image/jpeg" // register jpeg decoder
	_ "image/png"  // register png decoder

	_ "golang.org/x/image/bmp"  // register bmp decoder
	_ "golang.org/x/image/tiff" // register tiff decoder
	_ "golang.org/x/image/webp" // register webp decoder

	"github.com/rescale-ml/rescale/internal/tensor"
)

// Decode reads and decodes an image from r in any registered format.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// ToTensor converts an image to a float32 tensor of shape
// [1, 3, H, W] (NCHW) or [1, H, W, 3] (NHWC) with values in [0, 255].
func ToTensor(img image.Image, layout tensor.DataLayout) (*tensor.RawTensor, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("empty image %dx%d", width, height)
	}

	shape := make(tensor.Shape, 4)
	shape[layout.BatchIndex()] = 1
	shape[layout.ChannelsIndex()] = 3
	shape[layout.HeightIndex()] = height
	shape[layout.WidthIndex()] = width

	t, err := tensor.NewRaw(shape, tensor.Float32)
	if err != nil {
		return nil, err
	}

	data := t.AsFloat32()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			// RGBA returns 16-bit channels; keep the high byte.
			data[layout.Index(shape, 0, 0, y, x)] = float32(r >> 8)
			data[layout.Index(shape, 0, 1, y, x)] = float32(g >> 8)
			data[layout.Index(shape, 0, 2, y, x)] = float32(b >> 8)
		}
	}
	return t, nil
}

// ToImage converts a float32 tensor of batch size 1 with 1 or 3 channels
// back to an image. Values are clamped to [0, 255]; a single channel is
// replicated to gray RGB.
func ToImage(t *tensor.RawTensor, layout tensor.DataLayout) (*image.RGBA, error) {
	shape := t.Shape()
	if len(shape) != 4 {
		return nil, fmt.Errorf("expected 4D tensor, got %dD", len(shape))
	}
	if n := shape[layout.BatchIndex()]; n != 1 {
		return nil, fmt.Errorf("expected batch size 1, got %d", n)
	}
	channels := shape[layout.ChannelsIndex()]
	if channels != 1 && channels != 3 {
		return nil, fmt.Errorf("expected 1 or 3 channels, got %d", channels)
	}

	height := shape[layout.HeightIndex()]
	width := shape[layout.WidthIndex()]
	data := t.AsFloat32()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var rgb [3]uint8
			for ch := 0; ch < 3; ch++ {
				src := ch
				if channels == 1 {
					src = 0
				}
				rgb[ch] = clampByte(data[layout.Index(shape, 0, src, y, x)])
			}
			off := img.PixOffset(x, y)
			img.Pix[off+0] = rgb[0]
			img.Pix[off+1] = rgb[1]
			img.Pix[off+2] = rgb[2]
			img.Pix[off+3] = 0xff
		}
	}
	return img, nil
}

// clampByte rounds v to the nearest byte, clamping to [0, 255].
func clampByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
