package tensor

import "github.com/x448/float16"

// Decoder is a read cursor over a flat real-valued buffer. Seek positions the
// cursor at a flat element offset and returns the cursor for chaining; Get
// reads the value at the current position as float32.
//
// The resampling core treats Decoder as an opaque sequential accessor, so the
// backing storage can be any representation (float32, half-precision, a
// strided view) without changes to the kernels.
type Decoder interface {
	Seek(offset int) Decoder
	Get() float32
}

// Encoder is a write cursor over a flat real-valued buffer. Seek positions
// the cursor; Set writes a float32 value at the current position.
type Encoder interface {
	Seek(offset int) Encoder
	Set(v float32)
}

type float32Decoder struct {
	data []float32
	pos  int
}

// NewFloat32Decoder returns a Decoder over a float32 slice.
func NewFloat32Decoder(data []float32) Decoder {
	return &float32Decoder{data: data}
}

func (c *float32Decoder) Seek(offset int) Decoder {
	c.pos = offset
	return c
}

func (c *float32Decoder) Get() float32 {
	return c.data[c.pos]
}

type float32Encoder struct {
	data []float32
	pos  int
}

// NewFloat32Encoder returns an Encoder over a float32 slice.
func NewFloat32Encoder(data []float32) Encoder {
	return &float32Encoder{data: data}
}

func (c *float32Encoder) Seek(offset int) Encoder {
	c.pos = offset
	return c
}

func (c *float32Encoder) Set(v float32) {
	c.data[c.pos] = v
}

type float16Decoder struct {
	bits []uint16
	pos  int
}

// NewFloat16Decoder returns a Decoder over IEEE 754 half-precision bits.
func NewFloat16Decoder(bits []uint16) Decoder {
	return &float16Decoder{bits: bits}
}

func (c *float16Decoder) Seek(offset int) Decoder {
	c.pos = offset
	return c
}

func (c *float16Decoder) Get() float32 {
	return float16.Frombits(c.bits[c.pos]).Float32()
}

type float16Encoder struct {
	bits []uint16
	pos  int
}

// NewFloat16Encoder returns an Encoder over IEEE 754 half-precision bits.
// Values are rounded to the nearest representable half-precision value.
func NewFloat16Encoder(bits []uint16) Encoder {
	return &float16Encoder{bits: bits}
}

func (c *float16Encoder) Seek(offset int) Encoder {
	c.pos = offset
	return c
}

func (c *float16Encoder) Set(v float32) {
	c.bits[c.pos] = float16.Fromfloat32(v).Bits()
}

// Decoder returns a read cursor bound to the tensor's buffer.
func (r *RawTensor) Decoder() Decoder {
	switch r.dtype {
	case Float32:
		return NewFloat32Decoder(r.AsFloat32())
	case Float16:
		return NewFloat16Decoder(r.AsFloat16())
	default:
		panic("no decoder for dtype " + r.dtype.String())
	}
}

// Encoder returns a write cursor bound to the tensor's buffer.
func (r *RawTensor) Encoder() Encoder {
	switch r.dtype {
	case Float32:
		return NewFloat32Encoder(r.AsFloat32())
	case Float16:
		return NewFloat16Encoder(r.AsFloat16())
	default:
		panic("no encoder for dtype " + r.dtype.String())
	}
}
