// Package tensor provides the core tensor types for the Rescale library:
// shapes, data layouts, raw buffers and the cursor accessors used by the
// resampling kernels.
package tensor

// DataType represents runtime type information for tensor buffers.
type DataType int

// Supported data types for tensor buffers. The resampling core computes in
// float32; Float16 and Uint8 are storage formats reached through cursors.
const (
	Float32 DataType = iota
	Float16
	Uint8
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32:
		return 4
	case Float16:
		return 2
	case Uint8:
		return 1
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float16:
		return "float16"
	case Uint8:
		return "uint8"
	default:
		return "unknown"
	}
}
