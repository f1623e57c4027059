package tensor

// DataLayout selects how the four logical axes of an image batch are ordered
// in memory. Exactly one variant applies to a given tensor; input and output
// tensors of an operation may carry different layouts independently.
type DataLayout int

// Supported memory layouts for 4D image-batch tensors.
const (
	// NCHW is channels-first: [batch, channels, height, width].
	NCHW DataLayout = iota
	// NHWC is channels-last: [batch, height, width, channels].
	NHWC
)

// String returns a human-readable layout name.
func (l DataLayout) String() string {
	switch l {
	case NCHW:
		return "NCHW"
	case NHWC:
		return "NHWC"
	default:
		return "unknown"
	}
}

// BatchIndex returns the shape index of the batch axis.
// The batch axis is outermost in both layouts.
func (l DataLayout) BatchIndex() int { return 0 }

// ChannelsIndex returns the shape index of the channel axis.
func (l DataLayout) ChannelsIndex() int {
	if l == NHWC {
		return 3
	}
	return 1
}

// HeightIndex returns the shape index of the height axis.
func (l DataLayout) HeightIndex() int {
	if l == NHWC {
		return 1
	}
	return 2
}

// WidthIndex returns the shape index of the width axis.
func (l DataLayout) WidthIndex() int {
	if l == NHWC {
		return 2
	}
	return 3
}

// Index computes the flat element offset of logical coordinate (n, c, y, x)
// in a 4D tensor of the given shape laid out according to l.
//
// This is a pure function on a hot per-pixel path: coordinates are trusted
// to be in range and are not validated. Callers are responsible for bounds.
func (l DataLayout) Index(shape Shape, n, c, y, x int) int {
	if l == NHWC {
		return ((n*shape[1]+y)*shape[2]+x)*shape[3] + c
	}
	return ((n*shape[1]+c)*shape[2]+y)*shape[3] + x
}
