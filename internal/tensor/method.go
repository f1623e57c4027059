package tensor

// ResizeMethod selects the resampling algorithm used by Resize.
// The method is fixed for a whole call; there is no per-pixel switching.
type ResizeMethod int

// Supported resampling methods.
const (
	// Bilinear blends the four neighboring input samples by their
	// fractional distance along each axis.
	Bilinear ResizeMethod = iota
	// NearestNeighbor selects a single closest input sample without
	// blending.
	NearestNeighbor
)

// String returns a human-readable method name.
func (m ResizeMethod) String() string {
	switch m {
	case Bilinear:
		return "bilinear"
	case NearestNeighbor:
		return "nearest"
	default:
		return "unknown"
	}
}
