package tensor

// Backend defines the interface compute backends must implement. Backends
// own the allocation of result tensors and the traversal strategy; the
// numeric semantics of each operation are fixed and backend-independent.
type Backend interface {
	// Resize resamples the spatial dimensions of a 4D tensor to
	// outH x outW using the given method. Batch and channel extents are
	// preserved. The input is interpreted according to layout and the
	// result uses the same layout.
	Resize(input *RawTensor, layout DataLayout, outH, outW int, method ResizeMethod) (*RawTensor, error)

	// ToLayout permutes a 4D tensor between memory layouts. Returns a
	// clone when from == to.
	ToLayout(input *RawTensor, from, to DataLayout) (*RawTensor, error)
}
