package wire

// PinID is an opaque endpoint reference supplied by the host graph model.
// Zero means the side has no resolved pin.
type PinID uint64

// ID identifies a wire by its endpoint pair. Identity follows the pins, not
// their positions, so a wire keeps its state while its nodes move.
type ID struct {
	A, B PinID
}

// IsPreview reports whether exactly one side is unresolved, i.e. the wire is
// a drag-in-progress connector.
func (id ID) IsPreview() bool {
	return (id.A == 0) != (id.B == 0)
}

// ConnectedPin returns the resolved pin of a preview connector, or zero when
// both or neither side is resolved.
func (id ID) ConnectedPin() PinID {
	if !id.IsPreview() {
		return 0
	}
	if id.A != 0 {
		return id.A
	}
	return id.B
}
