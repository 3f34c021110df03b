package verlet

// Stick is a distance constraint between two points, referenced by index into
// the owning chain so the point slice can grow without invalidating sticks.
type Stick struct {
	A, B       int
	RestLength float64
}

// satisfy relaxes the constraint one Gauss-Seidel pass: each endpoint moves
// half the correction, or the movable endpoint absorbs all of it when the
// other is pinned. A degenerate zero-length stick is treated as satisfied.
func (s *Stick) satisfy(a, b *Point) {
	delta := b.Position.Sub(a.Position)
	currentLength := delta.Length()
	if currentLength == 0 {
		return
	}

	diff := s.RestLength - currentLength
	halfOffset := delta.Mult((diff / currentLength) * 0.5)

	if a.Pinned || b.Pinned {
		halfOffset = halfOffset.Mult(2)
	}

	if !a.Pinned {
		a.Position = a.Position.Sub(halfOffset)
	}
	if !b.Pinned {
		b.Position = b.Position.Add(halfOffset)
	}
}
