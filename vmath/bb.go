package vmath

import "math"

// BB is an axis-aligned bounding box. The zero value is an empty box that
// expands to contain the first point added.
type BB struct {
	L, T, R, B float64
	valid      bool
}

func (bb BB) Expand(v Vec) BB {
	if !bb.valid {
		return BB{L: v.X, T: v.Y, R: v.X, B: v.Y, valid: true}
	}
	return BB{
		L:     math.Min(bb.L, v.X),
		T:     math.Min(bb.T, v.Y),
		R:     math.Max(bb.R, v.X),
		B:     math.Max(bb.B, v.Y),
		valid: true,
	}
}

func (bb BB) Merge(other BB) BB {
	if !bb.valid {
		return other
	}
	if !other.valid {
		return bb
	}
	return BB{
		L:     math.Min(bb.L, other.L),
		T:     math.Min(bb.T, other.T),
		R:     math.Max(bb.R, other.R),
		B:     math.Max(bb.B, other.B),
		valid: true,
	}
}

func (bb BB) Contains(v Vec) bool {
	return bb.valid && bb.L <= v.X && v.X <= bb.R && bb.T <= v.Y && v.Y <= bb.B
}
