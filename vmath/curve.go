package vmath

// CubicInterp evaluates a cubic Hermite curve from p0 to p1 with tangents
// t0, t1 at alpha a in [0,1].
func CubicInterp(p0, t0, p1, t1 Vec, a float64) Vec {
	a2 := a * a
	a3 := a2 * a

	h00 := 2*a3 - 3*a2 + 1
	h10 := a3 - 2*a2 + a
	h01 := -2*a3 + 3*a2
	h11 := a3 - a2

	return p0.Mult(h00).Add(t0.Mult(h10)).Add(p1.Mult(h01)).Add(t1.Mult(h11))
}
