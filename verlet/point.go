package verlet

import "wibble/vmath"

// Point is a Verlet mass point. Velocity is never stored: it is always the
// difference between Position and LastPosition, so constraint corrections
// applied to Position implicitly change velocity too.
type Point struct {
	Position     vmath.Vec
	LastPosition vmath.Vec
	acceleration vmath.Vec
	Pinned       bool
}

// NewPoint creates a point at p. A non-zero initial velocity is encoded by
// offsetting LastPosition behind the starting position.
func NewPoint(p vmath.Vec, pinned bool, initialVelocity vmath.Vec) Point {
	return Point{
		Position:     p,
		LastPosition: p.Sub(initialVelocity),
		Pinned:       pinned,
	}
}

func (pt *Point) Velocity() vmath.Vec {
	return pt.Position.Sub(pt.LastPosition)
}

// SetVelocity redefines the implicit velocity without moving the point.
func (pt *Point) SetVelocity(v vmath.Vec) {
	pt.LastPosition = pt.Position.Sub(v)
}

// Accelerate accumulates a force for the next Integrate call. Forces are
// additive across calls within one substep.
func (pt *Point) Accelerate(force vmath.Vec) {
	pt.acceleration = pt.acceleration.Add(force)
}

// Integrate advances the point one substep. Accumulated acceleration is
// cleared whether or not the point is pinned.
func (pt *Point) Integrate(dt, friction float64) {
	if !pt.Pinned {
		vel := pt.Velocity().Mult(friction)
		pt.LastPosition = pt.Position
		pt.Position = pt.Position.Add(vel).Add(pt.acceleration.Mult(dt * dt))
	}
	pt.acceleration = vmath.Vec{}
}
