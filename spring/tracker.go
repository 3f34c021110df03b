// Package spring implements a 2D second-order spring-damper whose position
// chases a moving target. It is cosmetic animation math, not rigid-body
// dynamics: stiffness and damping ratio are chosen per wire for feel.
package spring

import (
	"math"

	"wibble/vmath"
)

const (
	maxStepTime = 1.0 / 30.0
	// Any state component at or past this magnitude means the integration
	// diverged; the tracker resynchronizes instead of propagating it.
	maxAbsValue = 1e8
)

// Tracker integrates x'' = k(target-x) - c x' with a fourth-order
// Runge-Kutta step, which stays stable under large target jumps.
type Tracker struct {
	pos vmath.Vec
	vel vmath.Vec

	stiffness float64 // k
	dampCoef  float64 // c = 2·√k·ratio, critical at ratio 1
}

// NewTracker configures the spring constants once; they do not change over
// the tracker's lifetime.
func NewTracker(stiffness, dampingRatio float64) *Tracker {
	return &Tracker{
		stiffness: stiffness,
		dampCoef:  2.0 * math.Sqrt(stiffness) * dampingRatio,
	}
}

// Reset snaps the tracker to p with zero velocity.
func (t *Tracker) Reset(p vmath.Vec) {
	t.pos = p
	t.vel = vmath.Vec{}
}

func (t *Tracker) Position() vmath.Vec { return t.pos }

func (t *Tracker) Velocity() vmath.Vec { return t.vel }

// SetVelocity overrides the tracked velocity, leaving position alone.
func (t *Tracker) SetVelocity(v vmath.Vec) {
	t.vel = v
}

// Update advances the state one step toward target and returns the new
// tracked position.
func (t *Tracker) Update(target vmath.Vec, dt float64) vmath.Vec {
	dt = math.Min(dt, maxStepTime)

	accel := func(p, v vmath.Vec) vmath.Vec {
		return target.Sub(p).Mult(t.stiffness).Sub(v.Mult(t.dampCoef))
	}

	k1p := t.vel
	k1v := accel(t.pos, t.vel)

	k2p := t.vel.Add(k1v.Mult(dt / 2))
	k2v := accel(t.pos.Add(k1p.Mult(dt/2)), t.vel.Add(k1v.Mult(dt/2)))

	k3p := t.vel.Add(k2v.Mult(dt / 2))
	k3v := accel(t.pos.Add(k2p.Mult(dt/2)), t.vel.Add(k2v.Mult(dt/2)))

	k4p := t.vel.Add(k3v.Mult(dt))
	k4v := accel(t.pos.Add(k3p.Mult(dt)), t.vel.Add(k3v.Mult(dt)))

	t.pos = t.pos.Add(k1p.Add(k2p.Mult(2)).Add(k3p.Mult(2)).Add(k4p).Mult(dt / 6))
	t.vel = t.vel.Add(k1v.Add(k2v.Mult(2)).Add(k3v.Mult(2)).Add(k4v).Mult(dt / 6))

	if !isValid(t.pos) || !isValid(t.vel) {
		t.Reset(target)
	}

	return t.pos
}

func isValid(v vmath.Vec) bool {
	return math.Abs(v.X) < maxAbsValue && math.Abs(v.Y) < maxAbsValue &&
		!math.IsNaN(v.X) && !math.IsNaN(v.Y)
}
