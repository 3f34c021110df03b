package wire

import (
	"math"

	"wibble/spring"
	"wibble/vmath"
)

// State is the cosmetic hang model for one attached wire: it keeps a rope
// length that lerps toward the slack-scaled endpoint distance and drives a
// spring tracker toward a direction-biased center point. The tracked point is
// returned every frame for use as the renderer's curve control point.
type State struct {
	desiredRestLength float64
	lerpedLength      float64
	desiredCenter     vmath.Vec
	tracker           spring.Tracker
	slackMultiplier   float64

	LastStart vmath.Vec
	LastEnd   vmath.Vec
	Color     string
}

// NewState snaps a fresh wire to its hanging pose. The lerped length starts
// 10% past the desired rest length so the wire visibly settles when it first
// appears.
func NewState(start, end vmath.Vec, stiffness, dampingRatio, slackMultiplier float64, tun *Tuning) *State {
	s := &State{
		slackMultiplier: slackMultiplier,
		LastStart:       start,
		LastEnd:         end,
	}

	s.desiredRestLength = end.Sub(start).Length() * slackMultiplier
	s.lerpedLength = s.desiredRestLength * 1.1

	lengthDelta := s.lerpedLength - end.Sub(start).Length()
	s.desiredCenter = desiredCenterWithDelta(start, end, lengthDelta, tun.HangMultiplier)
	s.tracker = *spring.NewTracker(stiffness, dampingRatio)
	s.tracker.Reset(s.desiredCenter)
	return s
}

// Update advances the wire one frame and returns the new control point.
func (s *State) Update(start, end vmath.Vec, dt float64, tun *Tuning) vmath.Vec {
	s.LastStart = start
	s.LastEnd = end

	// Keep start left-most so the center-point math can assume direction.
	if start.X > end.X {
		start, end = end, start
	}

	tightLength := end.Sub(start).Length()
	s.desiredRestLength = tightLength * s.slackMultiplier

	// The rope relaxes toward its desired length but can never be shorter
	// than the taut distance between its ends.
	s.lerpedLength = math.Max(tightLength, vmath.Lerp(s.lerpedLength, s.desiredRestLength, dt*20))
	lengthDelta := s.lerpedLength - tightLength

	s.desiredCenter = desiredCenterWithDelta(start, end, lengthDelta, tun.HangMultiplier)

	center := s.tracker.Update(s.desiredCenter, dt)

	if tun.Bounce {
		vel := s.tracker.Velocity()
		// Overshot downward past the rest point while still moving down:
		// reflect with a 0.9 restitution so the wire bounces off its length.
		if center.Y > s.desiredCenter.Y && vel.Y > 0.1 {
			vel.Y = math.Abs(vel.Y) * -0.9
			s.tracker.SetVelocity(vel)
		}
	}

	return center
}

// LerpedLength is the wire's current rope length.
func (s *State) LerpedLength() float64 { return s.lerpedLength }

// DesiredRestLength is the slack-scaled endpoint distance.
func (s *State) DesiredRestLength() float64 { return s.desiredRestLength }

// ControlPoint is the tracker's current position without advancing it.
func (s *State) ControlPoint() vmath.Vec { return s.tracker.Position() }

// ControlVelocity is the tracker's current velocity.
func (s *State) ControlVelocity() vmath.Vec { return s.tracker.Velocity() }

func desiredCenterWithDelta(start, end vmath.Vec, lengthDelta, hangMultiplier float64) vmath.Vec {
	center := desiredCenter(start, end)
	center.Y += lengthDelta * hangMultiplier
	return center
}

// desiredCenter biases the control point along the wire's own direction
// rather than using the geometric midpoint: near-vertical wires droop toward
// the lower endpoint, near-horizontal wires hang near the middle.
func desiredCenter(start, end vmath.Vec) vmath.Vec {
	if start.X > end.X {
		start, end = end, start
	}

	dir := end.Sub(start).Normalize()
	dotWithUp := dir.Dot(vmath.Vec{X: 0, Y: 1})
	dotWithUp = math.Pow(math.Abs(dotWithUp), 2) * sign(dotWithUp)
	t := dotWithUp*0.5 + 0.5
	return start.Lerp(end, t)
}

func sign(f float64) float64 {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	}
	return 0
}
