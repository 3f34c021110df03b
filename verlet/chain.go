package verlet

import (
	"math"

	"wibble/vmath"
)

const (
	maxDeltaTime    = 1.0 / 30.0
	substeps        = 10
	relaxPasses     = 5
	minStickLength  = 0.1
	defaultGravityY = 1500.0
)

// Params are the externally tuned inputs a chain reads on every update.
type Params struct {
	Friction   float64 // velocity multiplier per substep, very close to 1
	BreakAfter float64 // seconds a chain dangles before unpinning entirely
	ShrinkRate float64 // rest-length units removed per second after a cut
}

func DefaultParams() Params {
	return Params{
		Friction:   0.9996,
		BreakAfter: 1.0,
		ShrinkRate: 150.0,
	}
}

// Chain is one falling rope: an ordered point sequence joined by sticks.
// Sticks reference points by index and stick i always joins points i and i+1
// when the chain is built through Append.
type Chain struct {
	Gravity vmath.Vec
	points  []Point
	sticks  []Stick

	// Presentation attributes carried through for the renderer.
	Color     string
	Thickness float64

	age            float64
	hasBroken      bool
	hasFullyShrunk bool
}

func NewChain(color string, thickness float64) *Chain {
	return &Chain{
		Gravity:   vmath.Vec{Y: defaultGravityY},
		Color:     color,
		Thickness: thickness,
	}
}

// Append adds a point built in its current shape: every non-first point gets
// a stick to the previous one with rest length equal to their distance now.
func (c *Chain) Append(p vmath.Vec, pinned bool) {
	c.points = append(c.points, NewPoint(p, pinned, vmath.Vec{}))

	n := len(c.points)
	if n >= 2 {
		restLength := c.points[n-2].Position.Distance(c.points[n-1].Position)
		c.sticks = append(c.sticks, Stick{A: n - 2, B: n - 1, RestLength: restLength})
	}
}

func (c *Chain) Len() int { return len(c.points) }

func (c *Chain) Point(i int) *Point { return &c.points[i] }

// Positions returns the ordered point positions for the renderer.
func (c *Chain) Positions() []vmath.Vec {
	out := make([]vmath.Vec, len(c.points))
	for i := range c.points {
		out[i] = c.points[i].Position
	}
	return out
}

// Age is seconds of simulated time since creation.
func (c *Chain) Age() float64 { return c.age }

func (c *Chain) HasBroken() bool { return c.hasBroken }

func (c *Chain) HasFullyShrunk() bool { return c.hasFullyShrunk }

// Opacity fades the chain out: fully opaque for its first second, then a
// linear ramp to transparent over the next.
func (c *Chain) Opacity() float64 {
	return vmath.Clamp(1.0-(c.age-1.0), 0, 1)
}

// Translate offsets the whole simulation, moving LastPosition along with
// Position so no spurious velocity is injected.
func (c *Chain) Translate(delta vmath.Vec) {
	for i := range c.points {
		c.points[i].Position = c.points[i].Position.Add(delta)
		c.points[i].LastPosition = c.points[i].LastPosition.Add(delta)
	}
}

// ScaleRestLengths multiplies every stick's rest length, e.g. to grant a
// freshly cut chain some slack.
func (c *Chain) ScaleRestLengths(multiplier float64) {
	for i := range c.sticks {
		c.sticks[i].RestLength *= multiplier
	}
}

func (c *Chain) SetAllPinned(pinned bool) {
	for i := range c.points {
		c.points[i].Pinned = pinned
	}
}

func (c *Chain) UnpinAll() {
	c.SetAllPinned(false)
}

// Update advances the chain by dt, clamped to 1/30 s so frame hitches pause
// the simulation instead of destabilizing it.
func (c *Chain) Update(dt float64, params Params) {
	dt = math.Min(dt, maxDeltaTime)
	c.age += dt

	if c.age > params.BreakAfter && !c.hasBroken {
		c.UnpinAll()
		c.hasBroken = true
	}

	subDt := dt / substeps
	for i := 0; i < substeps; i++ {
		c.applyGravity()
		c.integrate(subDt, params.Friction)

		for j := 0; j < relaxPasses; j++ {
			c.applyConstraints()
			c.applyCollisions()
		}
	}

	if !c.hasFullyShrunk {
		c.shrinkSticks(dt, params.ShrinkRate)
	}
}

// Bounds is the axis-aligned box over all point positions, used by the owner
// for off-screen culling.
func (c *Chain) Bounds() vmath.BB {
	var bb vmath.BB
	for i := range c.points {
		bb = bb.Expand(c.points[i].Position)
	}
	return bb
}

func (c *Chain) applyGravity() {
	for i := range c.points {
		c.points[i].Accelerate(c.Gravity)
	}
}

func (c *Chain) integrate(dt, friction float64) {
	for i := range c.points {
		c.points[i].Integrate(dt, friction)
	}
}

func (c *Chain) applyConstraints() {
	for i := range c.sticks {
		s := &c.sticks[i]
		s.satisfy(&c.points[s.A], &c.points[s.B])
	}
}

func (c *Chain) applyCollisions() {
	// Nothing for now.
}

// shrinkSticks sucks the chain back toward its nodes one stick at a time.
// A stick below the minimum collapses: both ends pin together and the next
// stick starts shrinking on the following frame.
func (c *Chain) shrinkSticks(dt, shrinkRate float64) {
	c.hasFullyShrunk = true

	for i := range c.sticks {
		s := &c.sticks[i]

		if s.RestLength < 1.0 {
			s.RestLength = minStickLength
			c.points[s.A].Pinned = true
			c.points[s.B].Pinned = true
			c.points[s.B].Position = c.points[s.A].Position
		} else {
			s.RestLength = math.Max(s.RestLength-shrinkRate*dt, minStickLength)
			c.hasFullyShrunk = false
			break
		}
	}
}
