package verlet

import (
	"testing"

	"wibble/vmath"
)

func TestVelocityIsDerivedExactly(t *testing.T) {
	p := NewPoint(vmath.Vec{X: 10, Y: 20}, false, vmath.Vec{})

	v := vmath.Vec{X: 3.25, Y: -1.5}
	p.SetVelocity(v)

	got := p.Position.Sub(p.LastPosition)
	if got != v {
		t.Fatalf("derived velocity = %+v, want %+v exactly", got, v)
	}
	if (p.Position != vmath.Vec{X: 10, Y: 20}) {
		t.Fatalf("SetVelocity moved the point to %+v", p.Position)
	}
}

func TestInitialVelocityEncodedInLastPosition(t *testing.T) {
	v := vmath.Vec{X: 5, Y: 0}
	p := NewPoint(vmath.Vec{X: 0, Y: 0}, false, v)
	if p.Velocity() != v {
		t.Fatalf("initial velocity = %+v, want %+v", p.Velocity(), v)
	}
}

func TestPinnedPointNeverMoves(t *testing.T) {
	start := vmath.Vec{X: 50, Y: 50}
	p := NewPoint(start, true, vmath.Vec{})

	p.Accelerate(vmath.Vec{Y: 1500})
	p.Integrate(1.0/30, 0.9996)
	if p.Position != start {
		t.Fatalf("pinned point moved to %+v by Integrate", p.Position)
	}

	s := Stick{A: 0, B: 1, RestLength: 10}
	other := NewPoint(vmath.Vec{X: 150, Y: 50}, false, vmath.Vec{})
	s.satisfy(&p, &other)
	if p.Position != start {
		t.Fatalf("pinned point moved to %+v by satisfy", p.Position)
	}
	if other.Position == (vmath.Vec{X: 150, Y: 50}) {
		t.Fatalf("free endpoint should have absorbed the whole correction")
	}
}

func TestAccelerationClearedEvenWhenPinned(t *testing.T) {
	p := NewPoint(vmath.Vec{}, true, vmath.Vec{})
	p.Accelerate(vmath.Vec{Y: 1500})
	p.Integrate(0.01, 1)

	// Unpin: if the acceleration survived, the next step would move the point.
	p.Pinned = false
	p.Integrate(0.01, 1)
	if p.Position != (vmath.Vec{}) {
		t.Fatalf("stale acceleration leaked into position: %+v", p.Position)
	}
}

func TestAccelerateIsAdditive(t *testing.T) {
	p := NewPoint(vmath.Vec{}, false, vmath.Vec{})
	p.Accelerate(vmath.Vec{X: 100})
	p.Accelerate(vmath.Vec{X: 100})
	p.Integrate(0.1, 1)

	q := NewPoint(vmath.Vec{}, false, vmath.Vec{})
	q.Accelerate(vmath.Vec{X: 200})
	q.Integrate(0.1, 1)

	if p.Position != q.Position {
		t.Fatalf("two forces %+v != one combined force %+v", p.Position, q.Position)
	}
}

func TestZeroLengthStickIsSkipped(t *testing.T) {
	a := NewPoint(vmath.Vec{X: 1, Y: 1}, false, vmath.Vec{})
	b := NewPoint(vmath.Vec{X: 1, Y: 1}, false, vmath.Vec{})
	s := Stick{A: 0, B: 1, RestLength: 10}

	s.satisfy(&a, &b)

	if a.Position != (vmath.Vec{X: 1, Y: 1}) || b.Position != (vmath.Vec{X: 1, Y: 1}) {
		t.Fatalf("degenerate stick moved its points: a=%+v b=%+v", a.Position, b.Position)
	}
}
