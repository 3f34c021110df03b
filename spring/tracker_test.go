package spring

import (
	"math"
	"testing"

	"wibble/vmath"
)

func TestTrackerSettlesOnStaticTarget(t *testing.T) {
	tr := NewTracker(100, 0.8)
	tr.Reset(vmath.Vec{X: 0, Y: 0})
	target := vmath.Vec{X: 300, Y: -120}

	for i := 0; i < 600; i++ {
		tr.Update(target, 1.0/60)
	}

	if tr.Position().Distance(target) > 1 {
		t.Fatalf("tracker at %+v never settled on %+v", tr.Position(), target)
	}
	if tr.Velocity().Length() > 1 {
		t.Fatalf("residual velocity %+v after settling", tr.Velocity())
	}
}

func TestUnderdampedTrackerOvershoots(t *testing.T) {
	tr := NewTracker(100, 0.3)
	tr.Reset(vmath.Vec{X: 0, Y: 0})
	target := vmath.Vec{X: 100, Y: 0}

	overshot := false
	for i := 0; i < 300; i++ {
		p := tr.Update(target, 1.0/60)
		if p.X > target.X {
			overshot = true
			break
		}
	}
	if !overshot {
		t.Fatalf("a 0.3 damping ratio should overshoot its target")
	}
}

func TestResetSnapsAndZerosVelocity(t *testing.T) {
	tr := NewTracker(100, 0.4)
	tr.Reset(vmath.Vec{X: 10, Y: 10})
	tr.Update(vmath.Vec{X: 500, Y: 500}, 1.0/30)

	tr.Reset(vmath.Vec{X: 42, Y: 7})
	if tr.Position() != (vmath.Vec{X: 42, Y: 7}) {
		t.Fatalf("reset position = %+v", tr.Position())
	}
	if tr.Velocity() != (vmath.Vec{}) {
		t.Fatalf("reset velocity = %+v", tr.Velocity())
	}
}

func TestSetVelocityOverridesWithoutMoving(t *testing.T) {
	tr := NewTracker(100, 0.4)
	tr.Reset(vmath.Vec{X: 5, Y: 5})
	tr.SetVelocity(vmath.Vec{X: 0, Y: -9})

	if tr.Velocity() != (vmath.Vec{X: 0, Y: -9}) {
		t.Fatalf("velocity = %+v", tr.Velocity())
	}
	if tr.Position() != (vmath.Vec{X: 5, Y: 5}) {
		t.Fatalf("SetVelocity moved the tracker to %+v", tr.Position())
	}
}

func TestDivergenceGuardResyncsToTarget(t *testing.T) {
	// An absurd stiffness makes a 1/30 step blow past the validity bound.
	tr := NewTracker(1e12, 0.0)
	tr.Reset(vmath.Vec{X: 0, Y: 0})
	target := vmath.Vec{X: 100, Y: 0}

	p := tr.Update(target, 1.0/30)

	if p != target {
		t.Fatalf("diverged tracker returned %+v, want resync to %+v", p, target)
	}
	if tr.Velocity() != (vmath.Vec{}) {
		t.Fatalf("resync should zero velocity, got %+v", tr.Velocity())
	}
	if math.IsNaN(tr.Position().X) {
		t.Fatalf("NaN leaked out of the guard")
	}
}

func TestUpdateStepIsClamped(t *testing.T) {
	a := NewTracker(100, 0.4)
	b := NewTracker(100, 0.4)
	a.Reset(vmath.Vec{})
	b.Reset(vmath.Vec{})
	target := vmath.Vec{X: 50, Y: 50}

	pa := a.Update(target, 10.0)
	pb := b.Update(target, 1.0/30)

	if pa != pb {
		t.Fatalf("hitch step %+v differs from clamped step %+v", pa, pb)
	}
}
