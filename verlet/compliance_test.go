package verlet

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"

	"wibble/vmath"
)

// buildRope hangs a 9-point rope between two pinned anchors.
func buildRope() *Chain {
	c := NewChain("#fff", 1)
	for i := 0; i <= 8; i++ {
		x := float64(i) * 25
		c.Append(vmath.Vec{X: x, Y: 0}, i == 0 || i == 8)
	}
	return c
}

func traceRope(c *Chain, frames int, params Params) string {
	var b strings.Builder
	for f := 0; f < frames; f++ {
		c.Update(1.0/60, params)
		fmt.Fprintf(&b, "frame %d:", f)
		for _, p := range c.Positions() {
			fmt.Fprintf(&b, " (%.6f, %.6f)", p.X, p.Y)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// The integrator must be fully deterministic: two identical ropes stepped
// identically produce bit-identical trajectories.
func TestRopeTraceIsDeterministic(t *testing.T) {
	params := quietParams()
	a := traceRope(buildRope(), 60, params)
	b := traceRope(buildRope(), 60, params)

	if a != b {
		diff := difflib.UnifiedDiff{
			A:        difflib.SplitLines(a),
			B:        difflib.SplitLines(b),
			FromFile: "First run",
			ToFile:   "Second run",
			Context:  0,
		}
		text, _ := difflib.GetUnifiedDiffString(diff)
		t.Fatalf("trajectories diverged:\n%s", text)
	}
}

// Pinned anchors must hold their exact positions through the whole
// simulation, whatever the rest of the rope does.
func TestRopeAnchorsHoldExactly(t *testing.T) {
	c := buildRope()
	params := quietParams()

	var got, want strings.Builder
	for f := 0; f < 120; f++ {
		c.Update(1.0/60, params)
		pts := c.Positions()
		fmt.Fprintf(&got, "(%.6f, %.6f) (%.6f, %.6f)\n", pts[0].X, pts[0].Y, pts[8].X, pts[8].Y)
		fmt.Fprintf(&want, "(%.6f, %.6f) (%.6f, %.6f)\n", 0.0, 0.0, 200.0, 0.0)
	}

	if got.String() != want.String() {
		diff := difflib.UnifiedDiff{
			A:        difflib.SplitLines(want.String()),
			B:        difflib.SplitLines(got.String()),
			FromFile: "Expected",
			ToFile:   "Current",
			Context:  0,
		}
		text, _ := difflib.GetUnifiedDiffString(diff)
		t.Fatalf("anchors drifted:\n%s", text)
	}
}

// A rope hung between level anchors sags symmetrically: the middle point
// drops lowest and mirrored points stay level with each other.
func TestRopeSagsSymmetrically(t *testing.T) {
	c := buildRope()
	params := quietParams()

	for f := 0; f < 120; f++ {
		c.Update(1.0/60, params)
	}

	pts := c.Positions()
	sag := pts[4].Y
	if sag <= 0 {
		t.Fatalf("middle of the rope did not sag: y=%f", sag)
	}
	// Sequential relaxation is not perfectly symmetric; mirrored points must
	// still be level within a fraction of the sag depth.
	for i := 1; i < 4; i++ {
		l, r := pts[i].Y, pts[8-i].Y
		if diff := math.Abs(l - r); diff > 0.2*sag {
			t.Fatalf("asymmetric sag at pair %d: %f vs %f (sag %f)", i, l, r, sag)
		}
	}
	if pts[1].Y >= sag {
		t.Fatalf("sag not deepest at the middle: %f vs %f", pts[1].Y, sag)
	}
}
