package wire

import "wibble/verlet"

// Tuning holds every externally adjustable parameter the simulation reads.
// It is injected, never global, so hosts can retune live and tests can pin
// values. Defaults match the shipped feel.
type Tuning struct {
	Friction       float64 // velocity multiplier for falling chains, keep very close to 1
	BreakAfter     float64 // seconds a cut wire dangles before detaching and falling
	ShrinkRate     float64 // how quickly cut wires get sucked back into their nodes
	ThicknessScale float64 // how much thicker to draw wire lines
	Bounce         bool    // whether wires bounce when they extend too far
	HangMultiplier float64 // how much extra slack translates into visible droop
	Stiffness      float64 // base spring stiffness before per-wire variance
	DampingRatio   float64 // base damping ratio before per-wire variance
}

func DefaultTuning() *Tuning {
	return &Tuning{
		Friction:       0.9996,
		BreakAfter:     1.0,
		ShrinkRate:     150.0,
		ThicknessScale: 1.5,
		Bounce:         false,
		HangMultiplier: 1.0,
		Stiffness:      100.0,
		DampingRatio:   0.4,
	}
}

func (t *Tuning) ChainParams() verlet.Params {
	return verlet.Params{
		Friction:   t.Friction,
		BreakAfter: t.BreakAfter,
		ShrinkRate: t.ShrinkRate,
	}
}
