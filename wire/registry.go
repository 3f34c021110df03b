package wire

import (
	"math"
	"math/rand"

	"wibble/verlet"
	"wibble/vmath"
)

const (
	maxDrawDeltaTime = 1.0 / 30.0

	// A completed connection within this distance of a preview connector's
	// last endpoints inherits the preview's state.
	inheritDistance = 30.0

	// Number of segments a severed wire's curve is sampled into.
	severSegments = 12

	// Tangent scale applied to the control point, tuned for a fuller bend.
	tangentScale = 1.3

	// Extra rest length granted to a freshly cut chain so it sags.
	severSlack = 1.1
)

// Registry owns every wire state and falling chain for one graph context.
// It is the single mutation point for its maps and must only be driven from
// one caller context; callers use one Registry per rendered graph.
type Registry struct {
	wires    map[ID]*State
	lastSeen map[ID]float64
	chains   *verlet.Set
	tun      *Tuning
	rng      *rand.Rand
	now      float64
}

// NewRegistry builds an empty registry. The random source feeds per-wire
// parameter variance; tests pass a seeded one.
func NewRegistry(tun *Tuning, rng *rand.Rand) *Registry {
	return &Registry{
		wires:    make(map[ID]*State),
		lastSeen: make(map[ID]float64),
		chains:   verlet.NewSet(),
		tun:      tun,
		rng:      rng,
	}
}

// Draw looks up or creates the state for id, advances it one frame with the
// given endpoint positions, and returns the curve control point. dt is
// clamped to 1/30 s so editor hitches pause the animation rather than hide it.
func (r *Registry) Draw(id ID, start, end vmath.Vec, dt float64, color string) vmath.Vec {
	dt = math.Min(dt, maxDrawDeltaTime)

	st, ok := r.wires[id]
	if !ok {
		st = r.createState(id, start, end, color)
		r.wires[id] = st
	}
	r.lastSeen[id] = r.now

	return st.Update(start, end, dt, r.tun)
}

// createState randomizes the new wire's spring feel, then adopts the state of
// any preview connector that ended up where this wire begins. That keeps a
// drag-in-progress connection from popping when it completes.
func (r *Registry) createState(id ID, start, end vmath.Vec, color string) *State {
	isPreview := id.IsPreview()

	stiffnessVariance := 0.3 + r.rng.Float64()*1.2
	dampingVariance := 0.7 + r.rng.Float64()*0.5
	slackMultiplier := 1.3 + r.rng.Float64()*0.3

	stiffness := r.tun.Stiffness * stiffnessVariance
	if isPreview {
		stiffness += 0.3
	}
	dampingRatio := vmath.Clamp(r.tun.DampingRatio*dampingVariance, 0.3, 0.9)

	st := NewState(start, end, stiffness, dampingRatio, slackMultiplier, r.tun)
	st.Color = color

	for existingID, existing := range r.wires {
		if !existingID.IsPreview() {
			continue
		}

		connected := existingID.ConnectedPin()
		if connected != id.A && connected != id.B {
			continue
		}

		if existing.LastStart.DistanceSq(start) < inheritDistance*inheritDistance &&
			existing.LastEnd.DistanceSq(end) < inheritDistance*inheritDistance {
			adopted := *existing
			st = &adopted
		}
	}

	return st
}

// Sever removes the wire and spawns a falling chain through its current
// curve, pinned at both ends so it dangles before breaking loose.
func (r *Registry) Sever(id ID) bool {
	st, ok := r.wires[id]
	if !ok {
		return false
	}

	start, end := st.LastStart, st.LastEnd
	control := st.ControlPoint()
	startTangent := control.Sub(start).Mult(tangentScale)
	endTangent := end.Sub(control).Mult(tangentScale)

	chain := verlet.NewChain(st.Color, r.tun.ThicknessScale)
	for i := 0; i <= severSegments; i++ {
		a := float64(i) / severSegments
		p := vmath.CubicInterp(start, startTangent, end, endTangent, a)
		pinned := i == 0 || i == severSegments
		chain.Append(p, pinned)
	}
	chain.ScaleRestLengths(severSlack)
	r.chains.Add(chain)

	r.Drop(id)
	return true
}

// Drop discards a single wire's state without spawning a chain.
func (r *Registry) Drop(id ID) {
	delete(r.wires, id)
	delete(r.lastSeen, id)
}

// Prune drops wires that have not been drawn for maxAge seconds. Hosts that
// reliably call Drop on disconnect do not need it; it backstops preview
// connectors that were abandoned mid-drag.
func (r *Registry) Prune(maxAge float64) {
	for id, seen := range r.lastSeen {
		if r.now-seen > maxAge {
			r.Drop(id)
		}
	}
}

// UpdateChains advances every falling chain and evicts the dead ones. It also
// advances the registry clock: once per tick, not per Draw call, so lastSeen
// ages in seconds no matter how many wires a frame draws.
func (r *Registry) UpdateChains(dt float64) {
	dt = math.Min(dt, maxDrawDeltaTime)
	r.now += dt
	r.chains.Update(dt, r.tun.ChainParams())
}

// Translate shifts all falling chains, used when the viewport pans. Attached
// wires need nothing: they are re-fed endpoint positions every frame.
func (r *Registry) Translate(delta vmath.Vec) {
	r.chains.Translate(delta)
}

// ChainFrames is the falling-chain render extraction for this graph.
func (r *Registry) ChainFrames() []verlet.Frame {
	return r.chains.Frames()
}

func (r *Registry) ChainCount() int { return r.chains.Len() }

func (r *Registry) WireCount() int { return len(r.wires) }

// Lookup returns the state for id if it exists.
func (r *Registry) Lookup(id ID) (*State, bool) {
	st, ok := r.wires[id]
	return st, ok
}

// Reset discards every wire and chain, for configuration changes that must
// not leave stale state behind.
func (r *Registry) Reset() {
	r.wires = make(map[ID]*State)
	r.lastSeen = make(map[ID]float64)
	r.chains.Reset()
	r.now = 0
}
