package verlet

import "wibble/vmath"

// Eviction thresholds, in the same units as input coordinates. A chain whose
// bounds lie entirely past any margin is deleted.
const (
	maxChainAge  = 30.0
	cullBelowY   = 2000.0
	cullAboveY   = -1000.0
	cullRightOfX = 3000.0
	cullLeftOfX  = -1000.0
)

// Set owns every active chain for one context. Removal swaps to the end and
// pops, so chain order is not stable across an update.
type Set struct {
	chains []*Chain
}

func NewSet() *Set {
	return &Set{}
}

func (s *Set) Add(c *Chain) {
	s.chains = append(s.chains, c)
}

func (s *Set) Len() int { return len(s.chains) }

// Update advances every chain, then evicts chains that are too old, fully
// off-screen, or fully shrunk back into their nodes.
func (s *Set) Update(dt float64, params Params) {
	for _, c := range s.chains {
		c.Update(dt, params)
	}

	for i := 0; i < len(s.chains); {
		if s.shouldEvict(s.chains[i]) {
			last := len(s.chains) - 1
			s.chains[i] = s.chains[last]
			s.chains[last] = nil
			s.chains = s.chains[:last]
			continue
		}
		i++
	}
}

func (s *Set) shouldEvict(c *Chain) bool {
	if c.Age() > maxChainAge {
		return true
	}
	if c.HasFullyShrunk() {
		return true
	}

	bb := c.Bounds()
	return bb.T > cullBelowY || bb.B < cullAboveY || bb.L > cullRightOfX || bb.R < cullLeftOfX
}

// Translate offsets every chain, used when the viewport pans.
func (s *Set) Translate(delta vmath.Vec) {
	for _, c := range s.chains {
		c.Translate(delta)
	}
}

// Reset drops all chains.
func (s *Set) Reset() {
	s.chains = nil
}

// Frame is one chain's renderable output: an ordered polyline and a fade
// opacity. Drawing it is the external renderer's job.
type Frame struct {
	Points    []vmath.Vec
	Opacity   float64
	Color     string
	Thickness float64
}

func (s *Set) Frames() []Frame {
	frames := make([]Frame, 0, len(s.chains))
	for _, c := range s.chains {
		frames = append(frames, Frame{
			Points:    c.Positions(),
			Opacity:   c.Opacity(),
			Color:     c.Color,
			Thickness: c.Thickness,
		})
	}
	return frames
}
