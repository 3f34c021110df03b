package protocol

type Welcome struct {
	Graph  string `json:"graph"`
	TickHz int    `json:"tickHz"`
}

// Frame is one broadcast of everything the client renders.
type Frame struct {
	Tick   int             `json:"tick"`
	Nodes  []NodeSnapshot  `json:"nodes"`
	Wires  []WireSnapshot  `json:"wires"`
	Chains []ChainSnapshot `json:"chains,omitempty"`
}

type NodeSnapshot struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// WireSnapshot carries the endpoints plus the simulated control point; the
// client draws the curve itself.
type WireSnapshot struct {
	PinA      uint64  `json:"pinA"`
	PinB      uint64  `json:"pinB"`
	StartX    float64 `json:"sx"`
	StartY    float64 `json:"sy"`
	EndX      float64 `json:"ex"`
	EndY      float64 `json:"ey"`
	ControlX  float64 `json:"cx"`
	ControlY  float64 `json:"cy"`
	Color     string  `json:"color,omitempty"`
	Thickness float64 `json:"w,omitempty"`
}

// ChainSnapshot is a falling wire: a polyline and a fade opacity.
type ChainSnapshot struct {
	Points    []float64 `json:"points"` // x0,y0,x1,y1,...
	Opacity   float64   `json:"opacity"`
	Color     string    `json:"color,omitempty"`
	Thickness float64   `json:"w,omitempty"`
}
