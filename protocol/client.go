package protocol

// Messages coming in from the client.

type Hello struct {
	V     int    `json:"v"`               // version
	Graph string `json:"graph,omitempty"` // graph code to join, empty = new graph
}

// Input drags one demo node to a new position.
type Input struct {
	NodeID int     `json:"nodeId"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// Sever cuts the wire between two pins.
type Sever struct {
	PinA uint64 `json:"pinA"`
	PinB uint64 `json:"pinB"`
}

// Pan scrolls the viewport; falling chains translate with it.
type Pan struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}
