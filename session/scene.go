package session

import (
	"wibble/vmath"
	"wibble/wire"
)

// The demo scene: a small fixed node layout whose connections exercise the
// wire simulation. Pin numbering leaves zero free as the absent sentinel.

type node struct {
	id  int
	pos vmath.Vec
}

type link struct {
	id       wire.ID
	from, to int // node indices
	color    string
}

func outPin(nodeIndex int) wire.PinID { return wire.PinID(nodeIndex*2 + 1) }
func inPin(nodeIndex int) wire.PinID  { return wire.PinID(nodeIndex*2 + 2) }

// Endpoint offsets from node position: wires leave a node's right edge and
// enter the next node's left edge.
var (
	outOffset = vmath.Vec{X: 60, Y: 20}
	inOffset  = vmath.Vec{X: 0, Y: 20}
)

func demoScene() ([]node, []link) {
	nodes := []node{
		{id: 0, pos: vmath.Vec{X: 100, Y: 150}},
		{id: 1, pos: vmath.Vec{X: 420, Y: 120}},
		{id: 2, pos: vmath.Vec{X: 420, Y: 360}},
		{id: 3, pos: vmath.Vec{X: 760, Y: 240}},
	}
	links := []link{
		{id: wire.ID{A: outPin(0), B: inPin(1)}, from: 0, to: 1, color: "#6ec1ff"},
		{id: wire.ID{A: outPin(0), B: inPin(2)}, from: 0, to: 2, color: "#ffd166"},
		{id: wire.ID{A: outPin(1), B: inPin(3)}, from: 1, to: 3, color: "#9bf6a3"},
		{id: wire.ID{A: outPin(2), B: inPin(3)}, from: 2, to: 3, color: "#f38ba8"},
	}
	return nodes, links
}
