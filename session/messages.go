package session

import (
	"wibble/vmath"
	"wibble/wire"
)

type Conn interface {
	Send([]byte) error
	Close() error
}

// Join: issued once after hello parsed
type Join struct {
	Conn  Conn
	Reply chan<- JoinResult
}

type JoinResult struct {
	ClientID string
	Graph    string
}

// MoveNode: drag one demo node
type MoveNode struct {
	NodeID int
	Pos    vmath.Vec
}

// Sever: cut one wire
type Sever struct {
	ID wire.ID
}

// Pan: scroll the viewport
type Pan struct {
	Delta vmath.Vec
}

// Reset: discard all wire and chain state
type Reset struct{}

// Leave: issued on disconnect
type Leave struct {
	ClientID string
}
