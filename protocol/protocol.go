package protocol

import (
	"encoding/json"
)

const (
	MsgHello   = "hello"
	MsgInput   = "input"
	MsgSever   = "sever"
	MsgPan     = "pan"
	MsgReset   = "reset"
	MsgWelcome = "welcome"
	MsgFrame   = "frame"
)

const (
	SimTickHz   = 40
	BroadcastHz = 20
)

type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"` // raw payload bytes
}
