package network

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"wibble/protocol"
	"wibble/session"
	"wibble/vmath"
	"wibble/wire"
)

var upgrader = websocket.Upgrader{
	// For dev, allow all origins. Lock this down in prod.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Server exposes the websocket endpoint and a graph list for the demo client.
type Server struct {
	Manager *session.Manager
}

func NewServer(m *session.Manager) *Server {
	return &Server{Manager: m}
}

func (s *Server) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/ws", s.wsHandler)
	mux.HandleFunc("/graphs", s.graphsHandler)
}

func (s *Server) graphsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.Manager.List())
}

// wsConn wraps a websocket connection behind the session's Conn interface.
// Writes come from both the session loop and the ping loop, hence the mutex.
type wsConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsConn) Send(b []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return c.conn.WriteMessage(websocket.TextMessage, b)
}

func (c *wsConn) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return c.conn.WriteMessage(websocket.PingMessage, nil)
}

func (c *wsConn) Close() error {
	return c.conn.Close()
}

func (s *Server) wsHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}

	// Basic timeouts + pong handling keep connections healthy.
	conn.SetReadLimit(1 << 20)
	_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	wc := &wsConn{conn: conn}

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(25 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := wc.ping(); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()
	defer close(done)

	// First message must be a hello naming the graph to join.
	_, msg, err := conn.ReadMessage()
	if err != nil {
		_ = conn.Close()
		return
	}
	env, err := protocol.DecodeEnvelope(msg)
	if err != nil || env.T != protocol.MsgHello {
		log.Println("expected hello, closing")
		_ = conn.Close()
		return
	}
	hello, err := protocol.DecodePayload[protocol.Hello](env)
	if err != nil {
		_ = conn.Close()
		return
	}

	sess := s.Manager.GetOrCreate(hello.Graph)
	reply := make(chan session.JoinResult, 1)
	sess.Inbox <- session.Join{Conn: wc, Reply: reply}
	res := <-reply

	welcome, err := protocol.Encode(protocol.MsgWelcome, protocol.Welcome{
		Graph:  res.Graph,
		TickHz: protocol.SimTickHz,
	})
	if err == nil {
		_ = wc.Send(welcome)
	}

	defer func() {
		sess.Inbox <- session.Leave{ClientID: res.ClientID}
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		env, err := protocol.DecodeEnvelope(msg)
		if err != nil {
			continue
		}
		if cmd, ok := commandFor(env); ok {
			sess.Inbox <- cmd
		}
	}
}

// commandFor translates a client envelope into a session command.
func commandFor(env protocol.Envelope) (any, bool) {
	switch env.T {
	case protocol.MsgInput:
		in, err := protocol.DecodePayload[protocol.Input](env)
		if err != nil {
			return nil, false
		}
		return session.MoveNode{NodeID: in.NodeID, Pos: vmath.Vec{X: in.X, Y: in.Y}}, true
	case protocol.MsgSever:
		sv, err := protocol.DecodePayload[protocol.Sever](env)
		if err != nil {
			return nil, false
		}
		return session.Sever{ID: wire.ID{A: wire.PinID(sv.PinA), B: wire.PinID(sv.PinB)}}, true
	case protocol.MsgPan:
		p, err := protocol.DecodePayload[protocol.Pan](env)
		if err != nil {
			return nil, false
		}
		return session.Pan{Delta: vmath.Vec{X: p.DX, Y: p.DY}}, true
	case protocol.MsgReset:
		return session.Reset{}, true
	}
	return nil, false
}
