package session

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"wibble/protocol"
	"wibble/vmath"
	"wibble/wire"
)

// How long an undrawn wire state lingers before the registry drops it.
const pruneAfterSeconds = 5.0

// Session drives one graph's wire simulation: it owns the registry, ticks it
// at a fixed rate, applies client commands between ticks, and broadcasts
// frame snapshots. All simulation state is confined to the Run goroutine.
type Session struct {
	Inbox chan any

	tickHz         int
	broadcastEvery int
	tick           int

	tun      *wire.Tuning
	registry *wire.Registry
	nodes    []node
	links    []link

	clients  map[string]Conn
	nclients atomic.Int64
	nextID   int
	quit     chan struct{}

	Code    string            // graph code, e.g. a uuid
	OnEmpty func(code string) // called when last client leaves
}

func New(tun *wire.Tuning) *Session {
	broadcastEvery := protocol.SimTickHz / protocol.BroadcastHz
	if broadcastEvery <= 0 {
		broadcastEvery = 1
	}
	nodes, links := demoScene()
	return &Session{
		Inbox:          make(chan any, 256),
		tickHz:         protocol.SimTickHz,
		broadcastEvery: broadcastEvery,
		tun:            tun,
		registry:       wire.NewRegistry(tun, rand.New(rand.NewSource(time.Now().UnixNano()))),
		nodes:          nodes,
		links:          links,
		clients:        make(map[string]Conn),
		quit:           make(chan struct{}),
	}
}

func (s *Session) Stop() {
	close(s.quit)
}

// NumClients is safe to call from outside the Run goroutine.
func (s *Session) NumClients() int {
	return int(s.nclients.Load())
}

func (s *Session) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(s.tickHz))
	defer ticker.Stop()

	for {
		select {
		case <-s.quit:
			return
		case cmd := <-s.Inbox:
			s.handleCommand(cmd)
		case <-ticker.C:
			s.step()
			if s.tick%s.broadcastEvery == 0 {
				s.broadcastFrame()
			}
		}
	}
}

// step advances every attached wire and every falling chain by one tick.
func (s *Session) step() {
	s.tick++
	dt := 1.0 / float64(s.tickHz)

	for _, l := range s.links {
		start, end := s.endpoints(l)
		s.registry.Draw(l.id, start, end, dt, l.color)
	}
	s.registry.UpdateChains(dt)

	if s.tick%s.tickHz == 0 {
		s.registry.Prune(pruneAfterSeconds)
	}
}

func (s *Session) endpoints(l link) (vmath.Vec, vmath.Vec) {
	return s.nodes[l.from].pos.Add(outOffset), s.nodes[l.to].pos.Add(inOffset)
}

func (s *Session) handleCommand(cmd any) {
	switch c := cmd.(type) {
	case Join:
		s.nextID++
		clientID := fmt.Sprintf("c%d", s.nextID)
		s.clients[clientID] = c.Conn
		s.nclients.Store(int64(len(s.clients)))
		c.Reply <- JoinResult{ClientID: clientID, Graph: s.Code}
	case MoveNode:
		for i := range s.nodes {
			if s.nodes[i].id == c.NodeID {
				s.nodes[i].pos = c.Pos
			}
		}
	case Sever:
		if s.registry.Sever(c.ID) {
			s.removeLink(c.ID)
		}
	case Pan:
		for i := range s.nodes {
			s.nodes[i].pos = s.nodes[i].pos.Add(c.Delta)
		}
		s.registry.Translate(c.Delta)
	case Reset:
		s.registry.Reset()
		s.nodes, s.links = demoScene()
	case Leave:
		s.handleLeave(c.ClientID)
	}
}

func (s *Session) removeLink(id wire.ID) {
	for i := range s.links {
		if s.links[i].id == id {
			s.links = append(s.links[:i], s.links[i+1:]...)
			return
		}
	}
}

func (s *Session) handleLeave(clientID string) {
	if c, ok := s.clients[clientID]; ok {
		_ = c.Close()
		delete(s.clients, clientID)
		s.nclients.Store(int64(len(s.clients)))
	}
	if len(s.clients) == 0 && s.OnEmpty != nil && s.Code != "" {
		s.OnEmpty(s.Code)
	}
}

func (s *Session) removeClient(clientID string) {
	if c, ok := s.clients[clientID]; ok {
		_ = c.Close()
	}
	delete(s.clients, clientID)
	s.nclients.Store(int64(len(s.clients)))
}

func (s *Session) broadcastFrame() {
	frame := s.buildFrame()
	b, err := protocol.Encode(protocol.MsgFrame, frame)
	if err != nil {
		return
	}

	var failed []string
	for id, c := range s.clients {
		if err := c.Send(b); err != nil {
			failed = append(failed, id)
		}
	}
	for _, id := range failed {
		s.removeClient(id)
	}
}

func (s *Session) buildFrame() protocol.Frame {
	frame := protocol.Frame{
		Tick:  s.tick,
		Nodes: make([]protocol.NodeSnapshot, 0, len(s.nodes)),
		Wires: make([]protocol.WireSnapshot, 0, len(s.links)),
	}

	for _, n := range s.nodes {
		frame.Nodes = append(frame.Nodes, protocol.NodeSnapshot{ID: n.id, X: n.pos.X, Y: n.pos.Y})
	}

	for _, l := range s.links {
		st, ok := s.registry.Lookup(l.id)
		if !ok {
			continue
		}
		start, end := s.endpoints(l)
		control := st.ControlPoint()
		frame.Wires = append(frame.Wires, protocol.WireSnapshot{
			PinA:      uint64(l.id.A),
			PinB:      uint64(l.id.B),
			StartX:    start.X,
			StartY:    start.Y,
			EndX:      end.X,
			EndY:      end.Y,
			ControlX:  control.X,
			ControlY:  control.Y,
			Color:     l.color,
			Thickness: s.tun.ThicknessScale,
		})
	}

	for _, cf := range s.registry.ChainFrames() {
		points := make([]float64, 0, len(cf.Points)*2)
		for _, p := range cf.Points {
			points = append(points, p.X, p.Y)
		}
		frame.Chains = append(frame.Chains, protocol.ChainSnapshot{
			Points:    points,
			Opacity:   cf.Opacity,
			Color:     cf.Color,
			Thickness: cf.Thickness,
		})
	}

	return frame
}
