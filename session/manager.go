package session

import (
	"sync"

	"github.com/google/uuid"

	"wibble/wire"
)

// Info is returned by the API for the graph list.
type Info struct {
	Code    string `json:"code"`
	Clients int    `json:"clients"`
}

// Manager holds the live sessions by graph code. Sessions are created on
// first join and removed when the last client leaves.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	tun      *wire.Tuning
}

func NewManager(tun *wire.Tuning) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		tun:      tun,
	}
}

// GetOrCreate returns the session for the given code, creating and starting
// it if needed. An empty code creates a fresh graph with a generated code.
func (m *Manager) GetOrCreate(code string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if code == "" {
		code = uuid.NewString()
	}
	if s, ok := m.sessions[code]; ok {
		return s
	}
	s := New(m.tun)
	s.Code = code
	s.OnEmpty = func(c string) {
		m.remove(c)
	}
	m.sessions[code] = s
	go s.Run()
	return s
}

func (m *Manager) remove(code string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[code]; ok {
		s.Stop()
		delete(m.sessions, code)
	}
}

// List returns all active graphs with code and client count.
func (m *Manager) List() []Info {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Info, 0, len(m.sessions))
	for code, s := range m.sessions {
		out = append(out, Info{Code: code, Clients: s.NumClients()})
	}
	return out
}
