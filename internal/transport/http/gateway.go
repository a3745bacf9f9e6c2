package http

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/zes0-cmd/chat-appv2/internal/core"
	"github.com/zes0-cmd/chat-appv2/internal/proto"
)

// session is the gateway's view of one live connection.
type session struct {
	out       chan proto.Outbound
	done      chan struct{}
	closeOnce sync.Once
}

// terminate signals the write loop to close the connection.
func (s *session) terminate() {
	s.closeOnce.Do(func() { close(s.done) })
}

// Gateway tracks live WebSocket sessions and implements core.Transport.
// Outbound delivery is fire-and-forget: frames for a slow consumer are
// dropped rather than blocking the sender.
type Gateway struct {
	mu       sync.RWMutex
	sessions map[core.ConnID]*session
	log      zerolog.Logger
}

// NewGateway constructs an empty gateway.
func NewGateway(logger *zerolog.Logger) *Gateway {
	return &Gateway{
		sessions: make(map[core.ConnID]*session),
		log:      logger.With().Str("component", "gateway").Logger(),
	}
}

func (g *Gateway) register(id core.ConnID) *session {
	s := &session{
		out:  make(chan proto.Outbound, 32),
		done: make(chan struct{}),
	}
	g.mu.Lock()
	g.sessions[id] = s
	g.mu.Unlock()
	return s
}

func (g *Gateway) unregister(id core.ConnID) {
	g.mu.Lock()
	delete(g.sessions, id)
	g.mu.Unlock()
}

// Send delivers one event to one connection.
func (g *Gateway) Send(id core.ConnID, event string, payload any) {
	g.mu.RLock()
	s, ok := g.sessions[id]
	g.mu.RUnlock()
	if !ok {
		return
	}
	g.enqueue(id, s, outbound(event, payload))
}

// SendToMany delivers one event to a group of connections.
func (g *Gateway) SendToMany(ids []core.ConnID, event string, payload any) {
	frame := outbound(event, payload)
	g.mu.RLock()
	targets := make(map[core.ConnID]*session, len(ids))
	for _, id := range ids {
		if s, ok := g.sessions[id]; ok {
			targets[id] = s
		}
	}
	g.mu.RUnlock()
	for id, s := range targets {
		g.enqueue(id, s, frame)
	}
}

// Terminate force-closes one connection.
func (g *Gateway) Terminate(id core.ConnID) {
	g.mu.RLock()
	s, ok := g.sessions[id]
	g.mu.RUnlock()
	if !ok {
		return
	}
	s.terminate()
}

func (g *Gateway) enqueue(id core.ConnID, s *session, frame proto.Outbound) {
	select {
	case s.out <- frame:
	default:
		g.log.Warn().Str("sid", string(id)).Str("event", frame.Event).Msg("dropping frame for slow consumer")
	}
}

func outbound(event string, payload any) proto.Outbound {
	if event == proto.EventError {
		if e, ok := payload.(proto.Error); ok {
			return proto.Outbound{Type: "error", Error: &e}
		}
	}
	return proto.Outbound{Type: "event", Event: event, Data: payload}
}
