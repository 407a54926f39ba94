package net

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// WSPath is the websocket endpoint peers connect to.
const WSPath = "/ws"

type peer struct {
	conn *websocket.Conn
	mu   sync.Mutex // gorilla allows one concurrent writer per conn
}

func (p *peer) send(msg Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.conn.WriteJSON(msg)
}

// Hub is run by the host. It upgrades incoming connections, tracks the
// active peers and broadcasts board operations to them.
type Hub struct {
	mu       sync.RWMutex
	peers    map[*peer]bool
	upgrader websocket.Upgrader
	log      zerolog.Logger

	// OnMessage is invoked for every message received from a peer.
	// The origin is passed so the host can relay to everyone else.
	OnMessage func(msg Message, origin *Peer)
	// OnJoin is invoked after a peer connects, before its read loop
	// starts; the host uses it to send the current board state.
	OnJoin func(p *Peer)
}

// Peer is the hub's handle for one connected client.
type Peer struct {
	p *peer
}

// Send writes a message to this peer only.
func (p *Peer) Send(msg Message) error {
	return p.p.send(msg)
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		peers: make(map[*peer]bool),
		upgrader: websocket.Upgrader{
			// LAN tool, peers connect by raw IP.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		log: log.With().Str("component", "hub").Logger(),
	}
}

// ServeHTTP upgrades the connection and pumps messages until the peer
// disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}
	p := &peer{conn: conn}
	h.add(p)
	defer h.remove(p)

	if h.OnJoin != nil {
		h.OnJoin(&Peer{p: p})
	}

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			h.log.Info().Str("peer", conn.RemoteAddr().String()).Err(err).Msg("peer disconnected")
			return
		}
		if h.OnMessage != nil {
			h.OnMessage(msg, &Peer{p: p})
		}
	}
}

func (h *Hub) add(p *peer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.peers[p] = true
	h.log.Info().Str("peer", p.conn.RemoteAddr().String()).Msg("peer connected")
}

func (h *Hub) remove(p *peer) {
	h.mu.Lock()
	delete(h.peers, p)
	h.mu.Unlock()
	p.conn.Close()
}

// Broadcast sends msg to every connected peer except the origin.
// Write failures are logged and skipped; the peer's own read loop
// tears the connection down.
func (h *Hub) Broadcast(msg Message, exclude *Peer) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for p := range h.peers {
		if exclude != nil && p == exclude.p {
			continue
		}
		if err := p.send(msg); err != nil {
			h.log.Error().Str("peer", p.conn.RemoteAddr().String()).Err(err).Msg("broadcast write failed")
		}
	}
}

// PeerCount returns the number of connected peers.
func (h *Hub) PeerCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.peers)
}

// Listen serves the hub on the given port. It blocks and only returns
// on listener failure, which the caller treats as fatal.
func (h *Hub) Listen(port int) error {
	mux := http.NewServeMux()
	mux.Handle(WSPath, h)
	addr := fmt.Sprintf(":%d", port)
	h.log.Info().Str("addr", addr).Msg("listening")
	if err := http.ListenAndServe(addr, mux); err != nil {
		return fmt.Errorf("hub listen on %s: %w", addr, err)
	}
	return nil
}
