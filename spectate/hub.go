// Package spectate streams read-only simulation snapshots to websocket viewers.
package spectate

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"

	"github.com/HJXCODE-810/Lode-runner-CG/constants"
	"github.com/HJXCODE-810/Lode-runner-CG/engine"
	"github.com/HJXCODE-810/Lode-runner-CG/events"
)

// ErrHubClosed is returned by Start after Close
var ErrHubClosed = errors.New("spectate hub closed")

// Hub accepts viewers on constants.SpectatePath and fans encoded frames out to them.
// Viewers never send anything the simulation reads.
type Hub struct {
	cfg      *Config
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	viewers map[ViewerID]*viewer
	last    []byte // Latest encoded frame, sent to late joiners
	closed  bool

	nextID atomic.Uint32
	seq    atomic.Uint64
	sent   atomic.Uint64

	server   *http.Server
	listener net.Listener
}

// NewHub creates a hub; it serves nothing until Start or Handler is used
func NewHub(cfg *Config) *Hub {
	if cfg == nil {
		cfg = DefaultConfig("")
	}
	return &Hub{
		cfg: cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 64 * 1024,
			// Viewers are read-only, any origin may watch
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		viewers: make(map[ViewerID]*viewer),
	}
}

// Handler returns the HTTP handler serving the websocket endpoint
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(constants.SpectatePath, h.serveWS)
	return mux
}

// Start binds the configured address and serves in the background
func (h *Hub) Start() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return ErrHubClosed
	}
	h.mu.Unlock()

	ln, err := net.Listen("tcp", h.cfg.Addr)
	if err != nil {
		return fmt.Errorf("spectate listen %s: %w", h.cfg.Addr, err)
	}
	h.listener = ln
	h.server = &http.Server{Handler: h.Handler()}

	go func() {
		if err := h.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("spectate: serve: %v", err)
		}
	}()
	log.Printf("spectate: listening on ws://%s%s", ln.Addr(), constants.SpectatePath)
	return nil
}

// Addr returns the bound address, or the configured one before Start
func (h *Hub) Addr() string {
	if h.listener != nil {
		return h.listener.Addr().String()
	}
	return h.cfg.Addr
}

// Close stops the server, if started, and disconnects every viewer
func (h *Hub) Close(ctx context.Context) error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	for id, v := range h.viewers {
		v.close()
		delete(h.viewers, id)
	}
	h.mu.Unlock()

	if h.server != nil {
		if err := h.server.Shutdown(ctx); err != nil {
			return fmt.Errorf("spectate shutdown: %w", err)
		}
	}
	log.Printf("spectate: closed after %d frames", h.seq.Load())
	return nil
}

func (h *Hub) serveWS(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	full := len(h.viewers) >= h.cfg.MaxViewers
	closed := h.closed
	h.mu.RUnlock()
	if closed {
		http.Error(w, "feed closed", http.StatusServiceUnavailable)
		return
	}
	if full {
		http.Error(w, "too many viewers", http.StatusServiceUnavailable)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("spectate: upgrade: %v", err)
		return
	}

	v := newViewer(ViewerID(h.nextID.Add(1)), conn, h.cfg)
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.Close()
		return
	}
	h.viewers[v.id] = v
	if h.last != nil {
		v.queue(h.last)
	}
	h.mu.Unlock()
	log.Printf("spectate: viewer %d connected from %s", v.id, v.addr)

	go v.writePump()
	v.readPump()

	h.mu.Lock()
	delete(h.viewers, v.id)
	h.mu.Unlock()
	log.Printf("spectate: viewer %d disconnected", v.id)
}

// Publish encodes one frame and queues it for every viewer.
// Slow viewers miss frames rather than stall the caller.
func (h *Hub) Publish(snap *engine.Snapshot, evs []events.GameEvent) error {
	f := NewFrame(snap, evs)
	f.Seq = h.seq.Add(1)
	data, err := f.Encode()
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return ErrHubClosed
	}
	h.last = data
	for _, v := range h.viewers {
		if v.queue(data) {
			h.sent.Add(1)
		}
	}
	return nil
}

// ViewerCount returns the number of connected viewers
func (h *Hub) ViewerCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.viewers)
}

// FramesSent returns how many frame deliveries were queued across all viewers
func (h *Hub) FramesSent() uint64 {
	return h.sent.Load()
}
