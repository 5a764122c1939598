package spectate

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// ViewerID uniquely identifies a connected viewer
type ViewerID uint32

// viewer is one websocket client; frames are queued on send and written by writePump
type viewer struct {
	id   ViewerID
	addr string
	conn *websocket.Conn
	cfg  *Config

	send chan []byte

	closeCh   chan struct{}
	closeOnce sync.Once
}

func newViewer(id ViewerID, conn *websocket.Conn, cfg *Config) *viewer {
	return &viewer{
		id:      id,
		addr:    conn.RemoteAddr().String(),
		conn:    conn,
		cfg:     cfg,
		send:    make(chan []byte, cfg.SendQueueSize),
		closeCh: make(chan struct{}),
	}
}

// queue offers a frame without blocking; a full backlog drops the frame
func (v *viewer) queue(data []byte) bool {
	select {
	case <-v.closeCh:
		return false
	default:
	}
	select {
	case v.send <- data:
		return true
	default:
		return false
	}
}

// close signals writePump, which owns closing the connection
func (v *viewer) close() {
	v.closeOnce.Do(func() {
		close(v.closeCh)
	})
}

// readPump discards client messages and keeps the pong deadline fresh.
// Returns when the connection fails or the client goes away.
func (v *viewer) readPump() {
	defer v.close()

	v.conn.SetReadLimit(512)
	v.conn.SetReadDeadline(time.Now().Add(v.cfg.PongWait))
	v.conn.SetPongHandler(func(string) error {
		return v.conn.SetReadDeadline(time.Now().Add(v.cfg.PongWait))
	})

	for {
		if _, _, err := v.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("spectate: viewer %d read: %v", v.id, err)
			}
			return
		}
	}
}

// writePump sends queued frames and periodic pings
func (v *viewer) writePump() {
	ticker := time.NewTicker(v.cfg.PingInterval)
	defer func() {
		ticker.Stop()
		v.close()
		v.conn.Close()
	}()

	for {
		select {
		case <-v.closeCh:
			v.conn.SetWriteDeadline(time.Now().Add(v.cfg.WriteWait))
			v.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "feed closed"))
			return
		case data := <-v.send:
			v.conn.SetWriteDeadline(time.Now().Add(v.cfg.WriteWait))
			if err := v.conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
				log.Printf("spectate: viewer %d write: %v", v.id, err)
				return
			}
		case <-ticker.C:
			v.conn.SetWriteDeadline(time.Now().Add(v.cfg.WriteWait))
			if err := v.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
