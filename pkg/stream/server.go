//go:build !wasm
// +build !wasm

package stream

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeTimeout = 10 * time.Second
	pingInterval = 54 * time.Second
)

// Server fans style rule frames out to connected clients.
type Server struct {
	upgrader websocket.Upgrader
	mu       sync.RWMutex
	clients  map[*client]bool
}

type client struct {
	conn      *websocket.Conn
	sendChan  chan []byte
	closeChan chan struct{}
	closeOnce sync.Once
}

// NewServer creates a new style stream server.
func NewServer() *Server {
	return &Server{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// Dev tool: any origin may connect
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		clients: make(map[*client]bool),
	}
}

// HandleWebSocket upgrades the request and registers the connection.
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Style Stream] Failed to upgrade connection: %v", err)
		return
	}

	c := &client{
		conn:      conn,
		sendChan:  make(chan []byte, 64),
		closeChan: make(chan struct{}),
	}

	s.mu.Lock()
	s.clients[c] = true
	s.mu.Unlock()

	go c.writer()
	go s.reader(c)

	c.send(EncodeControl("HELLO"))
}

// ClientCount returns the number of connected clients.
func (s *Server) ClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// Broadcast sends a batch of rules to every connected client. Clients whose
// send buffer is full miss the batch; the next file change catches them up.
func (s *Server) Broadcast(rules []Rule) {
	if len(rules) == 0 {
		return
	}
	frame := EncodeRules(rules)

	s.mu.RLock()
	defer s.mu.RUnlock()
	for c := range s.clients {
		if !c.send(frame) {
			log.Printf("[Style Stream] Send buffer full, dropping %d rules", len(rules))
		}
	}
}

// reader drains incoming messages and unregisters the client on error.
func (s *Server) reader(c *client) {
	defer func() {
		s.mu.Lock()
		delete(s.clients, c)
		s.mu.Unlock()
		c.close()
	}()

	c.conn.SetPongHandler(func(string) error { return nil })

	for {
		messageType, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[Style Stream] Unexpected close: %v", err)
			}
			return
		}
		if messageType != websocket.BinaryMessage {
			continue
		}
		if msg, err := DecodeControl(data); err == nil && msg == "PING" {
			c.send(EncodeControl("PONG"))
		}
	}
}

// send queues a frame without blocking. Returns false when the buffer is full.
func (c *client) send(frame []byte) bool {
	select {
	case c.sendChan <- frame:
		return true
	case <-c.closeChan:
		return false
	default:
		return false
	}
}

func (c *client) close() {
	c.closeOnce.Do(func() {
		close(c.closeChan)
		c.conn.Close()
	})
}

// writer owns all writes to the connection, including keepalive pings.
func (c *client) writer() {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case frame := <-c.sendChan:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
				c.close()
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.close()
				return
			}

		case <-c.closeChan:
			return
		}
	}
}
