// Package spectate serves a read-only view of the running session over HTTP
// and websocket. The game loop publishes snapshots; spectators never touch
// session state.
package spectate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"

	"github.com/samdwyer/memoryflash/internal/session"
)

const (
	URIState = "/state"
	URIWatch = "/ws"

	sendBuffer   = 8
	writeTimeout = 2 * time.Second
)

// Server fans snapshots out to spectators.
type Server struct {
	router   *way.Router
	upgrader websocket.Upgrader
	http     *http.Server

	mu      sync.RWMutex
	latest  []byte
	clients map[*client]struct{}
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// New creates a server with its routes registered.
func New() *Server {
	s := &Server{
		router:  way.NewRouter(),
		clients: make(map[*client]struct{}),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.HandleFunc(http.MethodGet, URIState, s.handleState())
	s.router.HandleFunc(http.MethodGet, URIWatch, s.handleWatch())
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Listen binds addr and serves in the background. The returned address is
// the one actually bound.
func (s *Server) Listen(addr string) (net.Addr, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("spectate: listen on %s: %w", addr, err)
	}

	s.http = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("spectate server stopped")
		}
	}()

	log.WithField("addr", ln.Addr().String()).Info("spectator feed listening")
	return ln.Addr(), nil
}

// Shutdown stops the HTTP server and disconnects every spectator.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	for c := range s.clients {
		close(c.send)
		delete(s.clients, c)
	}
	s.mu.Unlock()

	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Publish stores snap as the latest view and queues it for every spectator.
// Spectators that cannot keep up miss snapshots rather than stall the game.
func (s *Server) Publish(snap session.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("spectate: encode snapshot: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.latest = data
	for c := range s.clients {
		select {
		case c.send <- data:
		default:
			log.Debug("spectator lagging, snapshot dropped")
		}
	}
	return nil
}

// Spectators returns the number of connected websocket clients.
func (s *Server) Spectators() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

func (s *Server) handleState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.RLock()
		data := s.latest
		s.mu.RUnlock()

		if data == nil {
			http.Error(w, "no session yet", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	}
}

func (s *Server) handleWatch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.WithError(err).Warn("spectator websocket upgrade failed")
			return
		}

		c := &client{conn: conn, send: make(chan []byte, sendBuffer)}

		s.mu.Lock()
		if s.latest != nil {
			c.send <- s.latest
		}
		s.clients[c] = struct{}{}
		s.mu.Unlock()

		log.WithField("remote", r.RemoteAddr).Info("spectator connected")

		go s.readLoop(c)
		s.writeLoop(c)
	}
}

// writeLoop sends queued snapshots until the client goes away.
func (s *Server) writeLoop(c *client) {
	defer c.conn.Close()
	for data := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.WithError(err).Debug("spectator write failed")
			s.drop(c)
			return
		}
	}
}

// readLoop discards client messages and unregisters the client on close.
func (s *Server) readLoop(c *client) {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			s.drop(c)
			return
		}
	}
}

func (s *Server) drop(c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[c]; ok {
		delete(s.clients, c)
		close(c.send)
	}
}
