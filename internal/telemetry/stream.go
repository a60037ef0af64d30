package telemetry

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"rubycore/internal/ic"
)

// Stream broadcasts IC transition and dispatch messages to any connected
// debug client over a websocket, so a developer can watch a spec run's
// dispatch behavior live instead of only reading a post-run summary.
type Stream struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

// NewStream builds a Stream with no connected clients yet.
func NewStream() *Stream {
	return &Stream{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]bool),
	}
}

// ServeHTTP upgrades an incoming HTTP request to a websocket connection and
// registers it as a broadcast recipient until it disconnects.
func (s *Stream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()

	go func() {
		defer s.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (s *Stream) drop(conn *websocket.Conn) {
	s.mu.Lock()
	delete(s.clients, conn)
	s.mu.Unlock()
	conn.Close()
}

// Broadcast sends msg to every connected client, dropping any that error.
func (s *Stream) Broadcast(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.clients {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
			conn.Close()
			delete(s.clients, conn)
		}
	}
}

// OnTransition implements dispatch.Observer.
func (s *Stream) OnTransition(siteID, method string, from, to ic.StateType) {
	s.Broadcast(fmt.Sprintf("transition site=%s method=%s %s -> %s", siteID, method, from, to))
}

// OnDispatch implements dispatch.Observer.
func (s *Stream) OnDispatch(siteID, method, class string, hit bool) {
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	s.Broadcast(fmt.Sprintf("dispatch site=%s method=%s class=%s %s", siteID, method, class, outcome))
}
