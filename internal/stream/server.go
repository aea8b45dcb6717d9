// Package stream serves a tank of creatures to websocket viewers. Every
// tick the server broadcasts the rendered frames as JSON; new viewers get
// the latest frames as soon as they connect.
package stream

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/san-kum/palamander/internal/palamander"
)

const (
	MessageHello  = "hello"
	MessageFrames = "frames"
	MessageError  = "error"
)

type Message struct {
	Type    string             `json:"type"`
	Session string             `json:"session,omitempty"`
	Frames  []palamander.Frame `json:"frames,omitempty"`
	Error   string             `json:"error,omitempty"`
}

type Server struct {
	tank     *palamander.Tank
	period   time.Duration
	hub      *Hub
	logger   *log.Logger
	upgrader websocket.Upgrader

	mu     sync.RWMutex
	latest []palamander.Frame
}

func NewServer(tank *palamander.Tank, period time.Duration, logger *log.Logger) *Server {
	return &Server{
		tank:   tank,
		period: period,
		hub:    NewHub(),
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		latest: tank.Frames(),
	}
}

func (s *Server) Hub() *Hub { return s.hub }

// Latest returns the most recently broadcast frames.
func (s *Server) Latest() []palamander.Frame {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

// Handler routes /ws to the websocket stream, /frames to a JSON snapshot
// of the latest frames and /frames/{id} to a single creature's frame.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/ws", s.serveWS).Methods("GET")
	router.HandleFunc("/frames", s.serveFrames).Methods("GET")
	router.HandleFunc("/frames/{id:[a-zA-Z0-9\\-]+}", s.serveFrame).Methods("GET")
	return router
}

func (s *Server) serveFrames(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.Latest()); err != nil {
		s.logger.Printf("frames: %v", err)
	}
}

func (s *Server) serveFrame(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	for _, f := range s.Latest() {
		if f.ID != id {
			continue
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(f); err != nil {
			s.logger.Printf("frame %s: %v", id, err)
		}
		return
	}
	http.Error(w, "creature not found", http.StatusNotFound)
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("upgrade: %v", err)
		return
	}

	sess := NewSession(ws)
	s.hub.Add(sess)
	s.logger.Printf("session %s connected (%d open)", sess.ID, s.hub.Count())

	if err := sess.Send(Message{Type: MessageHello, Session: sess.ID, Frames: s.Latest()}); err != nil {
		s.drop(sess, err)
		return
	}

	// Viewers never send anything we act on, but reading is how a closed
	// socket is noticed.
	go func() {
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				s.drop(sess, err)
				return
			}
		}
	}()
}

func (s *Server) drop(sess *Session, err error) {
	s.hub.Remove(sess.ID)
	sess.Close()
	if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		s.logger.Printf("session %s: %v", sess.ID, err)
	}
	s.logger.Printf("session %s closed (%d open)", sess.ID, s.hub.Count())
}

// Broadcast records frames as the latest and sends them to every session.
// A session that fails to receive is dropped.
func (s *Server) Broadcast(frames []palamander.Frame) {
	s.mu.Lock()
	s.latest = frames
	s.mu.Unlock()

	msg := Message{Type: MessageFrames, Frames: frames}
	for _, sess := range s.hub.Snapshot() {
		if err := sess.Send(msg); err != nil {
			s.drop(sess, err)
		}
	}
}

// Run ticks the tank until ctx is done. A tick error is sent to every
// session before Run returns it.
func (s *Server) Run(ctx context.Context) error {
	err := s.tank.Run(ctx, s.period, func(frames []palamander.Frame) error {
		s.Broadcast(frames)
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		for _, sess := range s.hub.Snapshot() {
			sess.Send(Message{Type: MessageError, Error: err.Error()})
		}
	}
	return err
}

// ListenAndServe serves on addr and runs the tank until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Handler()}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errc := make(chan error, 1)
	go func() {
		errc <- s.Run(ctx)
		cancel()
	}()

	go func() {
		<-ctx.Done()
		shutdown, done := context.WithTimeout(context.Background(), time.Second)
		defer done()
		srv.Shutdown(shutdown)
		for _, sess := range s.hub.Snapshot() {
			sess.Close()
		}
	}()

	s.logger.Printf("streaming %d creatures on %s", s.tank.Len(), addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	cancel()
	if err := <-errc; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
