package stream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/san-kum/palamander/internal/experiment"
	"github.com/san-kum/palamander/internal/palamander"
)

func newTestServer(t *testing.T) (*Server, *palamander.Tank) {
	t.Helper()
	logger := log.New(&bytes.Buffer{}, "", 0)
	reg, err := experiment.NewRegistry(logger)
	if err != nil {
		t.Fatal(err)
	}
	p, err := reg.NewCreature("pollywog", palamander.Noop(), 1)
	if err != nil {
		t.Fatal(err)
	}
	tank := palamander.NewTank(p)
	return NewServer(tank, 10*time.Millisecond, logger), tank
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	ws, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(url, "http")+"/ws", nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { ws.Close() })
	return ws
}

func readMessage(t *testing.T, ws *websocket.Conn) Message {
	t.Helper()
	ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg Message
	if err := ws.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	return msg
}

func TestHello(t *testing.T) {
	s, _ := newTestServer(t)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	ws := dial(t, srv.URL)
	msg := readMessage(t, ws)
	if msg.Type != MessageHello {
		t.Errorf("expected %s, got %s", MessageHello, msg.Type)
	}
	if msg.Session == "" {
		t.Error("expected session id")
	}
	if len(msg.Frames) != 1 || msg.Frames[0].Type != "pollywog" {
		t.Errorf("expected one pollywog frame, got %+v", msg.Frames)
	}
	if s.Hub().Count() != 1 {
		t.Errorf("expected 1 session, got %d", s.Hub().Count())
	}
}

func TestBroadcast(t *testing.T) {
	s, tank := newTestServer(t)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	ws := dial(t, srv.URL)
	readMessage(t, ws)

	frames, err := tank.Tick(50)
	if err != nil {
		t.Fatal(err)
	}
	s.Broadcast(frames)

	msg := readMessage(t, ws)
	if msg.Type != MessageFrames {
		t.Errorf("expected %s, got %s", MessageFrames, msg.Type)
	}
	if len(msg.Frames) != 1 || msg.Frames[0].Tick != 1 {
		t.Errorf("expected tick 1, got %+v", msg.Frames)
	}
	if s.Latest()[0].Tick != 1 {
		t.Error("expected latest frames to be recorded")
	}
}

func TestFramesEndpoint(t *testing.T) {
	s, _ := newTestServer(t)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/frames")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var frames []palamander.Frame
	if err := json.NewDecoder(resp.Body).Decode(&frames); err != nil {
		t.Fatal(err)
	}
	if len(frames) != 1 {
		t.Errorf("expected 1 frame, got %d", len(frames))
	}
}

func TestRunStreams(t *testing.T) {
	s, _ := newTestServer(t)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	ws := dial(t, srv.URL)
	readMessage(t, ws)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	msg := readMessage(t, ws)
	if msg.Type != MessageFrames || msg.Frames[0].Tick < 1 {
		t.Errorf("expected a ticked frame, got %+v", msg)
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRunInvalidPeriod(t *testing.T) {
	s, _ := newTestServer(t)
	s.period = 0
	if err := s.Run(context.Background()); !errors.Is(err, palamander.ErrInvalidInterval) {
		t.Errorf("expected ErrInvalidInterval, got %v", err)
	}
}

func TestFrameEndpoint(t *testing.T) {
	s, tank := newTestServer(t)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	id := tank.Pals()[0].ID()
	resp, err := http.Get(srv.URL + "/frames/" + id)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var frame palamander.Frame
	if err := json.NewDecoder(resp.Body).Decode(&frame); err != nil {
		t.Fatal(err)
	}
	if frame.ID != id {
		t.Errorf("expected %s, got %s", id, frame.ID)
	}

	missing, err := http.Get(srv.URL + "/frames/nobody")
	if err != nil {
		t.Fatal(err)
	}
	missing.Body.Close()
	if missing.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", missing.StatusCode)
	}
}
