package stream

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestSessionWriteDeadline(t *testing.T) {
	sessions := make(chan *Session, 1)
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		sessions <- NewSession(ws)
	}))
	defer srv.Close()

	dial(t, srv.URL) // the viewer never reads

	var sess *Session
	select {
	case sess = <-sessions:
	case <-time.After(2 * time.Second):
		t.Fatal("no session")
	}
	defer sess.Close()
	sess.writeWait = 50 * time.Millisecond

	payload := strings.Repeat("x", 1<<20)
	start := time.Now()
	for i := 0; i < 512; i++ {
		if err := sess.Send(payload); err != nil {
			if time.Since(start) > 10*time.Second {
				t.Errorf("send took %v to fail", time.Since(start))
			}
			return
		}
	}
	t.Error("expected a send to a stalled viewer to fail")
}

func TestSessionSendAfterClose(t *testing.T) {
	sessions := make(chan *Session, 1)
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		sessions <- NewSession(ws)
	}))
	defer srv.Close()

	dial(t, srv.URL)
	sess := <-sessions
	sess.Close()
	sess.Close()
	if err := sess.Send("late"); err != nil {
		t.Errorf("expected send after close to be dropped, got %v", err)
	}
}
