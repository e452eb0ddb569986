package inspect

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestReloadServer_NoClients(t *testing.T) {
	rs := NewReloadServer()

	if rs.ClientCount() != 0 {
		t.Errorf("ClientCount = %d, want 0", rs.ClientCount())
	}

	// Broadcasting with no clients should not panic.
	rs.NotifyChanged("home")
	rs.NotifyRemoved("home")

	rs.Close()
	rs.Close()
}

func TestReloadServer_ClientLifecycle(t *testing.T) {
	rs := NewReloadServer()

	counts := make(chan int, 10)
	rs.OnClientCount(func(n int) {
		counts <- n
	})

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", rs.HandleWebSocket)
	srv := httptest.NewServer(mux)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Dial error: %v", err)
	}

	select {
	case n := <-counts:
		if n != 1 {
			t.Errorf("client count = %d, want 1", n)
		}
	case <-time.After(time.Second):
		t.Fatal("Timeout waiting for connect callback")
	}

	// First message is the hello.
	var msg ReloadMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("ReadJSON error: %v", err)
	}
	if msg.Type != ReloadTypeHello {
		t.Errorf("first message type = %q, want %q", msg.Type, ReloadTypeHello)
	}

	// A change notification reaches the client.
	rs.NotifyChanged("home")
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("ReadJSON error: %v", err)
	}
	if msg.Type != ReloadTypeChanged {
		t.Errorf("message type = %q, want %q", msg.Type, ReloadTypeChanged)
	}
	if msg.Snapshot != "home" {
		t.Errorf("message snapshot = %q, want %q", msg.Snapshot, "home")
	}

	conn.Close()

	select {
	case n := <-counts:
		if n != 0 {
			t.Errorf("client count after close = %d, want 0", n)
		}
	case <-time.After(time.Second):
		t.Fatal("Timeout waiting for disconnect callback")
	}
}

func TestReloadServer_CloseNotifiesCallback(t *testing.T) {
	rs := NewReloadServer()

	last := -1
	rs.OnClientCount(func(n int) { last = n })

	rs.Close()

	if last != 0 {
		t.Errorf("callback count = %d, want 0", last)
	}
}
