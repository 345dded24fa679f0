package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
)

// dialTestServer upgrades an httptest server connection and hands the
// server side to fn, returning the client side for assertions.
func dialTestServer(t *testing.T, fn func(conn *websocket.Conn)) *websocket.Conn {
	t.Helper()

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer conn.Close()
		fn(conn)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestWriteError(t *testing.T) {
	client := dialTestServer(t, func(conn *websocket.Conn) {
		if err := WriteError(conn, "unknown action"); err != nil {
			t.Errorf("WriteError: %v", err)
		}
	})

	var resp ErrorResponse
	if err := client.ReadJSON(&resp); err != nil {
		t.Fatalf("read: %v", err)
	}
	if resp.Event != EventError {
		t.Errorf("Event = %q, want %q", resp.Event, EventError)
	}
	if resp.Error != "unknown action" {
		t.Errorf("Error = %q, want %q", resp.Error, "unknown action")
	}
}

func TestWriteTypedPong(t *testing.T) {
	client := dialTestServer(t, func(conn *websocket.Conn) {
		if err := WriteTyped(conn, PongResponse{Event: EventPong}); err != nil {
			t.Errorf("WriteTyped: %v", err)
		}
	})

	var resp PongResponse
	if err := client.ReadJSON(&resp); err != nil {
		t.Fatalf("read: %v", err)
	}
	if resp.Event != EventPong {
		t.Errorf("Event = %q, want %q", resp.Event, EventPong)
	}
}
