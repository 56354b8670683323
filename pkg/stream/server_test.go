//go:build !wasm
// +build !wasm

package stream

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dialTestServer(t *testing.T) (*Server, *websocket.Conn) {
	t.Helper()

	server := NewServer()
	ts := httptest.NewServer(http.HandlerFunc(server.HandleWebSocket))
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to dial test server: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	// First frame is always the server HELLO.
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, frame, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("failed to read HELLO: %v", err)
	}
	if msg, err := DecodeControl(frame); err != nil || msg != "HELLO" {
		t.Fatalf("expected HELLO control frame, got %q (%v)", msg, err)
	}

	return server, conn
}

func TestServer_BroadcastReachesClient(t *testing.T) {
	server, conn := dialTestServer(t)

	rules := []Rule{{Selector: ":root", Declarations: "color: red"}}
	server.Broadcast(rules)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, frame, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("failed to read rules frame: %v", err)
	}
	decoded, err := DecodeRules(frame)
	if err != nil {
		t.Fatalf("DecodeRules failed: %v", err)
	}
	if len(decoded) != 1 || decoded[0].Selector != ":root" {
		t.Errorf("decoded = %+v, want the broadcast rule", decoded)
	}
}

func TestServer_PingPong(t *testing.T) {
	_, conn := dialTestServer(t)

	if err := conn.WriteMessage(websocket.BinaryMessage, EncodeControl("PING")); err != nil {
		t.Fatalf("failed to send PING: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, frame, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("failed to read PONG: %v", err)
	}
	if msg, _ := DecodeControl(frame); msg != "PONG" {
		t.Errorf("expected PONG, got %q", msg)
	}
}

func TestServer_TracksClients(t *testing.T) {
	server, conn := dialTestServer(t)

	if server.ClientCount() != 1 {
		t.Fatalf("ClientCount = %d, want 1", server.ClientCount())
	}

	conn.Close()
	deadline := time.Now().Add(2 * time.Second)
	for server.ClientCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("client was not unregistered after close")
		}
		time.Sleep(10 * time.Millisecond)
	}
}
