package services

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// dialHubClient upgrades one test connection, registers its server
// side on the hub, and returns the client side.
func dialHubClient(t *testing.T, hub *RealtimeHub, userID uint) *websocket.Conn {
	t.Helper()

	upgrader := websocket.Upgrader{}
	registered := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		hub.Register(&WSClient{UserID: userID, Conn: conn})
		close(registered)
	}))
	t.Cleanup(srv.Close)

	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	<-registered
	return client
}

// A user's connection can receive broadcasts from several goroutines
// at once (plan events racing with alert events); every message must
// arrive intact.
func TestBroadcastToUserConcurrent(t *testing.T) {
	hub := NewRealtimeHub()
	client := dialHubClient(t, hub, 7)

	const n = 8
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hub.BroadcastToUser(7, map[string]any{"kind": "alert.created"})
		}()
	}
	wg.Wait()

	_ = client.SetReadDeadline(time.Now().Add(2 * time.Second))
	for i := 0; i < n; i++ {
		if _, _, err := client.ReadMessage(); err != nil {
			t.Fatalf("read %d/%d: %v", i+1, n, err)
		}
	}
}

func TestBroadcastToOtherUserNotDelivered(t *testing.T) {
	hub := NewRealtimeHub()
	client := dialHubClient(t, hub, 7)

	hub.BroadcastToUser(99, map[string]any{"kind": "alert.created"})

	_ = client.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	if _, _, err := client.ReadMessage(); err == nil {
		t.Fatal("user 7 received a broadcast addressed to user 99")
	}
}
