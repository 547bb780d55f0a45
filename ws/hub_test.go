package ws

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialHub(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/ws", hub.HandleWebSocket)
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForSubscribers(t *testing.T, hub *Hub, gameID string, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.Subscribers(gameID) == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("game %q never reached %d subscribers", gameID, want)
}

func TestSubscribeAndBroadcast(t *testing.T) {
	hub := NewHub()
	conn := dialHub(t, hub)

	require.NoError(t, conn.WriteJSON(map[string]any{
		"type": "subscribe",
		"data": map[string]any{"gameId": "g1"},
	}))
	waitForSubscribers(t, hub, "g1", 1)

	hub.Broadcast("g1", "state", map[string]any{"id": "g1", "currentPlayer": 2})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg struct {
		Type string `json:"type"`
		Game struct {
			ID            string `json:"id"`
			CurrentPlayer int    `json:"currentPlayer"`
		} `json:"game"`
	}
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, "state", msg.Type)
	assert.Equal(t, "g1", msg.Game.ID)
	assert.Equal(t, 2, msg.Game.CurrentPlayer)
}

func TestUnsubscribe(t *testing.T) {
	hub := NewHub()
	conn := dialHub(t, hub)

	require.NoError(t, conn.WriteJSON(map[string]any{
		"type": "subscribe",
		"data": map[string]any{"gameId": "g1"},
	}))
	waitForSubscribers(t, hub, "g1", 1)

	require.NoError(t, conn.WriteJSON(map[string]any{"type": "unsubscribe"}))
	waitForSubscribers(t, hub, "g1", 0)
}

func TestDisconnectPrunesSubscription(t *testing.T) {
	hub := NewHub()
	conn := dialHub(t, hub)

	require.NoError(t, conn.WriteJSON(map[string]any{
		"type": "subscribe",
		"data": map[string]any{"gameId": "g1"},
	}))
	waitForSubscribers(t, hub, "g1", 1)

	conn.Close()
	waitForSubscribers(t, hub, "g1", 0)
}

func TestMalformedMessagesAreIgnored(t *testing.T) {
	hub := NewHub()
	conn := dialHub(t, hub)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))
	require.NoError(t, conn.WriteJSON(map[string]any{"type": "subscribe", "data": map[string]any{}}))
	require.NoError(t, conn.WriteJSON(map[string]any{
		"type": "subscribe",
		"data": map[string]any{"gameId": "g1"},
	}))
	waitForSubscribers(t, hub, "g1", 1)
}
