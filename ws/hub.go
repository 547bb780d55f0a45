package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub tracks which connections are watching which game. The game service
// pushes a fresh snapshot through Broadcast after every successful
// mutation, which replaces client-side polling while a lobby fills up.
type Hub struct {
	mu    sync.Mutex
	games map[string][]*websocket.Conn
}

func NewHub() *Hub {
	return &Hub{games: make(map[string][]*websocket.Conn)}
}

// inboundMessage is the uniform client message envelope (type + data).
type inboundMessage struct {
	Type string         `json:"type"`
	Data map[string]any `json:"data"`
}

type subscribePayload struct {
	GameID string `mapstructure:"gameId"`
}

// HandleWebSocket upgrades the connection and serves its read loop until
// the client goes away. Clients subscribe with
// {"type":"subscribe","data":{"gameId":"..."}} and may switch games or
// unsubscribe at any time.
func (h *Hub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer func() {
		h.dropConn(conn)
		conn.Close()
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var msg inboundMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			zap.L().Debug("ignoring malformed websocket message", zap.Error(err))
			continue
		}

		switch msg.Type {
		case "subscribe":
			var payload subscribePayload
			if err := mapstructure.Decode(msg.Data, &payload); err != nil || payload.GameID == "" {
				continue
			}
			h.subscribe(payload.GameID, conn)
		case "unsubscribe":
			h.dropConn(conn)
		}
	}
}

func (h *Hub) subscribe(gameID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, existing := range h.games[gameID] {
		if existing == conn {
			return
		}
	}
	h.games[gameID] = append(h.games[gameID], conn)
}

func (h *Hub) dropConn(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for gameID, conns := range h.games {
		kept := conns[:0]
		for _, existing := range conns {
			if existing != conn {
				kept = append(kept, existing)
			}
		}
		if len(kept) == 0 {
			delete(h.games, gameID)
		} else {
			h.games[gameID] = kept
		}
	}
}

// Broadcast sends a typed message to every subscriber of the game and
// silently drops connections whose write fails.
func (h *Hub) Broadcast(gameID, msgType string, payload any) {
	raw, err := json.Marshal(map[string]any{
		"type": msgType,
		"game": payload,
	})
	if err != nil {
		zap.L().Error("encode broadcast message", zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	kept := make([]*websocket.Conn, 0, len(h.games[gameID]))
	for _, conn := range h.games[gameID] {
		if err := conn.WriteMessage(websocket.TextMessage, raw); err != nil {
			conn.Close()
			continue
		}
		kept = append(kept, conn)
	}
	if len(kept) == 0 {
		delete(h.games, gameID)
		return
	}
	h.games[gameID] = kept
}

// Subscribers reports how many connections are watching the game.
func (h *Hub) Subscribers(gameID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.games[gameID])
}
