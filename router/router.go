package router

import (
	"github.com/gin-gonic/gin"

	"verbcards/controller"
	"verbcards/ws"
)

// InitRouter wires the game API and the websocket endpoint.
func InitRouter(r *gin.Engine, gc *controller.GameController, hub *ws.Hub) {
	api := r.Group("/api/game")
	{
		api.POST("/initialize", gc.CreateGame)
		api.POST("/join", gc.JoinGame)
		api.POST("/play-card", gc.PlayCard)
		api.POST("/skip-turn", gc.SkipTurn)
		api.POST("/restart", gc.RestartGame)
		api.GET("/state", gc.GetState)
		api.GET("/status", gc.GetStatus)
		api.GET("/active", gc.GetActiveGames)
	}

	r.GET("/api/game/ws", hub.HandleWebSocket)
}
