package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"verbcards/dto"
	"verbcards/service"
)

// GameController maps the HTTP edge onto game service operations.
type GameController struct {
	svc *service.GameService
}

func NewGameController(svc *service.GameService) *GameController {
	return &GameController{svc: svc}
}

// CreateGame opens a lobby and seats the creator as the first player.
func (gc *GameController) CreateGame(c *gin.Context) {
	var req dto.CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "playerCount, startDealtCardsCount and playerName are required"})
		return
	}

	state, err := gc.svc.Create(req)
	if err != nil {
		c.JSON(httpStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, state)
}

func (gc *GameController) JoinGame(c *gin.Context) {
	var req dto.JoinGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "gameId and playerName are required"})
		return
	}

	state, err := gc.svc.Join(req.GameID, req.PlayerName)
	if err != nil {
		c.JSON(httpStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, state)
}

func (gc *GameController) PlayCard(c *gin.Context) {
	var req dto.PlayCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "gameId, playerId and cardId are required"})
		return
	}

	state, err := gc.svc.PlayCard(req.GameID, *req.PlayerID, *req.CardID)
	if err != nil {
		c.JSON(httpStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, state)
}

func (gc *GameController) SkipTurn(c *gin.Context) {
	var req dto.SkipTurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "gameId and playerId are required"})
		return
	}

	state, err := gc.svc.SkipTurn(req.GameID, *req.PlayerID)
	if err != nil {
		c.JSON(httpStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, state)
}

func (gc *GameController) RestartGame(c *gin.Context) {
	var req dto.RestartGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "gameId is required"})
		return
	}

	state, err := gc.svc.Restart(req.GameID)
	if err != nil {
		c.JSON(httpStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, state)
}

func (gc *GameController) GetState(c *gin.Context) {
	state, err := gc.svc.State(c.Query("gameId"))
	if err != nil {
		c.JSON(httpStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, state)
}

// GetStatus is the lobby probe; an unknown id answers exists=false instead
// of a plain error body so the waiting page can keep polling it.
func (gc *GameController) GetStatus(c *gin.Context) {
	status, err := gc.svc.Status(c.Query("gameId"))
	if err != nil {
		c.JSON(http.StatusNotFound, dto.GameStatus{Exists: false, Started: false})
		return
	}
	c.JSON(http.StatusOK, status)
}

func (gc *GameController) GetActiveGames(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ActiveGames{Games: gc.svc.ListActive()})
}

func httpStatus(err error) int {
	if errors.Is(err, service.ErrGameNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}
