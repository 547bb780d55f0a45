package dto

import (
	"time"

	"verbcards/entities"
)

type CreateGameRequest struct {
	GameID               string `json:"gameId"`
	PlayerCount          int    `json:"playerCount" binding:"required"`
	StartDealtCardsCount int    `json:"startDealtCardsCount" binding:"required"`
	PlayerName           string `json:"playerName" binding:"required"`
}

type JoinGameRequest struct {
	GameID     string `json:"gameId" binding:"required"`
	PlayerName string `json:"playerName" binding:"required"`
}

// PlayerID and CardID are pointers so that seat 0 and card id 0 survive
// the required binding.
type PlayCardRequest struct {
	GameID   string `json:"gameId" binding:"required"`
	PlayerID *int   `json:"playerId" binding:"required"`
	CardID   *int   `json:"cardId" binding:"required"`
}

type SkipTurnRequest struct {
	GameID   string `json:"gameId" binding:"required"`
	PlayerID *int   `json:"playerId" binding:"required"`
}

type RestartGameRequest struct {
	GameID string `json:"gameId" binding:"required"`
}

// GameState is the full snapshot returned by every successful game call and
// pushed to websocket subscribers.
type GameState struct {
	ID                   string            `json:"id"`
	Deck                 []entities.Card   `json:"deck"`
	Players              []entities.Player `json:"players"`
	CurrentPlayer        int               `json:"currentPlayer"`
	TableCards           []entities.Card   `json:"tableCards"`
	Winner               *int              `json:"winner"`
	PlayerNames          []string          `json:"playerNames"`
	JoinedPlayers        int               `json:"joinedPlayers"`
	PlayerCount          int               `json:"playerCount"`
	StartDealtCardsCount int               `json:"startDealtCardsCount"`
	GameStarted          bool              `json:"gameStarted"`
	WaitingForPlayers    bool              `json:"waitingForPlayers"`
	IsFinished           bool              `json:"isFinished"`
	LastPlayedTime       time.Time         `json:"lastPlayedTime"`
}

// GameStatus is the lightweight lobby probe used while waiting for players.
type GameStatus struct {
	Exists        bool     `json:"exists"`
	Started       bool     `json:"started"`
	JoinedPlayers int      `json:"joinedPlayers,omitempty"`
	PlayerCount   int      `json:"playerCount,omitempty"`
	PlayerNames   []string `json:"playerNames,omitempty"`
}

type ActiveGames struct {
	Games []GameState `json:"games"`
}
