package entities

import (
	"sync"
	"time"
)

// Card is one dealt instance of a catalog template. The ID is assigned at
// deck-build time and stays stable for the life of the game; the hint is
// picked once from the template's related words.
type Card struct {
	ID       int      `json:"id"`
	Word     string   `json:"word"`
	Hint     string   `json:"hint"`
	Category string   `json:"category"`
	Color    string   `json:"color"`
	Matches  []string `json:"matches"`
}

// Player is a seat in a game. Seat ids are 0-based and fixed; the hand
// keeps insertion order.
type Player struct {
	ID    int    `json:"id"`
	Cards []Card `json:"cards"`
}

// Game holds all mutable state of one running game. Every operation that
// touches a Game must hold its mutex; independent games never share state.
type Game struct {
	sync.Mutex

	ID                   string
	PlayerCount          int
	StartDealtCardsCount int
	Deck                 []Card
	Players              []Player
	CurrentPlayer        int
	TableCards           []Card
	Winner               *int
	PlayerNames          []string
	JoinedPlayers        int
	GameStarted          bool
	LastPlayedTime       time.Time
}

// Touch records activity on the game. Callers must hold the game lock.
func (g *Game) Touch() {
	g.LastPlayedTime = time.Now()
}

// TopCard returns the most recently played card, or nil while the table
// pile is empty.
func (g *Game) TopCard() *Card {
	if len(g.TableCards) == 0 {
		return nil
	}
	return &g.TableCards[len(g.TableCards)-1]
}

// Finished reports whether a winner has been declared.
func (g *Game) Finished() bool {
	return g.Winner != nil
}
