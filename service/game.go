package service

import (
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"verbcards/dto"
	"verbcards/entities"
	"verbcards/utils"
	"verbcards/ws"
)

// maxActiveGames caps the /active listing.
const maxActiveGames = 100

// GameService owns every running game. All mutation of a single game
// happens under that game's lock; the registry lock only guards the map
// itself, so independent games run in parallel.
type GameService struct {
	catalog *entities.Catalog
	hub     *ws.Hub

	mu    sync.RWMutex
	games map[string]*entities.Game
}

// NewGameService builds a service around an already loaded catalog. The hub
// may be nil when nobody needs push updates (tests mostly).
func NewGameService(catalog *entities.Catalog, hub *ws.Hub) *GameService {
	return &GameService{
		catalog: catalog,
		hub:     hub,
		games:   make(map[string]*entities.Game),
	}
}

// Create opens a new lobby and seats the creator. An empty game id gets a
// generated one, which is how the web client creates games.
func (s *GameService) Create(req dto.CreateGameRequest) (dto.GameState, error) {
	if req.PlayerCount <= 1 || req.StartDealtCardsCount <= 0 {
		return dto.GameState{}, ErrInvalidConfig
	}

	gameID := req.GameID
	if gameID == "" {
		gameID = newGameID()
	}

	g := &entities.Game{
		ID:                   gameID,
		PlayerCount:          req.PlayerCount,
		StartDealtCardsCount: req.StartDealtCardsCount,
		Deck:                 []entities.Card{},
		Players:              emptySeats(req.PlayerCount),
		TableCards:           []entities.Card{},
		PlayerNames:          []string{req.PlayerName},
		JoinedPlayers:        1,
		LastPlayedTime:       time.Now(),
	}

	s.mu.Lock()
	if _, taken := s.games[gameID]; taken {
		s.mu.Unlock()
		return dto.GameState{}, ErrGameExists
	}
	s.games[gameID] = g
	s.mu.Unlock()

	zap.L().Info("game created",
		zap.String("gameId", gameID),
		zap.Int("playerCount", req.PlayerCount),
		zap.Int("startDealtCardsCount", req.StartDealtCardsCount))

	g.Lock()
	defer g.Unlock()
	return snapshot(g), nil
}

// Join seats a player in the lobby and starts the game the moment the last
// seat fills. Joining again under an already seated name is a no-op that
// still returns the current snapshot, so a page reload does not burn a
// seat.
func (s *GameService) Join(gameID, playerName string) (dto.GameState, error) {
	g, err := s.get(gameID)
	if err != nil {
		return dto.GameState{}, err
	}

	snap, err := s.joinLocked(g, playerName)
	if err != nil {
		return dto.GameState{}, err
	}
	s.broadcast(gameID, snap)
	return snap, nil
}

func (s *GameService) joinLocked(g *entities.Game, playerName string) (dto.GameState, error) {
	g.Lock()
	defer g.Unlock()
	g.Touch()

	if g.JoinedPlayers >= g.PlayerCount {
		return dto.GameState{}, ErrGameFull
	}
	if slices.Contains(g.PlayerNames[:g.JoinedPlayers], playerName) {
		return snapshot(g), nil
	}

	g.PlayerNames = append(g.PlayerNames, playerName)
	g.JoinedPlayers++
	if g.JoinedPlayers == g.PlayerCount {
		s.startLocked(g)
	}
	return snapshot(g), nil
}

// PlayCard moves the identified card from the seat's hand to the top of
// the table pile. Cards are addressed by their stable id, not by hand
// position, so a snapshot that went stale between request and handling can
// never remove the wrong card.
func (s *GameService) PlayCard(gameID string, playerID, cardID int) (dto.GameState, error) {
	g, err := s.get(gameID)
	if err != nil {
		return dto.GameState{}, err
	}

	snap, err := s.playCardLocked(g, playerID, cardID)
	if err != nil {
		return dto.GameState{}, err
	}
	s.broadcast(gameID, snap)
	return snap, nil
}

func (s *GameService) playCardLocked(g *entities.Game, playerID, cardID int) (dto.GameState, error) {
	g.Lock()
	defer g.Unlock()
	g.Touch()

	if !g.GameStarted {
		return dto.GameState{}, ErrGameNotStarted
	}
	if g.Finished() {
		return dto.GameState{}, ErrGameFinished
	}
	if playerID != g.CurrentPlayer {
		return dto.GameState{}, ErrNotPlayersTurn
	}

	hand := g.Players[playerID].Cards
	idx := slices.IndexFunc(hand, func(c entities.Card) bool { return c.ID == cardID })
	if idx < 0 {
		return dto.GameState{}, ErrCardNotInHand
	}

	card := hand[idx]
	if !IsPlayable(card, g.TopCard()) {
		return dto.GameState{}, ErrCardNotPlayable
	}

	g.Players[playerID].Cards = slices.Delete(hand, idx, idx+1)
	g.TableCards = append(g.TableCards, card)

	if len(g.Players[playerID].Cards) == 0 {
		winner := playerID
		g.Winner = &winner
		zap.L().Info("game finished",
			zap.String("gameId", g.ID),
			zap.Int("winner", winner))
	} else {
		g.CurrentPlayer = (playerID + 1) % g.PlayerCount
	}
	return snapshot(g), nil
}

// SkipTurn draws a card from the deck into the seat's hand when the deck
// still has one, then passes the turn. Turn ownership is enforced here just
// like in PlayCard; a stale client cannot stuff another seat's hand.
func (s *GameService) SkipTurn(gameID string, playerID int) (dto.GameState, error) {
	g, err := s.get(gameID)
	if err != nil {
		return dto.GameState{}, err
	}

	snap, err := s.skipTurnLocked(g, playerID)
	if err != nil {
		return dto.GameState{}, err
	}
	s.broadcast(gameID, snap)
	return snap, nil
}

func (s *GameService) skipTurnLocked(g *entities.Game, playerID int) (dto.GameState, error) {
	g.Lock()
	defer g.Unlock()
	g.Touch()

	if !g.GameStarted {
		return dto.GameState{}, ErrGameNotStarted
	}
	if g.Finished() {
		return dto.GameState{}, ErrGameFinished
	}
	if playerID != g.CurrentPlayer {
		return dto.GameState{}, ErrNotPlayersTurn
	}

	if len(g.Deck) > 0 {
		drawn := g.Deck[0]
		g.Deck = g.Deck[1:]
		g.Players[playerID].Cards = append(g.Players[playerID].Cards, drawn)
	}
	g.CurrentPlayer = (playerID + 1) % g.PlayerCount
	return snapshot(g), nil
}

// Restart deals a fresh game for the same roster: capacity, dealt-cards
// count and player names survive, everything else is rebuilt from the
// catalog.
func (s *GameService) Restart(gameID string) (dto.GameState, error) {
	g, err := s.get(gameID)
	if err != nil {
		return dto.GameState{}, err
	}

	snap, err := s.restartLocked(g)
	if err != nil {
		return dto.GameState{}, err
	}
	s.broadcast(gameID, snap)
	return snap, nil
}

func (s *GameService) restartLocked(g *entities.Game) (dto.GameState, error) {
	g.Lock()
	defer g.Unlock()
	g.Touch()

	if !g.GameStarted {
		return dto.GameState{}, ErrGameNotStarted
	}

	g.JoinedPlayers = g.PlayerCount
	s.startLocked(g)
	return snapshot(g), nil
}

// State returns the full snapshot of one game.
func (s *GameService) State(gameID string) (dto.GameState, error) {
	g, err := s.get(gameID)
	if err != nil {
		return dto.GameState{}, err
	}

	g.Lock()
	defer g.Unlock()
	return snapshot(g), nil
}

// Status is the lightweight probe the waiting page polls: does the game
// exist, has it started, and who is seated so far.
func (s *GameService) Status(gameID string) (dto.GameStatus, error) {
	g, err := s.get(gameID)
	if err != nil {
		return dto.GameStatus{}, err
	}

	g.Lock()
	defer g.Unlock()
	return dto.GameStatus{
		Exists:        true,
		Started:       g.GameStarted,
		JoinedPlayers: g.JoinedPlayers,
		PlayerCount:   g.PlayerCount,
		PlayerNames:   slices.Clone(g.PlayerNames),
	}, nil
}

// ListActive returns snapshots of the most recently touched games, newest
// first, capped at maxActiveGames.
func (s *GameService) ListActive() []dto.GameState {
	s.mu.RLock()
	games := make([]*entities.Game, 0, len(s.games))
	for _, g := range s.games {
		games = append(games, g)
	}
	s.mu.RUnlock()

	states := make([]dto.GameState, 0, len(games))
	for _, g := range games {
		g.Lock()
		states = append(states, snapshot(g))
		g.Unlock()
	}

	slices.SortFunc(states, func(a, b dto.GameState) int {
		return b.LastPlayedTime.Compare(a.LastPlayedTime)
	})
	return utils.SafeSlice(states, maxActiveGames)
}

// ReapIdle drops games whose last activity is older than maxIdle and
// reports how many were removed.
func (s *GameService) ReapIdle(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()

	reaped := 0
	for id, g := range s.games {
		g.Lock()
		idle := g.LastPlayedTime.Before(cutoff)
		g.Unlock()
		if idle {
			delete(s.games, id)
			reaped++
		}
	}
	if reaped > 0 {
		zap.L().Info("reaped idle games", zap.Int("count", reaped))
	}
	return reaped
}

// ReapLoop runs ReapIdle on a fixed interval until done is closed.
func (s *GameService) ReapLoop(interval, maxIdle time.Duration, done <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.ReapIdle(maxIdle)
		case <-done:
			return
		}
	}
}

// startLocked rebuilds the deck and deals the opening hands. Callers hold
// the game lock and have verified the lobby is full.
func (s *GameService) startLocked(g *entities.Game) {
	g.Deck = BuildDeck(s.catalog)

	g.Players = make([]entities.Player, 0, g.PlayerCount)
	for i := 0; i < g.PlayerCount; i++ {
		take := g.StartDealtCardsCount
		if take > len(g.Deck) {
			take = len(g.Deck)
		}
		g.Players = append(g.Players, entities.Player{
			ID:    i,
			Cards: slices.Clone(g.Deck[:take]),
		})
		g.Deck = g.Deck[take:]
	}

	g.CurrentPlayer = 0
	g.TableCards = []entities.Card{}
	g.Winner = nil
	g.GameStarted = true

	// The deck can be smaller than the deal asks for; the first seat left
	// without cards wins on the spot.
	for i := range g.Players {
		if len(g.Players[i].Cards) == 0 {
			winner := i
			g.Winner = &winner
			break
		}
	}

	zap.L().Info("game started",
		zap.String("gameId", g.ID),
		zap.Int("deckSize", len(g.Deck)))
}

func (s *GameService) get(gameID string) (*entities.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, ErrGameNotFound
	}
	return g, nil
}

func (s *GameService) broadcast(gameID string, snap dto.GameState) {
	if s.hub == nil {
		return
	}
	s.hub.Broadcast(gameID, "state", snap)
}

// snapshot deep-copies the mutable slices so the caller can marshal the
// result after the game lock is released.
func snapshot(g *entities.Game) dto.GameState {
	players := make([]entities.Player, len(g.Players))
	for i, p := range g.Players {
		players[i] = entities.Player{ID: p.ID, Cards: slices.Clone(p.Cards)}
	}

	var winner *int
	if g.Winner != nil {
		w := *g.Winner
		winner = &w
	}

	return dto.GameState{
		ID:                   g.ID,
		Deck:                 slices.Clone(g.Deck),
		Players:              players,
		CurrentPlayer:        g.CurrentPlayer,
		TableCards:           slices.Clone(g.TableCards),
		Winner:               winner,
		PlayerNames:          slices.Clone(g.PlayerNames),
		JoinedPlayers:        g.JoinedPlayers,
		PlayerCount:          g.PlayerCount,
		StartDealtCardsCount: g.StartDealtCardsCount,
		GameStarted:          g.GameStarted,
		WaitingForPlayers:    g.JoinedPlayers < g.PlayerCount && !g.GameStarted,
		IsFinished:           g.Finished(),
		LastPlayedTime:       g.LastPlayedTime,
	}
}

func emptySeats(count int) []entities.Player {
	players := make([]entities.Player, count)
	for i := range players {
		players[i] = entities.Player{ID: i, Cards: []entities.Card{}}
	}
	return players
}
